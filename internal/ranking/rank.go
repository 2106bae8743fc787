// Package ranking filters validated equipment and orders it by weighted score.
package ranking

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/gearscore/internal/game/equip"
	"github.com/cory-johannsen/gearscore/internal/game/scoring"
)

// FilterOptions selects which items are ranked.
type FilterOptions struct {
	// Types is the equipType allow-list, matched case-insensitively. Empty
	// allows every type.
	Types []string
	// IncludeUnobtainable keeps items whose default name starts with "-".
	IncludeUnobtainable bool
}

// Filter returns the items matching opts, preserving order.
func Filter(items []equip.Item, opts FilterOptions) []equip.Item {
	allowed := make(map[string]bool, len(opts.Types))
	for _, t := range opts.Types {
		allowed[strings.ToLower(strings.TrimSpace(t))] = true
	}

	out := make([]equip.Item, 0, len(items))
	for _, it := range items {
		if len(allowed) > 0 && !allowed[strings.ToLower(it.EquipType)] {
			continue
		}
		if !opts.IncludeUnobtainable && it.Unobtainable() {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Ranked is a scored item and its position in the ranking, starting at 1.
type Ranked struct {
	Rank  int
	Item  *equip.Item
	Score scoring.Score
}

// Options tunes Rank.
type Options struct {
	// TargetLevel is the evaluation level for scalable items; 0 keeps every
	// item at its own level.
	TargetLevel int
	// Top truncates the result; 0 keeps everything.
	Top int
	// Workers bounds concurrent scoring; values below 1 mean 1.
	Workers int
}

// Ranker scores and orders items.
type Ranker struct {
	scorer *scoring.Scorer
	logger *zap.Logger
}

// NewRanker returns a Ranker using scorer.
//
// Precondition: scorer and logger must be non-nil.
func NewRanker(scorer *scoring.Scorer, logger *zap.Logger) *Ranker {
	return &Ranker{scorer: scorer, logger: logger}
}

// Rank scores every item against profile and returns them ordered by total
// score, highest first. Ties keep the lower order first.
//
// Precondition: opts.TargetLevel is 0 or a valid level.
// Postcondition: items are not modified; len(result) <= opts.Top when Top > 0.
func (r *Ranker) Rank(ctx context.Context, items []equip.Item, profile scoring.WeightProfile, opts Options) ([]Ranked, error) {
	start := time.Now()
	results := make([]Ranked, len(items))

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Ranked{Item: &items[i], Score: r.scorer.Score(&items[i], profile, opts.TargetLevel)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(a, b int) bool {
		sa, sb := results[a].Score.Total, results[b].Score.Total
		if sa != sb {
			return sa > sb
		}
		return results[a].Item.Order < results[b].Item.Order
	})
	if opts.Top > 0 && len(results) > opts.Top {
		results = results[:opts.Top]
	}
	for i := range results {
		results[i].Rank = i + 1
	}

	r.logger.Debug("ranked items",
		zap.Int("items", len(items)),
		zap.Int("returned", len(results)),
		zap.Int("target_level", opts.TargetLevel),
		zap.Duration("elapsed", time.Since(start)),
	)
	return results, nil
}
