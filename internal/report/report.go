// Package report renders rankings for the console or for other tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/gearscore/internal/game/equip"
	"github.com/cory-johannsen/gearscore/internal/game/scoring"
	"github.com/cory-johannsen/gearscore/internal/ranking"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// scorePrecision is the number of decimals shown for scores.
const scorePrecision = 3

// Options controls rendering.
type Options struct {
	Format    string
	Color     bool
	Breakdown bool
	Locale    string
}

// Entry is the machine-readable form of one ranked item.
type Entry struct {
	Rank          int                    `json:"rank" yaml:"rank"`
	Order         int                    `json:"order" yaml:"order"`
	Name          string                 `json:"name" yaml:"name"`
	EquipType     string                 `json:"equipType" yaml:"equipType"`
	Level         int                    `json:"level" yaml:"level"`
	EvalLevel     int                    `json:"evalLevel" yaml:"evalLevel"`
	Scaled        bool                   `json:"scaled" yaml:"scaled"`
	Score         float64                `json:"score" yaml:"score"`
	Weighted      map[string]float64     `json:"weighted" yaml:"weighted"`
	Contributions []scoring.Contribution `json:"contributions,omitempty" yaml:"contributions,omitempty"`
}

// Entries converts rankings into report entries.
func Entries(rankings []ranking.Ranked, opts Options) []Entry {
	locale := opts.Locale
	if locale == "" {
		locale = equip.DefaultLocale
	}
	out := make([]Entry, len(rankings))
	for i, r := range rankings {
		e := Entry{
			Rank:      r.Rank,
			Order:     r.Item.Order,
			Name:      r.Item.DisplayName(locale),
			EquipType: r.Item.EquipType,
			Level:     r.Item.Level,
			EvalLevel: r.Score.Level,
			Scaled:    r.Score.Scaled,
			Score:     RoundPrecision(r.Score.Total, scorePrecision),
			Weighted:  r.Score.Weighted(),
		}
		if opts.Breakdown {
			e.Contributions = r.Score.Contributions
		}
		out[i] = e
	}
	return out
}

// Write renders rankings to w in opts.Format.
func Write(w io.Writer, rankings []ranking.Ranked, opts Options) error {
	switch opts.Format {
	case FormatTable, "":
		return writeTable(w, Entries(rankings, opts), opts)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Entries(rankings, opts))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Entries(rankings, opts)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

func writeTable(w io.Writer, entries []Entry, opts Options) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := "#\tSCORE\tNAME\tTYPE\tLEVEL"
	if opts.Breakdown {
		header += "\tBREAKDOWN"
	}
	fmt.Fprintln(tw, header)

	for _, e := range entries {
		score := formatFloat(e.Score)
		if opts.Color {
			score = Colorize(signColor(e.Score), score)
		}
		level := strconv.Itoa(e.Level)
		if e.Scaled {
			level = fmt.Sprintf("%d->%d", e.Level, e.EvalLevel)
		}
		line := fmt.Sprintf("%d\t%s\t%s\t%s\t%s", e.Rank, score, e.Name, strings.ToLower(e.EquipType), level)
		if opts.Breakdown {
			line += "\t" + breakdown(e.Contributions, opts.Color)
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}

// breakdown renders contributions as "name=+value" pairs.
func breakdown(cs []scoring.Contribution, color bool) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		v := RoundPrecision(c.Weighted, scorePrecision)
		s := fmt.Sprintf("%s=%+g", c.Name, v)
		if color {
			s = Colorize(signColor(v), s)
		}
		parts[i] = s
	}
	return strings.Join(parts, " ")
}

// WriteModifiers prints the known modifier names on one line.
func WriteModifiers(w io.Writer, names []string) error {
	_, err := fmt.Fprintf(w, "Known modifiers: %s\n", strings.Join(names, ", "))
	return err
}

// RoundPrecision rounds x to precision decimal places, half-way values
// toward positive infinity.
func RoundPrecision(x float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	return math.Floor(x*p+0.5) / p
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
