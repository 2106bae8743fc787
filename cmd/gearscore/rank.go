package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/gearscore/internal/game/equip"
	"github.com/cory-johannsen/gearscore/internal/game/scaling"
	"github.com/cory-johannsen/gearscore/internal/game/scoring"
	"github.com/cory-johannsen/gearscore/internal/ranking"
	"github.com/cory-johannsen/gearscore/internal/report"
)

func newRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank equipment by weighted score",
		Long: "Scales every scalable item to the target level and ranks the filtered equipment by the weighted " +
			"sum of its stats, elemental factors and modifiers. Weights are given as [name:]number; a bare number " +
			"sets the fallback weight for modifiers without an explicit weight.",
		Args: cobra.NoArgs,
		RunE: runRank,
	}

	f := cmd.Flags()
	f.IntP("level", "l", 85, "Level scalable items are evaluated at (1-99)")
	f.Bool("no-scale", false, "Evaluate every item at its own level")
	f.StringSliceP("type", "t", []string{"head", "arm", "torso", "feet"}, "Equip types to include")
	f.StringArrayP("weight", "w", nil, "Weight specifier [name:]number, repeatable")
	f.String("profile", "", "YAML weight profile applied before --weight")
	f.IntP("top", "n", 0, "Show only the best N items (0 shows all)")
	f.BoolP("unobtainable", "u", false, "Include unobtainable items")
	f.Int("workers", 4, "Items scored concurrently")
	f.String("format", report.FormatTable, "Output format: table, json, yaml")
	f.Bool("color", false, "Color scores in table output")
	f.Bool("breakdown", false, "Show weighted contributions in table output")
	return cmd
}

func runRank(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	level := cfg.Scoring.Level
	noScale, err := cmd.Flags().GetBool("no-scale")
	if err != nil {
		return err
	}
	if noScale {
		level = 0
	}

	items, err := loadItems(cfg.Data.Path, logger)
	if err != nil {
		return err
	}
	known := equip.KnownModifiers(items)

	profile := scoring.DefaultProfile()
	if cfg.Scoring.Profile != "" {
		profile, err = scoring.LoadProfile(cfg.Scoring.Profile, profile, known)
		if err != nil {
			return err
		}
	}
	profile, err = scoring.BuildProfile(profile, cfg.Scoring.Weights, known)
	if err != nil {
		return err
	}

	candidates := ranking.Filter(items, ranking.FilterOptions{
		Types:               cfg.Scoring.Types,
		IncludeUnobtainable: cfg.Scoring.Unobtainable,
	})
	logger.Info("filtered equipment",
		zap.Int("candidates", len(candidates)),
		zap.Strings("types", cfg.Scoring.Types),
	)

	ranker := ranking.NewRanker(scoring.NewScorer(scaling.DefaultTable()), logger)
	ranked, err := ranker.Rank(cmd.Context(), candidates, profile, ranking.Options{
		TargetLevel: level,
		Top:         cfg.Scoring.Top,
		Workers:     cfg.Scoring.Workers,
	})
	if err != nil {
		return fmt.Errorf("ranking equipment: %w", err)
	}

	return report.Write(cmd.OutOrStdout(), ranked, report.Options{
		Format:    cfg.Output.Format,
		Color:     cfg.Output.Color,
		Breakdown: cfg.Output.Breakdown,
		Locale:    cfg.Data.Locale,
	})
}
