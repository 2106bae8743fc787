package main

import (
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/gearscore/internal/game/equip"
	"github.com/cory-johannsen/gearscore/internal/report"
)

func newModifiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modifiers",
		Short: "List the modifier names usable in weight specifiers",
		Args:  cobra.NoArgs,
		RunE:  runModifiers,
	}
}

func runModifiers(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	items, err := loadItems(cfg.Data.Path, logger)
	if err != nil {
		return err
	}
	return report.WriteModifiers(cmd.OutOrStdout(), equip.KnownModifiers(items))
}
