package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/gearscore/internal/importer"
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <gameDir>",
		Short: "Extract the equipment records from an installed game",
		Long: "Reads " + importer.DatabasePath + " below gameDir, keeps the EQUIP records, validates them " +
			"and writes them as a JSON array.",
		Args: cobra.ExactArgs(1),
		RunE: runExtract,
	}
	cmd.Flags().StringP("out", "o", "data/equips.json", "Output file")
	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	_, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	start := time.Now()
	n, err := importer.New(importer.NewSource(), logger).Run(args[0], out)
	if err != nil {
		return fmt.Errorf("extracting equipment: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "extracted %d equips to %s in %s\n", n, out, time.Since(start).Round(time.Millisecond))
	return nil
}
