// Package main provides the gearscore command line tool, which ranks
// equipment from an extracted item database by weighted, level-scaled score.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gearscore",
		Short: "Rank equipment by weighted stat score",
		Long: "gearscore validates an extracted equipment database, scales scalable items to a target level " +
			"and ranks them by a weighted sum of their stats, elemental factors and modifiers.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file")
	pf.String("data", "data/equips.json", "Path to the extracted equips JSON or a full item database")
	pf.String("locale", "en_US", "Language used for item names")
	pf.String("log-level", "warn", "Log level: debug, info, warn, error")
	pf.String("log-format", "console", "Log format: json, console")

	rank := newRankCmd()
	rootCmd.Flags().AddFlagSet(rank.Flags())
	rootCmd.RunE = rank.RunE

	rootCmd.AddCommand(rank)
	rootCmd.AddCommand(newModifiersCmd())
	rootCmd.AddCommand(newExtractCmd())
	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// SIGINT or SIGTERM cancels ranking between items.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
