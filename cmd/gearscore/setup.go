package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/gearscore/internal/config"
	"github.com/cory-johannsen/gearscore/internal/game/equip"
	"github.com/cory-johannsen/gearscore/internal/observability"
)

// setup loads the configuration for cmd and builds the run logger.
//
// Postcondition: on success the caller owns logger and must Sync it.
func setup(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, nil, err
	}
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, runID, err := observability.NewRunLogger(cfg.Logging)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("creating logger: %w", err)
	}
	logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("run_id", runID),
		zap.String("data", cfg.Data.Path),
		zap.Int("level", cfg.Scoring.Level),
	)
	return cfg, logger, nil
}

// loadItems reads and validates the equipment at path. A JSON object is
// treated as a full item database, anything else as an extracted equips
// array.
//
// Postcondition: returns only validated EQUIP items, in file order.
func loadItems(path string, logger *zap.Logger) ([]equip.Item, error) {
	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading equipment data: %w", err)
	}

	var items []equip.Item
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		db, err := equip.ParseDatabase(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		items = db.Items
	} else {
		items, err = equip.ParseItems(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	logger.Info("loaded equipment",
		zap.String("path", path),
		zap.Int("items", len(items)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return items, nil
}
