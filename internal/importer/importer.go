// Package importer extracts equipment records from a game installation into
// the standalone equips file the ranking commands read.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gearscore/internal/game/equip"
)

// Importer orchestrates extraction from a Source to an output file.
type Importer struct {
	source Source
	logger *zap.Logger
}

// New constructs an Importer backed by the given Source.
//
// Precondition: source and logger must be non-nil.
// Postcondition: returns a non-nil Importer.
func New(source Source, logger *zap.Logger) *Importer {
	return &Importer{source: source, logger: logger}
}

// Run loads the item database from gameDir, keeps only EQUIP records and
// writes them as a JSON array to outputPath. Records are written as found;
// the output is validated before it is written.
//
// Precondition: gameDir must satisfy the source's layout requirements;
// the parent of outputPath must exist or be creatable.
// Postcondition: returns the number of records written, or an error; on
// error outputPath is not modified.
func (imp *Importer) Run(gameDir, outputPath string) (int, error) {
	overall := time.Now()

	t0 := time.Now()
	data, err := imp.source.Load(gameDir)
	if err != nil {
		return 0, fmt.Errorf("loading source: %w", err)
	}
	imp.logger.Info("loaded item database",
		zap.Int("bytes", len(data)),
		zap.Duration("elapsed", time.Since(t0)),
	)

	records, err := equip.FilterEquipRecords(data)
	if err != nil {
		return 0, fmt.Errorf("filtering equipment: %w", err)
	}
	out, err := json.Marshal(records)
	if err != nil {
		return 0, fmt.Errorf("serialising equipment: %w", err)
	}

	// Validate output is loadable before writing.
	if _, err := equip.ParseItems(out); err != nil {
		return 0, fmt.Errorf("equipment failed validation: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return 0, fmt.Errorf("writing equipment to %s: %w", outputPath, err)
	}

	imp.logger.Info("wrote equipment",
		zap.String("path", outputPath),
		zap.Int("items", len(records)),
		zap.Duration("elapsed", time.Since(overall)),
	)
	return len(records), nil
}
