package importer

import (
	"fmt"
	"os"
	"path/filepath"
)

// DatabasePath is the item database location inside a game installation.
var DatabasePath = filepath.Join("assets", "data", "item-database.json")

// Source loads the raw item database from a format-specific location.
//
// Precondition: gameDir must exist and contain the expected layout for the source.
// Postcondition: returns the raw database document, or a non-nil error.
type Source interface {
	Load(gameDir string) ([]byte, error)
}

var _ Source = (*GameSource)(nil)

// GameSource implements Source for an installed game:
//
//	gameDir/
//	  assets/data/item-database.json
type GameSource struct{}

// NewSource constructs a GameSource.
func NewSource() *GameSource { return &GameSource{} }

// Load reads gameDir/assets/data/item-database.json.
func (s *GameSource) Load(gameDir string) ([]byte, error) {
	if gameDir == "" {
		return nil, fmt.Errorf("no game path specified")
	}
	path := filepath.Join(gameDir, DatabasePath)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading item database %s: %w", path, err)
	}
	return data, nil
}
