package scoring

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// profileFile is the YAML layout of a weight profile file. Fallback is a
// pointer so an omitted value keeps the base profile's fallback.
type profileFile struct {
	Stat     map[string]float64 `yaml:"stat"`
	Modifier map[string]float64 `yaml:"modifier"`
	Fallback *float64           `yaml:"fallback"`
}

// LoadProfile reads a YAML weight profile from path and merges it over base.
//
// Precondition: path is a readable YAML file.
// Postcondition: Returns the merged profile, or an error naming the first
// key that is not a stat or known modifier.
func LoadProfile(path string, base WeightProfile, known []string) (WeightProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WeightProfile{}, fmt.Errorf("LoadProfile: cannot read file %q: %w", path, err)
	}
	p, err := ParseProfile(data, base, known)
	if err != nil {
		return WeightProfile{}, fmt.Errorf("LoadProfile: invalid profile in %q: %w", path, err)
	}
	return p, nil
}

// ParseProfile decodes a YAML weight profile and merges it over base.
func ParseProfile(data []byte, base WeightProfile, known []string) (WeightProfile, error) {
	var pf profileFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil && !errors.Is(err, io.EOF) {
		return WeightProfile{}, fmt.Errorf("parsing profile: %w", err)
	}

	p := base.Clone()
	for _, name := range slices.Sorted(maps.Keys(pf.Stat)) {
		key, w := strings.ToLower(name), pf.Stat[name]
		if !IsStatName(key) {
			return WeightProfile{}, &UnknownWeightKeyError{Key: key}
		}
		p.Stat[key] = w
	}
	for _, name := range slices.Sorted(maps.Keys(pf.Modifier)) {
		key, w := strings.ToLower(name), pf.Modifier[name]
		if known != nil && !contains(known, key) {
			return WeightProfile{}, &UnknownWeightKeyError{Key: key}
		}
		p.Modifier[key] = w
	}
	if pf.Fallback != nil {
		p.Fallback = *pf.Fallback
	}
	return p, nil
}
