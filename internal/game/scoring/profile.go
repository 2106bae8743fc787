// Package scoring weighs an item's stats and modifiers against a user
// supplied weight profile.
package scoring

import (
	"maps"
	"strings"
)

// Base stat and element names understood as stat weight keys.
var (
	BaseStats = [...]string{"hp", "attack", "defense", "focus"}
	Elements  = [...]string{"heat", "cold", "shock", "wave"}
)

// FallbackKey is the weight key addressing WeightProfile.Fallback.
const FallbackKey = "fallback"

// defaultIgnoredModifiers are modifiers with no combat value; they are
// weighted 0 unless overridden.
var defaultIgnoredModifiers = [...]string{"rank_plants", "money_plus", "drop_chance", "xp_plus", "xp_zero"}

// IsStatName reports whether name is a base stat or element.
func IsStatName(name string) bool {
	for _, s := range BaseStats {
		if s == name {
			return true
		}
	}
	for _, e := range Elements {
		if e == name {
			return true
		}
	}
	return false
}

// WeightProfile maps stat and modifier names to weights. Names absent from
// both maps use Fallback; an explicit 0 is honoured.
type WeightProfile struct {
	Stat     map[string]float64 `yaml:"stat" json:"stat"`
	Modifier map[string]float64 `yaml:"modifier" json:"modifier"`
	Fallback float64            `yaml:"fallback" json:"fallback"`
}

// DefaultProfile returns the profile used when no weights are given.
//
// Postcondition: Fallback is 1 and the non-combat modifiers are weighted 0.
func DefaultProfile() WeightProfile {
	p := WeightProfile{
		Stat:     map[string]float64{},
		Modifier: make(map[string]float64, len(defaultIgnoredModifiers)),
		Fallback: 1,
	}
	for _, m := range defaultIgnoredModifiers {
		p.Modifier[m] = 0
	}
	return p
}

// Clone returns a deep copy of p.
func (p WeightProfile) Clone() WeightProfile {
	out := WeightProfile{Fallback: p.Fallback, Stat: maps.Clone(p.Stat), Modifier: maps.Clone(p.Modifier)}
	if out.Stat == nil {
		out.Stat = map[string]float64{}
	}
	if out.Modifier == nil {
		out.Modifier = map[string]float64{}
	}
	return out
}

// StatWeight returns the weight for a base stat or element.
func (p WeightProfile) StatWeight(name string) float64 {
	if w, ok := p.Stat[name]; ok {
		return w
	}
	return p.Fallback
}

// ModifierWeight returns the weight for a modifier, matched case-insensitively.
func (p WeightProfile) ModifierWeight(name string) float64 {
	if w, ok := p.Modifier[strings.ToLower(name)]; ok {
		return w
	}
	return p.Fallback
}

// Set assigns weight to name, routing it to the stat map, the modifier map or
// the fallback. known lists the modifiers the item data defines.
//
// Postcondition: Returns *UnknownWeightKeyError when name is neither a stat,
// a known modifier nor "fallback"; p is unchanged in that case.
func (p *WeightProfile) Set(name string, weight float64, known []string) error {
	key := strings.ToLower(strings.TrimSpace(name))
	switch {
	case key == "" || key == FallbackKey:
		p.Fallback = weight
	case IsStatName(key):
		if p.Stat == nil {
			p.Stat = map[string]float64{}
		}
		p.Stat[key] = weight
	case contains(known, key):
		if p.Modifier == nil {
			p.Modifier = map[string]float64{}
		}
		p.Modifier[key] = weight
	default:
		return &UnknownWeightKeyError{Key: key}
	}
	return nil
}

// Apply parses spec and assigns it with Set.
func (p *WeightProfile) Apply(spec string, known []string) error {
	ws, err := ParseWeightSpec(spec)
	if err != nil {
		return err
	}
	return p.Set(ws.Name, ws.Weight, known)
}

// BuildProfile applies every spec to a copy of base, failing on the first
// malformed or unknown specifier.
func BuildProfile(base WeightProfile, specs []string, known []string) (WeightProfile, error) {
	p := base.Clone()
	for _, spec := range specs {
		if err := p.Apply(spec, known); err != nil {
			return WeightProfile{}, err
		}
	}
	return p, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
