package scoring

import (
	"strings"

	"github.com/cory-johannsen/gearscore/internal/game/equip"
	"github.com/cory-johannsen/gearscore/internal/game/scaling"
)

// hpScale converts hp into the same magnitude as the other base stats.
const hpScale = 0.1

// Contribution is one weighted term of a Score.
type Contribution struct {
	Name     string  `json:"name" yaml:"name"`
	Raw      float64 `json:"raw" yaml:"raw"`
	Weight   float64 `json:"weight" yaml:"weight"`
	Weighted float64 `json:"weighted" yaml:"weighted"`
}

// Score is an item's weighted total and the non-zero terms that make it up,
// in evaluation order.
type Score struct {
	Total         float64        `json:"total" yaml:"total"`
	Contributions []Contribution `json:"contributions" yaml:"contributions"`
	// Level is the level the item was evaluated at.
	Level int `json:"level" yaml:"level"`
	// Scaled is true when the item's stats were translated to Level.
	Scaled bool `json:"scaled" yaml:"scaled"`
}

// Weighted returns the contributions keyed by name. Terms sharing a name are
// summed.
func (s Score) Weighted() map[string]float64 {
	out := make(map[string]float64, len(s.Contributions))
	for _, c := range s.Contributions {
		out[c.Name] += c.Weighted
	}
	return out
}

func (s *Score) add(name string, raw, weight float64) {
	weighted := raw * weight
	if weighted == 0 {
		return
	}
	s.Contributions = append(s.Contributions, Contribution{Name: name, Raw: raw, Weight: weight, Weighted: weighted})
	s.Total += weighted
}

// Scorer evaluates items with a fixed scaling table.
type Scorer struct {
	table scaling.Table
}

// NewScorer returns a Scorer backed by table.
func NewScorer(table scaling.Table) *Scorer {
	return &Scorer{table: table}
}

// Table returns the scorer's scaling table.
func (s *Scorer) Table() scaling.Table {
	return s.table
}

// Score weighs it against profile. When targetLevel is non-zero and the item
// is scalable its stats are first translated from the item's level to
// targetLevel.
//
// Precondition: targetLevel is 0 or was accepted by scaling.ValidateLevel.
// Postcondition: it is not modified.
func (s *Scorer) Score(it *equip.Item, profile WeightProfile, targetLevel int) Score {
	params := it.Params
	score := Score{Level: it.Level}
	if targetLevel != 0 && it.Scalable() {
		params = s.table.Scale(it.Params, it.Level, targetLevel)
		score.Level = targetLevel
		score.Scaled = true
	}

	score.add("hp", value(params.HP)*hpScale, profile.StatWeight("hp"))
	score.add("attack", value(params.Attack), profile.StatWeight("attack"))
	score.add("defense", value(params.Defense), profile.StatWeight("defense"))
	score.add("focus", value(params.Focus), profile.StatWeight("focus"))

	for i, element := range Elements {
		score.add(element, centered(params.ElemFactor[i]), profile.StatWeight(element))
	}

	for _, name := range it.PropertyNames() {
		key := strings.ToLower(name)
		score.add(key, centered(it.Properties[name]), profile.ModifierWeight(key))
	}
	return score
}

func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// centered maps a multiplier onto percentage points around the neutral 1.0.
func centered(multiplier float64) float64 {
	return (multiplier - 1) * 100
}
