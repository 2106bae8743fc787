package scaling

import (
	"math"

	"github.com/cory-johannsen/gearscore/internal/game/equip"
)

const (
	// MinLevel is the lowest level an item can be evaluated at.
	MinLevel = 1
	// MaxLevel is the highest level an item can be evaluated at.
	MaxLevel = 99

	// maxBaseStat bounds attack, defense and focus after scaling.
	maxBaseStat = 999
	// minHP is the floor applied to scaled hp.
	minHP = 1
)

// ValidateLevel reports whether level is a valid evaluation level.
//
// Postcondition: Returns nil iff MinLevel <= level <= MaxLevel, otherwise an
// *InvalidLevelError.
func ValidateLevel(level int) error {
	if level < MinLevel || level > MaxLevel {
		return &InvalidLevelError{Level: level}
	}
	return nil
}

// Scale returns a copy of p with its stats translated from nativeLevel to
// targetLevel. hp is floored at 1; attack, defense and focus are clamped to
// [0, 999]. Stats that are absent or zero are left untouched.
//
// Postcondition: p is not modified; elemFactor is carried over unchanged.
func (t Table) Scale(p equip.Params, nativeLevel, targetLevel int) equip.Params {
	baseFactor := t.Factor(nativeLevel, targetLevel, CurveBase)
	hpFactor := t.Factor(nativeLevel, targetLevel, CurveHP)

	out := p.Clone()
	if p.HP != nil && *p.HP != 0 {
		out.HP = ptr(math.Max(minHP, round(*p.HP*hpFactor)))
	}
	out.Attack = scaleBase(p.Attack, baseFactor)
	out.Defense = scaleBase(p.Defense, baseFactor)
	out.Focus = scaleBase(p.Focus, baseFactor)
	return out
}

func scaleBase(v *float64, factor float64) *float64 {
	if v == nil || *v == 0 {
		return v
	}
	return ptr(clamp(round(*v*factor), 0, maxBaseStat))
}

// clamp limits x to [low, high].
func clamp(x, low, high float64) float64 {
	return math.Max(low, math.Min(x, high))
}

// round rounds half-way values toward positive infinity, matching the game
// client's rounding of scaled stats.
func round(x float64) float64 {
	return math.Floor(x + 0.5)
}

func ptr(v float64) *float64 { return &v }
