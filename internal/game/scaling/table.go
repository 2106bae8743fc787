// Package scaling translates equipment stats between item levels using the
// game's fixed breakpoint table of expected average stats per level.
package scaling

import "sort"

// Curve selects which growth curve of the table is consulted.
type Curve int

const (
	// CurveBase is the curve shared by attack, defense and focus.
	CurveBase Curve = iota
	// CurveHP is the curve for maximum hp.
	CurveHP
)

// String returns the curve's lower-case name.
func (c Curve) String() string {
	switch c {
	case CurveBase:
		return "base"
	case CurveHP:
		return "hp"
	default:
		return "unknown"
	}
}

// Breakpoint is one row of the scaling table.
type Breakpoint struct {
	Level int
	Base  float64
	HP    float64
}

// value returns the breakpoint's value for curve c.
func (b Breakpoint) value(c Curve) float64 {
	if c == CurveHP {
		return b.HP
	}
	return b.Base
}

// Table is an immutable, level-ascending sequence of breakpoints.
type Table struct {
	rows []Breakpoint
}

// defaultRows mirrors the scaling constants of the game client.
var defaultRows = [...]Breakpoint{
	{Level: 1, Base: 20, HP: 205},
	{Level: 6, Base: 23, HP: 234},
	{Level: 11, Base: 26, HP: 266},
	{Level: 16, Base: 30, HP: 303},
	{Level: 21, Base: 34, HP: 343},
	{Level: 26, Base: 38, HP: 389},
	{Level: 31, Base: 43, HP: 439},
	{Level: 36, Base: 49, HP: 496},
	{Level: 41, Base: 56, HP: 560},
	{Level: 46, Base: 63, HP: 630},
	{Level: 51, Base: 71, HP: 710},
	{Level: 56, Base: 79, HP: 798},
	{Level: 61, Base: 89, HP: 897},
	{Level: 66, Base: 100, HP: 1008},
	{Level: 71, Base: 113, HP: 1132},
	{Level: 76, Base: 127, HP: 1270},
	{Level: 81, Base: 142, HP: 1425},
	{Level: 86, Base: 159, HP: 1598},
	{Level: 91, Base: 179, HP: 1792},
	{Level: 96, Base: 200, HP: 2008},
	{Level: 99, Base: 215, HP: 2150},
}

// DefaultTable returns the game's 21-row scaling table.
//
// Postcondition: Returns a Table whose levels are strictly increasing from 1 to 99.
func DefaultTable() Table {
	rows := make([]Breakpoint, len(defaultRows))
	copy(rows, defaultRows[:])
	return Table{rows: rows}
}

// NewTable builds a Table from rows, which must have strictly increasing levels.
//
// Precondition: len(rows) >= 2.
// Postcondition: Returns a Table owning a copy of rows, or a non-nil error.
func NewTable(rows []Breakpoint) (Table, error) {
	if len(rows) < 2 {
		return Table{}, errTableTooShort
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Level <= rows[i-1].Level {
			return Table{}, &unorderedTableError{index: i, level: rows[i].Level, prev: rows[i-1].Level}
		}
	}
	owned := make([]Breakpoint, len(rows))
	copy(owned, rows)
	return Table{rows: owned}, nil
}

// Rows returns a copy of the table's breakpoints.
func (t Table) Rows() []Breakpoint {
	out := make([]Breakpoint, len(t.rows))
	copy(out, t.rows)
	return out
}

// MaxLevel returns the level of the last breakpoint.
func (t Table) MaxLevel() int {
	if len(t.rows) == 0 {
		return 0
	}
	return t.rows[len(t.rows)-1].Level
}

// AverageStatAt returns the expected average value of curve c for an item of
// the given level.
//
// The lookup takes the first breakpoint whose level is >= level. An exact
// match returns the breakpoint's value; otherwise the value is interpolated
// along the line through that breakpoint and its successor. When the found
// breakpoint is the last row the line through its predecessor is used.
//
// A level above MaxLevel has no breakpoint and yields the neutral value 1.
// This mirrors the game client and is kept for compatibility; callers bound
// levels with ValidateLevel before reaching it.
func (t Table) AverageStatAt(level int, c Curve) float64 {
	idx := sort.Search(len(t.rows), func(i int) bool { return t.rows[i].Level >= level })
	if idx == len(t.rows) {
		return 1
	}
	found := t.rows[idx]
	if found.Level == level {
		return found.value(c)
	}

	low, high := found, found
	if idx+1 < len(t.rows) {
		high = t.rows[idx+1]
	} else {
		low = t.rows[idx-1]
	}
	return interpolate(level, low, high, c)
}

// interpolate evaluates the line through low and high at level.
func interpolate(level int, low, high Breakpoint, c Curve) float64 {
	lv, hv := low.value(c), high.value(c)
	return lv + (hv-lv)*float64(level-low.Level)/float64(high.Level-low.Level)
}

// Factor returns the multiplier translating a stat of an item at nativeLevel
// to targetLevel along curve c.
//
// Postcondition: Factor(l, l, c) == 1 for every l with a non-zero average.
func (t Table) Factor(nativeLevel, targetLevel int, c Curve) float64 {
	return t.AverageStatAt(targetLevel, c) / t.AverageStatAt(nativeLevel, c)
}
