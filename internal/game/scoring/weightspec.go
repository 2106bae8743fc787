package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

// weightSpecPattern accepts an optional "name:" prefix and a signed decimal.
var weightSpecPattern = regexp.MustCompile(`^\s*(?:(\w+)\s*:\s*)?(-?(?:\d*\.)?\d+)\s*$`)

// WeightSpec is a parsed weight argument. An empty Name addresses the
// fallback weight.
type WeightSpec struct {
	Raw    string
	Name   string
	Weight float64
}

// ParseWeightSpec parses arguments such as "attack:2", "Crit_Damage : -0.5"
// and "1.5".
//
// Postcondition: Returns a WeightSpec with a lower-cased Name, or a
// *MalformedWeightSpecifierError.
func ParseWeightSpec(s string) (WeightSpec, error) {
	m := weightSpecPattern.FindStringSubmatch(s)
	if m == nil {
		return WeightSpec{}, &MalformedWeightSpecifierError{Spec: s}
	}
	w, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return WeightSpec{}, &MalformedWeightSpecifierError{Spec: s, Cause: err}
	}
	return WeightSpec{Raw: s, Name: strings.ToLower(m[1]), Weight: w}, nil
}
