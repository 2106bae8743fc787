package report

// ANSI escape code constants for terminal styling.
const (
	Reset = "\033[0m"

	Red         = "\033[31m"
	Green       = "\033[32m"
	BrightBlack = "\033[90m"
)

// Colorize wraps text with the given ANSI color code and a reset suffix.
//
// Precondition: color must be a valid ANSI escape sequence.
// Postcondition: Returns text wrapped with the color code and Reset.
func Colorize(color, text string) string {
	return color + text + Reset
}

// StripANSI removes all ANSI escape sequences from a string.
//
// Postcondition: Returns text with all \033[...m sequences removed.
func StripANSI(s string) string {
	result := make([]byte, 0, len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			// Skip past the 'm' terminator
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			if j < len(s) {
				i = j + 1
				continue
			}
		}
		result = append(result, s[i])
		i++
	}
	return string(result)
}

// signColor picks the color of a signed value. All results have the same
// length so colored table cells stay aligned.
func signColor(v float64) string {
	switch {
	case v > 0:
		return Green
	case v < 0:
		return Red
	default:
		return BrightBlack
	}
}
