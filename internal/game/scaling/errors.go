package scaling

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is matched by every *InvalidLevelError.
var ErrInvalidLevel = errors.New("invalid level")

var errTableTooShort = errors.New("scaling: table needs at least two breakpoints")

// InvalidLevelError reports an evaluation level outside [MinLevel, MaxLevel].
type InvalidLevelError struct {
	Level int
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid level %d: must be between %d and %d", e.Level, MinLevel, MaxLevel)
}

// Is makes errors.Is(err, ErrInvalidLevel) succeed.
func (e *InvalidLevelError) Is(target error) bool {
	return target == ErrInvalidLevel
}

type unorderedTableError struct {
	index int
	level int
	prev  int
}

func (e *unorderedTableError) Error() string {
	return fmt.Sprintf("scaling: breakpoint %d has level %d, not above previous level %d", e.index, e.level, e.prev)
}
