package scoring

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWeightKey is matched by every *UnknownWeightKeyError.
	ErrUnknownWeightKey = errors.New("unknown stat/modifier")
	// ErrMalformedWeightSpecifier is matched by every *MalformedWeightSpecifierError.
	ErrMalformedWeightSpecifier = errors.New("malformed weight specifier")
)

// UnknownWeightKeyError reports a weight for a name that is neither a stat,
// a known modifier nor the fallback.
type UnknownWeightKeyError struct {
	Key string
}

func (e *UnknownWeightKeyError) Error() string {
	return fmt.Sprintf("unknown stat/modifier %q", e.Key)
}

func (e *UnknownWeightKeyError) Is(target error) bool { return target == ErrUnknownWeightKey }

// MalformedWeightSpecifierError reports a weight argument that does not have
// the form [name:]number.
type MalformedWeightSpecifierError struct {
	Spec  string
	Cause error
}

func (e *MalformedWeightSpecifierError) Error() string {
	return fmt.Sprintf("malformed weight specifier %q: expected [name:]number", e.Spec)
}

func (e *MalformedWeightSpecifierError) Is(target error) bool {
	return target == ErrMalformedWeightSpecifier
}

func (e *MalformedWeightSpecifierError) Unwrap() error { return e.Cause }
