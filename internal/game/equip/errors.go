package equip

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("item validation failed")

// FieldError is a single violation at a field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports a record that does not satisfy the equip item
// contract. Index is the record's position in the input; Order is set when
// the record carries a readable order value.
type ValidationError struct {
	Index  int
	Order  *int
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("item validation failed")
	if e.Index >= 0 {
		fmt.Fprintf(&sb, " for record %d", e.Index)
	}
	if e.Order != nil {
		fmt.Fprintf(&sb, " (order %d)", *e.Order)
	}
	for _, fe := range e.Errors {
		fmt.Fprintf(&sb, "; %s: %s", fe.Field, fe.Message)
	}
	return sb.String()
}

// Is makes errors.Is(err, ErrValidation) succeed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// documentError builds a ValidationError for a problem with the document as
// a whole rather than a single record.
func documentError(field, message string) *ValidationError {
	return &ValidationError{Index: -1, Errors: []FieldError{{Field: field, Message: message}}}
}
