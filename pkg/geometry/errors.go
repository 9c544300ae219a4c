package geometry

import (
	"errors"
	"fmt"
)

// ErrBlankInput is returned by importers given a nil, empty or
// all-whitespace document.
var ErrBlankInput = errors.New("geometry: blank input")

// FormatError reports input that does not match any recognized geometry
// grammar, or a token inside it that fails to parse. The failure is
// permanent for that input; nothing is coerced into an empty or partial
// geometry.
type FormatError struct {
	Format string // "wkt" or "esrijson"
	Input  string // offending fragment, truncated for display
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s: %q", e.Format, e.Reason, e.Input)
}

// NewFormatError truncates input to a displayable fragment.
func NewFormatError(format, reason, input string) *FormatError {
	const maxFragment = 80
	if len(input) > maxFragment {
		input = input[:maxFragment] + "..."
	}
	return &FormatError{Format: format, Input: input, Reason: reason}
}

// UnsupportedError reports an operation that has no defined rule for a
// geometry variant.
type UnsupportedError struct {
	Op   string
	Type Type
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("geometry: %s not supported for %s", e.Op, e.Type)
}
