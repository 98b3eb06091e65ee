package normalize

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is matched (via errors.Is) by every InvalidFormatError.
var ErrInvalidFormat = errors.New("invalid format")

// InvalidFormatError reports a raw date or time value that could not be canonicalized.
// Input carries the original, untrimmed value.
type InvalidFormatError struct {
	Field string
	Input string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid %s format: %s", e.Field, e.Input)
}

func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}
