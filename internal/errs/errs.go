package errs

import (
	"errors"
	"strings"
)

var (
	// ErrRecordNotFound means no record exists for the given public id.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateID means a generated record id collided with an existing one.
	ErrDuplicateID = errors.New("duplicate record id")
)

// ValidationError carries the field-level messages produced by the
// validation layer. It maps to HTTP 400 with the details preserved.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Details, "; ")
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
