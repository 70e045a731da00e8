package projects

import "errors"

// ErrNotFound is returned when an id resolves to no project.
var ErrNotFound = errors.New("project not found")

// ValidationError marks client-fixable input problems. The message is
// safe to return to the caller verbatim.
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string {
	return e.msg
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
