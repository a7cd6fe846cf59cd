package commands

import (
	"errors"
	"fmt"
)

// UserError is an error meant for the player's screen rather than the
// logs: bad input, unknown names, misspelled options.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a user-facing error.
func NewUserError(format string, args ...any) *UserError {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// IsUserError reports whether err should be shown to the player as-is.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}
