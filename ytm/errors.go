package ytm

import (
	"errors"
	"fmt"

	"github.com/xeptore/ytmusic/nav"
)

// UserError reports invalid caller input. It is raised before any network
// work is done.
type UserError struct {
	Msg string
}

func (e *UserError) Error() string {
	return e.Msg
}

func userErrorf(format string, args ...any) *UserError {
	return &UserError{Msg: fmt.Sprintf(format, args...)}
}

func IsUserError(err error) bool {
	var userErr *UserError

	return errors.As(err, &userErr)
}

// ServerError reports a non-2xx response or a 2xx document carrying a
// top-level error object.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server responded with status %d", e.Status)
	}

	return fmt.Sprintf("server responded with status %d: %s", e.Status, e.Message)
}

func IsServerError(err error) bool {
	var serverErr *ServerError

	return errors.As(err, &serverErr)
}

// IsParseError reports whether err originates from a mandatory path missing
// in a response shape.
func IsParseError(err error) bool {
	var pathErr *nav.PathError

	return errors.As(err, &pathErr)
}
