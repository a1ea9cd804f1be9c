package transport

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Service    string
	Operation  string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("%s.%s: unexpected status %d", e.Service, e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s.%s: unexpected status %d: %s", e.Service, e.Operation, e.StatusCode, e.Body)
}

// IsStatus reports whether err carries a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
