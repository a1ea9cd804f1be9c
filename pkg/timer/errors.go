package timer

import "github.com/cockroachdb/errors"

// ErrInvalidArgument is returned before any request is sent when the request
// is nil or a required field is empty.
var ErrInvalidArgument = errors.New("invalid argument")

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func missingRequest(operation string) error {
	return errors.Wrapf(ErrInvalidArgument, "%s: request is nil", operation)
}

func missingField(operation, field string) error {
	return errors.Wrapf(ErrInvalidArgument, "%s: %s is required", operation, field)
}

// required checks name/value pairs in order and reports the first empty one.
func required(operation string, fields ...string) error {
	for i := 0; i+1 < len(fields); i += 2 {
		if fields[i+1] == "" {
			return missingField(operation, fields[i])
		}
	}
	return nil
}
