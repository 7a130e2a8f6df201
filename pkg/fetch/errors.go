package fetch

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidURL        = errors.New("invalid URL")
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrInvalidJSON       = errors.New("response body is not valid JSON")
	ErrFailedToCreateReq = errors.New("failed to create request")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s returned %d", ErrUnexpectedStatus, e.URL, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// IsStatusError reports whether err carries a *StatusError.
func IsStatusError(err error) bool {
	var e *StatusError
	return errors.As(err, &e)
}
