package command

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCommand  = errors.New("empty command")
	ErrCommandFailed = errors.New("command failed")
)

// ExitError reports a process that exited with a non-zero status.
type ExitError struct {
	Argv   []string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s: %s exited with status %d", ErrCommandFailed, strings.Join(e.Argv, " "), e.Code)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *ExitError) Unwrap() error {
	return ErrCommandFailed
}

// IsExitError reports whether err carries an *ExitError.
func IsExitError(err error) bool {
	var e *ExitError
	return errors.As(err, &e)
}
