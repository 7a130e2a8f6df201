package cli

import "errors"

// ErrInvalidArgument is returned when a positional argument does not parse.
var ErrInvalidArgument = errors.New("invalid argument")
