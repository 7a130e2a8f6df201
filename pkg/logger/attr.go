package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors", keyed by argument position.
// Returns an empty Attr when every error is nil.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". Returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records id under "request_id". Returns an empty Attr for "".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Rule records the name of the evaluated decision function.
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Result records a rule outcome.
func Result(v any) slog.Attr {
	return slog.Any("result", v)
}

func State(name string) slog.Attr {
	return slog.String("state", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Command records an argv under "command".
func Command(argv []string) slog.Attr {
	return slog.Any("command", argv)
}

func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
