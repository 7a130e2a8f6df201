package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/whitebox/pkg/logger"
)

// HandlerFunc handles a decoded request.
type HandlerFunc[R any] func(ctx context.Context, req R) Response

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind decodes part of the request into v.
type Bind func(r *http.Request, v any) error

// ErrorHandler writes a response for an error raised while binding or rendering.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Decorator wraps a HandlerFunc. The first decorator given is the outermost.
type Decorator[R any] func(HandlerFunc[R]) HandlerFunc[R]

type WrapOption[R any] func(*wrapConfig[R])

type wrapConfig[R any] struct {
	binders      []Bind
	errorHandler ErrorHandler
	classifiers  []Classifier
	decorators   []Decorator[R]
}

// WithBinders sets binders applied in order before the handler runs.
func WithBinders[R any](binders ...Bind) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		c.binders = append(c.binders, binders...)
	}
}

func WithErrorHandler[R any](h ErrorHandler) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithClassifiers maps binding errors to HTTP errors before the error
// handler sees them.
func WithClassifiers[R any](cs ...Classifier) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		c.classifiers = append(c.classifiers, cs...)
	}
}

func WithDecorators[R any](ds ...Decorator[R]) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		c.decorators = append(c.decorators, ds...)
	}
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption[R]) http.HandlerFunc {
	cfg := &wrapConfig[R]{errorHandler: DefaultErrorHandler(nil)}
	for _, opt := range opts {
		opt(cfg)
	}

	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				cfg.errorHandler(w, r, classify(err, cfg.classifiers))
				return
			}
		}

		resp := final(r.Context(), req)
		if resp == nil {
			cfg.errorHandler(w, r, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(w, r, err)
		}
	}
}

// Error returns a Response for err, classified with cs first.
func Error(err error, cs ...Classifier) Response {
	return JSONError(classify(err, cs))
}

func classify(err error, cs []Classifier) error {
	for _, c := range cs {
		if httpErr, ok := c(err); ok {
			return fmt.Errorf("%w: %w", httpErr, err)
		}
	}
	return err
}

// DefaultErrorHandler renders err with JSONError. Server errors are logged
// at error level, client errors at debug.
func DefaultErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = logger.Nop()
	}
	return func(w http.ResponseWriter, r *http.Request, err error) {
		resp := JSONError(err).(*jsonResponse)
		level := slog.LevelDebug
		if resp.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.LogAttrs(r.Context(), level, "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", resp.status),
			logger.Error(err),
		)
		_ = resp.Render(w, r)
	}
}
