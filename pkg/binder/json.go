package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize is the default body limit (1 MB).
const DefaultMaxJSONSize = 1 << 20

// Option configures JSON.
type Option func(*jsonConfig)

type jsonConfig struct {
	maxSize       int64
	allowEmpty    bool
	allowUnknowns bool
}

// WithMaxSize overrides DefaultMaxJSONSize.
func WithMaxSize(n int64) Option {
	return func(c *jsonConfig) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// AllowEmpty treats a missing body as an empty object.
func AllowEmpty() Option {
	return func(c *jsonConfig) { c.allowEmpty = true }
}

// AllowUnknownFields disables strict field matching.
func AllowUnknownFields() Option {
	return func(c *jsonConfig) { c.allowUnknowns = true }
}

// JSON returns a binder that decodes the request body into v.
func JSON(opts ...Option) func(r *http.Request, v any) error {
	cfg := &jsonConfig{maxSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, cfg.maxSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %w", ErrFailedToParseJSON, err)
		}
		if int64(len(body)) > cfg.maxSize {
			return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, cfg.maxSize)
		}
		if len(bytes.TrimSpace(body)) == 0 {
			if cfg.allowEmpty {
				return nil
			}
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
		}

		dec := json.NewDecoder(bytes.NewReader(body))
		if !cfg.allowUnknowns {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}

		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}
		return nil
	}
}
