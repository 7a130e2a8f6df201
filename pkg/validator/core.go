package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Numeric is the constraint accepted by the numeric rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError describes one failed rule.
type ValidationError struct {
	Field   string         `json:"field"`
	Message string         `json:"message"`
	Code    string         `json:"code"`
	Params  map[string]any `json:"params,omitempty"`
}

// ValidationErrors is the error returned by Apply.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports true for ErrValidationFailed.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages reported for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Codes returns the rule codes reported for field.
func (ve ValidationErrors) Codes(field string) []string {
	var codes []string
	for _, err := range ve {
		if err.Field == field {
			codes = append(codes, err.Code)
		}
	}
	return codes
}

// Fields returns the distinct failing fields in report order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule is a single check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply evaluates every rule and returns nil or a ValidationErrors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Valid reports whether every rule passes.
func Valid(rules ...Rule) bool {
	for _, rule := range rules {
		if !rule.Check() {
			return false
		}
	}
	return true
}

// ExtractValidationErrors unwraps a ValidationErrors from err, or returns nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}

func newError(field, code, message string, params map[string]any) ValidationError {
	return ValidationError{Field: field, Code: code, Message: message, Params: params}
}
