package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/whitebox/pkg/binder"
	"github.com/dmitrymomot/whitebox/pkg/validator"
)

// JSONResponse is the envelope of every JSON response.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// JSON renders v as {"data": v} with status 200.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err as {"error": ...}. The status follows the error kind:
// HTTPError keeps its code, validation and binding errors are 400, anything
// else is 500.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{}
	r.body.Error = errorToDetail(err, &r.status)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorToDetail(err error, status *int) *ErrorDetail {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		*status = http.StatusBadRequest
		details := make(map[string][]string)
		for _, f := range verrs.Fields() {
			details[f] = verrs.Get(f)
		}
		return &ErrorDetail{Code: "validation_error", Message: err.Error(), Details: details}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		*status = httpErr.Code
		msg := err.Error()
		if msg == httpErr.Key {
			msg = http.StatusText(httpErr.Code)
		}
		return &ErrorDetail{Code: httpErr.Key, Message: msg}
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		*status = http.StatusUnsupportedMediaType
		return &ErrorDetail{Code: ErrUnsupportedMediaType.Key, Message: err.Error()}
	case errors.Is(err, binder.ErrBodyTooLarge):
		*status = http.StatusRequestEntityTooLarge
		return &ErrorDetail{Code: ErrRequestTooLarge.Key, Message: err.Error()}
	case errors.Is(err, binder.ErrFailedToParseJSON):
		*status = http.StatusBadRequest
		return &ErrorDetail{Code: ErrBadRequest.Key, Message: err.Error()}
	}

	*status = http.StatusInternalServerError
	return &ErrorDetail{Code: ErrInternalServerError.Key, Message: http.StatusText(http.StatusInternalServerError)}
}
