package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/whitebox/handler"
	"github.com/dmitrymomot/whitebox/pkg/binder"
	"github.com/dmitrymomot/whitebox/pkg/validator"
)

type ageRequest struct {
	Age int `json:"age"`
}

var errTooOld = errors.New("too old")

func decode(t *testing.T, rec *httptest.ResponseRecorder) handler.JSONResponse {
	t.Helper()
	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestWrap(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(ctx context.Context, req ageRequest) handler.Response {
		switch {
		case req.Age < 0:
			return handler.JSONError(validator.Apply(validator.NonNegative("age", req.Age)))
		case req.Age > 150:
			return handler.Error(errTooOld, func(err error) (handler.HTTPError, bool) {
				if errors.Is(err, errTooOld) {
					return handler.NewHTTPError(http.StatusUnprocessableEntity, "too_old"), true
				}
				return handler.HTTPError{}, false
			})
		}
		return handler.JSON(map[string]int{"age": req.Age})
	}, handler.WithBinders[ageRequest](binder.JSON()))

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		rec := post(h, `{"age": 30}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"data":{"age":30}}`, rec.Body.String())
	})

	t.Run("bad json", func(t *testing.T) {
		t.Parallel()
		rec := post(h, `{"age": "thirty"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad_request", decode(t, rec).Error.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		t.Parallel()
		rec := post(h, `{"age": -1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, []string{"must not be negative"}, body.Error.Details["age"])
	})

	t.Run("classified error", func(t *testing.T) {
		t.Parallel()
		rec := post(h, `{"age": 200}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "too_old", decode(t, rec).Error.Code)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"age":1}`))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestWrap_NilResponse(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(context.Context, struct{}) handler.Response { return nil })
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "internal_server_error", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "nil response")
}

func TestWrap_Decorators(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[struct{}] {
		return func(next handler.HandlerFunc[struct{}]) handler.HandlerFunc[struct{}] {
			return func(ctx context.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(func(context.Context, struct{}) handler.Response {
		order = append(order, "handler")
		return handler.JSON("ok", handler.WithJSONStatus(http.StatusAccepted))
	}, handler.WithDecorators(mark("outer"), mark("inner")))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestWrap_CustomErrorHandler(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.Wrap(func(context.Context, ageRequest) handler.Response {
		return handler.JSON(nil)
	},
		handler.WithBinders[ageRequest](binder.JSON()),
		handler.WithErrorHandler[ageRequest](func(w http.ResponseWriter, r *http.Request, err error) {
			got = err
			w.WriteHeader(http.StatusTeapot)
		}),
	)

	rec := post(h, `not json`)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.ErrorIs(t, got, binder.ErrFailedToParseJSON)
}

func TestJSONError_HTTPError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.JSONError(handler.ErrNotFound).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"not_found","message":"Not Found"}}`, rec.Body.String())
}
