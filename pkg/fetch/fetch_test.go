package fetch_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/whitebox/pkg/fetch"
	"github.com/dmitrymomot/whitebox/pkg/requestid"
)

type mockDoer struct {
	mock.Mock
}

func (m *mockDoer) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if resp := args.Get(0); resp != nil {
		return resp.(*http.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestClient_JSON(t *testing.T) {
	t.Parallel()

	t.Run("single GET with timeout", func(t *testing.T) {
		t.Parallel()
		doer := new(mockDoer)
		start := time.Now()

		doer.On("Do", mock.MatchedBy(func(req *http.Request) bool {
			deadline, ok := req.Context().Deadline()
			return req.Method == http.MethodGet &&
				req.URL.String() == "https://api.example.com/data" &&
				ok && deadline.Sub(start) >= fetch.DefaultTimeout &&
				deadline.Sub(start) < fetch.DefaultTimeout+time.Second
		})).Return(jsonResponse(http.StatusOK, `{"key":"value"}`), nil).Once()

		c := fetch.New(fetch.WithDoer(doer))
		got, err := c.JSON(context.Background(), "https://api.example.com/data")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"key": "value"}, got)
		doer.AssertExpectations(t)
		doer.AssertNumberOfCalls(t, "Do", 1)
	})

	t.Run("transport error returned unchanged", func(t *testing.T) {
		t.Parallel()
		doer := new(mockDoer)
		netErr := errors.New("connection refused")
		doer.On("Do", mock.Anything).Return(nil, netErr).Once()

		c := fetch.New(fetch.WithDoer(doer))
		got, err := c.JSON(context.Background(), "http://localhost:1/data")
		assert.Same(t, netErr, err)
		assert.Nil(t, got)
		doer.AssertNumberOfCalls(t, "Do", 1)
	})

	t.Run("non 2xx status", func(t *testing.T) {
		t.Parallel()
		doer := new(mockDoer)
		doer.On("Do", mock.Anything).Return(jsonResponse(http.StatusNotFound, `{}`), nil).Once()

		c := fetch.New(fetch.WithDoer(doer))
		_, err := c.JSON(context.Background(), "https://api.example.com/missing")
		assert.ErrorIs(t, err, fetch.ErrUnexpectedStatus)
		assert.True(t, fetch.IsStatusError(err))

		var se *fetch.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusNotFound, se.StatusCode)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		t.Parallel()
		doer := new(mockDoer)
		doer.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, `{not json`), nil).Once()

		c := fetch.New(fetch.WithDoer(doer))
		_, err := c.JSON(context.Background(), "https://api.example.com/data")
		assert.ErrorIs(t, err, fetch.ErrInvalidJSON)
	})

	t.Run("body truncated at max size", func(t *testing.T) {
		t.Parallel()
		body := `{"key":"value"}`
		short := new(mockDoer)
		short.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, body), nil).Once()
		full := new(mockDoer)
		full.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, body), nil).Once()

		small := fetch.New(fetch.WithDoer(short), fetch.WithMaxBodySize(int64(len(body)-1)))
		_, err := small.JSON(context.Background(), "https://api.example.com/data")
		assert.ErrorIs(t, err, fetch.ErrInvalidJSON)

		exact := fetch.New(fetch.WithDoer(full), fetch.WithMaxBodySize(int64(len(body))))
		got, err := exact.JSON(context.Background(), "https://api.example.com/data")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"key": "value"}, got)
	})
}

func TestClient_InvalidURL(t *testing.T) {
	t.Parallel()

	doer := new(mockDoer)
	c := fetch.New(fetch.WithDoer(doer))

	for _, u := range []string{"", "ftp://example.com/x", "http://", "://bad"} {
		_, err := c.JSON(context.Background(), u)
		assert.ErrorIs(t, err, fetch.ErrInvalidURL, u)
	}
	doer.AssertNotCalled(t, "Do", mock.Anything)
}

func TestClient_Decode_HTTPTest(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"widget","price":12.5}`))
	}))
	t.Cleanup(srv.Close)

	var got struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	c := fetch.New()
	assert.Equal(t, fetch.DefaultTimeout, c.Timeout())

	require.NoError(t, c.Decode(context.Background(), srv.URL, &got))
	assert.Equal(t, "widget", got.Name)
	assert.Equal(t, 12.5, got.Price)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	c := fetch.New(fetch.WithTimeout(50 * time.Millisecond))
	_, err := c.JSON(context.Background(), srv.URL)
	var netErr net.Error
	require.ErrorAs(t, err, &netErr)
	assert.True(t, netErr.Timeout())
}

func TestClient_PropagatesRequestID(t *testing.T) {
	t.Parallel()

	doer := new(mockDoer)
	doer.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get(requestid.Header) == "req-7"
	})).Return(jsonResponse(http.StatusOK, `[1,2]`), nil).Once()

	ctx := requestid.WithContext(context.Background(), "req-7")
	got, err := fetch.New(fetch.WithDoer(doer)).JSON(ctx, "https://api.example.com/list")
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, 2.0}, got)
	doer.AssertExpectations(t)
}
