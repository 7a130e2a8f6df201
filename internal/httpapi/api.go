// Package httpapi exposes the decision functions and the two state machines
// over a JSON HTTP API.
package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/whitebox/handler"
	"github.com/dmitrymomot/whitebox/pkg/clientip"
	"github.com/dmitrymomot/whitebox/pkg/httpserver"
	"github.com/dmitrymomot/whitebox/pkg/logger"
	"github.com/dmitrymomot/whitebox/pkg/requestid"
	"github.com/dmitrymomot/whitebox/pkg/rules"
	"github.com/dmitrymomot/whitebox/pkg/timegate"
	"github.com/dmitrymomot/whitebox/pkg/trafficlight"
	"github.com/dmitrymomot/whitebox/pkg/vending"
)

// Error keys returned for rejected inputs.
var (
	ErrNotNumeric          = handler.NewHTTPError(http.StatusBadRequest, "not_numeric")
	ErrInvalidShippingType = handler.NewHTTPError(http.StatusBadRequest, "invalid_shipping_type")
)

// API serves the /v1 endpoints. The state machines are shared by all
// requests and serialized by mu.
type API struct {
	log      *slog.Logger
	metrics  *Metrics
	selector *timegate.Selector
	ipOpts   []clientip.Option

	mu      sync.Mutex
	vending *vending.Machine
	traffic *trafficlight.Light
}

type Option func(*API)

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(a *API) {
		if m != nil {
			a.metrics = m
		}
	}
}

// WithSelector replaces the system-clock action selector.
func WithSelector(s *timegate.Selector) Option {
	return func(a *API) {
		if s != nil {
			a.selector = s
		}
	}
}

// WithProxyHeaders lists the trusted proxy headers that carry the client IP.
func WithProxyHeaders(headers ...string) Option {
	return func(a *API) {
		a.ipOpts = []clientip.Option{clientip.WithHeaders(headers...)}
	}
}

// New creates an API with fresh machines.
func New(opts ...Option) *API {
	a := &API{log: logger.Nop()}
	for _, opt := range opts {
		opt(a)
	}
	if a.metrics == nil {
		a.metrics = NewMetrics("whitebox")
	}
	if a.selector == nil {
		a.selector = timegate.New()
	}
	machineLog := a.log.With(logger.Component("statemachine"))
	a.vending = vending.New(vending.WithLogger(machineLog))
	a.traffic = trafficlight.New(machineLog)
	return a
}

// Router returns the HTTP handler with all routes and middleware mounted.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(a.ipOpts...),
		middleware.Recoverer,
		a.metrics.instrument,
		a.accessLog,
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrNotFound).Render(w, r)
	})

	r.Get("/health", httpserver.HealthCheckHandler(a.log))
	r.Method(http.MethodGet, "/metrics", a.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/even", wrap(a.even))
		r.Post("/divide", wrap(a.divide))
		r.Post("/grade", wrap(a.grade))
		r.Post("/triangle", wrap(a.triangle))
		r.Post("/status", wrap(a.status))
		r.Post("/password", wrap(a.password))
		r.Post("/discount", wrap(a.discount))
		r.Post("/order", wrap(a.order))
		r.Post("/shipping", wrap(a.shipping))
		r.Post("/login", wrap(a.login))
		r.Post("/age", wrap(a.age))
		r.Post("/category", wrap(a.category))
		r.Post("/email", wrap(a.email))
		r.Post("/c2f", wrap(a.celsiusToFahrenheit))
		r.Get("/action", handler.Wrap(a.action))

		r.Route("/vending", func(r chi.Router) {
			r.Get("/", handler.Wrap(a.vendingState))
			r.Post("/coin", handler.Wrap(a.insertCoin))
			r.Post("/select", handler.Wrap(a.selectDrink))
		})
		r.Route("/traffic", func(r chi.Router) {
			r.Get("/", handler.Wrap(a.trafficState))
			r.Post("/next", handler.Wrap(a.nextLight))
		})
	})

	return r
}

// classifyRuleError maps rule errors to 400 responses.
func classifyRuleError(err error) (handler.HTTPError, bool) {
	switch {
	case errors.Is(err, rules.ErrNotNumeric):
		return ErrNotNumeric, true
	case errors.Is(err, rules.ErrInvalidShippingType):
		return ErrInvalidShippingType, true
	}
	return handler.HTTPError{}, false
}

func (a *API) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		a.log.InfoContext(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}
