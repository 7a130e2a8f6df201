package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/whitebox/pkg/logger"
)

// Probe reports whether a dependency is ready.
type Probe func(ctx context.Context) error

// Probe status strings written by HealthCheckHandler.
const (
	StatusAlive    = "alive"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// HealthCheckHandler serves {"status": ...}. Without probes it is a liveness
// check and always answers "alive". With probes every one must pass for
// "ready"; the first failure answers 503 "not_ready".
func HealthCheckHandler(log *slog.Logger, probes ...Probe) http.HandlerFunc {
	if log == nil {
		log = logger.Nop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if len(probes) == 0 {
			writeStatus(w, http.StatusOK, StatusAlive)
			return
		}

		for _, p := range probes {
			if err := p(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				writeStatus(w, http.StatusServiceUnavailable, StatusNotReady)
				return
			}
		}
		writeStatus(w, http.StatusOK, StatusReady)
	}
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
}
