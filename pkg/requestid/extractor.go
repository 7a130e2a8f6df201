package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/whitebox/pkg/logger"
)

// LoggerExtractor adds the request id to log records as "request_id".
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}
