package router

import (
	"log/slog"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

// RequestID makes sure that every request carries a correlation id. An id
// supplied by the client is kept, otherwise a new one is generated. The id is
// echoed in the response and added to the request scoped logger.
func RequestID(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(requestID); err != nil {
				requestID = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, requestID)

			ctx := logging.NewContextWithLogger(r.Context(), logger, "request_id", requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
