package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"jobtrack/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware attaches a correlation ID to every request.
// An incoming X-Request-ID header is honored so callers can trace their
// own requests; otherwise a fresh one is generated. The ID is stored on
// the context for the log helpers and echoed back in the response.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := logger.WithRequestID(r.Context(), requestID)
		w.Header().Set(requestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
