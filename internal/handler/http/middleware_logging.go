package http

import (
	"net/http"
	"time"

	"github.com/pfalcao/go-biblioteca/internal/logger"
)

// withLogging emits one structured access-log line per request: method, URI,
// status, duration and response size, under the trace-scoped logger installed
// by withTraceID. Both the API and the page surface flow through it.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
