package api

import (
	"fmt"
	"net/http"
	"time"

	"eats-marketplace/internal/auth"
	"eats-marketplace/internal/logger"
)

// RouteRegistrar is implemented by each service handler
type RouteRegistrar interface {
	Register(mux *http.ServeMux)
}

// NewRouter composes the service handlers onto one mux behind the auth
// and request-logging middleware.
func NewRouter(log *logger.Logger, tm *auth.TokenManager, users auth.UserFinder, handlers ...RouteRegistrar) http.Handler {
	mux := http.NewServeMux()
	for _, h := range handlers {
		h.Register(mux)
	}

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "api-server",
		})
	})

	authenticate := auth.Middleware(tm, users)
	return withLogging(log, authenticate(mux))
}

// withLogging adds request logging around the whole mux
func withLogging(log *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := logger.GenerateRequestID()

		log.Debug("request_started",
			fmt.Sprintf("%s %s", r.Method, r.URL.Path),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"remote_addr": r.RemoteAddr,
				"user_agent":  r.Header.Get("User-Agent"),
			})

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Debug("request_completed",
			fmt.Sprintf("%s %s - %d", r.Method, r.URL.Path, rw.statusCode),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": rw.statusCode,
				"duration_ms": duration.Milliseconds(),
			})
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
