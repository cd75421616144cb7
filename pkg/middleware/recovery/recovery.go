// Package recovery converts handler panics into 500 responses instead of
// tearing down the connection.
package recovery

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/bindhttp/bindhttp/pkg/bindhttp"
)

// Config holds panic recovery configuration.
type Config struct {
	IncludeStack bool
}

// Option configures the recovery middleware.
type Option func(*Config)

// WithStackTrace includes the goroutine stack in the panic log entry.
func WithStackTrace() Option {
	return func(c *Config) {
		c.IncludeStack = true
	}
}

// New creates middleware that recovers panics, logs them, and answers with a
// generic internal error body. Nothing about the panic leaks to the client.
func New(logger *slog.Logger, opts ...Option) bindhttp.Middleware {
	config := Config{}
	for _, opt := range opts {
		opt(&config)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				attrs := []slog.Attr{
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				}
				if config.IncludeStack {
					attrs = append(attrs, slog.String("stack", string(debug.Stack())))
				}
				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(bindhttp.ErrorResponse{
					Error: "Internal server error",
					Code:  "INTERNAL_ERROR",
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
