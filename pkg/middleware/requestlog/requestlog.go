// Package requestlog provides structured request logging middleware for
// bindhttp handlers.
package requestlog

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bindhttp/bindhttp/pkg/bindhttp"
)

// Config holds logging middleware configuration.
type Config struct {
	Level  slog.Level
	Fields map[string]interface{}
}

// Option configures the logging middleware.
type Option func(*Config)

// WithLevel sets the level request entries are logged at.
func WithLevel(level slog.Level) Option {
	return func(c *Config) {
		c.Level = level
	}
}

// WithFields sets additional fields included in every log entry.
func WithFields(fields map[string]interface{}) Option {
	return func(c *Config) {
		c.Fields = fields
	}
}

// statusRecorder captures the response status code for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// New creates request logging middleware. Each completed request is logged
// with method, path, status, and duration.
func New(logger *slog.Logger, opts ...Option) bindhttp.Middleware {
	config := Config{Level: slog.LevelInfo}
	for _, opt := range opts {
		opt(&config)
	}

	base := make([]slog.Attr, 0, len(config.Fields))
	for k, v := range config.Fields {
		base = append(base, slog.Any(k, v))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			attrs := append([]slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", recorder.status),
				slog.Duration("duration", time.Since(start)),
			}, base...)
			logger.LogAttrs(r.Context(), config.Level, "request", attrs...)
		})
	}
}
