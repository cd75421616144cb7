package bindhttp

import (
	"context"
	"net/http"
)

// Handler represents the core business logic interface (transport-agnostic).
// Handlers receive a fully bound and validated request value; they never
// re-validate input themselves.
type Handler[TRequest, TResponse any] interface {
	Handle(ctx context.Context, req TRequest) (TResponse, error)
}

// RequestDecoder binds an HTTP request into a typed request value.
type RequestDecoder[T any] interface {
	Decode(r *http.Request) (T, error)
	ContentTypes() []string
}

// ResponseEncoder writes a typed response value to an HTTP response.
type ResponseEncoder[T any] interface {
	Encode(w http.ResponseWriter, data T, statusCode int) error
	ContentType() string
}

// ErrorMapper maps application errors to HTTP status codes and response bodies.
type ErrorMapper interface {
	MapError(err error) (statusCode int, response interface{})
}

// Middleware represents HTTP middleware following the standard Go pattern.
type Middleware func(http.Handler) http.Handler

// HandlerOption allows configuration of HTTP handlers during registration.
type HandlerOption func(*HandlerConfig)

// HandlerConfig contains all configuration options for a typed handler.
type HandlerConfig struct {
	Decoder     interface{} // RequestDecoder[T]
	Encoder     interface{} // ResponseEncoder[T]
	ErrorMapper ErrorMapper
	Middleware  []Middleware
	Metadata    Metadata
}

// Metadata carries documentation metadata for a registered route. It is
// consumed by the OpenAPI generator and never affects request dispatch.
type Metadata struct {
	Summary     string   `json:"summary,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
