package bindhttp

import (
	"fmt"
	"net/http"
	"reflect"
)

// HandlerRegistration stores metadata about a registered handler for
// documentation generation.
type HandlerRegistration struct {
	Method       string
	Path         string
	RequestType  reflect.Type
	ResponseType reflect.Type
	Metadata     Metadata
}

// TypedRouter dispatches requests to typed handlers. It builds on
// http.ServeMux patterns, so a literal segment always wins over a wildcard at
// the same position ("/users/me" resolves ahead of "/users/{user_id}" no
// matter the registration order), "{name...}" captures the rest of the path,
// and "{$}" pins a trailing-slash route to an exact match.
type TypedRouter struct {
	handlers []HandlerRegistration
	patterns map[string]bool
	mux      *http.ServeMux
}

// NewRouter creates a new typed router.
func NewRouter() *TypedRouter {
	return &TypedRouter{
		handlers: make([]HandlerRegistration, 0),
		patterns: make(map[string]bool),
		mux:      http.NewServeMux(),
	}
}

// ServeHTTP implements http.Handler.
func (r *TypedRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// GetHandlers returns all registered handlers.
func (r *TypedRouter) GetHandlers() []HandlerRegistration {
	return r.handlers
}

// registerHandler is an internal method to register handlers. Registering the
// same method and path twice is a configuration error, never a silent
// replacement.
func (r *TypedRouter) registerHandler(
	method, path string,
	httpHandler http.Handler,
	requestType, responseType reflect.Type,
	metadata Metadata,
) {
	pattern := method + " " + path
	if r.patterns[pattern] {
		panic(fmt.Sprintf("bindhttp: duplicate route registration for %q", pattern))
	}
	r.patterns[pattern] = true

	r.handlers = append(r.handlers, HandlerRegistration{
		Method:       method,
		Path:         path,
		RequestType:  requestType,
		ResponseType: responseType,
		Metadata:     metadata,
	})

	r.mux.Handle(pattern, httpHandler)
}

// HTTPHandler wraps a typed handler with request binding, validation,
// dispatch, and response encoding.
type HTTPHandler[TRequest, TResponse any] struct {
	handler     Handler[TRequest, TResponse]
	decoder     RequestDecoder[TRequest]
	encoder     ResponseEncoder[TResponse]
	errorMapper ErrorMapper
	middleware  []Middleware
	metadata    Metadata
}

// NewHTTPHandler creates a new HTTP handler wrapper around a typed handler.
func NewHTTPHandler[TRequest, TResponse any](
	handler Handler[TRequest, TResponse],
	opts ...HandlerOption,
) *HTTPHandler[TRequest, TResponse] {
	config := &HandlerConfig{}
	for _, opt := range opts {
		opt(config)
	}

	httpHandler := &HTTPHandler[TRequest, TResponse]{
		handler:     handler,
		decoder:     NewDecoder[TRequest](DefaultValidator()),
		encoder:     NewJSONEncoder[TResponse](),
		errorMapper: &DefaultErrorMapper{},
		middleware:  config.Middleware,
		metadata:    config.Metadata,
	}

	if config.Decoder != nil {
		if decoder, ok := config.Decoder.(RequestDecoder[TRequest]); ok {
			httpHandler.decoder = decoder
		}
	}
	if config.Encoder != nil {
		if encoder, ok := config.Encoder.(ResponseEncoder[TResponse]); ok {
			httpHandler.encoder = encoder
		}
	}
	if config.ErrorMapper != nil {
		httpHandler.errorMapper = config.ErrorMapper
	}

	return httpHandler
}

// ServeHTTP implements http.Handler for the typed handler. Binding or
// validation failures abort before the business handler runs.
func (h *HTTPHandler[TRequest, TResponse]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := h.decoder.Decode(r)
		if err != nil {
			h.handleError(w, err)

			return
		}

		resp, err := h.handler.Handle(r.Context(), req)
		if err != nil {
			h.handleError(w, err)

			return
		}

		statusCode := http.StatusOK
		if r.Method == http.MethodPost {
			statusCode = http.StatusCreated
		}

		if err := h.encoder.Encode(w, resp, statusCode); err != nil {
			h.handleError(w, err)
		}
	})

	var finalHandler http.Handler = handler
	for i := len(h.middleware) - 1; i >= 0; i-- {
		finalHandler = h.middleware[i](finalHandler)
	}

	finalHandler.ServeHTTP(w, r)
}

// handleError handles errors using the configured error mapper.
func (h *HTTPHandler[TRequest, TResponse]) handleError(w http.ResponseWriter, err error) {
	statusCode, response := h.errorMapper.MapError(err)

	encoder := NewJSONEncoder[interface{}]()
	if encodeErr := encoder.Encode(w, response, statusCode); encodeErr != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// RegisterHandler registers a typed handler with the specified method and path.
func RegisterHandler[TReq, TResp any](
	router *TypedRouter,
	method, path string,
	handler Handler[TReq, TResp],
	opts ...HandlerOption,
) {
	httpHandler := NewHTTPHandler(handler, opts...)

	router.registerHandler(
		method,
		path,
		httpHandler,
		reflect.TypeOf((*TReq)(nil)).Elem(),
		reflect.TypeOf((*TResp)(nil)).Elem(),
		httpHandler.metadata,
	)
}

// Convenience functions for common HTTP verbs.

func GET[TReq, TResp any](router *TypedRouter, path string, handler Handler[TReq, TResp], opts ...HandlerOption) {
	RegisterHandler(router, http.MethodGet, path, handler, opts...)
}

func POST[TReq, TResp any](router *TypedRouter, path string, handler Handler[TReq, TResp], opts ...HandlerOption) {
	RegisterHandler(router, http.MethodPost, path, handler, opts...)
}

func PUT[TReq, TResp any](router *TypedRouter, path string, handler Handler[TReq, TResp], opts ...HandlerOption) {
	RegisterHandler(router, http.MethodPut, path, handler, opts...)
}

func PATCH[TReq, TResp any](router *TypedRouter, path string, handler Handler[TReq, TResp], opts ...HandlerOption) {
	RegisterHandler(router, http.MethodPatch, path, handler, opts...)
}

func DELETE[TReq, TResp any](router *TypedRouter, path string, handler Handler[TReq, TResp], opts ...HandlerOption) {
	RegisterHandler(router, http.MethodDelete, path, handler, opts...)
}
