// Package testutil provides a small in-process client for exercising
// bindhttp routers in tests without a listening socket.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Client drives an http.Handler directly. Every call records the full
// response so tests can assert on status, headers, and body together.
type Client struct {
	handler http.Handler
}

// NewClient creates a test client around a handler, typically a
// *bindhttp.TypedRouter.
func NewClient(handler http.Handler) *Client {
	return &Client{handler: handler}
}

// Get performs a GET request against the handler.
func (c *Client) Get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()

	return c.do(t, http.MethodGet, target, "")
}

// PostJSON performs a POST request carrying a JSON body.
func (c *Client) PostJSON(t *testing.T, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	return c.do(t, http.MethodPost, target, body)
}

// PutJSON performs a PUT request carrying a JSON body.
func (c *Client) PutJSON(t *testing.T, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	return c.do(t, http.MethodPut, target, body)
}

func (c *Client) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)

	return rec
}

// RequireStatus fails the test unless the recorded status matches, printing
// the response body for context.
func RequireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "unexpected status, body: %s", rec.Body.String())
}

// DecodeJSON unmarshals the recorded body into T, failing the test on
// malformed output.
func DecodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &value), "body: %s", rec.Body.String())

	return value
}
