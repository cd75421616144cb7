package testutil_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bindhttp/bindhttp/pkg/bindhttp"
	"github.com/bindhttp/bindhttp/pkg/testutil"
)

type echoRequest struct {
	Name string `json:"name" validate:"required"`
}

type echoResponse struct {
	Name string `json:"name"`
}

type echoHandler struct{}

func (h *echoHandler) Handle(_ context.Context, req echoRequest) (echoResponse, error) {
	return echoResponse{Name: req.Name}, nil
}

func TestClient_RoundTrip(t *testing.T) {
	router := bindhttp.NewRouter()
	bindhttp.POST(router, "/echo", &echoHandler{})
	client := testutil.NewClient(router)

	rec := client.PostJSON(t, "/echo", `{"name":"Foo"}`)
	testutil.RequireStatus(t, rec, http.StatusCreated)

	resp := testutil.DecodeJSON[echoResponse](t, rec)
	assert.Equal(t, "Foo", resp.Name)
}

func TestClient_GetSetsNoBody(t *testing.T) {
	router := bindhttp.NewRouter()
	bindhttp.POST(router, "/echo", &echoHandler{})
	client := testutil.NewClient(router)

	rec := client.Get(t, "/echo")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
