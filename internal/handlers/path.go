// Package handlers implements the route handlers of the catalog demo API.
// Every handler is a pass-through over already-validated input: it echoes the
// bound values and performs no I/O, no persistence, and no re-validation.
package handlers

import (
	"context"
	"fmt"

	"github.com/bindhttp/bindhttp/internal/models"
)

// RootHandler greets with the required query input.
type RootHandler struct{}

func (h *RootHandler) Handle(_ context.Context, req models.RootRequest) (models.MessageResponse, error) {
	return models.MessageResponse{Message: fmt.Sprintf("Hello World %s", req.Input)}, nil
}

// ReadItemHandler echoes an integer path parameter.
type ReadItemHandler struct{}

func (h *ReadItemHandler) Handle(_ context.Context, req models.ReadItemRequest) (models.ItemIDResponse, error) {
	return models.ItemIDResponse{ItemID: req.ItemID}, nil
}

// ReadCurrentUserHandler serves the fixed /users/me segment. It must resolve
// ahead of the variable user route.
type ReadCurrentUserHandler struct{}

func (h *ReadCurrentUserHandler) Handle(_ context.Context, _ models.EmptyRequest) (models.UserIDResponse, error) {
	return models.UserIDResponse{UserID: "the current user"}, nil
}

// ReadUserHandler echoes a string path parameter.
type ReadUserHandler struct{}

func (h *ReadUserHandler) Handle(_ context.Context, req models.ReadUserRequest) (models.UserIDResponse, error) {
	return models.UserIDResponse{UserID: req.UserID}, nil
}

// ReadModelHandler maps each enumerated path member to its message.
type ReadModelHandler struct{}

func (h *ReadModelHandler) Handle(_ context.Context, req models.ReadModelRequest) (models.ModelResponse, error) {
	switch req.ModelName {
	case models.ModelAlexNet:
		return models.ModelResponse{ModelName: req.ModelName, Message: "Deep Learning FTW!"}, nil
	case models.ModelLeNet:
		return models.ModelResponse{ModelName: req.ModelName, Message: "LeCNN all the images"}, nil
	default:
		return models.ModelResponse{ModelName: req.ModelName, Message: "Have some residuals"}, nil
	}
}

// ReadFileHandler echoes a catch-all path parameter, separators included.
type ReadFileHandler struct{}

func (h *ReadFileHandler) Handle(_ context.Context, req models.ReadFileRequest) (models.FilePathResponse, error) {
	return models.FilePathResponse{FilePath: req.FilePath}, nil
}
