package models

// Request and response types for the path-parameter routes.

// RootRequest greets with a required query input.
type RootRequest struct {
	Input string `query:"inp" validate:"required"`
}

// MessageResponse is a single-message payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ReadItemRequest reads one item by its integer ID.
type ReadItemRequest struct {
	ItemID int `path:"item_id"`
}

// ItemIDResponse echoes the item ID back.
type ItemIDResponse struct {
	ItemID int `json:"item_id"`
}

// EmptyRequest is used by routes that take no input.
type EmptyRequest struct{}

// ReadUserRequest reads a user by string ID.
type ReadUserRequest struct {
	UserID string `path:"user_id"`
}

// UserIDResponse echoes the user ID back.
type UserIDResponse struct {
	UserID string `json:"user_id"`
}

// Known model names for the enumerated path route.
const (
	ModelAlexNet = "alexnet"
	ModelResNet  = "resnet"
	ModelLeNet   = "lenet"
)

// ReadModelRequest constrains the path segment to the named members;
// anything else fails dispatch.
type ReadModelRequest struct {
	ModelName string `path:"model_name" validate:"oneof=alexnet resnet lenet"`
}

// ModelResponse pairs the model name with its message.
type ModelResponse struct {
	ModelName string `json:"model_name"`
	Message   string `json:"message"`
}

// ReadFileRequest captures the remainder of the path, separators included.
type ReadFileRequest struct {
	FilePath string `path:"file_path"`
}

// FilePathResponse echoes the captured path back.
type FilePathResponse struct {
	FilePath string `json:"file_path"`
}
