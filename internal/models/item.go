// Package models declares the validation schemas and per-route request and
// response types for the catalog demo API. Every instance that reaches a
// handler has already passed binding and constraint validation; the types
// carry no behavior and live for a single request.
package models

// Item is the basic catalog schema: name and price required, description and
// tax optional.
type Item struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description,omitempty"`
	Price       float64  `json:"price" validate:"required"`
	Tax         *float64 `json:"tax,omitempty"`
}

// User is the secondary body schema used by the multiple-body routes.
type User struct {
	Username string  `json:"username" validate:"required"`
	FullName *string `json:"full_name,omitempty"`
}

// ConstrainedItem is Item with field-level constraints: the description is
// length-bounded and the price must be strictly positive.
type ConstrainedItem struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description,omitempty" title:"The description of the item" validate:"omitempty,max=300"`
	Price       float64  `json:"price" validate:"required,gt=0" doc:"The price must be greater than zero"`
	Tax         *float64 `json:"tax,omitempty"`
}

// Image is a sub-schema embedded in nested items.
type Image struct {
	URL  string `json:"url" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// StrictImage requires the URL to be a well-formed absolute http(s) URL.
type StrictImage struct {
	URL  string `json:"url" validate:"required,http_url"`
	Name string `json:"name" validate:"required"`
}

// NestedItem extends Item with a set of unique tags and an optional image.
type NestedItem struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description,omitempty"`
	Price       float64  `json:"price" validate:"required"`
	Tax         *float64 `json:"tax,omitempty"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,unique"`
	Image       *Image   `json:"image,omitempty"`
}

// StrictNestedItem is NestedItem with the strict image variant.
type StrictNestedItem struct {
	Name        string       `json:"name" validate:"required"`
	Description *string      `json:"description,omitempty"`
	Price       float64      `json:"price" validate:"required"`
	Tax         *float64     `json:"tax,omitempty"`
	Tags        []string     `json:"tags,omitempty" validate:"omitempty,unique"`
	Image       *StrictImage `json:"image,omitempty"`
}

// DeepItem carries a list of strict images, exercising deep nesting.
type DeepItem struct {
	Name        string        `json:"name" validate:"required"`
	Description *string       `json:"description,omitempty"`
	Price       float64       `json:"price" validate:"required"`
	Tax         *float64      `json:"tax,omitempty"`
	Tags        []string      `json:"tags,omitempty" validate:"omitempty,unique"`
	Images      []StrictImage `json:"images,omitempty" validate:"omitempty,dive"`
}

// Offer is the deeply nested top-level schema: an offer over a list of items,
// each item with its own image list.
type Offer struct {
	Name        string     `json:"name" validate:"required"`
	Description *string    `json:"description,omitempty"`
	Price       float64    `json:"price" validate:"required"`
	Items       []DeepItem `json:"items" validate:"required,dive"`
}

// IndexWeights is an arbitrary integer-to-float mapping. JSON object keys are
// strings on the wire; keys that are not pure integers fail binding.
type IndexWeights map[int]float64
