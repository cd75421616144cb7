package models

// Request and response types for the body routes. Which body mode a route
// uses is expressed by the shape of its request struct: an embedded schema
// means the whole body is that schema, named json fields mean the body is an
// object keyed by parameter name.

// CreatedItemResponse echoes the item fields, with price_with_tax computed
// only when tax was supplied.
type CreatedItemResponse struct {
	Name         string   `json:"name"`
	Description  *string  `json:"description,omitempty"`
	Price        float64  `json:"price"`
	Tax          *float64 `json:"tax,omitempty"`
	PriceWithTax *float64 `json:"price_with_tax,omitempty"`
}

// UpdateItemRequest takes the item ID from the path and the whole body as an
// Item.
type UpdateItemRequest struct {
	ItemID int `path:"item_id"`
	Item
}

// UpdatedItemResponse is the flat merge of path ID and item fields.
type UpdatedItemResponse struct {
	ItemID      int      `json:"item_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Tax         *float64 `json:"tax,omitempty"`
}

// UpdateItemWithUserRequest declares two schema parameters, so the body is an
// object keyed by parameter name.
type UpdateItemWithUserRequest struct {
	ItemID int  `path:"item_id"`
	Item   Item `json:"item" validate:"required"`
	User   User `json:"user" validate:"required"`
}

// ItemUserResponse echoes all three parameters.
type ItemUserResponse struct {
	ItemID int  `json:"item_id"`
	Item   Item `json:"item"`
	User   User `json:"user"`
}

// UpdateImportantItemRequest adds a singular value that would otherwise be a
// query parameter; declaring it as a body key pulls it from the JSON object.
type UpdateImportantItemRequest struct {
	ItemID     int  `path:"item_id"`
	Item       Item `json:"item" validate:"required"`
	User       User `json:"user" validate:"required"`
	Importance int  `json:"importance" validate:"required"`
}

// ImportantItemResponse echoes all four parameters.
type ImportantItemResponse struct {
	ItemID     int  `json:"item_id"`
	Item       Item `json:"item"`
	User       User `json:"user"`
	Importance int  `json:"importance"`
}

// UpdateEmbeddedItemRequest embeds a single schema parameter: the body is
// still an object keyed by the parameter name rather than the schema itself.
type UpdateEmbeddedItemRequest struct {
	ItemID int  `path:"item_id"`
	Item   Item `json:"item" validate:"required"`
}

// ItemEnvelopeResponse wraps the item under its parameter name.
type ItemEnvelopeResponse struct {
	ItemID int  `json:"item_id"`
	Item   Item `json:"item"`
}

// UpdateConstrainedItemRequest is the embedded mode with the constrained
// schema variant.
type UpdateConstrainedItemRequest struct {
	ItemID int             `path:"item_id"`
	Item   ConstrainedItem `json:"item" validate:"required"`
}

// ConstrainedItemEnvelopeResponse wraps the constrained item.
type ConstrainedItemEnvelopeResponse struct {
	ItemID int             `json:"item_id"`
	Item   ConstrainedItem `json:"item"`
}

// UpdateNestedItemRequest takes the whole body as a NestedItem.
type UpdateNestedItemRequest struct {
	ItemID int `path:"item_id"`
	NestedItem
}

// NestedItemEnvelopeResponse wraps the nested item.
type NestedItemEnvelopeResponse struct {
	ItemID int        `json:"item_id"`
	Item   NestedItem `json:"item"`
}

// UpdateStrictNestedItemRequest takes the whole body as a StrictNestedItem.
type UpdateStrictNestedItemRequest struct {
	ItemID int `path:"item_id"`
	StrictNestedItem
}

// StrictNestedItemEnvelopeResponse wraps the strict nested item.
type StrictNestedItemEnvelopeResponse struct {
	ItemID int              `json:"item_id"`
	Item   StrictNestedItem `json:"item"`
}
