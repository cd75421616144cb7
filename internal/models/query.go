package models

// Request and response types for the query-parameter routes.

// ListItemsRequest paginates the fixed sample list.
type ListItemsRequest struct {
	Skip  int `query:"skip" default:"0" validate:"gte=0"`
	Limit int `query:"limit" default:"10" validate:"gte=0"`
}

// SampleItem is one entry of the read-only sample list.
type SampleItem struct {
	ItemName string `json:"item_name"`
}

// ReadItemDetailRequest reads an item with an optional free-text query and a
// short/long rendering switch.
type ReadItemDetailRequest struct {
	ItemID string `path:"item_id"`
	Query  string `query:"q"`
	Short  bool   `query:"short" default:"false"`
}

// ItemDetailResponse echoes the item with its optional description.
type ItemDetailResponse struct {
	ItemID      string `json:"item_id"`
	Query       string `json:"q,omitempty"`
	Description string `json:"description,omitempty"`
}

// ReadRequiredItemRequest declares needy as a required query parameter: no
// default, missing means rejection.
type ReadRequiredItemRequest struct {
	ItemID string `path:"item_id"`
	Needy  string `query:"needy" validate:"required"`
}

// RequiredItemResponse echoes both inputs.
type RequiredItemResponse struct {
	ItemID string `json:"item_id"`
	Needy  string `json:"needy"`
}

// SampleID is one entry of the fixed search results.
type SampleID struct {
	ItemID string `json:"item_id"`
}

// SearchResultsResponse is the shared shape of every query-validation route:
// fixed results plus the query when one was supplied.
type SearchResultsResponse struct {
	Items []SampleID `json:"items"`
	Query string     `json:"q,omitempty"`
}

// BoundedQueryRequest caps the optional query length.
type BoundedQueryRequest struct {
	Query string `query:"q" validate:"omitempty,max=50"`
}

// PatternQueryRequest adds length bounds and a regular expression the value
// must match exactly.
type PatternQueryRequest struct {
	Query string `query:"q" pattern:"^fixedquery$" validate:"omitempty,min=3,max=50"`
}

// RequiredQueryRequest makes q required with a minimum length.
type RequiredQueryRequest struct {
	Query string `query:"q" validate:"required,min=3"`
}

// ListQueryRequest collects every occurrence of the repeated q key.
type ListQueryRequest struct {
	Query []string `query:"q"`
}

// ListQueryResponse echoes the collected values.
type ListQueryResponse struct {
	Query []string `json:"q"`
}

// MetadataQueryRequest carries title and description metadata; the metadata
// only surfaces in generated documentation.
type MetadataQueryRequest struct {
	Query string `query:"q" title:"Query string" doc:"Query string for the items to search in the database that have a good match" validate:"omitempty,min=3"`
}

// AliasQueryRequest binds from the wire key item-query, which is not a valid
// Go identifier.
type AliasQueryRequest struct {
	Query string `query:"item-query"`
}

// DeprecatedQueryRequest keeps the aliased parameter alive for existing
// clients while the documentation flags it as deprecated.
type DeprecatedQueryRequest struct {
	Query string `query:"item-query" title:"Query string" doc:"Query string for the items to search in the database that have a good match" pattern:"^fixedquery$" deprecated:"true" validate:"omitempty,min=3,max=50"`
}

// HiddenQueryRequest binds normally but is excluded from generated
// documentation.
type HiddenQueryRequest struct {
	HiddenQuery string `query:"hidden_query" hidden:"true"`
}

// HiddenQueryResponse reports whether the hidden parameter was supplied.
type HiddenQueryResponse struct {
	HiddenQuery string `json:"hidden_query"`
}

// TitledPathRequest documents the path parameter and aliases the query.
type TitledPathRequest struct {
	ItemID int    `path:"item_id" title:"The ID of the item to get"`
	Query  string `query:"item-query"`
}

// BoundedPathRequest requires item_id >= 1 alongside a required query.
type BoundedPathRequest struct {
	ItemID int    `path:"item_id" title:"The ID of the item to get" validate:"gte=1"`
	Query  string `query:"q" validate:"required"`
}

// RangedPathRequest requires 0 < item_id <= 1000 alongside a required query.
type RangedPathRequest struct {
	ItemID int    `path:"item_id" title:"The ID of the item to get" validate:"gt=0,lte=1000"`
	Query  string `query:"q" validate:"required"`
}

// QueryEchoResponse echoes the path ID with the optional query.
type QueryEchoResponse struct {
	ItemID int    `json:"item_id"`
	Query  string `json:"q,omitempty"`
}
