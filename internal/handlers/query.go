package handlers

import (
	"context"

	"github.com/bindhttp/bindhttp/internal/models"
)

// sampleItems is the fixed read-only list served by the pagination route.
var sampleItems = []models.SampleItem{
	{ItemName: "Foo"},
	{ItemName: "Bar"},
	{ItemName: "Baz"},
}

// sampleResults is the fixed result list shared by the query-validation
// routes.
var sampleResults = []models.SampleID{
	{ItemID: "Foo"},
	{ItemID: "Bar"},
}

func searchResults(q string) models.SearchResultsResponse {
	return models.SearchResultsResponse{Items: sampleResults, Query: q}
}

// ListItemsHandler slices the sample list by skip and limit, clamped to the
// list bounds so out-of-range windows yield an empty result rather than an
// error.
type ListItemsHandler struct{}

func (h *ListItemsHandler) Handle(_ context.Context, req models.ListItemsRequest) ([]models.SampleItem, error) {
	start := min(req.Skip, len(sampleItems))
	end := min(start+req.Limit, len(sampleItems))
	return sampleItems[start:end], nil
}

// ReadItemDetailHandler echoes the item with an optional query, attaching the
// long description unless short rendering was requested.
type ReadItemDetailHandler struct{}

func (h *ReadItemDetailHandler) Handle(_ context.Context, req models.ReadItemDetailRequest) (models.ItemDetailResponse, error) {
	resp := models.ItemDetailResponse{ItemID: req.ItemID, Query: req.Query}
	if !req.Short {
		resp.Description = "This is an amazing item that has a long description"
	}
	return resp, nil
}

// ReadRequiredItemHandler echoes the path ID and the required needy query.
type ReadRequiredItemHandler struct{}

func (h *ReadRequiredItemHandler) Handle(_ context.Context, req models.ReadRequiredItemRequest) (models.RequiredItemResponse, error) {
	return models.RequiredItemResponse{ItemID: req.ItemID, Needy: req.Needy}, nil
}

// BoundedQueryHandler serves the length-capped optional query.
type BoundedQueryHandler struct{}

func (h *BoundedQueryHandler) Handle(_ context.Context, req models.BoundedQueryRequest) (models.SearchResultsResponse, error) {
	return searchResults(req.Query), nil
}

// PatternQueryHandler serves the pattern-constrained optional query.
type PatternQueryHandler struct{}

func (h *PatternQueryHandler) Handle(_ context.Context, req models.PatternQueryRequest) (models.SearchResultsResponse, error) {
	return searchResults(req.Query), nil
}

// RequiredQueryHandler serves the required, length-bounded query.
type RequiredQueryHandler struct{}

func (h *RequiredQueryHandler) Handle(_ context.Context, req models.RequiredQueryRequest) (models.SearchResultsResponse, error) {
	return searchResults(req.Query), nil
}

// ListQueryHandler echoes every occurrence of the repeated q key.
type ListQueryHandler struct{}

func (h *ListQueryHandler) Handle(_ context.Context, req models.ListQueryRequest) (models.ListQueryResponse, error) {
	return models.ListQueryResponse{Query: req.Query}, nil
}

// MetadataQueryHandler serves the documented query parameter; the metadata
// lives entirely in the request type.
type MetadataQueryHandler struct{}

func (h *MetadataQueryHandler) Handle(_ context.Context, req models.MetadataQueryRequest) (models.SearchResultsResponse, error) {
	return searchResults(req.Query), nil
}

// AliasQueryHandler serves the parameter bound from the item-query wire key.
type AliasQueryHandler struct{}

func (h *AliasQueryHandler) Handle(_ context.Context, req models.AliasQueryRequest) (models.SearchResultsResponse, error) {
	return searchResults(req.Query), nil
}

// DeprecatedQueryHandler keeps the deprecated parameter functional.
type DeprecatedQueryHandler struct{}

func (h *DeprecatedQueryHandler) Handle(_ context.Context, req models.DeprecatedQueryRequest) (models.SearchResultsResponse, error) {
	return searchResults(req.Query), nil
}

// HiddenQueryHandler reports whether the undocumented parameter was supplied.
type HiddenQueryHandler struct{}

func (h *HiddenQueryHandler) Handle(_ context.Context, req models.HiddenQueryRequest) (models.HiddenQueryResponse, error) {
	if req.HiddenQuery == "" {
		return models.HiddenQueryResponse{HiddenQuery: "Not found"}, nil
	}
	return models.HiddenQueryResponse{HiddenQuery: req.HiddenQuery}, nil
}

// TitledPathHandler echoes the documented path ID with its aliased query.
type TitledPathHandler struct{}

func (h *TitledPathHandler) Handle(_ context.Context, req models.TitledPathRequest) (models.QueryEchoResponse, error) {
	return models.QueryEchoResponse{ItemID: req.ItemID, Query: req.Query}, nil
}

// BoundedPathHandler echoes the lower-bounded path ID.
type BoundedPathHandler struct{}

func (h *BoundedPathHandler) Handle(_ context.Context, req models.BoundedPathRequest) (models.QueryEchoResponse, error) {
	return models.QueryEchoResponse{ItemID: req.ItemID, Query: req.Query}, nil
}

// RangedPathHandler echoes the range-bounded path ID.
type RangedPathHandler struct{}

func (h *RangedPathHandler) Handle(_ context.Context, req models.RangedPathRequest) (models.QueryEchoResponse, error) {
	return models.QueryEchoResponse{ItemID: req.ItemID, Query: req.Query}, nil
}
