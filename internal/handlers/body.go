package handlers

import (
	"context"

	"github.com/bindhttp/bindhttp/internal/models"
)

// CreateItemHandler echoes the created item, deriving price_with_tax when a
// tax was supplied.
type CreateItemHandler struct{}

func (h *CreateItemHandler) Handle(_ context.Context, req models.Item) (models.CreatedItemResponse, error) {
	resp := models.CreatedItemResponse{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Tax:         req.Tax,
	}
	if req.Tax != nil {
		total := req.Price + *req.Tax
		resp.PriceWithTax = &total
	}
	return resp, nil
}

// UpdateItemHandler merges the path ID with the whole-body item.
type UpdateItemHandler struct{}

func (h *UpdateItemHandler) Handle(_ context.Context, req models.UpdateItemRequest) (models.UpdatedItemResponse, error) {
	return models.UpdatedItemResponse{
		ItemID:      req.ItemID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Tax:         req.Tax,
	}, nil
}

// UpdateItemWithUserHandler echoes the two body parameters with the path ID.
type UpdateItemWithUserHandler struct{}

func (h *UpdateItemWithUserHandler) Handle(_ context.Context, req models.UpdateItemWithUserRequest) (models.ItemUserResponse, error) {
	return models.ItemUserResponse{ItemID: req.ItemID, Item: req.Item, User: req.User}, nil
}

// UpdateImportantItemHandler echoes the body parameters including the
// singular importance value.
type UpdateImportantItemHandler struct{}

func (h *UpdateImportantItemHandler) Handle(_ context.Context, req models.UpdateImportantItemRequest) (models.ImportantItemResponse, error) {
	return models.ImportantItemResponse{
		ItemID:     req.ItemID,
		Item:       req.Item,
		User:       req.User,
		Importance: req.Importance,
	}, nil
}

// UpdateEmbeddedItemHandler echoes the item bound from its named body key.
type UpdateEmbeddedItemHandler struct{}

func (h *UpdateEmbeddedItemHandler) Handle(_ context.Context, req models.UpdateEmbeddedItemRequest) (models.ItemEnvelopeResponse, error) {
	return models.ItemEnvelopeResponse{ItemID: req.ItemID, Item: req.Item}, nil
}

// UpdateConstrainedItemHandler echoes the field-constrained item.
type UpdateConstrainedItemHandler struct{}

func (h *UpdateConstrainedItemHandler) Handle(_ context.Context, req models.UpdateConstrainedItemRequest) (models.ConstrainedItemEnvelopeResponse, error) {
	return models.ConstrainedItemEnvelopeResponse{ItemID: req.ItemID, Item: req.Item}, nil
}

// UpdateNestedItemHandler echoes the nested item from the whole body.
type UpdateNestedItemHandler struct{}

func (h *UpdateNestedItemHandler) Handle(_ context.Context, req models.UpdateNestedItemRequest) (models.NestedItemEnvelopeResponse, error) {
	return models.NestedItemEnvelopeResponse{ItemID: req.ItemID, Item: req.NestedItem}, nil
}

// UpdateStrictNestedItemHandler echoes the strictly-validated nested item.
type UpdateStrictNestedItemHandler struct{}

func (h *UpdateStrictNestedItemHandler) Handle(_ context.Context, req models.UpdateStrictNestedItemRequest) (models.StrictNestedItemEnvelopeResponse, error) {
	return models.StrictNestedItemEnvelopeResponse{ItemID: req.ItemID, Item: req.StrictNestedItem}, nil
}

// CreateOfferHandler round-trips the deeply nested offer unchanged.
type CreateOfferHandler struct{}

func (h *CreateOfferHandler) Handle(_ context.Context, req models.Offer) (models.Offer, error) {
	return req, nil
}

// CreateIndexWeightsHandler round-trips the integer-keyed weight map.
type CreateIndexWeightsHandler struct{}

func (h *CreateIndexWeightsHandler) Handle(_ context.Context, req models.IndexWeights) (models.IndexWeights, error) {
	return req, nil
}
