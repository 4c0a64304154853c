package handlers

import (
	"fmt"

	"github.com/ghuser/itemregistry/pkg/httpx"
	"github.com/ghuser/itemregistry/services/item/domain/models"
)

// CreateItemRequest is the request body for POST /items.
// Fields are pointers so an absent field is distinguishable from an empty one.
type CreateItemRequest struct {
	Name  *string `json:"name"  validate:"required,notblank,max=10" example:"item3" minLength:"1" maxLength:"10"`
	Price *int    `json:"price" validate:"required,gt=0"            example:"300"   minimum:"1"`
} // @name CreateItemRequest

// UpdateItemRequest is the request body for PUT /items/{id}.
// Both fields are required; their values are applied as given.
type UpdateItemRequest struct {
	Name  *string `json:"name"  validate:"required" example:"updated"`
	Price *int    `json:"price" validate:"required" example:"150"`
} // @name UpdateItemRequest

// ItemResponse is the JSON representation of an item.
type ItemResponse struct {
	ID        int64               `json:"id"        example:"1"`
	Name      string              `json:"name"      example:"item1"`
	Price     int                 `json:"price"     example:"100"`
	CreatedAt httpx.LocalDateTime `json:"createdAt" swaggertype:"string" example:"2024-05-01T09:30:00.123"`
	UpdatedAt httpx.LocalDateTime `json:"updatedAt" swaggertype:"string" example:"2024-05-01T09:30:00.123"`
} // @name ItemResponse

// ErrorResponse documents the error body written by httpx.
type ErrorResponse struct {
	Message   string               `json:"message"   example:"Validation failed"`
	Errors    []FieldErrorResponse `json:"errors,omitempty"`
	Timestamp string               `json:"timestamp" example:"2024-05-01T09:30:00.123"`
} // @name ErrorResponse

// FieldErrorResponse documents one entry of ErrorResponse.Errors.
type FieldErrorResponse struct {
	Field   string `json:"field"   example:"name"`
	Message string `json:"message" example:"Name must not be blank"`
} // @name FieldErrorResponse

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		Name:      item.Name.String(),
		Price:     item.Price,
		CreatedAt: httpx.LocalDateTime(item.CreatedAt),
		UpdatedAt: httpx.LocalDateTime(item.UpdatedAt),
	}
}

func toItemResponses(items []*models.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return out
}

// itemLocation is the canonical URL of an item.
func itemLocation(id int64) string {
	return fmt.Sprintf("/api/items/%d", id)
}
