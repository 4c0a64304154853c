package handlers

import (
	"net/http"

	"github.com/ghuser/itemregistry/pkg/errhttp"
	"github.com/ghuser/itemregistry/pkg/httpx"
	pkgvalidator "github.com/ghuser/itemregistry/pkg/validator"
	appsvcs "github.com/ghuser/itemregistry/services/item/application/services"
)

// PutItemHandler handles PUT /items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute replaces the name and price of an existing item.
//
//	@Summary		Update item
//	@Description	Replaces name and price; id, createdAt and list position are kept
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Item id"
//	@Param			request	body		UpdateItemRequest	true	"Replacement fields"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathItemID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Update(r.Context(), id, *req.Name, *req.Price)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
