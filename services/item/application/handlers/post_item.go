package handlers

import (
	"net/http"

	"github.com/ghuser/itemregistry/pkg/errhttp"
	"github.com/ghuser/itemregistry/pkg/httpx"
	pkgvalidator "github.com/ghuser/itemregistry/pkg/validator"
	appsvcs "github.com/ghuser/itemregistry/services/item/application/services"
)

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Validates the input, assigns the next id and appends the item to the registry
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Header			201		{string}	Location	"/api/items/{id}"
//	@Failure		400		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), *req.Name, *req.Price)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.Created(w, itemLocation(item.ID), toItemResponse(item))
}
