package handlers

import (
	"net/http"

	"github.com/ghuser/itemregistry/pkg/errhttp"
	"github.com/ghuser/itemregistry/pkg/httpx"
	appsvcs "github.com/ghuser/itemregistry/services/item/application/services"
)

// DeleteItemHandler handles DELETE /items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute removes an item. Deleting an absent id also answers 204.
//
//	@Summary	Delete item
//	@Tags		items
//	@Param		id	path	int	true	"Item id"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Router		/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathItemID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Item.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.NoContent(w)
}
