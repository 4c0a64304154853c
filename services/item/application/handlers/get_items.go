package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/itemregistry/pkg/errhttp"
	"github.com/ghuser/itemregistry/pkg/httpx"
	appsvcs "github.com/ghuser/itemregistry/services/item/application/services"
)

// GetItemsHandler handles GET /items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute lists items in insertion order.
//
//	@Summary		List items
//	@Description	Returns one page of items matching every given filter, in insertion order
//	@Tags			items
//	@Produce		json
//	@Param			name		query		string	false	"Substring the item name must contain"
//	@Param			minPrice	query		int		false	"Inclusive lower price bound"
//	@Param			maxPrice	query		int		false	"Inclusive upper price bound"
//	@Param			page		query		int		false	"Zero-based page number"	default(0)	minimum(0)
//	@Param			size		query		int		false	"Page size"					default(10)	minimum(1)
//	@Success		200			{array}		ItemResponse
//	@Header			200			{integer}	X-Total-Count	"Number of matches before paging"
//	@Failure		400			{object}	ErrorResponse
//	@Router			/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q, ok := parseListQuery(w, r)
	if !ok {
		return
	}

	items, total, err := h.svc.Item.List(r.Context(), q.filter(), q.page())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	w.Header().Set(httpx.TotalCountHeader, strconv.Itoa(total))
	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}
