package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemregistry/pkg/httpx"
	pkgvalidator "github.com/ghuser/itemregistry/pkg/validator"
	"github.com/ghuser/itemregistry/services/item/domain/models"
)

// Messages for rejected path and query parameters.
const (
	MsgInvalidItemID     = "Invalid item id"
	MsgInvalidParameters = "Invalid request parameters"
)

// listQuery holds the parsed GET /items query string.
type listQuery struct {
	Name     *string
	MinPrice *int `json:"minPrice"`
	MaxPrice *int `json:"maxPrice"`
	Page     int  `json:"page" validate:"gte=0"`
	Size     int  `json:"size" validate:"gt=0"`
}

// pathItemID parses the {id} URL parameter, writing a 400 when it is not an integer.
func pathItemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, MsgInvalidItemID)
		return 0, false
	}
	return id, true
}

// parseListQuery reads name, minPrice, maxPrice, page and size. Absent or
// empty numeric parameters take their defaults; others must be integers in
// range, otherwise a 400 listing every bad parameter is written.
func parseListQuery(w http.ResponseWriter, r *http.Request) (listQuery, bool) {
	values := r.URL.Query()
	q := listQuery{Page: models.DefaultPage, Size: models.DefaultSize}
	var fieldErrs []httpx.FieldError

	// label matches the struct field name used by the validator messages.
	intParam := func(key, label string, dst *int) bool {
		raw := values.Get(key)
		if raw == "" {
			return false
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrs = append(fieldErrs, httpx.FieldError{Field: key, Message: label + " must be an integer"})
			return false
		}
		*dst = n
		return true
	}

	if values.Has("name") {
		q.Name = new(string)
		*q.Name = values.Get("name")
	}
	var minPrice, maxPrice int
	if intParam("minPrice", "MinPrice", &minPrice) {
		q.MinPrice = &minPrice
	}
	if intParam("maxPrice", "MaxPrice", &maxPrice) {
		q.MaxPrice = &maxPrice
	}
	intParam("page", "Page", &q.Page)
	intParam("size", "Size", &q.Size)

	if len(fieldErrs) == 0 {
		fieldErrs = pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&q))
	}
	if len(fieldErrs) > 0 {
		httpx.JSONValidationError(w, MsgInvalidParameters, fieldErrs)
		return listQuery{}, false
	}
	return q, true
}

func (q listQuery) filter() models.ItemFilter {
	return models.ItemFilter{Name: q.Name, MinPrice: q.MinPrice, MaxPrice: q.MaxPrice}
}

func (q listQuery) page() models.Page {
	return models.Page{Page: q.Page, Size: q.Size}
}
