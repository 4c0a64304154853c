package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemregistry/services/item/application/handlers"
	appsvcs "github.com/ghuser/itemregistry/services/item/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router.
// Mount it under /api so Location headers resolve.
func ItemRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/items", func(r chi.Router) {
		r.Get("/", handlers.NewGetItemsHandler(svcs).Execute)
		r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
		r.Put("/{id}", handlers.NewPutItemHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
	})
}
