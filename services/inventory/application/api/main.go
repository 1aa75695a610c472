package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockery/pkg/app"
	"github.com/ghuser/stockery/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/stockery/services/inventory/application/services"
)

// InventoryRoutes registers the inventory endpoints on the provided chi router.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	categories := handlers.NewCategoryHandler(svcs)
	items := handlers.NewItemHandler(svcs)
	clients := handlers.NewClientHandler(svcs)
	orders := handlers.NewOrderHandler(svcs)
	addItem := handlers.NewAddItemToOrderHandler(svcs)

	r.Group(func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Post("/", categories.Create)
			r.Get("/", categories.List)
			r.Get("/{id}", categories.Get)
			r.Get("/{id}/children", categories.ListChildren)
			r.Put("/{id}", categories.Update)
			r.Delete("/{id}", categories.Delete)
		})
		r.Route("/items", func(r chi.Router) {
			r.Post("/", items.Create)
			r.Get("/", items.List)
			r.Get("/{id}", items.Get)
			r.Put("/{id}", items.Update)
			r.Delete("/{id}", items.Delete)
		})
		r.Route("/clients", func(r chi.Router) {
			r.Post("/", clients.Create)
			r.Get("/", clients.List)
			r.Get("/{id}", clients.Get)
			r.Put("/{id}", clients.Update)
			r.Delete("/{id}", clients.Delete)
		})
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orders.Create)
			r.Get("/", orders.List)
			r.Get("/{id}", orders.Get)
			r.Put("/{id}", orders.Update)
			r.Delete("/{id}", orders.Delete)
			r.Post("/{id}/items", addItem.Execute)
		})
	})
}
