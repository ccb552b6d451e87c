package routers

import (
	"github.com/go-chi/chi/v5"
)

func attachPropertyRoutes(api chi.Router, deps *RouterDependencies) {
	api.Route("/properties", func(r chi.Router) {
		r.Get("/", deps.PropertyController.Index)
		r.Get("/{property_id}", deps.PropertyController.Show)

		r.Group(func(authenticated chi.Router) {
			authenticated.Use(deps.Middlewares.Authenticate)
			authenticated.Post("/", deps.PropertyController.Store)
			authenticated.Put("/{property_id}", deps.PropertyController.Update)
			authenticated.Delete("/{property_id}", deps.PropertyController.Destroy)
		})
	})
}
