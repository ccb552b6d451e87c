package routers

import (
	"github.com/go-chi/chi/v5"
)

func attachContactRoutes(api chi.Router, deps *RouterDependencies) {
	api.Route("/contacts", func(r chi.Router) {
		r.Use(deps.Middlewares.Authenticate)
		r.Get("/", deps.ContactController.Index)
		r.Post("/", deps.ContactController.Store)
		r.Get("/{contact_id}", deps.ContactController.Show)
		r.Put("/{contact_id}", deps.ContactController.Update)
		r.Delete("/{contact_id}", deps.ContactController.Destroy)
	})
}
