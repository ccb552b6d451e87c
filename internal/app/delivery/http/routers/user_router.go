package routers

import (
	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(api chi.Router, deps *RouterDependencies) {
	api.Route("/users", func(r chi.Router) {
		r.Use(deps.Middlewares.Authenticate)
		r.Get("/", deps.UserController.Index)
		r.Post("/", deps.UserController.Store)
		r.Get("/{user_id}", deps.UserController.Show)
		r.Put("/{user_id}", deps.UserController.Update)
		r.Delete("/{user_id}", deps.UserController.Destroy)

		r.Get("/{user_id}/contacts", deps.UserController.Contacts)
		r.Get("/{user_id}/contacts/passed", deps.UserController.PassedContacts)
		r.Get("/{user_id}/favorites", deps.UserController.Favorites)
		r.Get("/{user_id}/properties", deps.UserController.Properties)
		r.Get("/{user_id}/searches", deps.UserController.Searches)
		r.Get("/{user_id}/properties/contacts", deps.UserController.PropertiesContacts)
		r.Get("/{user_id}/properties/contacts/passed", deps.UserController.PropertiesPassedContacts)
	})
}
