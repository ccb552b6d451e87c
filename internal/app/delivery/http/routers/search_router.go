package routers

import (
	"github.com/go-chi/chi/v5"
)

func attachSearchRoutes(api chi.Router, deps *RouterDependencies) {
	api.Get("/search", deps.SearchController.Search)

	api.Route("/searches", func(r chi.Router) {
		r.Use(deps.Middlewares.Authenticate)
		r.Get("/", deps.SearchController.Index)
		r.Post("/", deps.SearchController.Store)
		r.Get("/{search_id}", deps.SearchController.Show)
		r.Put("/{search_id}", deps.SearchController.Update)
		r.Delete("/{search_id}", deps.SearchController.Destroy)
	})
}
