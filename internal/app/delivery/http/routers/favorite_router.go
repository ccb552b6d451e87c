package routers

import (
	"github.com/go-chi/chi/v5"
)

func attachFavoriteRoutes(api chi.Router, deps *RouterDependencies) {
	api.Route("/favorites", func(r chi.Router) {
		r.Use(deps.Middlewares.Authenticate)
		r.Get("/", deps.FavoriteController.Index)
		r.Post("/", deps.FavoriteController.Store)
		r.Get("/{favorite_id}", deps.FavoriteController.Show)
		r.Put("/{favorite_id}", deps.FavoriteController.Update)
		r.Delete("/{favorite_id}", deps.FavoriteController.Destroy)
	})
}
