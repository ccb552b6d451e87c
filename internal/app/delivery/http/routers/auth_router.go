package routers

import (
	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(api chi.Router, deps *RouterDependencies) {
	api.Route("/auth", func(r chi.Router) {
		r.Post("/register", deps.AuthController.Register)
		r.Post("/login", deps.AuthController.Login)

		r.Group(func(authenticated chi.Router) {
			authenticated.Use(deps.Middlewares.Authenticate)
			authenticated.Post("/logout", deps.AuthController.Logout)
			authenticated.Get("/user-profile", deps.AuthController.Profile)
		})
	})
}
