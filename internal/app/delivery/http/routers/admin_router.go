package routers

import (
	"github.com/go-chi/chi/v5"
)

// Admin aggregates stay behind authentication only; the usecases enforce the
// admin role themselves so a non-admin caller gets the admin-only denial.
func attachAdminRoutes(api chi.Router, deps *RouterDependencies) {
	api.Route("/admin", func(r chi.Router) {
		r.Use(deps.Middlewares.Authenticate)
		r.Get("/getAllProperties", deps.PropertyController.GetAll)
		r.Get("/allPropertiesCount", deps.PropertyController.CountAll)
		r.Get("/newPropertiesCount", deps.PropertyController.CountNew)
		r.Get("/allUsersCount", deps.UserController.CountAll)
		r.Get("/newUsersCount", deps.UserController.CountNew)
	})
}
