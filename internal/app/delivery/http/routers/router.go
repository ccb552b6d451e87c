package routers

import (
	"casalist-service/internal/app/config"
	"casalist-service/internal/app/delivery/http/middlewares"
	"casalist-service/internal/app/services/core/auth"
	"casalist-service/internal/app/services/core/contacts"
	"casalist-service/internal/app/services/core/favorites"
	"casalist-service/internal/app/services/core/properties"
	"casalist-service/internal/app/services/core/searches"
	"casalist-service/internal/app/services/core/users"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type RouterDependencies struct {
	Middlewares        *middlewares.Middlewares
	InternalConfig     *config.InternalConfig
	AuthController     *auth.AuthController
	PropertyController *properties.PropertyController
	SearchController   *searches.SearchController
	UserController     *users.UserController
	ContactController  *contacts.ContactController
	FavoriteController *favorites.FavoriteController
}

func SetupRoutes(router *chi.Mux, deps *RouterDependencies) {
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(httprate.LimitByIP(deps.InternalConfig.App.MaxRequests, 1*time.Minute))
	router.Use(deps.Middlewares.RequestID)
	router.Use(deps.Middlewares.Logging)

	router.Route("/"+deps.InternalConfig.App.EndpointPrefix, func(api chi.Router) {
		attachAuthRoutes(api, deps)
		attachPropertyRoutes(api, deps)
		attachSearchRoutes(api, deps)
		attachUserRoutes(api, deps)
		attachContactRoutes(api, deps)
		attachFavoriteRoutes(api, deps)
		attachAdminRoutes(api, deps)
	})
}
