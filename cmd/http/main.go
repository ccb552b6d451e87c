package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"casalist-service/internal/app/config"
	"casalist-service/internal/app/delivery/http/middlewares"
	"casalist-service/internal/app/delivery/http/routers"
	"casalist-service/internal/app/drivers/database"
	"casalist-service/internal/app/drivers/logger"
	"casalist-service/internal/app/drivers/messaging"
	"casalist-service/internal/app/drivers/search"
	"casalist-service/internal/app/drivers/storage"
	"casalist-service/internal/app/services/core/auth"
	"casalist-service/internal/app/services/core/contacts"
	"casalist-service/internal/app/services/core/favorites"
	"casalist-service/internal/app/services/core/properties"
	"casalist-service/internal/app/services/core/searches"
	"casalist-service/internal/app/services/core/session"
	"casalist-service/internal/app/services/core/users"
	"casalist-service/internal/app/services/shared/indexer"
	redisrepo "casalist-service/internal/app/services/shared/redis"
	"casalist-service/internal/app/services/shared/searchengine"
	miniostorage "casalist-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		PostgresDB:     database.NewPostgresDB(driverConfig),
		Redis:          database.NewRedisClient(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Minio:          storage.NewMinio(driverConfig),
		Meilisearch:    search.NewMeilisearch(driverConfig),
		Logger:         logger.NewZapLogger(driverConfig, internalConfig),
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	// shared services
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	minioStorage := miniostorage.NewMinioStorage(bootstrap.Minio, internalConfig.Minio.BucketName)
	searchEngine := searchengine.NewMeilisearchEngine(bootstrap.Meilisearch)
	reindexPublisher := indexer.NewReindexPublisher(bootstrap.RabbitMQ)

	// repositories
	userRepository := users.NewUserPostgresRepository(bootstrap.PostgresDB)
	propertyRepository := properties.NewPropertyPostgresRepository(bootstrap.PostgresDB)
	searchRepository := searches.NewSearchPostgresRepository(bootstrap.PostgresDB)
	contactRepository := contacts.NewContactPostgresRepository(bootstrap.PostgresDB)
	favoriteRepository := favorites.NewFavoritePostgresRepository(bootstrap.PostgresDB)

	// usecases
	authUsecase := auth.NewAuthUsecase(userRepository, redisRepository, internalConfig)
	propertyUsecase := properties.NewPropertyUsecase(propertyRepository, minioStorage, reindexPublisher, internalConfig, bootstrap.Logger)
	searchUsecase := searches.NewSearchUsecase(searchRepository, propertyRepository, searchEngine)
	userUsecase := users.NewUserUsecase(userRepository, propertyRepository, searchRepository, contactRepository, favoriteRepository, bootstrap.Logger)
	contactUsecase := contacts.NewContactUsecase(contactRepository, propertyRepository)
	favoriteUsecase := favorites.NewFavoriteUsecase(favoriteRepository, propertyRepository)

	// delivery
	middleware := middlewares.NewMiddlewares(sessionService, internalConfig, bootstrap.Logger)
	routers.SetupRoutes(bootstrap.Router, &routers.RouterDependencies{
		Middlewares:        middleware,
		InternalConfig:     internalConfig,
		AuthController:     auth.NewAuthController(authUsecase, bootstrap.Logger),
		PropertyController: properties.NewPropertyController(propertyUsecase, bootstrap.Logger),
		SearchController:   searches.NewSearchController(searchUsecase, bootstrap.Logger),
		UserController:     users.NewUserController(userUsecase, bootstrap.Logger),
		ContactController:  contacts.NewContactController(contactUsecase, bootstrap.Logger),
		FavoriteController: favorites.NewFavoriteController(favoriteUsecase, bootstrap.Logger),
	})

	// background reindex worker
	worker := indexer.NewReindexWorker(bootstrap.RabbitMQ, propertyRepository, searchEngine, bootstrap.Logger)
	workerStop, err := worker.Start(context.Background())
	if err != nil {
		log.Fatalf("failed to start reindex worker: %v", err)
	}
	bootstrap.WorkerStop = workerStop

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Printf("server listening on %s", internalConfig.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(internalConfig.App.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("bootstrap shutdown error: %v", err)
	}
	log.Println("server stopped")
}
