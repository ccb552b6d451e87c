package search

import (
	"casalist-service/internal/app/config"
	"fmt"
	"log"

	"github.com/meilisearch/meilisearch-go"
)

func NewMeilisearch(driverConfig *config.DriverConfig) *meilisearch.Client {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   fmt.Sprintf("http://%s:%s", driverConfig.Meilisearch.Host, driverConfig.Meilisearch.Port),
		APIKey: driverConfig.Meilisearch.APIKey,
	})

	if !client.IsHealthy() {
		log.Fatalf("Failed to connect to meilisearch at %s:%s", driverConfig.Meilisearch.Host, driverConfig.Meilisearch.Port)
	}

	log.Println("Successfully connected to meilisearch")
	return client
}
