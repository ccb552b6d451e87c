package searchengine

import (
	"casalist-service/internal/app/contracts"
	"casalist-service/internal/app/models"
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/exceptions"
	"context"
	"sync"

	"github.com/meilisearch/meilisearch-go"
)

type meilisearchEngine struct {
	client *meilisearch.Client
}

var (
	meilisearchEngineInstance contracts.SearchEngine
	onceMeilisearchEngine     sync.Once
)

func NewMeilisearchEngine(client *meilisearch.Client) contracts.SearchEngine {
	onceMeilisearchEngine.Do(func() {
		meilisearchEngineInstance = &meilisearchEngine{client: client}
	})
	return meilisearchEngineInstance
}

func (e *meilisearchEngine) SearchProperties(_ context.Context, query, filter string, limit, offset int64) ([]string, int64, error) {
	searchRequest := &meilisearch.SearchRequest{
		Limit:  limit,
		Offset: offset,
	}
	if filter != "" {
		searchRequest.Filter = filter
	}

	result, err := e.client.Index(constvars.SearchIndexProperties).Search(query, searchRequest)
	if err != nil {
		return nil, 0, exceptions.ErrSearchEngineQuery(err)
	}

	ids := make([]string, 0, len(result.Hits))
	for _, hit := range result.Hits {
		document, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}
		if id, ok := document["id"].(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, result.EstimatedTotalHits, nil
}

// IndexProperties replaces the documents of the property index. Filterable
// attributes are re-applied on every rebuild so a fresh index is queryable
// immediately.
func (e *meilisearchEngine) IndexProperties(_ context.Context, properties []models.Property) error {
	index := e.client.Index(constvars.SearchIndexProperties)

	if _, err := index.UpdateFilterableAttributes(&[]string{
		"type", "price", "city", "bedrooms", "bathrooms", "area_sqm", "published",
	}); err != nil {
		return exceptions.ErrSearchEngineIndex(err)
	}

	documents := make([]map[string]interface{}, 0, len(properties))
	for i := range properties {
		property := &properties[i]
		documents = append(documents, map[string]interface{}{
			"id":          property.ID,
			"title":       property.Title,
			"description": property.Description,
			"type":        property.Type,
			"price":       property.Price,
			"city":        property.City,
			"address":     property.Address,
			"bedrooms":    property.Bedrooms,
			"bathrooms":   property.Bathrooms,
			"area_sqm":    property.AreaSqm,
			"published":   property.Published,
		})
	}

	if _, err := index.AddDocuments(documents, "id"); err != nil {
		return exceptions.ErrSearchEngineIndex(err)
	}
	return nil
}
