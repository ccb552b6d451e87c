package responses

import (
	"casalist-service/internal/app/models"
	"time"
)

type SearchResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Query     string    `json:"query"`
	Params    string    `json:"params"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewSearchResponse(search *models.Search) SearchResponse {
	return SearchResponse{
		ID:        search.ID,
		UserID:    search.UserID,
		Name:      search.Name,
		Query:     search.Query,
		Params:    search.Params,
		CreatedAt: search.CreatedAt,
		UpdatedAt: search.UpdatedAt,
	}
}

func NewSearchListResponse(searches []models.Search) []SearchResponse {
	list := make([]SearchResponse, 0, len(searches))
	for i := range searches {
		list = append(list, NewSearchResponse(&searches[i]))
	}
	return list
}
