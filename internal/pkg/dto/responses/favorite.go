package responses

import (
	"casalist-service/internal/app/models"
	"time"
)

type FavoriteResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	PropertyID string    `json:"propertyId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewFavoriteResponse(favorite *models.Favorite) FavoriteResponse {
	return FavoriteResponse{
		ID:         favorite.ID,
		UserID:     favorite.UserID,
		PropertyID: favorite.PropertyID,
		CreatedAt:  favorite.CreatedAt,
		UpdatedAt:  favorite.UpdatedAt,
	}
}

func NewFavoriteListResponse(favorites []models.Favorite) []FavoriteResponse {
	list := make([]FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		list = append(list, NewFavoriteResponse(&favorites[i]))
	}
	return list
}
