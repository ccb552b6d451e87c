package contracts

import (
	"casalist-service/internal/app/models"
	"context"
)

type FavoriteRepository interface {
	CreateFavorite(ctx context.Context, favoriteModel *models.Favorite) (favoriteID string, err error)
	FindByID(ctx context.Context, favoriteID string) (*models.Favorite, error)
	FindAll(ctx context.Context) ([]models.Favorite, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Favorite, error)
	UpdateFavorite(ctx context.Context, favoriteModel *models.Favorite) error
	DeleteByID(ctx context.Context, favoriteID string) error
}
