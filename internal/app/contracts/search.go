package contracts

import (
	"casalist-service/internal/app/models"
	"context"
)

type SearchRepository interface {
	CreateSearch(ctx context.Context, searchModel *models.Search) (searchID string, err error)
	FindByID(ctx context.Context, searchID string) (*models.Search, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Search, error)
	UpdateSearch(ctx context.Context, searchModel *models.Search) error
	DeleteByID(ctx context.Context, searchID string) error
}
