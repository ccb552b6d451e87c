package contracts

import (
	"casalist-service/internal/app/models"
	"context"
	"time"
)

type PropertyRepository interface {
	CreateProperty(ctx context.Context, propertyModel *models.Property) (propertyID string, err error)
	FindByID(ctx context.Context, propertyID string) (*models.Property, error)
	FindAll(ctx context.Context) ([]models.Property, error)
	FindPublished(ctx context.Context, limit, offset int) ([]models.Property, error)
	CountPublished(ctx context.Context) (int64, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Property, error)
	FindByIDs(ctx context.Context, propertyIDs []string) ([]models.Property, error)
	UpdateProperty(ctx context.Context, propertyModel *models.Property) error
	DeleteByID(ctx context.Context, propertyID string) error
	CountAll(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
