package contracts

import (
	"casalist-service/internal/app/models"
	"context"
)

type ContactRepository interface {
	CreateContact(ctx context.Context, contactModel *models.Contact) (contactID string, err error)
	FindByID(ctx context.Context, contactID string) (*models.Contact, error)
	FindAll(ctx context.Context) ([]models.Contact, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Contact, error)
	FindByPropertyID(ctx context.Context, propertyID string) ([]models.Contact, error)
	UpdateContact(ctx context.Context, contactModel *models.Contact) error
	DeleteByID(ctx context.Context, contactID string) error
}
