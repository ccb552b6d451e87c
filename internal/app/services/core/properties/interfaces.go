package properties

import (
	"casalist-service/internal/app/services/shared/authz"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/dto/responses"
	"context"
	"mime/multipart"
)

type PropertyUsecase interface {
	ListPublishedProperties(ctx context.Context, pagination requests.Pagination) ([]responses.PropertyResponse, *responses.Meta, error)
	GetAllProperties(ctx context.Context, principal authz.Principal) ([]responses.PropertyResponse, error)
	GetPropertyByID(ctx context.Context, propertyID string) (*responses.PropertyDetailResponse, error)
	CreateProperty(ctx context.Context, principal authz.Principal, request *requests.CreateProperty, image *multipart.FileHeader) (*responses.PropertyResponse, error)
	UpdateProperty(ctx context.Context, principal authz.Principal, propertyID string, request *requests.UpdateProperty) (*responses.PropertyResponse, error)
	DeleteProperty(ctx context.Context, principal authz.Principal, propertyID string) error
	CountAllProperties(ctx context.Context, principal authz.Principal) (int64, error)
	CountNewProperties(ctx context.Context, principal authz.Principal) (int64, error)
}
