package favorites

import (
	"casalist-service/internal/app/services/shared/authz"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/dto/responses"
	"context"
)

type FavoriteUsecase interface {
	ListFavorites(ctx context.Context, principal authz.Principal) ([]responses.FavoriteResponse, error)
	GetFavoriteByID(ctx context.Context, principal authz.Principal, favoriteID string) (*responses.FavoriteResponse, error)
	CreateFavorite(ctx context.Context, principal authz.Principal, request *requests.CreateFavorite) (*responses.FavoriteResponse, error)
	UpdateFavorite(ctx context.Context, principal authz.Principal, favoriteID string, request *requests.UpdateFavorite) (*responses.FavoriteResponse, error)
	DeleteFavorite(ctx context.Context, principal authz.Principal, favoriteID string) error
}
