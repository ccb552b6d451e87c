package searches

import (
	"casalist-service/internal/app/services/shared/authz"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/dto/responses"
	"context"
)

type SearchUsecase interface {
	SearchProperties(ctx context.Context, query string, params []FilterParam, pagination requests.Pagination) ([]responses.PropertyResponse, *responses.Meta, error)
	ListSearches(ctx context.Context, principal authz.Principal) ([]responses.SearchResponse, error)
	GetSearchByID(ctx context.Context, principal authz.Principal, searchID string) (*responses.SearchResponse, error)
	CreateSearch(ctx context.Context, principal authz.Principal, request *requests.CreateSearch) (*responses.SearchResponse, error)
	UpdateSearch(ctx context.Context, principal authz.Principal, searchID string, request *requests.UpdateSearch) (*responses.SearchResponse, error)
	DeleteSearch(ctx context.Context, principal authz.Principal, searchID string) error
}
