package users

import (
	"casalist-service/internal/app/services/shared/authz"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/dto/responses"
	"context"
)

type UserUsecase interface {
	GetAllUsers(ctx context.Context, principal authz.Principal) ([]responses.UserResponse, error)
	GetUserByID(ctx context.Context, principal authz.Principal, userID string) (*responses.UserResponse, error)
	CreateUser(ctx context.Context, principal authz.Principal, request *requests.CreateUser) (*responses.UserResponse, error)
	UpdateUser(ctx context.Context, userID string, request *requests.UpdateUser) (*responses.UserResponse, error)
	DeleteUser(ctx context.Context, principal authz.Principal, userID string) error
	CountAllUsers(ctx context.Context, principal authz.Principal) (int64, error)
	CountNewUsers(ctx context.Context, principal authz.Principal) (int64, error)

	GetUserContacts(ctx context.Context, principal authz.Principal, userID string) ([]responses.ContactResponse, error)
	GetUserPassedContacts(ctx context.Context, principal authz.Principal, userID string) ([]responses.ContactResponse, error)
	GetUserFavorites(ctx context.Context, principal authz.Principal, userID string) ([]responses.FavoriteResponse, error)
	GetUserProperties(ctx context.Context, principal authz.Principal, userID string) ([]responses.PropertyResponse, error)
	GetUserSearches(ctx context.Context, principal authz.Principal, userID string) ([]responses.SearchResponse, error)
	GetUserPropertiesContacts(ctx context.Context, principal authz.Principal, userID string) ([]responses.ContactResponse, error)
	GetUserPropertiesPassedContacts(ctx context.Context, principal authz.Principal, userID string) ([]responses.ContactResponse, error)
}
