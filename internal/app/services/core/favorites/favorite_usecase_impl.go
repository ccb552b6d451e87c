package favorites

import (
	"casalist-service/internal/app/contracts"
	"casalist-service/internal/app/models"
	"casalist-service/internal/app/services/shared/authz"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/dto/responses"
	"casalist-service/internal/pkg/exceptions"
	"context"
)

type favoriteUsecase struct {
	favoriteRepository contracts.FavoriteRepository
	propertyRepository contracts.PropertyRepository
}

func NewFavoriteUsecase(
	favoriteRepository contracts.FavoriteRepository,
	propertyRepository contracts.PropertyRepository,
) FavoriteUsecase {
	return &favoriteUsecase{
		favoriteRepository: favoriteRepository,
		propertyRepository: propertyRepository,
	}
}

func (u *favoriteUsecase) ListFavorites(ctx context.Context, principal authz.Principal) ([]responses.FavoriteResponse, error) {
	favorites, err := u.favoriteRepository.FindByUserID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	return responses.NewFavoriteListResponse(favorites), nil
}

func (u *favoriteUsecase) GetFavoriteByID(ctx context.Context, principal authz.Principal, favoriteID string) (*responses.FavoriteResponse, error) {
	favoriteModel, err := u.favoriteRepository.FindByID(ctx, favoriteID)
	if err != nil {
		return nil, err
	}
	if !authz.AllowsResource(principal, favoriteModel) {
		return nil, exceptions.ErrNotResourceOwner("view", "favorite")
	}
	response := responses.NewFavoriteResponse(favoriteModel)
	return &response, nil
}

func (u *favoriteUsecase) CreateFavorite(ctx context.Context, principal authz.Principal, request *requests.CreateFavorite) (*responses.FavoriteResponse, error) {
	if _, err := u.propertyRepository.FindByID(ctx, request.PropertyID); err != nil {
		return nil, err
	}

	favoriteModel := &models.Favorite{
		UserID:     principal.ID,
		PropertyID: request.PropertyID,
	}
	favoriteID, err := u.favoriteRepository.CreateFavorite(ctx, favoriteModel)
	if err != nil {
		return nil, err
	}

	created, err := u.favoriteRepository.FindByID(ctx, favoriteID)
	if err != nil {
		return nil, err
	}
	response := responses.NewFavoriteResponse(created)
	return &response, nil
}

func (u *favoriteUsecase) UpdateFavorite(ctx context.Context, principal authz.Principal, favoriteID string, request *requests.UpdateFavorite) (*responses.FavoriteResponse, error) {
	favoriteModel, err := u.favoriteRepository.FindByID(ctx, favoriteID)
	if err != nil {
		return nil, err
	}
	if !authz.AllowsResource(principal, favoriteModel) {
		return nil, exceptions.ErrNotResourceOwner("update", "favorite")
	}
	if _, err := u.propertyRepository.FindByID(ctx, request.PropertyID); err != nil {
		return nil, err
	}

	favoriteModel.PropertyID = request.PropertyID
	if err := u.favoriteRepository.UpdateFavorite(ctx, favoriteModel); err != nil {
		return nil, err
	}

	response := responses.NewFavoriteResponse(favoriteModel)
	return &response, nil
}

func (u *favoriteUsecase) DeleteFavorite(ctx context.Context, principal authz.Principal, favoriteID string) error {
	favoriteModel, err := u.favoriteRepository.FindByID(ctx, favoriteID)
	if err != nil {
		return err
	}
	if !authz.AllowsResource(principal, favoriteModel) {
		return exceptions.ErrNotResourceOwner("delete", "favorite")
	}
	return u.favoriteRepository.DeleteByID(ctx, favoriteID)
}
