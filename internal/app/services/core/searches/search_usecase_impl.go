package searches

import (
	"casalist-service/internal/app/contracts"
	"casalist-service/internal/app/models"
	"casalist-service/internal/app/services/shared/authz"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/dto/responses"
	"casalist-service/internal/pkg/exceptions"
	"context"
)

type searchUsecase struct {
	searchRepository   contracts.SearchRepository
	propertyRepository contracts.PropertyRepository
	searchEngine       contracts.SearchEngine
}

func NewSearchUsecase(
	searchRepository contracts.SearchRepository,
	propertyRepository contracts.PropertyRepository,
	searchEngine contracts.SearchEngine,
) SearchUsecase {
	return &searchUsecase{
		searchRepository:   searchRepository,
		propertyRepository: propertyRepository,
		searchEngine:       searchEngine,
	}
}

// SearchProperties runs the engine query, then hydrates the returned ids
// from the relational store, keeping the engine's ranking order.
func (u *searchUsecase) SearchProperties(ctx context.Context, query string, params []FilterParam, pagination requests.Pagination) ([]responses.PropertyResponse, *responses.Meta, error) {
	if query == "" {
		query = "*"
	}
	filter := BuildFilterExpression(params)

	ids, total, err := u.searchEngine.SearchProperties(ctx, query, filter, int64(pagination.PerPage), int64(pagination.Offset()))
	if err != nil {
		return nil, nil, err
	}

	properties, err := u.propertyRepository.FindByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	byID := make(map[string]*models.Property, len(properties))
	for i := range properties {
		byID[properties[i].ID] = &properties[i]
	}
	ordered := make([]models.Property, 0, len(ids))
	for _, id := range ids {
		if propertyModel, ok := byID[id]; ok {
			ordered = append(ordered, *propertyModel)
		}
	}

	meta := &responses.Meta{
		CurrentPage: pagination.Page,
		PerPage:     pagination.PerPage,
		Total:       total,
	}
	return responses.NewPropertyListResponse(ordered), meta, nil
}

func (u *searchUsecase) ListSearches(ctx context.Context, principal authz.Principal) ([]responses.SearchResponse, error) {
	searches, err := u.searchRepository.FindByUserID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	return responses.NewSearchListResponse(searches), nil
}

func (u *searchUsecase) GetSearchByID(ctx context.Context, principal authz.Principal, searchID string) (*responses.SearchResponse, error) {
	searchModel, err := u.searchRepository.FindByID(ctx, searchID)
	if err != nil {
		return nil, err
	}
	if !authz.AllowsResource(principal, searchModel) {
		return nil, exceptions.ErrNotResourceOwner("view", "search")
	}
	response := responses.NewSearchResponse(searchModel)
	return &response, nil
}

func (u *searchUsecase) CreateSearch(ctx context.Context, principal authz.Principal, request *requests.CreateSearch) (*responses.SearchResponse, error) {
	searchModel := &models.Search{
		UserID: principal.ID,
		Name:   request.Name,
		Query:  request.Query,
		Params: request.Params,
	}
	searchID, err := u.searchRepository.CreateSearch(ctx, searchModel)
	if err != nil {
		return nil, err
	}

	created, err := u.searchRepository.FindByID(ctx, searchID)
	if err != nil {
		return nil, err
	}
	response := responses.NewSearchResponse(created)
	return &response, nil
}

func (u *searchUsecase) UpdateSearch(ctx context.Context, principal authz.Principal, searchID string, request *requests.UpdateSearch) (*responses.SearchResponse, error) {
	searchModel, err := u.searchRepository.FindByID(ctx, searchID)
	if err != nil {
		return nil, err
	}
	if !authz.AllowsResource(principal, searchModel) {
		return nil, exceptions.ErrNotResourceOwner("update", "search")
	}

	searchModel.Name = request.Name
	searchModel.Query = request.Query
	searchModel.Params = request.Params
	if err := u.searchRepository.UpdateSearch(ctx, searchModel); err != nil {
		return nil, err
	}

	response := responses.NewSearchResponse(searchModel)
	return &response, nil
}

func (u *searchUsecase) DeleteSearch(ctx context.Context, principal authz.Principal, searchID string) error {
	searchModel, err := u.searchRepository.FindByID(ctx, searchID)
	if err != nil {
		return err
	}
	if !authz.AllowsResource(principal, searchModel) {
		return exceptions.ErrNotResourceOwner("delete", "search")
	}
	return u.searchRepository.DeleteByID(ctx, searchID)
}
