package searches

import (
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SearchController struct {
	searchUsecase SearchUsecase
	log           *zap.Logger
}

func NewSearchController(searchUsecase SearchUsecase, log *zap.Logger) *SearchController {
	return &SearchController{
		searchUsecase: searchUsecase,
		log:           log,
	}
}

func (c *SearchController) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("SearchController.Search called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	query := r.URL.Query().Get("query")
	params := ParseFilterParams(r.URL.RawQuery)
	pagination := utils.BuildPaginationRequest(r)

	list, meta, err := c.searchUsecase.SearchProperties(ctx, query, params, pagination)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildListResponse(w, constvars.StatusOK, list, meta)
}

func (c *SearchController) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("SearchController.Index called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	searches, err := c.searchUsecase.ListSearches(ctx, principal)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, searches)
}

func (c *SearchController) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	searchID := chi.URLParam(r, "search_id")
	c.log.Info("SearchController.Show called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	search, err := c.searchUsecase.GetSearchByID(ctx, principal, searchID)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, search)
}

func (c *SearchController) Store(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("SearchController.Store called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	request := new(requests.CreateSearch)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	search, err := c.searchUsecase.CreateSearch(ctx, principal, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildMessageDataResponse(w, constvars.StatusCreated, constvars.SearchAddedSuccessMessage, search)
}

func (c *SearchController) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	searchID := chi.URLParam(r, "search_id")
	c.log.Info("SearchController.Update called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	request := new(requests.UpdateSearch)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	search, err := c.searchUsecase.UpdateSearch(ctx, principal, searchID, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildMessageDataResponse(w, constvars.StatusCreated, constvars.SearchUpdatedSuccessMessage, search)
}

func (c *SearchController) Destroy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	searchID := chi.URLParam(r, "search_id")
	c.log.Info("SearchController.Destroy called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	if err := c.searchUsecase.DeleteSearch(ctx, principal, searchID); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildNoContentResponse(w)
}
