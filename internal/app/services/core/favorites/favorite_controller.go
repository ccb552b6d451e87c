package favorites

import (
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FavoriteController struct {
	favoriteUsecase FavoriteUsecase
	log             *zap.Logger
}

func NewFavoriteController(favoriteUsecase FavoriteUsecase, log *zap.Logger) *FavoriteController {
	return &FavoriteController{
		favoriteUsecase: favoriteUsecase,
		log:             log,
	}
}

func (c *FavoriteController) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("FavoriteController.Index called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	favorites, err := c.favoriteUsecase.ListFavorites(ctx, principal)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, favorites)
}

func (c *FavoriteController) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	favoriteID := chi.URLParam(r, "favorite_id")
	c.log.Info("FavoriteController.Show called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	favorite, err := c.favoriteUsecase.GetFavoriteByID(ctx, principal, favoriteID)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, favorite)
}

func (c *FavoriteController) Store(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("FavoriteController.Store called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	request := new(requests.CreateFavorite)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	favorite, err := c.favoriteUsecase.CreateFavorite(ctx, principal, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildMessageDataResponse(w, constvars.StatusCreated, constvars.FavoriteAddedSuccessMessage, favorite)
}

func (c *FavoriteController) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	favoriteID := chi.URLParam(r, "favorite_id")
	c.log.Info("FavoriteController.Update called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	request := new(requests.UpdateFavorite)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	favorite, err := c.favoriteUsecase.UpdateFavorite(ctx, principal, favoriteID, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildMessageDataResponse(w, constvars.StatusCreated, constvars.FavoriteUpdatedSuccessMessage, favorite)
}

func (c *FavoriteController) Destroy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	favoriteID := chi.URLParam(r, "favorite_id")
	c.log.Info("FavoriteController.Destroy called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	if err := c.favoriteUsecase.DeleteFavorite(ctx, principal, favoriteID); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildNoContentResponse(w)
}
