package users

import (
	"casalist-service/internal/app/services/shared/authz"
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/dto/responses"
	"casalist-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserController struct {
	userUsecase UserUsecase
	log         *zap.Logger
}

func NewUserController(userUsecase UserUsecase, log *zap.Logger) *UserController {
	return &UserController{
		userUsecase: userUsecase,
		log:         log,
	}
}

func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("UserController.Index called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	users, err := c.userUsecase.GetAllUsers(ctx, principal)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, users)
}

func (c *UserController) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")
	c.log.Info("UserController.Show called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	user, err := c.userUsecase.GetUserByID(ctx, principal, userID)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, user)
}

func (c *UserController) Store(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("UserController.Store called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	request := new(requests.CreateUser)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	user, err := c.userUsecase.CreateUser(ctx, principal, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildMessageDataResponse(w, constvars.StatusCreated, constvars.UserAddedSuccessMessage, user)
}

func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")
	c.log.Info("UserController.Update called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	request := new(requests.UpdateUser)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	user, err := c.userUsecase.UpdateUser(ctx, userID, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildMessageDataResponse(w, constvars.StatusOK, constvars.UserUpdatedSuccessMessage, user)
}

func (c *UserController) Destroy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")
	c.log.Info("UserController.Destroy called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	if err := c.userUsecase.DeleteUser(ctx, principal, userID); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildMessageResponse(w, constvars.StatusOK, constvars.UserDeletedSuccessMessage)
}

func (c *UserController) CountAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("UserController.CountAll called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	count, err := c.userUsecase.CountAllUsers(ctx, principal)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildCountResponse(w, count)
}

func (c *UserController) CountNew(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("UserController.CountNew called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	count, err := c.userUsecase.CountNewUsers(ctx, principal)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildCountResponse(w, count)
}

func (c *UserController) Contacts(w http.ResponseWriter, r *http.Request) {
	c.nestedView(w, r, "UserController.Contacts", c.userUsecase.GetUserContacts)
}

func (c *UserController) PassedContacts(w http.ResponseWriter, r *http.Request) {
	c.nestedView(w, r, "UserController.PassedContacts", c.userUsecase.GetUserPassedContacts)
}

func (c *UserController) PropertiesContacts(w http.ResponseWriter, r *http.Request) {
	c.nestedView(w, r, "UserController.PropertiesContacts", c.userUsecase.GetUserPropertiesContacts)
}

func (c *UserController) PropertiesPassedContacts(w http.ResponseWriter, r *http.Request) {
	c.nestedView(w, r, "UserController.PropertiesPassedContacts", c.userUsecase.GetUserPropertiesPassedContacts)
}

func (c *UserController) Favorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")
	c.log.Info("UserController.Favorites called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	favorites, err := c.userUsecase.GetUserFavorites(ctx, principal, userID)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, favorites)
}

func (c *UserController) Properties(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")
	c.log.Info("UserController.Properties called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	properties, err := c.userUsecase.GetUserProperties(ctx, principal, userID)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, properties)
}

func (c *UserController) Searches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")
	c.log.Info("UserController.Searches called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	searches, err := c.userUsecase.GetUserSearches(ctx, principal, userID)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, searches)
}

func (c *UserController) nestedView(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	view func(ctx context.Context, principal authz.Principal, userID string) ([]responses.ContactResponse, error),
) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")
	c.log.Info(name+" called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	principal, err := utils.GetPrincipalFromContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	contacts, err := view(ctx, principal, userID)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, contacts)
}
