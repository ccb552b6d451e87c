package auth

import (
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/exceptions"
	"casalist-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	authUsecase AuthUsecase
	log         *zap.Logger
}

func NewAuthController(authUsecase AuthUsecase, log *zap.Logger) *AuthController {
	return &AuthController{
		authUsecase: authUsecase,
		log:         log,
	}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("AuthController.Register called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	request := new(requests.Register)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	user, err := c.authUsecase.Register(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildMessageDataResponse(w, constvars.StatusCreated, constvars.RegisterSuccessMessage, user)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("AuthController.Login called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	request := new(requests.Login)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}

	login, err := c.authUsecase.Login(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildMessageDataResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, login)
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("AuthController.Logout called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		utils.BuildErrorResponse(c.log, w, exceptions.ErrTokenMissing(nil))
		return
	}
	if err := c.authUsecase.Logout(ctx, session); err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildMessageResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage)
}

func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c.log.Info("AuthController.Profile called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
	)

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		utils.BuildErrorResponse(c.log, w, exceptions.ErrTokenMissing(nil))
		return
	}
	user, err := c.authUsecase.GetProfile(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(c.log, w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, user)
}
