package auth

import (
	"casalist-service/internal/app/config"
	"casalist-service/internal/app/contracts"
	"casalist-service/internal/app/models"
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/dto/responses"
	"casalist-service/internal/pkg/exceptions"
	"casalist-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/goccy/go-json"
)

type authUsecase struct {
	userRepository  contracts.UserRepository
	redisRepository contracts.RedisRepository
	internalConfig  *config.InternalConfig
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		userRepository:  userRepository,
		redisRepository: redisRepository,
		internalConfig:  internalConfig,
	}
}

func (u *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.UserResponse, error) {
	if existing, err := u.userRepository.FindByEmail(ctx, request.Email); err == nil && existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	userModel := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		Role:     constvars.RoleUser,
	}
	userID, err := u.userRepository.CreateUser(ctx, userModel)
	if err != nil {
		return nil, err
	}

	created, err := u.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	response := responses.NewUserResponse(created)
	return &response, nil
}

func (u *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.LoginResponse, error) {
	userModel, err := u.userRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(err)
	}
	if !utils.CheckPasswordHash(request.Password, userModel.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	sessionID := utils.GenerateSessionID()
	sessionModel := &models.Session{
		SessionID: sessionID,
		UserID:    userModel.ID,
		Email:     userModel.Email,
		RoleName:  userModel.Role,
	}
	sessionData, err := json.Marshal(sessionModel)
	if err != nil {
		return nil, exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	sessionExpiry := time.Duration(u.internalConfig.App.SessionExpiryTimeInHours) * time.Hour
	if err := u.redisRepository.Set(ctx, sessionID, string(sessionData), sessionExpiry); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionID, u.internalConfig.JWT.Secret, u.internalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.LoginResponse{
		Token: token,
		User:  responses.NewUserResponse(userModel),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	return u.redisRepository.Delete(ctx, session.SessionID)
}

func (u *authUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.UserResponse, error) {
	userModel, err := u.userRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	response := responses.NewUserResponse(userModel)
	return &response, nil
}
