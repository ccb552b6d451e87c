package auth

import (
	"casalist-service/internal/app/models"
	"casalist-service/internal/pkg/dto/requests"
	"casalist-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.Register) (*responses.UserResponse, error)
	Login(ctx context.Context, request *requests.Login) (*responses.LoginResponse, error)
	Logout(ctx context.Context, session *models.Session) error
	GetProfile(ctx context.Context, session *models.Session) (*responses.UserResponse, error)
}
