package session

import (
	"casalist-service/internal/app/contracts"
	"casalist-service/internal/app/models"
	"casalist-service/internal/pkg/exceptions"
	"context"
	"sync"

	"github.com/goccy/go-json"
)

type sessionService struct {
	redisRepository contracts.RedisRepository
}

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	onceSessionService.Do(func() {
		sessionServiceInstance = &sessionService{redisRepository: redisRepository}
	})
	return sessionServiceInstance
}

func (s *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := s.redisRepository.Get(ctx, sessionID)
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}
	return sessionData, nil
}

func (s *sessionService) ParseSessionData(_ context.Context, sessionData string) (*models.Session, error) {
	sessionModel := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), sessionModel); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return sessionModel, nil
}
