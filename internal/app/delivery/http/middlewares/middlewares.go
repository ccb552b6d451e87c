package middlewares

import (
	"casalist-service/internal/app/config"
	"casalist-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	sessionService contracts.SessionService
	internalConfig *config.InternalConfig
	log            *zap.Logger
}

func NewMiddlewares(sessionService contracts.SessionService, internalConfig *config.InternalConfig, log *zap.Logger) *Middlewares {
	return &Middlewares{
		sessionService: sessionService,
		internalConfig: internalConfig,
		log:            log,
	}
}
