package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"quickAI/internal/config"
	"quickAI/internal/service"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Handlers struct {
	CreationService service.CreationService
	AIService       service.AIService
	Health          []HealthChecker
	Cfg             *config.Config
	Validate        *validator.Validate
	Log             *logrus.Logger
}

func NewHandlers(services *service.Service, cfg *config.Config, log *logrus.Logger, health ...HealthChecker) *Handlers {
	return &Handlers{
		CreationService: services.Creation,
		AIService:       services.AI,
		Health:          health,
		Cfg:             cfg,
		Validate:        validator.New(),
		Log:             log,
	}
}
