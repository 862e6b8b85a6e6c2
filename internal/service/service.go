package service

import (
	"github.com/sirupsen/logrus"

	"quickAI/internal/ai"
	"quickAI/internal/cache"
	"quickAI/internal/config"
	"quickAI/internal/repository"
	"quickAI/internal/storage"
)

type Service struct {
	Creation CreationService
	AI       AIService
}

type Deps struct {
	Repo    *repository.Repository
	Usage   cache.UsageStore
	Text    ai.TextGenerator
	Image   ai.ImageGenerator
	Storage storage.Storage
	Log     *logrus.Logger
}

func NewService(deps Deps, cfg *config.Config) *Service {
	return &Service{
		Creation: NewCreationService(deps.Repo.Creation),
		AI:       NewAIService(deps, cfg.Limits.FreeUsageLimit),
	}
}
