package test

import (
	"context"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"quickAI/internal/config"
	handlers "quickAI/internal/handler"
	"quickAI/internal/models"
	"quickAI/internal/service"
)

type MockCreationService struct {
	mock.Mock
}

func (m *MockCreationService) ListUserCreations(ctx context.Context, identity models.Identity) ([]models.Creation, string, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]models.Creation), args.String(1), args.Error(2)
}

func (m *MockCreationService) ListPublishedCreations(ctx context.Context) ([]models.Creation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Creation), args.Error(1)
}

func (m *MockCreationService) ToggleLike(ctx context.Context, identity models.Identity, creationID int64) (string, error) {
	args := m.Called(ctx, identity, creationID)
	return args.String(0), args.Error(1)
}

type MockAIService struct {
	mock.Mock
}

func (m *MockAIService) GenerateArticle(ctx context.Context, identity models.Identity, req service.GenerateArticleRequest) (*models.Creation, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Creation), args.Error(1)
}

func (m *MockAIService) GenerateImage(ctx context.Context, identity models.Identity, req service.GenerateImageRequest) (*models.Creation, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Creation), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newTestHandlers(creations *MockCreationService, aiService *MockAIService, health ...handlers.HealthChecker) *handlers.Handlers {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return &handlers.Handlers{
		CreationService: creations,
		AIService:       aiService,
		Health:          health,
		Cfg:             &config.Config{},
		Validate:        validator.New(),
		Log:             log,
	}
}
