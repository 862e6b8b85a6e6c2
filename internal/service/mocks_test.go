package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"quickAI/internal/models"
)

type MockCreationRepository struct {
	mock.Mock
}

func (m *MockCreationRepository) Create(ctx context.Context, creation *models.Creation) error {
	args := m.Called(ctx, creation)
	return args.Error(0)
}

func (m *MockCreationRepository) ListByUser(ctx context.Context, userID string) ([]models.Creation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Creation), args.Error(1)
}

func (m *MockCreationRepository) ListPublished(ctx context.Context) ([]models.Creation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Creation), args.Error(1)
}

func (m *MockCreationRepository) ToggleLike(ctx context.Context, creationID int64, userID string) (bool, error) {
	args := m.Called(ctx, creationID, userID)
	return args.Bool(0), args.Error(1)
}

type MockUsageStore struct {
	mock.Mock
}

func (m *MockUsageStore) Increment(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockUsageStore) Decrement(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) GenerateText(ctx context.Context, prompt string, maxTokens int) (string, error) {
	args := m.Called(ctx, prompt, maxTokens)
	return args.String(0), args.Error(1)
}

type MockImageGenerator struct {
	mock.Mock
}

func (m *MockImageGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadImage(ctx context.Context, userID string, fileName string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, userID, fileName, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteImage(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}
