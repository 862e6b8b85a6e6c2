package test

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"quickAI/internal/models"
	"quickAI/internal/service"
)

func TestGenerateArticleHandler(t *testing.T) {
	free := models.Identity{UserID: "user_1", Plan: models.PlanFree}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(*MockAIService)
		expectedBody string
	}{
		{
			name: "generated",
			body: `{"prompt":"write about go","length":800}`,
			mockSetup: func(s *MockAIService) {
				s.On("GenerateArticle", mock.Anything, free, service.GenerateArticleRequest{Prompt: "write about go", Length: 800}).
					Return(&models.Creation{ID: 1, Content: "Go is great."}, nil)
			},
			expectedBody: `{"success":true,"content":"Go is great."}`,
		},
		{
			name: "free quota exhausted",
			body: `{"prompt":"write about go","length":800}`,
			mockSetup: func(s *MockAIService) {
				s.On("GenerateArticle", mock.Anything, free, mock.Anything).Return(nil, service.ErrUsageLimitReached)
			},
			expectedBody: `{"success":false,"message":"Limit reached. Upgrade to continue."}`,
		},
		{
			name: "provider failure",
			body: `{"prompt":"write about go","length":800}`,
			mockSetup: func(s *MockAIService) {
				s.On("GenerateArticle", mock.Anything, free, mock.Anything).
					Return(nil, fmt.Errorf("generate text: %w", errors.New("upstream 502")))
			},
			expectedBody: `{"success":false,"message":"failed to generate article"}`,
		},
		{
			name:         "length below minimum",
			body:         `{"prompt":"write about go","length":10}`,
			mockSetup:    func(s *MockAIService) {},
			expectedBody: `{"success":false,"message":"prompt and a length between 100 and 4000 are required"}`,
		},
		{
			name:         "missing prompt",
			body:         `{"length":500}`,
			mockSetup:    func(s *MockAIService) {},
			expectedBody: `{"success":false,"message":"prompt and a length between 100 and 4000 are required"}`,
		},
		{
			name:         "malformed body",
			body:         `not json`,
			mockSetup:    func(s *MockAIService) {},
			expectedBody: `{"success":false,"message":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAIService := new(MockAIService)
			tt.mockSetup(mockAIService)
			handler := newTestHandlers(new(MockCreationService), mockAIService)

			req := httptest.NewRequest(http.MethodPost, "/api/ai/generate-article", bytes.NewBufferString(tt.body))
			req = withIdentity(req, free)
			rr := httptest.NewRecorder()

			handler.GenerateArticle(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			mockAIService.AssertExpectations(t)
		})
	}
}

func TestGenerateImageHandler(t *testing.T) {
	premium := models.Identity{UserID: "user_9", Plan: models.PlanPremium}
	free := models.Identity{UserID: "user_1", Plan: models.PlanFree}

	tests := []struct {
		name         string
		identity     models.Identity
		body         string
		mockSetup    func(*MockAIService)
		expectedBody string
	}{
		{
			name:     "premium user gets image url",
			identity: premium,
			body:     `{"prompt":"a red fox","publish":true}`,
			mockSetup: func(s *MockAIService) {
				s.On("GenerateImage", mock.Anything, premium, service.GenerateImageRequest{Prompt: "a red fox", Publish: true}).
					Return(&models.Creation{ID: 3, Content: "http://cdn/creations/fox.png", Publish: true}, nil)
			},
			expectedBody: `{"success":true,"content":"http://cdn/creations/fox.png"}`,
		},
		{
			name:     "free user rejected",
			identity: free,
			body:     `{"prompt":"a red fox"}`,
			mockSetup: func(s *MockAIService) {
				s.On("GenerateImage", mock.Anything, free, service.GenerateImageRequest{Prompt: "a red fox"}).
					Return(nil, service.ErrPremiumOnly)
			},
			expectedBody: `{"success":false,"message":"This feature is only available for premium subscriptions"}`,
		},
		{
			name:     "upload failure",
			identity: premium,
			body:     `{"prompt":"a red fox"}`,
			mockSetup: func(s *MockAIService) {
				s.On("GenerateImage", mock.Anything, premium, mock.Anything).Return(nil, errors.New("minio: access denied"))
			},
			expectedBody: `{"success":false,"message":"failed to generate image"}`,
		},
		{
			name:         "missing prompt",
			identity:     premium,
			body:         `{"publish":true}`,
			mockSetup:    func(s *MockAIService) {},
			expectedBody: `{"success":false,"message":"prompt is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAIService := new(MockAIService)
			tt.mockSetup(mockAIService)
			handler := newTestHandlers(new(MockCreationService), mockAIService)

			req := httptest.NewRequest(http.MethodPost, "/api/ai/generate-image", bytes.NewBufferString(tt.body))
			req = withIdentity(req, tt.identity)
			rr := httptest.NewRecorder()

			handler.GenerateImage(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			mockAIService.AssertExpectations(t)
		})
	}

	t.Run("no identity", func(t *testing.T) {
		handler := newTestHandlers(new(MockCreationService), new(MockAIService))
		rr := httptest.NewRecorder()
		handler.GenerateImage(rr, httptest.NewRequest(http.MethodPost, "/api/ai/generate-image", bytes.NewBufferString(`{"prompt":"x"}`)))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
