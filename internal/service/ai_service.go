package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"quickAI/internal/ai"
	"quickAI/internal/cache"
	"quickAI/internal/models"
	"quickAI/internal/repository"
	"quickAI/internal/storage"
)

var (
	ErrEmptyPrompt       = errors.New("prompt is required")
	ErrUsageLimitReached = errors.New("free usage limit reached")
	ErrPremiumOnly       = errors.New("premium subscription required")
)

type GenerateArticleRequest struct {
	Prompt string
	Length int
}

type GenerateImageRequest struct {
	Prompt  string
	Publish bool
}

type AIService interface {
	GenerateArticle(ctx context.Context, identity models.Identity, req GenerateArticleRequest) (*models.Creation, error)
	GenerateImage(ctx context.Context, identity models.Identity, req GenerateImageRequest) (*models.Creation, error)
}

type aiService struct {
	creationRepo   repository.CreationRepository
	usage          cache.UsageStore
	text           ai.TextGenerator
	image          ai.ImageGenerator
	storage        storage.Storage
	freeUsageLimit int
	log            *logrus.Logger
}

func NewAIService(deps Deps, freeUsageLimit int) AIService {
	return &aiService{
		creationRepo:   deps.Repo.Creation,
		usage:          deps.Usage,
		text:           deps.Text,
		image:          deps.Image,
		storage:        deps.Storage,
		freeUsageLimit: freeUsageLimit,
		log:            deps.Log,
	}
}

func (s *aiService) GenerateArticle(ctx context.Context, identity models.Identity, req GenerateArticleRequest) (*models.Creation, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	// free users reserve a quota slot before generating
	reserved := false
	if !identity.IsPremium() {
		used, err := s.usage.Increment(ctx, identity.UserID)
		if err != nil {
			s.log.WithError(err).WithField("user_id", identity.UserID).Warn("usage unavailable, skipping quota check")
		} else {
			reserved = true
			if used > s.freeUsageLimit {
				s.releaseUsage(ctx, identity.UserID)
				return nil, ErrUsageLimitReached
			}
		}
	}

	content, err := s.text.GenerateText(ctx, prompt, req.Length)
	if err != nil {
		if reserved {
			s.releaseUsage(ctx, identity.UserID)
		}
		return nil, fmt.Errorf("failed to generate article: %w", err)
	}

	creation := &models.Creation{
		UserID:  identity.UserID,
		Prompt:  prompt,
		Content: content,
		Type:    models.CreationTypeArticle,
	}
	if err := s.creationRepo.Create(ctx, creation); err != nil {
		if reserved {
			s.releaseUsage(ctx, identity.UserID)
		}
		return nil, err
	}

	return creation, nil
}

func (s *aiService) releaseUsage(ctx context.Context, userID string) {
	if err := s.usage.Decrement(ctx, userID); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("failed to release usage")
	}
}

func (s *aiService) GenerateImage(ctx context.Context, identity models.Identity, req GenerateImageRequest) (*models.Creation, error) {
	if !identity.IsPremium() {
		return nil, ErrPremiumOnly
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	img, err := s.image.GenerateImage(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate image: %w", err)
	}

	objectName, imageURL, err := s.storage.UploadImage(ctx, identity.UserID, "generated.png", bytes.NewReader(img), int64(len(img)))
	if err != nil {
		return nil, err
	}

	creation := &models.Creation{
		UserID:  identity.UserID,
		Prompt:  prompt,
		Content: imageURL,
		Type:    models.CreationTypeImage,
		Publish: req.Publish,
	}
	if err := s.creationRepo.Create(ctx, creation); err != nil {
		if delErr := s.storage.DeleteImage(ctx, objectName); delErr != nil {
			s.log.WithError(delErr).WithField("object", objectName).Warn("failed to remove orphaned image")
		}
		return nil, err
	}

	return creation, nil
}
