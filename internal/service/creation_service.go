package service

import (
	"context"

	"quickAI/internal/models"
	"quickAI/internal/repository"
)

const (
	MessageLiked   = "Creation Liked"
	MessageUnliked = "Creation Unliked"
)

type CreationService interface {
	ListUserCreations(ctx context.Context, identity models.Identity) ([]models.Creation, string, error)
	ListPublishedCreations(ctx context.Context) ([]models.Creation, error)
	ToggleLike(ctx context.Context, identity models.Identity, creationID int64) (string, error)
}

type creationService struct {
	creationRepo repository.CreationRepository
}

func NewCreationService(creationRepo repository.CreationRepository) CreationService {
	return &creationService{creationRepo: creationRepo}
}

// ListUserCreations returns the caller's own creations, newest first, together
// with the caller's plan.
func (s *creationService) ListUserCreations(ctx context.Context, identity models.Identity) ([]models.Creation, string, error) {
	creations, err := s.creationRepo.ListByUser(ctx, identity.UserID)
	if err != nil {
		return nil, "", err
	}

	return creations, identity.PlanOrDefault(), nil
}

func (s *creationService) ListPublishedCreations(ctx context.Context) ([]models.Creation, error) {
	return s.creationRepo.ListPublished(ctx)
}

func (s *creationService) ToggleLike(ctx context.Context, identity models.Identity, creationID int64) (string, error) {
	liked, err := s.creationRepo.ToggleLike(ctx, creationID, identity.UserID)
	if err != nil {
		return "", err
	}

	if liked {
		return MessageLiked, nil
	}
	return MessageUnliked, nil
}
