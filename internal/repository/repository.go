package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"quickAI/internal/models"
)

var ErrCreationNotFound = errors.New("creation not found")

type CreationRepository interface {
	Create(ctx context.Context, creation *models.Creation) error
	ListByUser(ctx context.Context, userID string) ([]models.Creation, error)
	ListPublished(ctx context.Context) ([]models.Creation, error)
	ToggleLike(ctx context.Context, creationID int64, userID string) (bool, error)
}

type Repository struct {
	Creation CreationRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Creation: NewCreationRepository(db),
	}
}
