package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"quickAI/internal/models"
)

type creationRepository struct {
	db *sqlx.DB
}

func NewCreationRepository(db *sqlx.DB) CreationRepository {
	return &creationRepository{db: db}
}

func (r *creationRepository) Create(ctx context.Context, creation *models.Creation) error {
	query := `
		INSERT INTO creations (user_id, prompt, content, type, publish)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, likes, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		creation.UserID,
		creation.Prompt,
		creation.Content,
		creation.Type,
		creation.Publish,
	).Scan(&creation.ID, &creation.Likes, &creation.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create creation: %w", err)
	}

	normalizeLikes(creation)
	return nil
}

func (r *creationRepository) ListByUser(ctx context.Context, userID string) ([]models.Creation, error) {
	query := `
		SELECT * FROM creations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	creations := []models.Creation{}
	if err := r.db.SelectContext(ctx, &creations, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list user creations: %w", err)
	}

	for i := range creations {
		normalizeLikes(&creations[i])
	}
	return creations, nil
}

func (r *creationRepository) ListPublished(ctx context.Context) ([]models.Creation, error) {
	query := `
		SELECT * FROM creations
		WHERE publish = true
		ORDER BY created_at DESC
	`

	creations := []models.Creation{}
	if err := r.db.SelectContext(ctx, &creations, query); err != nil {
		return nil, fmt.Errorf("failed to list published creations: %w", err)
	}

	for i := range creations {
		normalizeLikes(&creations[i])
	}
	return creations, nil
}

// ToggleLike flips userID's membership in the likes set of one creation in a
// single statement, so concurrent toggles on the same row serialize on the row
// lock instead of overwriting each other. It reports whether the user likes the
// creation after the update.
func (r *creationRepository) ToggleLike(ctx context.Context, creationID int64, userID string) (bool, error) {
	query := `
		UPDATE creations SET
			likes = CASE
				WHEN $2::text = ANY(likes) THEN array_remove(likes, $2::text)
				ELSE array_append(likes, $2::text)
			END
		WHERE id = $1
		RETURNING $2::text = ANY(likes)
	`

	var liked bool
	err := r.db.GetContext(ctx, &liked, query, creationID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrCreationNotFound
		}
		return false, fmt.Errorf("failed to toggle like: %w", err)
	}

	return liked, nil
}

func normalizeLikes(creation *models.Creation) {
	if creation.Likes == nil {
		creation.Likes = pq.StringArray{}
	}
}
