package repository

import (
	"context"
	"database/sql"

	"community-events-api/core/database"
	"community-events-api/core/logger"
	"community-events-api/modules/engagement/entity"

	"github.com/google/uuid"
)

// EngagementRepository persists the like set and the comment thread.
type EngagementRepository struct {
	DB database.IDatabase
}

// NewEngagementRepository creates a new repository instance
func NewEngagementRepository(db database.IDatabase) *EngagementRepository {
	return &EngagementRepository{DB: db}
}

// EngagementRepositoryInterface defines the repository contract
type EngagementRepositoryInterface interface {
	AddLike(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) error
	RemoveLike(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) error
	HasLiked(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) (bool, error)
	CountLikes(ctx context.Context, eventID uuid.UUID) (int, error)
	CreateComment(ctx context.Context, comment *entity.Comment) (*entity.Comment, error)
	ListComments(ctx context.Context, eventID uuid.UUID) ([]entity.Comment, error)
}

// AddLike inserts into the like set; inserting an existing pair is a no-op.
func (r *EngagementRepository) AddLike(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) error {
	query := `
		INSERT INTO event_likes (event_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (event_id, user_id) DO NOTHING`

	if err := r.DB.ExecContext(ctx, query, eventID, userID); err != nil {
		logger.Error("EngagementRepository:AddLike", err)
		return err
	}
	return nil
}

// RemoveLike deletes from the like set; deleting an absent pair is a no-op.
func (r *EngagementRepository) RemoveLike(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) error {
	query := `DELETE FROM event_likes WHERE event_id = $1 AND user_id = $2`

	if err := r.DB.ExecContext(ctx, query, eventID, userID); err != nil {
		logger.Error("EngagementRepository:RemoveLike", err)
		return err
	}
	return nil
}

func (r *EngagementRepository) HasLiked(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM event_likes WHERE event_id = $1 AND user_id = $2)`

	if err := r.DB.GetContext(ctx, &exists, query, eventID, userID); err != nil {
		logger.Error("EngagementRepository:HasLiked", err)
		return false, err
	}
	return exists, nil
}

// CountLikes recomputes the cardinality of the like set; the count is never
// maintained client-side or incrementally.
func (r *EngagementRepository) CountLikes(ctx context.Context, eventID uuid.UUID) (int, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM event_likes WHERE event_id = $1`, eventID); err != nil {
		logger.Error("EngagementRepository:CountLikes", err)
		return 0, err
	}
	return count, nil
}

func (r *EngagementRepository) CreateComment(ctx context.Context, comment *entity.Comment) (*entity.Comment, error) {
	query := `
		INSERT INTO event_comments (event_id, author_id, author_name, avatar, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, event_id, author_id, author_name, avatar, body, created_at`

	var created entity.Comment
	err := r.DB.GetContext(ctx, &created, query,
		comment.EventID, comment.AuthorID, comment.AuthorName, comment.Avatar, comment.Body)
	if err != nil {
		logger.Error("EngagementRepository:CreateComment", err)
		return nil, err
	}

	return &created, nil
}

// ListComments returns the thread oldest first. The id tiebreak keeps the
// order stable for rows sharing a timestamp.
func (r *EngagementRepository) ListComments(ctx context.Context, eventID uuid.UUID) ([]entity.Comment, error) {
	query := `
		SELECT id, event_id, author_id, author_name, avatar, body, created_at
		FROM event_comments
		WHERE event_id = $1
		ORDER BY created_at ASC, id ASC`

	var comments []entity.Comment
	if err := r.DB.SelectContext(ctx, &comments, query, eventID); err != nil {
		if err == sql.ErrNoRows {
			return []entity.Comment{}, nil
		}
		logger.Error("EngagementRepository:ListComments", err)
		return nil, err
	}

	return comments, nil
}
