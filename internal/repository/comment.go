package repository

import (
	"context"
	"errors"
	"time"

	"spacedout/internal/models"
	"spacedout/internal/observability"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByLocation(ctx context.Context, locationID uint) ([]models.Comment, error)
	Delete(ctx context.Context, id uint) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) ListByLocation(ctx context.Context, locationID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("timestamp desc").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteExpired removes comments whose expiration is at or before the given
// instant and reports how many rows were removed. Run periodically; readers
// never depend on it because expiry is derived at read time.
func (r *commentRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "DeleteExpired", "comments")
	defer span.End()

	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", before).
		Delete(&models.Comment{})
	if res.Error != nil {
		return 0, models.NewInternalError(res.Error)
	}
	return res.RowsAffected, nil
}
