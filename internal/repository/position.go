package repository

import (
	"context"
	"errors"

	"spacedout/internal/models"

	"gorm.io/gorm"
)

// PositionRepository defines persistence operations for position samples.
type PositionRepository interface {
	Create(ctx context.Context, position *models.Position) error
	GetByID(ctx context.Context, id uint) (*models.Position, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Position, error)
}

type positionRepository struct {
	db *gorm.DB
}

// NewPositionRepository returns a new PositionRepository implementation.
func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &positionRepository{db: db}
}

func (r *positionRepository) Create(ctx context.Context, position *models.Position) error {
	if err := r.db.WithContext(ctx).Create(position).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *positionRepository) GetByID(ctx context.Context, id uint) (*models.Position, error) {
	var position models.Position
	if err := r.db.WithContext(ctx).First(&position, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Position", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &position, nil
}

func (r *positionRepository) ListByUser(ctx context.Context, userID uint) ([]models.Position, error) {
	var positions []models.Position
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp desc").
		Find(&positions).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return positions, nil
}
