package repository

import (
	"context"
	"errors"

	"spacedout/internal/models"
	"spacedout/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LocationRepository defines persistence operations for locations.
type LocationRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Location, error)
	Create(ctx context.Context, location *models.Location) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Location, error)
}

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository returns a new LocationRepository implementation.
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) GetByID(ctx context.Context, id uint) (*models.Location, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "GetByID", "locations")
	defer span.End()

	var location models.Location
	err := r.db.WithContext(ctx).
		Preload("Comments").
		Preload("FavUsers").
		First(&location, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Location", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &location, nil
}

func (r *locationRepository) Create(ctx context.Context, location *models.Location) error {
	if err := r.db.WithContext(ctx).Create(location).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the location, its comments, and its favorites join rows.
// Favoriting users themselves are untouched.
func (r *locationRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := observability.TraceRepositoryMethod(ctx, "Delete", "locations")
	defer span.End()

	err := r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&models.Location{ID: id}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *locationRepository) List(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	if err := r.db.WithContext(ctx).Order("id").Find(&locations).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return locations, nil
}
