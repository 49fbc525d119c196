package service

import (
	"context"

	"spacedout/internal/models"
	"spacedout/internal/repository"
	"spacedout/internal/validation"
)

// PositionService records and lists user position samples.
type PositionService struct {
	positionRepo repository.PositionRepository
	userRepo     repository.UserRepository
}

// NewPositionService returns a new PositionService.
func NewPositionService(positionRepo repository.PositionRepository, userRepo repository.UserRepository) *PositionService {
	return &PositionService{positionRepo: positionRepo, userRepo: userRepo}
}

// Record stores a coordinate sample for the user. The timestamp is set
// server-side, never taken from the caller.
func (s *PositionService) Record(ctx context.Context, userID uint, latitude, longitude float64) (*models.Position, error) {
	if err := validation.ValidateCoordinates(latitude, longitude); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	position := models.NewPosition(userID, latitude, longitude)
	if err := s.positionRepo.Create(ctx, position); err != nil {
		return nil, err
	}
	return position, nil
}

// ListForUser returns the user's position history, newest first.
func (s *PositionService) ListForUser(ctx context.Context, userID uint) ([]models.Position, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.positionRepo.ListByUser(ctx, userID)
}
