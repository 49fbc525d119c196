package service

import (
	"context"
	"time"

	"spacedout/internal/cache"
	"spacedout/internal/middleware"
	"spacedout/internal/models"
	"spacedout/internal/repository"
)

// CommentService handles the short-lived comments users pin to locations.
type CommentService struct {
	commentRepo  repository.CommentRepository
	userRepo     repository.UserRepository
	locationRepo repository.LocationRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	locationRepo repository.LocationRepository,
) *CommentService {
	return &CommentService{
		commentRepo:  commentRepo,
		userRepo:     userRepo,
		locationRepo: locationRepo,
	}
}

// Create attaches a comment to a location. Both the author and the location
// must exist; the expiration is pinned to creation time + 3 minutes.
func (s *CommentService) Create(ctx context.Context, text string, number int, userID, locationID uint) (*models.Comment, error) {
	if text == "" {
		return nil, models.NewValidationError("text is required")
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.locationRepo.GetByID(ctx, locationID); err != nil {
		return nil, err
	}

	comment := models.NewComment(text, number, userID, locationID)
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	cache.InvalidateLocation(ctx, locationID)
	return comment, nil
}

// Serialize produces the comment's wire form. The owning user and location
// are re-confirmed to exist; a dangling comment yields NotFound rather than
// a payload with broken references.
func (s *CommentService) Serialize(ctx context.Context, comment *models.Comment) (map[string]any, error) {
	if _, err := s.userRepo.GetByID(ctx, comment.UserID); err != nil {
		return nil, err
	}
	if _, err := s.locationRepo.GetByID(ctx, comment.LocationID); err != nil {
		return nil, err
	}
	return comment.Serialize(time.Now()), nil
}

// Get returns the comment by ID.
func (s *CommentService) Get(ctx context.Context, id uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

// ListByLocation returns the location's comments, newest first, expired ones
// included with their derived flag set.
func (s *CommentService) ListByLocation(ctx context.Context, locationID uint) ([]models.Comment, error) {
	if _, err := s.locationRepo.GetByID(ctx, locationID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByLocation(ctx, locationID)
}

// Delete removes a single comment.
func (s *CommentService) Delete(ctx context.Context, id uint) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.commentRepo.Delete(ctx, comment.ID); err != nil {
		return err
	}
	cache.InvalidateLocation(ctx, comment.LocationID)
	return nil
}

// PurgeExpired deletes comments whose expiration has passed. Readers never
// depend on this running; it only reclaims rows.
func (s *CommentService) PurgeExpired(ctx context.Context) (int64, error) {
	removed, err := s.commentRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		middleware.Logger.InfoContext(ctx, "purged expired comments", "count", removed)
	}
	return removed, nil
}
