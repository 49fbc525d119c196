package service

import (
	"context"

	"spacedout/internal/cache"
	"spacedout/internal/middleware"
	"spacedout/internal/models"
	"spacedout/internal/repository"
)

// UserService handles account reads, deletion, and the favorites relation.
type UserService struct {
	userRepo     repository.UserRepository
	locationRepo repository.LocationRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, locationRepo repository.LocationRepository) *UserService {
	return &UserService{userRepo: userRepo, locationRepo: locationRepo}
}

// GetUser returns the user with favorites loaded.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers returns a page of users.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.userRepo.List(ctx, limit, offset)
}

// DeleteAccount removes the user and everything it owns: comments, positions,
// and favorites join rows. Favorited locations survive, so their cached
// representations (which embed the favoriting users) must be dropped.
func (s *UserService) DeleteAccount(ctx context.Context, id uint) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return err
	}

	for _, fav := range user.Favorites {
		cache.InvalidateLocation(ctx, fav.ID)
	}
	middleware.Logger.InfoContext(ctx, "account deleted", "user_id", id)
	return nil
}

// Favorite marks a location as a favorite of the user. Idempotent.
func (s *UserService) Favorite(ctx context.Context, userID, locationID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	location, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.AddFavorite(ctx, user, location); err != nil {
		return nil, err
	}
	cache.InvalidateLocation(ctx, locationID)

	return s.userRepo.GetByID(ctx, userID)
}

// Unfavorite removes a location from the user's favorites.
func (s *UserService) Unfavorite(ctx context.Context, userID, locationID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	location, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.RemoveFavorite(ctx, user, location); err != nil {
		return nil, err
	}
	cache.InvalidateLocation(ctx, locationID)

	return s.userRepo.GetByID(ctx, userID)
}

// ListFavorites returns the user's favorite locations in simple form.
func (s *UserService) ListFavorites(ctx context.Context, userID uint) ([]map[string]any, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	favorites := make([]map[string]any, 0, len(user.Favorites))
	for _, f := range user.Favorites {
		favorites = append(favorites, f.SimpleSerialize())
	}
	return favorites, nil
}
