package service

import (
	"context"
	"testing"
	"time"

	"spacedout/internal/geocode"
	"spacedout/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Function-field stubs: each test overrides only the methods it cares about;
// unset methods return zero values.

type userRepoStub struct {
	getByIDFn           func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn        func(ctx context.Context, email string) (*models.User, error)
	getBySessionTokenFn func(ctx context.Context, token string) (*models.User, error)
	getByUpdateTokenFn  func(ctx context.Context, token string) (*models.User, error)
	createFn            func(ctx context.Context, user *models.User) error
	updateFn            func(ctx context.Context, user *models.User) error
	deleteFn            func(ctx context.Context, id uint) error
	listFn              func(ctx context.Context, limit, offset int) ([]models.User, error)
	addFavoriteFn       func(ctx context.Context, user *models.User, location *models.Location) error
	removeFavoriteFn    func(ctx context.Context, user *models.User, location *models.Location) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.User{ID: id}, nil
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (s *userRepoStub) GetBySessionToken(ctx context.Context, token string) (*models.User, error) {
	if s.getBySessionTokenFn != nil {
		return s.getBySessionTokenFn(ctx, token)
	}
	return nil, nil
}

func (s *userRepoStub) GetByUpdateToken(ctx context.Context, token string) (*models.User, error) {
	if s.getByUpdateTokenFn != nil {
		return s.getByUpdateTokenFn(ctx, token)
	}
	return nil, nil
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	if s.listFn != nil {
		return s.listFn(ctx, limit, offset)
	}
	return nil, nil
}

func (s *userRepoStub) AddFavorite(ctx context.Context, user *models.User, location *models.Location) error {
	if s.addFavoriteFn != nil {
		return s.addFavoriteFn(ctx, user, location)
	}
	return nil
}

func (s *userRepoStub) RemoveFavorite(ctx context.Context, user *models.User, location *models.Location) error {
	if s.removeFavoriteFn != nil {
		return s.removeFavoriteFn(ctx, user, location)
	}
	return nil
}

type locationRepoStub struct {
	getByIDFn func(ctx context.Context, id uint) (*models.Location, error)
	createFn  func(ctx context.Context, location *models.Location) error
	deleteFn  func(ctx context.Context, id uint) error
	listFn    func(ctx context.Context) ([]models.Location, error)
}

func (s *locationRepoStub) GetByID(ctx context.Context, id uint) (*models.Location, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.Location{ID: id}, nil
}

func (s *locationRepoStub) Create(ctx context.Context, location *models.Location) error {
	if s.createFn != nil {
		return s.createFn(ctx, location)
	}
	return nil
}

func (s *locationRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *locationRepoStub) List(ctx context.Context) ([]models.Location, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

type commentRepoStub struct {
	createFn         func(ctx context.Context, comment *models.Comment) error
	getByIDFn        func(ctx context.Context, id uint) (*models.Comment, error)
	listByLocationFn func(ctx context.Context, locationID uint) ([]models.Comment, error)
	deleteFn         func(ctx context.Context, id uint) error
	deleteExpiredFn  func(ctx context.Context, before time.Time) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	if s.createFn != nil {
		return s.createFn(ctx, comment)
	}
	return nil
}

func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.Comment{ID: id}, nil
}

func (s *commentRepoStub) ListByLocation(ctx context.Context, locationID uint) ([]models.Comment, error) {
	if s.listByLocationFn != nil {
		return s.listByLocationFn(ctx, locationID)
	}
	return nil, nil
}

func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *commentRepoStub) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	if s.deleteExpiredFn != nil {
		return s.deleteExpiredFn(ctx, before)
	}
	return 0, nil
}

type positionRepoStub struct {
	createFn     func(ctx context.Context, position *models.Position) error
	getByIDFn    func(ctx context.Context, id uint) (*models.Position, error)
	listByUserFn func(ctx context.Context, userID uint) ([]models.Position, error)
}

func (s *positionRepoStub) Create(ctx context.Context, position *models.Position) error {
	if s.createFn != nil {
		return s.createFn(ctx, position)
	}
	return nil
}

func (s *positionRepoStub) GetByID(ctx context.Context, id uint) (*models.Position, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.Position{ID: id}, nil
}

func (s *positionRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.Position, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID)
	}
	return nil, nil
}

type geocoderStub struct {
	geocodeFn func(ctx context.Context, address string) (geocode.Result, error)
}

func (s *geocoderStub) Geocode(ctx context.Context, address string) (geocode.Result, error) {
	if s.geocodeFn != nil {
		return s.geocodeFn(ctx, address)
	}
	return geocode.Result{Latitude: 42.4534, Longitude: -76.4735}, nil
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeValidation)
}
