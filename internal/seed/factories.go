// Package seed provides helpers to create demo and test data. Development
// and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"spacedout/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the shared password for every seeded account.
const DemoPassword = "spacedout-demo"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand

	// Demo accounts share one digest so seeding large user counts is not
	// bound by the bcrypt work factor.
	passwordDigest string
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) (*Factory, error) {
	gofakeit.Seed(time.Now().UnixNano())

	digest, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	return &Factory{
		db:             db,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
		passwordDigest: string(digest),
	}, nil
}

// CreateUser persists a user with faked identity and an established session.
func (f *Factory) CreateUser() (*models.User, error) {
	name := gofakeit.Name()
	user := &models.User{
		Name:           name,
		Email:          gofakeit.Email(),
		PasswordDigest: f.passwordDigest,
	}
	if err := user.RenewSession(); err != nil {
		return nil, err
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to seed user %q: %w", name, err)
	}
	return user, nil
}

// CreateLocation persists a location with faked address data. Seeded
// locations carry faked coordinates; the geocoder is never called here.
func (f *Factory) CreateLocation() (*models.Location, error) {
	addr := gofakeit.Address()
	location := models.NewLocation(
		gofakeit.Company(),
		fmt.Sprintf("%s, %s %s", addr.Street, addr.City, addr.Zip),
		addr.Latitude,
		addr.Longitude,
	)
	if err := f.db.Create(location).Error; err != nil {
		return nil, fmt.Errorf("failed to seed location: %w", err)
	}
	return location, nil
}

// CreateComment persists a comment from the user at the location. A share of
// seeded comments is backdated past its expiration so derived-expiry paths
// have data.
func (f *Factory) CreateComment(user *models.User, location *models.Location) (*models.Comment, error) {
	comment := models.NewComment(gofakeit.Sentence(6), f.rng.Intn(10)-1, user.ID, location.ID)
	if f.rng.Intn(3) == 0 {
		backdate := models.CommentLifetime + time.Duration(f.rng.Intn(3600))*time.Second
		comment.Timestamp = comment.Timestamp.Add(-backdate)
		comment.ExpiresAt = comment.ExpiresAt.Add(-backdate)
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("failed to seed comment: %w", err)
	}
	return comment, nil
}

// CreatePositionTrail persists a short trail of position samples for the
// user, spread over the past hours.
func (f *Factory) CreatePositionTrail(user *models.User, count int) error {
	for i := 0; i < count; i++ {
		position := models.NewPosition(
			user.ID,
			gofakeit.Latitude(),
			gofakeit.Longitude(),
		)
		position.Timestamp = position.Timestamp.Add(-time.Duration(f.rng.Intn(48)) * time.Hour)
		if err := f.db.Create(position).Error; err != nil {
			return fmt.Errorf("failed to seed position: %w", err)
		}
	}
	return nil
}

// AddFavorite links the user to the location, ignoring duplicates.
func (f *Factory) AddFavorite(user *models.User, location *models.Location) error {
	if err := f.db.Model(user).Association("Favorites").Append(location); err != nil {
		return fmt.Errorf("failed to seed favorite: %w", err)
	}
	return nil
}
