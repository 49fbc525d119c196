package seed

import (
	"fmt"

	"spacedout/internal/middleware"
	"spacedout/internal/models"

	"gorm.io/gorm"
)

// Options configures a seeding run.
type Options struct {
	NumUsers            int
	NumLocations        int // faked locations on top of the presets
	CommentsPerLocation int
	PositionsPerUser    int
	ShouldClean         bool
}

// DefaultOptions is a small demo dataset.
var DefaultOptions = Options{
	NumUsers:            12,
	NumLocations:        4,
	CommentsPerLocation: 3,
	PositionsPerUser:    5,
}

// Run seeds the database: preset locations, faked users and locations,
// comments, favorites, and position trails.
func Run(db *gorm.DB, opts Options) error {
	if opts.ShouldClean {
		if err := Clean(db); err != nil {
			return err
		}
	}

	factory, err := NewFactory(db)
	if err != nil {
		return err
	}

	locations, err := SeedPresetLocations(db)
	if err != nil {
		return err
	}
	for i := 0; i < opts.NumLocations; i++ {
		location, err := factory.CreateLocation()
		if err != nil {
			return err
		}
		locations = append(locations, *location)
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	if len(users) > 0 {
		for li := range locations {
			for c := 0; c < opts.CommentsPerLocation; c++ {
				author := users[factory.rng.Intn(len(users))]
				if _, err := factory.CreateComment(author, &locations[li]); err != nil {
					return err
				}
			}
		}

		for _, user := range users {
			if err := factory.CreatePositionTrail(user, opts.PositionsPerUser); err != nil {
				return err
			}
			// Each user favorites a couple of locations.
			for i := 0; i < 2 && i < len(locations); i++ {
				pick := factory.rng.Intn(len(locations))
				if err := factory.AddFavorite(user, &locations[pick]); err != nil {
					return err
				}
			}
		}
	}

	middleware.Logger.Info("seeding complete",
		"users", len(users), "locations", len(locations))
	return nil
}

// Clean removes all seeded rows. Join rows go first so foreign keys cannot
// complain on engines that enforce them.
func Clean(db *gorm.DB) error {
	for _, stmt := range []string{
		"DELETE FROM favorites",
		"DELETE FROM comments",
		"DELETE FROM positions",
		"DELETE FROM locations",
		"DELETE FROM users",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("clean failed (%s): %w", stmt, err)
		}
	}
	return nil
}
