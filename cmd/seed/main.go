// Command main runs the database seeder for Spaced Out.
package main

import (
	"flag"
	"log"

	"spacedout/internal/config"
	"spacedout/internal/database"
	"spacedout/internal/seed"
)

func main() {
	numUsers := flag.Int("users", seed.DefaultOptions.NumUsers, "Number of users to create")
	numLocations := flag.Int("locations", seed.DefaultOptions.NumLocations, "Number of faked locations on top of the presets")
	commentsPerLocation := flag.Int("comments", seed.DefaultOptions.CommentsPerLocation, "Comments per location")
	positionsPerUser := flag.Int("positions", seed.DefaultOptions.PositionsPerUser, "Position samples per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumUsers:            *numUsers,
		NumLocations:        *numLocations,
		CommentsPerLocation: *commentsPerLocation,
		PositionsPerUser:    *positionsPerUser,
		ShouldClean:         *shouldClean,
	}
	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded %d users and %d extra locations (demo password: %q)",
		opts.NumUsers, opts.NumLocations, seed.DemoPassword)
}
