package main

import (
	"log"
	"os"

	"github.com/google/uuid"

	"spotshot/internal/database"
	"spotshot/internal/domain/favorite"
	"spotshot/internal/domain/moderation"
	"spotshot/internal/domain/spot"
	"spotshot/internal/domain/user"
)

// Seeds a local database with a starter set of well-known spots so the
// frontend has something to render on a fresh checkout.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "spotshot.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&spot.Spot{},
		&favorite.Favorite{},
		&moderation.SpotReport{},
		&user.Profile{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM spot_reports")
	db.Exec("DELETE FROM spots")
	db.Exec("DELETE FROM profiles")

	author := user.Profile{
		ID:       uuid.NewString(),
		Username: "emma.dubois",
	}
	if err := db.Create(&author).Error; err != nil {
		log.Fatal("seed profile failed:", err)
	}

	seedSpots := []spot.Spot{
		{
			Name:        "Montmartre Stairs",
			City:        "Paris",
			Country:     "France",
			Description: "Romantic view with stairs and sunset light.",
			Latitude:    48.8867,
			Longitude:   2.3431,
		},
		{
			Name:        "Brooklyn Bridge",
			City:        "New York",
			Country:     "USA",
			Description: "Iconic NYC spot with skyline in the background.",
			Latitude:    40.7061,
			Longitude:   -73.9969,
		},
		{
			Name:        "Shibuya Crossing",
			City:        "Tokyo",
			Country:     "Japan",
			Description: "The world's busiest crosswalk from above.",
			Latitude:    35.6595,
			Longitude:   139.7004,
		},
		{
			Name:        "Santorini Viewpoint",
			City:        "Santorini",
			Country:     "Greece",
			Description: "White buildings with blue domes and sea view.",
			Latitude:    36.3932,
			Longitude:   25.4615,
		},
		{
			Name:        "Morskie Oko",
			City:        "Zakopane",
			Country:     "Poland",
			Description: "Mountain lake surrounded by the Tatras.",
			Latitude:    49.1984,
			Longitude:   20.07,
		},
	}

	for i := range seedSpots {
		seedSpots[i].ID = uuid.NewString()
		seedSpots[i].AuthorID = author.ID
		seedSpots[i].Image = "https://placehold.co/1200x800"
		seedSpots[i].Accepted = true
		if err := db.Create(&seedSpots[i]).Error; err != nil {
			log.Fatal("seed spot failed:", err)
		}
	}

	log.Printf("Seeded %d spots for author %s", len(seedSpots), author.Username)
}
