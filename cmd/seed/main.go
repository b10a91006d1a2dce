// Command seed populates the portal database with demo data.
package main

import (
	"flag"
	"log"

	"govportal/internal/config"
	"govportal/internal/database"
	"govportal/internal/seed"
)

func main() {
	numCitizens := flag.Int("citizens", 50, "Number of citizen profiles to create")
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

	s := seed.NewSeeder(db, seed.Options{
		NumCitizens: *numCitizens,
		LoginDomain: cfg.LoginDomain,
		ShouldClean: *shouldClean,
	})

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}
	if err := s.Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
