// Command migrate applies the database schema for the portal.
package main

import (
	"fmt"
	"log"

	"govportal/internal/config"
	"govportal/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("migrations applied")
	return nil
}
