package database

import (
	"fmt"

	"govportal/internal/models"

	"gorm.io/gorm"
)

// Models lists every entity registered for migration, in dependency order.
func Models() []any {
	return []any{
		&models.Profile{},
		&models.Appointment{},
		&models.VerificationRequest{},
		&models.RoleChangeRequest{},
		&models.GovAct{},
		&models.CourtAct{},
		&models.Warrant{},
		&models.Case{},
		&models.CourtSession{},
		&models.Lawyer{},
		&models.LawyerRequest{},
		&models.Inspection{},
		&models.Notification{},
	}
}

// Migrate applies the schema for all registered models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
