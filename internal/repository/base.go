// Package repository implements the data access layer for the application.
package repository

import (
	"strings"

	"govportal/internal/database"

	"gorm.io/gorm"
)

func readDB(primary *gorm.DB) *gorm.DB {
	if db := database.GetReadDB(); db != nil {
		return db
	}
	return primary
}

// isUniqueConstraintError checks if a DB error is a unique constraint
// violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; sqlite says "UNIQUE
	// constraint failed" in tests.
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

// clampLimit bounds a page size to [1, 300] with the given default.
// Review panels default to 50.
func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > 300 {
		return 300
	}
	return limit
}
