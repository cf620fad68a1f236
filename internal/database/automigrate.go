package database

import (
	"fmt"

	"gorm.io/gorm"

	"kanmind/internal/domain"
)

// AutoMigrate runs GORM auto-migration for all domain models.
// It creates tables, indexes, and foreign key constraints based on the
// struct definitions in the domain package. Order matters: referenced
// tables are migrated before the tables referencing them.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.User{},
		&domain.AuthToken{},
		&domain.Board{},
		&domain.BoardMember{},
		&domain.Task{},
		&domain.Comment{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}
