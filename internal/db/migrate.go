/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/arenaworks/arenacomp/internal/models"
)

// Migrate applies database schema migrations using GORM auto-migrate.
func Migrate(database *gorm.DB) error {
	if err := database.AutoMigrate(
		// Event context (read-side input for generation)
		&models.Event{},
		&models.EventDay{},
		&models.Category{},
		&models.Wod{},
		&models.Athlete{},

		// Scoring and progression
		&models.Score{},
		&models.EliminationFilter{},

		// Generated schedules
		&models.Schedule{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
