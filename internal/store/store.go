/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package store defines the persistence contracts consumed by the engine
// and provides the gorm-backed production adapter plus an in-memory
// adapter used in tests. Serialization of concurrent writers per event is
// the repository's concern, not the engine's.
package store

import (
	"context"

	"github.com/arenaworks/arenacomp/internal/models"
)

// ScheduleRepository persists schedule aggregates by (eventID, scheduleID).
type ScheduleRepository interface {
	Save(ctx context.Context, schedule *models.Schedule) error
	FindByID(ctx context.Context, eventID, scheduleID string) (*models.Schedule, error)
	FindByEventID(ctx context.Context, eventID string) ([]models.Schedule, error)
	FindPublishedByEventID(ctx context.Context, eventID string) ([]models.Schedule, error)
	Delete(ctx context.Context, eventID, scheduleID string) error
}

// FilterStore persists elimination filters and their progression state.
type FilterStore interface {
	FiltersByEvent(ctx context.Context, eventID string) ([]models.EliminationFilter, error)
	FindFilter(ctx context.Context, eventID, filterID string) (*models.EliminationFilter, error)
	SaveFilter(ctx context.Context, filter *models.EliminationFilter) error
}

// ScoreSource reads raw per-athlete scores recorded by the external
// scoring collaborator. Read-only from this side.
type ScoreSource interface {
	ScoresByFilter(ctx context.Context, eventID, filterID string) ([]models.Score, error)
}
