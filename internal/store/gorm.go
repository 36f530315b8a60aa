/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/arenaworks/arenacomp/internal/errs"
	"github.com/arenaworks/arenacomp/internal/models"
)

// GormStore is the database-backed adapter for all three contracts.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a gorm connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Save upserts the schedule aggregate.
func (s *GormStore) Save(ctx context.Context, schedule *models.Schedule) error {
	return s.db.WithContext(ctx).Save(schedule).Error
}

// FindByID loads one schedule scoped to its event.
func (s *GormStore) FindByID(ctx context.Context, eventID, scheduleID string) (*models.Schedule, error) {
	var schedule models.Schedule
	err := s.db.WithContext(ctx).
		Where("event_id = ? AND id = ?", eventID, scheduleID).
		First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFoundf("schedule %s not found for event %s", scheduleID, eventID)
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// FindByEventID lists every schedule for an event, newest first.
func (s *GormStore) FindByEventID(ctx context.Context, eventID string) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := s.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// FindPublishedByEventID lists published schedules for an event.
func (s *GormStore) FindPublishedByEventID(ctx context.Context, eventID string) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := s.db.WithContext(ctx).
		Where("event_id = ? AND status = ?", eventID, models.StatusPublished).
		Order("created_at DESC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// Delete removes a schedule. Deleting an absent schedule is NotFound.
func (s *GormStore) Delete(ctx context.Context, eventID, scheduleID string) error {
	result := s.db.WithContext(ctx).
		Where("event_id = ? AND id = ?", eventID, scheduleID).
		Delete(&models.Schedule{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NotFoundf("schedule %s not found for event %s", scheduleID, eventID)
	}
	return nil
}

// FiltersByEvent lists filters in chain order.
func (s *GormStore) FiltersByEvent(ctx context.Context, eventID string) ([]models.EliminationFilter, error) {
	var filters []models.EliminationFilter
	err := s.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("position ASC, created_at ASC").
		Find(&filters).Error
	if err != nil {
		return nil, err
	}
	return filters, nil
}

// FindFilter loads one filter scoped to its event.
func (s *GormStore) FindFilter(ctx context.Context, eventID, filterID string) (*models.EliminationFilter, error) {
	var filter models.EliminationFilter
	err := s.db.WithContext(ctx).
		Where("event_id = ? AND id = ?", eventID, filterID).
		First(&filter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFoundf("filter %s not found for event %s", filterID, eventID)
	}
	if err != nil {
		return nil, err
	}
	return &filter, nil
}

// SaveFilter upserts a filter.
func (s *GormStore) SaveFilter(ctx context.Context, filter *models.EliminationFilter) error {
	return s.db.WithContext(ctx).Save(filter).Error
}

// ScoresByFilter reads scores recorded against a filter, oldest first so
// ties keep submission order.
func (s *GormStore) ScoresByFilter(ctx context.Context, eventID, filterID string) ([]models.Score, error) {
	var scores []models.Score
	err := s.db.WithContext(ctx).
		Where("event_id = ? AND filter_id = ?", eventID, filterID).
		Order("recorded_at ASC").
		Find(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}
