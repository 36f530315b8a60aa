/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package eventdata assembles the read-only inputs a schedule generation
// run needs: event metadata, days, categories, WODs and registered
// athletes. It is idempotent and performs no writes; day synthesis from
// the event's date range is derived deterministically so repeated calls
// yield identical day ids.
package eventdata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/arenaworks/arenacomp/internal/errs"
	"github.com/arenaworks/arenacomp/internal/models"
)

// Bundle is everything generation reads about one event.
type Bundle struct {
	Event      models.Event
	Days       []models.EventDay
	Categories []models.Category
	Wods       []models.Wod
	Athletes   []models.Athlete
}

// Service loads event data from the database.
type Service struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// New constructs the event data service.
func New(db *gorm.DB, logger zerolog.Logger) *Service {
	return &Service{
		db:     db,
		logger: logger.With().Str("component", "eventdata").Logger(),
	}
}

// GetEventData fetches the event and its collections. When the event has
// no stored days but carries a start and end date, one day per calendar
// date in the inclusive range is synthesized. Empty collections after
// synthesis fail with distinct validation errors.
func (s *Service) GetEventData(ctx context.Context, eventID string) (*Bundle, error) {
	var event models.Event
	err := s.db.WithContext(ctx).Where("id = ?", eventID).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFoundf("event %s not found", eventID)
	}
	if err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}

	bundle := &Bundle{Event: event}

	if err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Order("position ASC, date ASC").Find(&bundle.Days).Error; err != nil {
		return nil, fmt.Errorf("load days: %w", err)
	}
	if len(bundle.Days) == 0 {
		bundle.Days = SynthesizeDays(event)
		if len(bundle.Days) > 0 {
			s.logger.Debug().Str("event_id", eventID).Int("days", len(bundle.Days)).Msg("synthesized days from event date range")
		}
	}

	if err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Order("name ASC").Find(&bundle.Categories).Error; err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Order("position ASC").Find(&bundle.Wods).Error; err != nil {
		return nil, fmt.Errorf("load wods: %w", err)
	}
	if err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&bundle.Athletes).Error; err != nil {
		return nil, fmt.Errorf("load athletes: %w", err)
	}

	if err := Validate(bundle); err != nil {
		return nil, err
	}
	return bundle, nil
}

// SynthesizeDays derives one day per calendar date in the event's
// inclusive start/end range, named "Day N" in order, with deterministic
// ids of the form day-YYYY-MM-DD. Events without both dates synthesize
// nothing.
func SynthesizeDays(event models.Event) []models.EventDay {
	if event.StartDate == nil || event.EndDate == nil {
		return nil
	}

	start := truncateDate(*event.StartDate)
	end := truncateDate(*event.EndDate)
	if end.Before(start) {
		return nil
	}

	var days []models.EventDay
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		days = append(days, models.EventDay{
			ID:       "day-" + date.Format("2006-01-02"),
			EventID:  event.ID,
			Name:     fmt.Sprintf("Day %d", len(days)+1),
			Date:     date,
			Position: len(days) + 1,
		})
	}
	return days
}

// Validate rejects a bundle with any empty input collection, each with an
// actionable message.
func Validate(bundle *Bundle) error {
	switch {
	case len(bundle.Days) == 0:
		return errs.Validationf("cannot generate schedule: no event days")
	case len(bundle.Wods) == 0:
		return errs.Validationf("cannot generate schedule: no WODs")
	case len(bundle.Categories) == 0:
		return errs.Validationf("cannot generate schedule: no categories")
	case len(bundle.Athletes) == 0:
		return errs.Validationf("cannot generate schedule: no registered athletes")
	}
	return nil
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
