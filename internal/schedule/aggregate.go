/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package schedule

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arenaworks/arenacomp/internal/errs"
	"github.com/arenaworks/arenacomp/internal/models"
	"github.com/arenaworks/arenacomp/internal/timeslot"
)

// AddDay builds one day schedule, appends it, and re-validates the whole
// schedule's per-day time budgets. The full re-validation on every add is
// intentional: a config change must not silently leave earlier days over
// budget.
func AddDay(s *models.Schedule, day models.EventDay, athletes []models.Athlete, categories []models.Category, wods []models.Wod, logger zerolog.Logger) error {
	built := buildDaySchedule(day, athletes, categories, wods, s.Config, logger)
	s.Days = append(s.Days, built)
	return ValidateTimeBudget(s)
}

// ValidateTimeBudget checks every day against the configured hour budget,
// naming all offending days at once.
func ValidateTimeBudget(s *models.Schedule) error {
	budget := maxDayHours(s.Config)
	var offending []string
	for _, day := range s.Days {
		if !day.WithinTimeLimit(budget) {
			offending = append(offending, day.DayID)
		}
	}
	if len(offending) > 0 {
		return errs.TimeConstraint(budget, offending)
	}
	return nil
}

// Publish transitions DRAFT -> PUBLISHED. Rejected unless the schedule has
// days and every day has at least one structurally valid session.
func Publish(s *models.Schedule, now time.Time) error {
	if len(s.Days) == 0 {
		return errs.InvalidStatef("cannot publish schedule %s: no days", s.ID)
	}

	var invalid []string
	for _, day := range s.Days {
		if !day.Valid() {
			invalid = append(invalid, day.DayID)
		}
	}
	if len(invalid) > 0 {
		return errs.InvalidStatef("cannot publish schedule %s: day(s) %s have no valid sessions", s.ID, strings.Join(invalid, ", "))
	}

	s.Status = models.StatusPublished
	s.PublishedAt = &now
	return nil
}

// Unpublish reverts PUBLISHED -> DRAFT. Always succeeds.
func Unpublish(s *models.Schedule) {
	s.Status = models.StatusDraft
	s.PublishedAt = nil
}

// SessionUpdate carries the mutable session fields. Nil fields are left
// untouched.
type SessionUpdate struct {
	StartTime       *string `json:"startTime,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
}

// UpdateSession locates the session across all days, applies the updates,
// and re-runs time-constraint validation. The owning day's elapsed time
// shifts by any duration delta.
func UpdateSession(s *models.Schedule, sessionID string, update SessionUpdate) error {
	for di := range s.Days {
		day := &s.Days[di]
		for si := range day.Sessions {
			session := &day.Sessions[si]
			if session.ID != sessionID {
				continue
			}

			if update.StartTime != nil {
				parsed, err := timeslot.Parse(*update.StartTime)
				if err != nil {
					return errs.Validationf("invalid startTime: %v", err)
				}
				session.StartTime = parsed.String()
				session.StartTimeUTC = timeslot.ConvertToUTC(parsed, timezone(s.Config)).String()
			}

			if update.DurationMinutes != nil {
				if *update.DurationMinutes <= 0 {
					return errs.Validationf("durationMinutes must be positive")
				}
				day.ElapsedMinutes += *update.DurationMinutes - session.DurationMinutes
				session.DurationMinutes = *update.DurationMinutes
			}

			return ValidateTimeBudget(s)
		}
	}
	return errs.NotFoundf("session %s not found in schedule %s", sessionID, s.ID)
}
