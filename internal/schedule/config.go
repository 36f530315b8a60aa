/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package schedule is the generation engine: it turns an event's days,
// categories, WODs and registered athletes into a conflict-free,
// time-bounded schedule of competition sessions, and owns the aggregate's
// publish lifecycle. The request config is echoed verbatim onto the
// schedule; defaults are resolved at the point of use so the stored
// aggregate always reflects what the caller sent.
package schedule

import (
	"github.com/arenaworks/arenacomp/internal/errs"
	"github.com/arenaworks/arenacomp/internal/models"
	"github.com/arenaworks/arenacomp/internal/timeslot"
)

const (
	defaultMaxDayHours     = 10
	defaultAthletesPerHeat = 8
	defaultStartTime       = "08:00"
	defaultTimezone        = "UTC"
	defaultTransitionTime  = 5
	defaultSetupTime       = 10

	// Default WOD durations when the WOD itself carries none.
	defaultWodDuration    = 20
	defaultVersusDuration = 15
)

// ValidateConfig rejects configurations the builders cannot act on.
// VERSUS requests must carry a heat count and a heat-to-WOD mapping.
func ValidateConfig(cfg models.ScheduleConfig) error {
	if cfg.CompetitionMode != "" && !cfg.CompetitionMode.Valid() {
		return errs.Validationf("unknown competition mode %q", cfg.CompetitionMode)
	}
	if cfg.StartTime != "" {
		if _, err := timeslot.Parse(cfg.StartTime); err != nil {
			return errs.Validationf("invalid startTime: %v", err)
		}
	}
	if cfg.MaxDayHours < 0 || cfg.MaxDayHours > 24 {
		return errs.Validationf("maxDayHours %d out of range", cfg.MaxDayHours)
	}
	if mode(cfg) == models.ModeVersus {
		if cfg.NumberOfHeats <= 0 {
			return errs.Validationf("numberOfHeats is required for VERSUS mode")
		}
		if len(cfg.HeatWodMapping) == 0 {
			return errs.Validationf("heatWodMapping is required for VERSUS mode")
		}
	}
	return nil
}

func mode(cfg models.ScheduleConfig) models.CompetitionMode {
	if cfg.CompetitionMode == "" {
		return models.ModeHeats
	}
	return cfg.CompetitionMode
}

func maxDayHours(cfg models.ScheduleConfig) int {
	if cfg.MaxDayHours > 0 {
		return cfg.MaxDayHours
	}
	return defaultMaxDayHours
}

func athletesPerHeat(cfg models.ScheduleConfig) int {
	if cfg.AthletesPerHeat > 0 {
		return cfg.AthletesPerHeat
	}
	return defaultAthletesPerHeat
}

func transitionTime(cfg models.ScheduleConfig) int {
	if cfg.TransitionTime > 0 {
		return cfg.TransitionTime
	}
	return defaultTransitionTime
}

func setupTime(cfg models.ScheduleConfig) int {
	if cfg.SetupTime > 0 {
		return cfg.SetupTime
	}
	return defaultSetupTime
}

func timezone(cfg models.ScheduleConfig) string {
	if cfg.Timezone != "" {
		return cfg.Timezone
	}
	return defaultTimezone
}

func dayStart(cfg models.ScheduleConfig) timeslot.TimeSlot {
	raw := cfg.StartTime
	if raw == "" {
		raw = defaultStartTime
	}
	// Validated by ValidateConfig before generation starts.
	ts, err := timeslot.Parse(raw)
	if err != nil {
		return timeslot.MustParse(defaultStartTime)
	}
	return ts
}

func wodDuration(wod models.Wod, fallback int) int {
	if wod.EstimatedDurationMinutes > 0 {
		return wod.EstimatedDurationMinutes
	}
	return fallback
}
