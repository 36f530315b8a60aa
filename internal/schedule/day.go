/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package schedule

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/arenaworks/arenacomp/internal/models"
)

// buildDaySchedule generates the sessions of one venue-day. HEATS and
// SIMULTANEOUS iterate WODs outer and categories inner; VERSUS iterates
// categories outer and heat numbers inner. Categories with no athletes are
// skipped; athletes referencing an unknown category are silently excluded.
func buildDaySchedule(day models.EventDay, athletes []models.Athlete, categories []models.Category, wods []models.Wod, cfg models.ScheduleConfig, logger zerolog.Logger) models.ScheduleDay {
	cursor := dayStart(cfg)
	elapsed := 0

	byCategory := groupAthletes(athletes, categories)
	dayWods := wodsForDay(wods, day.ID)

	out := models.ScheduleDay{
		DayID:     day.ID,
		Name:      day.Name,
		Date:      day.Date,
		StartTime: cursor.String(),
	}

	if mode(cfg) == models.ModeVersus {
		wodsByID := make(map[string]models.Wod, len(wods))
		for _, wod := range wods {
			wodsByID[wod.ID] = wod
		}
		for _, category := range categories {
			catAthletes := byCategory[category.ID]
			if len(catAthletes) == 0 {
				continue
			}
			sessions, next, spent := buildVersusSessions(category, catAthletes, wodsByID, cfg, cursor, logger)
			out.Sessions = append(out.Sessions, sessions...)
			cursor = next
			elapsed += spent
		}
		out.ElapsedMinutes = elapsed
		return out
	}

	for _, wod := range dayWods {
		built := 0
		for _, category := range categories {
			catAthletes := byCategory[category.ID]
			if len(catAthletes) == 0 {
				continue
			}

			var session models.Session
			var duration int
			if mode(cfg) == models.ModeSimultaneous {
				session, duration = buildSimultaneousSession(wod, category, catAthletes, cfg, cursor)
			} else {
				session, duration = buildHeatsSession(wod, category, catAthletes, cfg, cursor)
			}

			out.Sessions = append(out.Sessions, session)
			step := duration + transitionTime(cfg)
			cursor = cursor.Add(step)
			elapsed += step
			built++
		}
		if built > 0 {
			cursor = cursor.Add(setupTime(cfg))
			elapsed += setupTime(cfg)
		}
	}

	out.ElapsedMinutes = elapsed
	return out
}

// groupAthletes indexes athletes by category, dropping registrations whose
// category id matches nothing. Documented behavior, not an error.
func groupAthletes(athletes []models.Athlete, categories []models.Category) map[string][]models.Athlete {
	known := make(map[string]struct{}, len(categories))
	for _, category := range categories {
		known[category.ID] = struct{}{}
	}

	grouped := make(map[string][]models.Athlete)
	for _, athlete := range athletes {
		if _, ok := known[athlete.CategoryID]; !ok {
			continue
		}
		grouped[athlete.CategoryID] = append(grouped[athlete.CategoryID], athlete)
	}
	return grouped
}

// wodsForDay keeps WODs pinned to this day plus unpinned ones, in
// position order.
func wodsForDay(wods []models.Wod, dayID string) []models.Wod {
	var out []models.Wod
	for _, wod := range wods {
		if wod.DayID == "" || wod.DayID == dayID {
			out = append(out, wod)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}
