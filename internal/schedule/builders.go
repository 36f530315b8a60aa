/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package schedule

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arenaworks/arenacomp/internal/models"
	"github.com/arenaworks/arenacomp/internal/timeslot"
)

// buildSimultaneousSession schedules every athlete in the category on the
// WOD at once, one station per athlete. Returns the session and its
// duration in minutes; the caller advances the cursor.
func buildSimultaneousSession(wod models.Wod, category models.Category, athletes []models.Athlete, cfg models.ScheduleConfig, cursor timeslot.TimeSlot) (models.Session, int) {
	duration := wodDuration(wod, defaultWodDuration)
	end := cursor.Add(duration)

	slots := make([]models.AthleteSlot, len(athletes))
	for i, athlete := range athletes {
		slots[i] = models.AthleteSlot{
			AthleteID:   athlete.ID,
			AthleteName: athlete.FullName(),
			StartTime:   cursor.String(),
			EndTime:     end.String(),
			Station:     i + 1,
		}
	}

	return models.Session{
		ID:              uuid.NewString(),
		WodID:           wod.ID,
		WodName:         wod.Name,
		CategoryID:      category.ID,
		CategoryName:    category.Name,
		Mode:            models.ModeSimultaneous,
		StartTime:       cursor.String(),
		StartTimeUTC:    timeslot.ConvertToUTC(cursor, timezone(cfg)).String(),
		DurationMinutes: duration,
		AthleteSchedule: slots,
	}, duration
}

// buildHeatsSession chunks the category's athletes into fixed-size heats
// in registration order. Heat k starts k-1 WOD durations after the
// session start; lane assignment is position within the heat.
func buildHeatsSession(wod models.Wod, category models.Category, athletes []models.Athlete, cfg models.ScheduleConfig, cursor timeslot.TimeSlot) (models.Session, int) {
	duration := wodDuration(wod, defaultWodDuration)
	perHeat := athletesPerHeat(cfg)

	var heats []models.Heat
	for offset := 0; offset < len(athletes); offset += perHeat {
		end := offset + perHeat
		if end > len(athletes) {
			end = len(athletes)
		}
		number := len(heats) + 1
		heatStart := cursor.Add((number - 1) * duration)

		group := make([]models.HeatAthlete, 0, end-offset)
		for lane, athlete := range athletes[offset:end] {
			group = append(group, models.HeatAthlete{
				AthleteID:   athlete.ID,
				AthleteName: athlete.FullName(),
				Lane:        lane + 1,
			})
		}
		heats = append(heats, models.Heat{
			ID:        uuid.NewString(),
			Number:    number,
			StartTime: heatStart.String(),
			Athletes:  group,
		})
	}

	total := len(heats) * duration
	return models.Session{
		ID:              uuid.NewString(),
		WodID:           wod.ID,
		WodName:         wod.Name,
		CategoryID:      category.ID,
		CategoryName:    category.Name,
		Mode:            models.ModeHeats,
		StartTime:       cursor.String(),
		StartTimeUTC:    timeslot.ConvertToUTC(cursor, timezone(cfg)).String(),
		DurationMinutes: total,
		Heats:           heats,
	}, total
}

// buildVersusSessions walks heat numbers 1..numberOfHeats for one
// category, producing one single-match session per mapped heat. The
// selection window assumes the caller re-inserts advancing athletes at the
// front of the list between stages; with athletesEliminatedPerFilter == 0
// every heat repeats the same opening pair (exhibition mode).
//
// Each heat advances the cursor by its duration plus the transition time.
// Returns the sessions, the advanced cursor and the elapsed minutes.
func buildVersusSessions(category models.Category, athletes []models.Athlete, wodsByID map[string]models.Wod, cfg models.ScheduleConfig, cursor timeslot.TimeSlot, logger zerolog.Logger) ([]models.Session, timeslot.TimeSlot, int) {
	perFilter := cfg.EliminatedPerFilter()
	elapsed := 0
	var sessions []models.Session

	for heat := 1; heat <= cfg.NumberOfHeats; heat++ {
		wodID, ok := cfg.HeatWodMapping[heat]
		if !ok || wodID == "" {
			logger.Warn().Int("heat", heat).Str("category", category.ID).Msg("no WOD mapped for heat, skipping")
			continue
		}

		eliminated := (heat - 1) * perFilter
		remaining := len(athletes) - eliminated
		if remaining <= 0 {
			logger.Debug().Int("heat", heat).Str("category", category.ID).Msg("no athletes remaining for heat, skipping")
			continue
		}

		pair := selectPair(athletes, eliminated, perFilter)
		match := buildMatch(heat, pair)

		wod := wodsByID[wodID]
		wod.ID = wodID
		duration := wodDuration(wod, defaultVersusDuration)

		sessions = append(sessions, models.Session{
			ID:              uuid.NewString(),
			WodID:           wodID,
			WodName:         wod.Name,
			CategoryID:      category.ID,
			CategoryName:    category.Name,
			Mode:            models.ModeVersus,
			StartTime:       cursor.String(),
			StartTimeUTC:    timeslot.ConvertToUTC(cursor, timezone(cfg)).String(),
			DurationMinutes: duration,
			HeatNumber:      heat,
			Matches:         []models.Match{match},
		})

		step := duration + transitionTime(cfg)
		cursor = cursor.Add(step)
		elapsed += step
	}

	return sessions, cursor, elapsed
}

// selectPair picks the next two athletes for a heat. perFilter == 0 keeps
// re-using the first two (exhibition/repeat mode); otherwise the window
// starts at the number already eliminated.
func selectPair(athletes []models.Athlete, eliminated, perFilter int) []models.Athlete {
	offset := eliminated
	if perFilter == 0 {
		offset = 0
	}
	end := offset + 2
	if end > len(athletes) {
		end = len(athletes)
	}
	if offset >= end {
		return nil
	}
	pair := append([]models.Athlete(nil), athletes[offset:end]...)
	// Random tie-break for seed order.
	rand.Shuffle(len(pair), func(i, j int) {
		pair[i], pair[j] = pair[j], pair[i]
	})
	return pair
}

// buildMatch pairs the selection into a match, marking a bye when only one
// athlete is left. A match never has zero athletes; callers skip empty
// selections before getting here.
func buildMatch(heatNumber int, pair []models.Athlete) models.Match {
	match := models.Match{
		ID:         uuid.NewString(),
		HeatNumber: heatNumber,
		Athlete1:   pair[0].ID,
		Bye:        len(pair) == 1,
	}
	if len(pair) == 2 {
		second := pair[1].ID
		match.Athlete2 = &second
	}
	return match
}
