/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package schedule

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/arenaworks/arenacomp/internal/models"
	"github.com/arenaworks/arenacomp/internal/timeslot"
)

func testAthletes(ids ...string) []models.Athlete {
	out := make([]models.Athlete, len(ids))
	for i, id := range ids {
		out[i] = models.Athlete{ID: id, FirstName: id, LastName: "Test", CategoryID: "cat-1"}
	}
	return out
}

func TestBuildSimultaneousSession(t *testing.T) {
	wod := models.Wod{ID: "wod-1", Name: "Amrap 20", EstimatedDurationMinutes: 20}
	category := models.Category{ID: "cat-1", Name: "RX"}
	athletes := testAthletes("a", "b", "c", "d")
	cursor := timeslot.MustParse("09:00")

	session, duration := buildSimultaneousSession(wod, category, athletes, models.ScheduleConfig{}, cursor)

	if duration != 20 {
		t.Fatalf("duration = %d, want 20", duration)
	}
	if session.Mode != models.ModeSimultaneous {
		t.Errorf("mode = %q, want SIMULTANEOUS", session.Mode)
	}
	if len(session.AthleteSchedule) != 4 {
		t.Fatalf("athleteSchedule length = %d, want 4", len(session.AthleteSchedule))
	}
	for i, slot := range session.AthleteSchedule {
		if slot.Station != i+1 {
			t.Errorf("slot %d station = %d, want %d", i, slot.Station, i+1)
		}
		if slot.StartTime != "09:00" || slot.EndTime != "09:20" {
			t.Errorf("slot %d window = %s-%s, want 09:00-09:20", i, slot.StartTime, slot.EndTime)
		}
	}
	if session.StartTime != "09:00" {
		t.Errorf("startTime = %q, want 09:00", session.StartTime)
	}
}

func TestBuildHeatsSession(t *testing.T) {
	wod := models.Wod{ID: "wod-1", Name: "Fran", EstimatedDurationMinutes: 20}
	category := models.Category{ID: "cat-1", Name: "RX"}
	athletes := testAthletes("a", "b", "c", "d", "e")
	cfg := models.ScheduleConfig{AthletesPerHeat: 2}
	cursor := timeslot.MustParse("09:00")

	session, duration := buildHeatsSession(wod, category, athletes, cfg, cursor)

	if duration != 60 {
		t.Fatalf("duration = %d, want 60 (3 heats x 20)", duration)
	}
	if len(session.Heats) != 3 {
		t.Fatalf("heats = %d, want 3", len(session.Heats))
	}

	wantSizes := []int{2, 2, 1}
	wantStarts := []string{"09:00", "09:20", "09:40"}
	for i, heat := range session.Heats {
		if heat.Number != i+1 {
			t.Errorf("heat %d number = %d, want %d", i, heat.Number, i+1)
		}
		if len(heat.Athletes) != wantSizes[i] {
			t.Errorf("heat %d size = %d, want %d", i, len(heat.Athletes), wantSizes[i])
		}
		if heat.StartTime != wantStarts[i] {
			t.Errorf("heat %d start = %s, want %s", i, heat.StartTime, wantStarts[i])
		}
		for lane, athlete := range heat.Athletes {
			if athlete.Lane != lane+1 {
				t.Errorf("heat %d lane = %d, want %d", i, athlete.Lane, lane+1)
			}
		}
	}
}

func TestBuildHeatsSessionNoAthleteLost(t *testing.T) {
	athletes := testAthletes("a", "b", "c", "d", "e", "f", "g")
	cfg := models.ScheduleConfig{AthletesPerHeat: 3}

	session, _ := buildHeatsSession(models.Wod{ID: "w"}, models.Category{ID: "cat-1"}, athletes, cfg, timeslot.MustParse("08:00"))

	seen := make(map[string]int)
	for _, heat := range session.Heats {
		for _, athlete := range heat.Athletes {
			seen[athlete.AthleteID]++
		}
	}
	if len(seen) != len(athletes) {
		t.Fatalf("placed %d distinct athletes, want %d", len(seen), len(athletes))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("athlete %s placed %d times, want once", id, count)
		}
	}
}

func TestBuildVersusSessions(t *testing.T) {
	category := models.Category{ID: "cat-1", Name: "RX"}
	athletes := testAthletes("a", "b", "c")
	wods := map[string]models.Wod{
		"wodA": {ID: "wodA", Name: "Opener", EstimatedDurationMinutes: 15},
		"wodB": {ID: "wodB", Name: "Final", EstimatedDurationMinutes: 15},
	}
	cfg := models.ScheduleConfig{
		CompetitionMode: models.ModeVersus,
		NumberOfHeats:   2,
		HeatWodMapping:  map[int]string{1: "wodA", 2: "wodB"},
	}

	sessions, cursor, elapsed := buildVersusSessions(category, athletes, wods, cfg, timeslot.MustParse("09:00"), zerolog.Nop())

	if len(sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(sessions))
	}
	// Each heat: 15 minute match plus the default 5 minute transition.
	if elapsed != 40 {
		t.Errorf("elapsed = %d, want 40", elapsed)
	}
	if got := cursor.String(); got != "09:40" {
		t.Errorf("cursor = %s, want 09:40", got)
	}

	wantPairs := [][]string{{"a", "b"}, {"b", "c"}}
	for i, session := range sessions {
		if session.HeatNumber != i+1 {
			t.Errorf("session %d heatNumber = %d, want %d", i, session.HeatNumber, i+1)
		}
		if len(session.Matches) != 1 {
			t.Fatalf("session %d matches = %d, want 1", i, len(session.Matches))
		}
		match := session.Matches[0]
		if match.Bye {
			t.Errorf("session %d: unexpected bye", i)
		}
		if match.Athlete2 == nil {
			t.Fatalf("session %d: athlete2 missing", i)
		}
		got := map[string]bool{match.Athlete1: true, *match.Athlete2: true}
		for _, id := range wantPairs[i] {
			if !got[id] {
				t.Errorf("session %d pair = %v, want members %v", i, got, wantPairs[i])
			}
		}
	}

	if sessions[0].WodID != "wodA" || sessions[1].WodID != "wodB" {
		t.Errorf("wod mapping = %s,%s, want wodA,wodB", sessions[0].WodID, sessions[1].WodID)
	}
}

func TestBuildVersusSessionsBye(t *testing.T) {
	category := models.Category{ID: "cat-1"}
	athletes := testAthletes("a", "b")
	wods := map[string]models.Wod{"wodA": {ID: "wodA"}, "wodB": {ID: "wodB"}}
	cfg := models.ScheduleConfig{
		CompetitionMode: models.ModeVersus,
		NumberOfHeats:   2,
		HeatWodMapping:  map[int]string{1: "wodA", 2: "wodB"},
	}

	sessions, _, _ := buildVersusSessions(category, athletes, wods, cfg, timeslot.MustParse("09:00"), zerolog.Nop())

	if len(sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(sessions))
	}
	final := sessions[1].Matches[0]
	if !final.Bye {
		t.Error("final heat with one athlete left should be a bye")
	}
	if final.Athlete2 != nil {
		t.Errorf("bye match athlete2 = %v, want nil", *final.Athlete2)
	}
	if final.Athlete1 != "b" {
		t.Errorf("bye athlete = %s, want b", final.Athlete1)
	}
}

func TestBuildVersusSessionsExhibitionMode(t *testing.T) {
	zero := 0
	category := models.Category{ID: "cat-1"}
	athletes := testAthletes("a", "b", "c")
	wods := map[string]models.Wod{"wodA": {ID: "wodA"}}
	cfg := models.ScheduleConfig{
		CompetitionMode:             models.ModeVersus,
		NumberOfHeats:               3,
		AthletesEliminatedPerFilter: &zero,
		HeatWodMapping:              map[int]string{1: "wodA", 2: "wodA", 3: "wodA"},
	}

	sessions, _, _ := buildVersusSessions(category, athletes, wods, cfg, timeslot.MustParse("09:00"), zerolog.Nop())

	if len(sessions) != 3 {
		t.Fatalf("sessions = %d, want 3", len(sessions))
	}
	// With no eliminations every heat repeats the opening pair.
	for i, session := range sessions {
		match := session.Matches[0]
		if match.Athlete2 == nil {
			t.Fatalf("session %d: athlete2 missing", i)
		}
		got := map[string]bool{match.Athlete1: true, *match.Athlete2: true}
		if !got["a"] || !got["b"] {
			t.Errorf("session %d pair = %v, want {a b}", i, got)
		}
	}
}

func TestBuildVersusSessionsSkipsUnmappedHeat(t *testing.T) {
	category := models.Category{ID: "cat-1"}
	athletes := testAthletes("a", "b", "c", "d")
	wods := map[string]models.Wod{"wodA": {ID: "wodA"}}
	cfg := models.ScheduleConfig{
		CompetitionMode: models.ModeVersus,
		NumberOfHeats:   3,
		HeatWodMapping:  map[int]string{1: "wodA", 3: "wodA"},
	}

	sessions, _, _ := buildVersusSessions(category, athletes, wods, cfg, timeslot.MustParse("09:00"), zerolog.Nop())

	if len(sessions) != 2 {
		t.Fatalf("sessions = %d, want 2 (heat 2 unmapped)", len(sessions))
	}
	if sessions[0].HeatNumber != 1 || sessions[1].HeatNumber != 3 {
		t.Errorf("heat numbers = %d,%d, want 1,3", sessions[0].HeatNumber, sessions[1].HeatNumber)
	}
}
