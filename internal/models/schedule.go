/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package models

import (
	"time"
)

// ScheduleStatus is the aggregate lifecycle state.
type ScheduleStatus string

const (
	StatusDraft     ScheduleStatus = "DRAFT"
	StatusPublished ScheduleStatus = "PUBLISHED"
)

// ScheduleConfig is the generation request configuration, echoed verbatim
// onto the resulting schedule. Zero-valued fields take documented defaults
// at generation time; AthletesEliminatedPerFilter is a pointer because an
// explicit 0 selects exhibition mode (every VERSUS heat repeats the same
// opening pair).
type ScheduleConfig struct {
	MaxDayHours                 int             `json:"maxDayHours,omitempty"`
	LunchBreakHours             int             `json:"lunchBreakHours,omitempty"`
	CompetitionMode             CompetitionMode `json:"competitionMode,omitempty"`
	AthletesPerHeat             int             `json:"athletesPerHeat,omitempty"`
	NumberOfHeats               int             `json:"numberOfHeats,omitempty"`
	AthletesEliminatedPerFilter *int            `json:"athletesEliminatedPerFilter,omitempty"`
	HeatWodMapping              map[int]string  `json:"heatWodMapping,omitempty"`
	StartTime                   string          `json:"startTime,omitempty"`
	Timezone                    string          `json:"timezone,omitempty"`
	TransitionTime              int             `json:"transitionTime,omitempty"`
	SetupTime                   int             `json:"setupTime,omitempty"`
}

// EliminatedPerFilter resolves the pointer against its default of 1.
func (c ScheduleConfig) EliminatedPerFilter() int {
	if c.AthletesEliminatedPerFilter == nil {
		return 1
	}
	return *c.AthletesEliminatedPerFilter
}

// AthleteSlot is one athlete's start/end assignment inside a SIMULTANEOUS
// session. Station numbering starts at 1.
type AthleteSlot struct {
	AthleteID   string `json:"athleteId"`
	AthleteName string `json:"athleteName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Station     int    `json:"station"`
}

// HeatAthlete is one lane assignment inside a heat. Lane = position+1.
type HeatAthlete struct {
	AthleteID   string `json:"athleteId"`
	AthleteName string `json:"athleteName"`
	Lane        int    `json:"lane"`
}

// Heat is a fixed-size group of athletes running at once.
type Heat struct {
	ID        string        `json:"id"`
	Number    int           `json:"number"`
	StartTime string        `json:"startTime"`
	Athletes  []HeatAthlete `json:"athletes"`
}

// Match is a single VERSUS pairing. Bye is true iff Athlete2 is nil;
// a match never has zero athletes.
type Match struct {
	ID         string  `json:"id"`
	HeatNumber int     `json:"heatNumber"`
	Athlete1   string  `json:"athlete1"`
	Athlete2   *string `json:"athlete2"`
	Bye        bool    `json:"bye"`
}

// Session is one scheduled unit on a day. Exactly one of AthleteSchedule,
// Heats or Matches is populated, selected by Mode.
type Session struct {
	ID              string          `json:"sessionId"`
	WodID           string          `json:"wodId"`
	WodName         string          `json:"wodName,omitempty"`
	CategoryID      string          `json:"categoryId"`
	CategoryName    string          `json:"categoryName,omitempty"`
	Mode            CompetitionMode `json:"competitionMode"`
	StartTime       string          `json:"startTime"`
	StartTimeUTC    string          `json:"startTimeUTC"`
	DurationMinutes int             `json:"durationMinutes"`
	HeatNumber      int             `json:"heatNumber,omitempty"`
	AthleteSchedule []AthleteSlot   `json:"athleteSchedule,omitempty"`
	Heats           []Heat          `json:"heats,omitempty"`
	Matches         []Match         `json:"matches,omitempty"`
}

// HasAssignments reports whether the session carries at least one athlete,
// heat or match. Publish requires it for every session.
func (s Session) HasAssignments() bool {
	switch s.Mode {
	case ModeSimultaneous:
		return len(s.AthleteSchedule) > 0
	case ModeHeats:
		for _, heat := range s.Heats {
			if len(heat.Athletes) > 0 {
				return true
			}
		}
		return false
	case ModeVersus:
		return len(s.Matches) > 0
	}
	return false
}

// ScheduleDay accumulates the sessions of one venue-day in chronological
// order. ElapsedMinutes is the cursor advance since the day start,
// including transition and setup gaps, and is what the time budget checks.
type ScheduleDay struct {
	DayID          string    `json:"dayId"`
	Name           string    `json:"name"`
	Date           time.Time `json:"date"`
	Sessions       []Session `json:"sessions"`
	StartTime      string    `json:"startTime"`
	ElapsedMinutes int       `json:"elapsedMinutes"`
}

// TotalSessionMinutes sums session durations, excluding gaps.
func (d ScheduleDay) TotalSessionMinutes() int {
	total := 0
	for _, s := range d.Sessions {
		total += s.DurationMinutes
	}
	return total
}

// WithinTimeLimit reports whether the day's accumulated time fits the
// per-day hour budget.
func (d ScheduleDay) WithinTimeLimit(maxHours int) bool {
	return d.ElapsedMinutes <= maxHours*60
}

// Valid reports whether the day has at least one session and every session
// has assignments.
func (d ScheduleDay) Valid() bool {
	if len(d.Sessions) == 0 {
		return false
	}
	for _, s := range d.Sessions {
		if !s.HasAssignments() {
			return false
		}
	}
	return true
}

// ScheduleDays is the jsonb-persisted day list.
type ScheduleDays []ScheduleDay

// FilterResult is the per-filter summary accumulated by tournament
// progression.
type FilterResult struct {
	FilterID   string   `json:"filterId"`
	FilterName string   `json:"filterName"`
	Eliminated []string `json:"eliminated"`
	Remaining  []string `json:"remaining"`
}

// FilterResults is the jsonb-persisted progression summary.
type FilterResults []FilterResult

// Schedule is the aggregate root: the ordered day schedules generated for
// one event, plus lifecycle state and tournament-progression output.
type Schedule struct {
	ID                 string         `gorm:"type:uuid;primaryKey" json:"scheduleId"`
	EventID            string         `gorm:"type:uuid;index" json:"eventId"`
	Config             ScheduleConfig `gorm:"type:jsonb;serializer:json" json:"config"`
	Days               ScheduleDays   `gorm:"type:jsonb;serializer:json" json:"days"`
	Status             ScheduleStatus `gorm:"type:varchar(16);index" json:"status"`
	ActiveAthletes     StringList     `gorm:"type:jsonb;serializer:json" json:"activeAthletes,omitempty"`
	ProgressionResults FilterResults  `gorm:"type:jsonb;serializer:json" json:"progressionResults,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	PublishedAt        *time.Time     `json:"publishedAt,omitempty"`
}

// Published reports whether the schedule is live.
func (s *Schedule) Published() bool { return s.Status == StatusPublished }

// FindSession locates a session by id across all days. Returns nil when
// absent.
func (s *Schedule) FindSession(sessionID string) *Session {
	for di := range s.Days {
		for si := range s.Days[di].Sessions {
			if s.Days[di].Sessions[si].ID == sessionID {
				return &s.Days[di].Sessions[si]
			}
		}
	}
	return nil
}
