package models

import (
	"time"
)

// CompetitionMode selects how sessions are built for a WOD.
type CompetitionMode string

const (
	ModeHeats        CompetitionMode = "HEATS"
	ModeVersus       CompetitionMode = "VERSUS"
	ModeSimultaneous CompetitionMode = "SIMULTANEOUS"
)

// Valid reports whether the mode is one of the three supported values.
func (m CompetitionMode) Valid() bool {
	switch m {
	case ModeHeats, ModeVersus, ModeSimultaneous:
		return true
	}
	return false
}

// EliminationType selects which end of the ranking a filter removes.
type EliminationType string

const (
	EliminateBottomScores EliminationType = "BOTTOM_SCORES"
	EliminateTopScores    EliminationType = "TOP_SCORES"
	EliminateRandom       EliminationType = "RANDOM"
)

// FilterStatus tracks elimination-filter progress.
type FilterStatus string

const (
	FilterPending   FilterStatus = "PENDING"
	FilterCompleted FilterStatus = "COMPLETED"
)

// Event is the competition an organizer runs over one or more days.
type Event struct {
	ID        string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"index" json:"name"`
	Timezone  string     `gorm:"type:varchar(32)" json:"timezone"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// EventDay is one venue-day of an event.
type EventDay struct {
	ID       string    `gorm:"primaryKey" json:"id"`
	EventID  string    `gorm:"type:uuid;index" json:"eventId"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Position int       `json:"position"`
}

// Category groups athletes competing against each other.
type Category struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	EventID string `gorm:"type:uuid;index" json:"eventId"`
	Name    string `json:"name"`
}

// Wod is one schedulable unit of competition content.
type Wod struct {
	ID                       string `gorm:"type:uuid;primaryKey" json:"id"`
	EventID                  string `gorm:"type:uuid;index" json:"eventId"`
	Name                     string `json:"name"`
	EstimatedDurationMinutes int    `json:"estimatedDurationMinutes"`
	// DayID pins the WOD to one day; empty means it runs every day.
	DayID    string `gorm:"index" json:"dayId,omitempty"`
	Position int    `json:"position"`
}

// Athlete is a registration tied to a category. Athletes whose CategoryID
// does not reference a known category are excluded from session generation.
type Athlete struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	EventID    string `gorm:"type:uuid;index" json:"eventId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	CategoryID string `gorm:"type:uuid;index" json:"categoryId"`
}

// FullName renders "First Last" for display inside sessions.
func (a Athlete) FullName() string {
	return a.FirstName + " " + a.LastName
}

// Score is a raw per-athlete result recorded against an elimination filter.
// Score values come from the external scoring collaborator; this system
// never computes them.
type Score struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	EventID    string    `gorm:"type:uuid;index" json:"eventId"`
	FilterID   string    `gorm:"type:uuid;index" json:"filterId"`
	AthleteID  string    `gorm:"type:uuid;index" json:"athleteId"`
	Value      float64   `json:"value"`
	RecordedAt time.Time `json:"recordedAt"`
}

// EliminationFilter is one named elimination stage in a tournament's
// progression chain.
type EliminationFilter struct {
	ID                 string          `gorm:"type:uuid;primaryKey" json:"id"`
	EventID            string          `gorm:"type:uuid;index" json:"eventId"`
	Name               string          `json:"name"`
	Position           int             `json:"position"`
	EliminationCount   int             `json:"eliminationCount"`
	EliminationType    EliminationType `gorm:"type:varchar(16)" json:"eliminationType"`
	EliminatedAthletes StringList      `gorm:"type:jsonb;serializer:json" json:"eliminatedAthletes"`
	RemainingAthletes  StringList      `gorm:"type:jsonb;serializer:json" json:"remainingAthletes"`
	Status             FilterStatus    `gorm:"type:varchar(16)" json:"status"`
	EliminatedAt       *time.Time      `json:"eliminatedAt,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// StringList is a jsonb-persisted list of ids.
type StringList []string
