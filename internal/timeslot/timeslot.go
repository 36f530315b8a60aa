/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package timeslot provides an immutable wall-clock value used by the
// schedule builders. All arithmetic goes through minutes-since-midnight so
// additions wrap cleanly across hour and day boundaries.
package timeslot

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// TimeSlot is an hour:minute point in time. The zero value is midnight.
// Every mutation returns a new value.
type TimeSlot struct {
	hours   int
	minutes int
}

// New builds a normalized TimeSlot from hours and minutes.
func New(hours, minutes int) TimeSlot {
	return FromMinutes(hours*60 + minutes)
}

// FromMinutes builds a TimeSlot from minutes since midnight, wrapping
// negative values and values past 24h back into the day.
func FromMinutes(total int) TimeSlot {
	total %= minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return TimeSlot{hours: total / 60, minutes: total % 60}
}

// Parse reads an "HH:MM" string.
func Parse(value string) (TimeSlot, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return TimeSlot{}, fmt.Errorf("invalid time %q: expected HH:MM", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeSlot{}, fmt.Errorf("invalid hours in %q: %w", value, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeSlot{}, fmt.Errorf("invalid minutes in %q: %w", value, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return TimeSlot{}, fmt.Errorf("time %q out of range", value)
	}
	return TimeSlot{hours: hours, minutes: minutes}, nil
}

// MustParse parses value and panics on malformed input. For literals.
func MustParse(value string) TimeSlot {
	ts, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return ts
}

// Hours returns the hour component (0-23).
func (t TimeSlot) Hours() int { return t.hours }

// Minute returns the minute component (0-59).
func (t TimeSlot) Minute() int { return t.minutes }

// Minutes returns minutes since midnight.
func (t TimeSlot) Minutes() int { return t.hours*60 + t.minutes }

// Add returns a new TimeSlot advanced by the given number of minutes.
func (t TimeSlot) Add(minutes int) TimeSlot {
	return FromMinutes(t.Minutes() + minutes)
}

// Sub returns the minutes between t and earlier, assuming t is not more
// than a day ahead.
func (t TimeSlot) Sub(earlier TimeSlot) int {
	diff := t.Minutes() - earlier.Minutes()
	if diff < 0 {
		diff += minutesPerDay
	}
	return diff
}

// Before reports whether t is earlier in the day than other.
func (t TimeSlot) Before(other TimeSlot) bool {
	return t.Minutes() < other.Minutes()
}

// String renders the slot as "HH:MM".
func (t TimeSlot) String() string {
	return fmt.Sprintf("%02d:%02d", t.hours, t.minutes)
}

// MarshalJSON encodes the slot as an "HH:MM" string.
func (t TimeSlot) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes an "HH:MM" string.
func (t *TimeSlot) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// utcOffsets maps supported timezone abbreviations to whole-hour UTC
// offsets. This is a deliberate simplification: no daylight-saving rules
// and no IANA database lookups. Unknown zones resolve to UTC.
var utcOffsets = map[string]int{
	"UTC":  0,
	"EST":  -5,
	"CST":  -6,
	"MST":  -7,
	"PST":  -8,
	"CET":  1,
	"JST":  9,
	"AEST": 10,
}

// ConvertToUTC translates a local wall-clock time to UTC using the static
// offset table. The table ignores DST; callers wanting real timezone rules
// need to convert upstream. Unknown zones resolve to offset 0.
func ConvertToUTC(local TimeSlot, timezone string) TimeSlot {
	offset := utcOffsets[strings.ToUpper(strings.TrimSpace(timezone))]
	return local.Add(-offset * 60)
}
