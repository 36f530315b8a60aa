/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/arenaworks/arenacomp/internal/errs"
	"github.com/arenaworks/arenacomp/internal/models"
)

// Memory is an in-memory implementation of all three store contracts,
// used by tests and local development.
type Memory struct {
	mu        sync.RWMutex
	schedules map[string]models.Schedule          // scheduleID -> schedule
	filters   map[string]models.EliminationFilter // filterID -> filter
	scores    []models.Score
}

// NewMemory builds an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		schedules: make(map[string]models.Schedule),
		filters:   make(map[string]models.EliminationFilter),
	}
}

// Save upserts the schedule.
func (m *Memory) Save(_ context.Context, schedule *models.Schedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schedules[schedule.ID] = *schedule
	return nil
}

// FindByID loads one schedule scoped to its event.
func (m *Memory) FindByID(_ context.Context, eventID, scheduleID string) (*models.Schedule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	schedule, ok := m.schedules[scheduleID]
	if !ok || schedule.EventID != eventID {
		return nil, errs.NotFoundf("schedule %s not found for event %s", scheduleID, eventID)
	}
	copied := schedule
	return &copied, nil
}

// FindByEventID lists schedules for an event, newest first.
func (m *Memory) FindByEventID(_ context.Context, eventID string) ([]models.Schedule, error) {
	return m.list(eventID, false)
}

// FindPublishedByEventID lists published schedules for an event.
func (m *Memory) FindPublishedByEventID(_ context.Context, eventID string) ([]models.Schedule, error) {
	return m.list(eventID, true)
}

func (m *Memory) list(eventID string, publishedOnly bool) ([]models.Schedule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Schedule
	for _, schedule := range m.schedules {
		if schedule.EventID != eventID {
			continue
		}
		if publishedOnly && schedule.Status != models.StatusPublished {
			continue
		}
		out = append(out, schedule)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a schedule; absent schedules are NotFound.
func (m *Memory) Delete(_ context.Context, eventID, scheduleID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	schedule, ok := m.schedules[scheduleID]
	if !ok || schedule.EventID != eventID {
		return errs.NotFoundf("schedule %s not found for event %s", scheduleID, eventID)
	}
	delete(m.schedules, scheduleID)
	return nil
}

// FiltersByEvent lists filters in chain order.
func (m *Memory) FiltersByEvent(_ context.Context, eventID string) ([]models.EliminationFilter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.EliminationFilter
	for _, filter := range m.filters {
		if filter.EventID == eventID {
			out = append(out, filter)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// FindFilter loads one filter scoped to its event.
func (m *Memory) FindFilter(_ context.Context, eventID, filterID string) (*models.EliminationFilter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	filter, ok := m.filters[filterID]
	if !ok || filter.EventID != eventID {
		return nil, errs.NotFoundf("filter %s not found for event %s", filterID, eventID)
	}
	copied := filter
	return &copied, nil
}

// SaveFilter upserts a filter.
func (m *Memory) SaveFilter(_ context.Context, filter *models.EliminationFilter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filters[filter.ID] = *filter
	return nil
}

// AddScore records a score, standing in for the scoring collaborator.
func (m *Memory) AddScore(score models.Score) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = append(m.scores, score)
}

// ScoresByFilter reads scores in recording order.
func (m *Memory) ScoresByFilter(_ context.Context, eventID, filterID string) ([]models.Score, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Score
	for _, score := range m.scores {
		if score.EventID == eventID && score.FilterID == filterID {
			out = append(out, score)
		}
	}
	return out, nil
}
