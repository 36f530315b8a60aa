/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arenaworks/arenacomp/internal/eventdata"
	"github.com/arenaworks/arenacomp/internal/events"
	"github.com/arenaworks/arenacomp/internal/models"
	"github.com/arenaworks/arenacomp/internal/store"
)

// EventData supplies generation inputs. Satisfied by *eventdata.Service.
type EventData interface {
	GetEventData(ctx context.Context, eventID string) (*eventdata.Bundle, error)
}

// Publisher emits domain events fire-and-forget. Satisfied by
// *eventbus.NATSBus and *events.Bus.
type Publisher interface {
	Publish(eventType events.EventType, payload events.Payload)
}

// Generator runs schedule generation for an event. Generation is a pure
// in-memory computation; the only side effects are the final repository
// save and the fire-and-forget event.
type Generator struct {
	data      EventData
	repo      store.ScheduleRepository
	publisher Publisher
	logger    zerolog.Logger
	now       func() time.Time
}

// NewGenerator constructs the generation service.
func NewGenerator(data EventData, repo store.ScheduleRepository, publisher Publisher, logger zerolog.Logger) *Generator {
	return &Generator{
		data:      data,
		repo:      repo,
		publisher: publisher,
		logger:    logger.With().Str("component", "schedule_generator").Logger(),
		now:       time.Now,
	}
}

// Generate builds, validates and persists a DRAFT schedule for the event.
// Any validation failure aborts the whole run; partial schedules are never
// persisted.
func (g *Generator) Generate(ctx context.Context, eventID string, cfg models.ScheduleConfig) (*models.Schedule, error) {
	return g.GenerateForAthletes(ctx, eventID, cfg, nil)
}

// GenerateForAthletes is Generate restricted to a subset of athletes, in
// the order given. Tournament progression uses it to schedule the next
// stage for the surviving, ranked athlete set; the list order becomes the
// category order the VERSUS selection policy depends on.
func (g *Generator) GenerateForAthletes(ctx context.Context, eventID string, cfg models.ScheduleConfig, athleteIDs []string) (*models.Schedule, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	bundle, err := g.data.GetEventData(ctx, eventID)
	if err != nil {
		return nil, err
	}

	athletes := bundle.Athletes
	if athleteIDs != nil {
		athletes = selectAthletes(bundle.Athletes, athleteIDs)
		if err := eventdata.Validate(&eventdata.Bundle{
			Days: bundle.Days, Categories: bundle.Categories, Wods: bundle.Wods, Athletes: athletes,
		}); err != nil {
			return nil, err
		}
	}

	scheduleID, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	sched := &models.Schedule{
		ID:        scheduleID.String(),
		EventID:   eventID,
		Config:    cfg,
		Status:    models.StatusDraft,
		CreatedAt: g.now().UTC(),
	}

	for _, day := range bundle.Days {
		if err := AddDay(sched, day, athletes, bundle.Categories, bundle.Wods, g.logger); err != nil {
			return nil, err
		}
	}

	if err := g.repo.Save(ctx, sched); err != nil {
		return nil, err
	}

	g.logger.Info().
		Str("event_id", eventID).
		Str("schedule_id", sched.ID).
		Int("days", len(sched.Days)).
		Msg("schedule generated")

	g.publisher.Publish(events.EventScheduleGenerated, events.Payload{
		"eventId":    eventID,
		"scheduleId": sched.ID,
		"days":       len(sched.Days),
		"mode":       string(mode(cfg)),
	})

	return sched, nil
}

// selectAthletes keeps only the listed athletes, preserving list order.
func selectAthletes(athletes []models.Athlete, ids []string) []models.Athlete {
	byID := make(map[string]models.Athlete, len(athletes))
	for _, athlete := range athletes {
		byID[athlete.ID] = athlete
	}
	out := make([]models.Athlete, 0, len(ids))
	for _, id := range ids {
		if athlete, ok := byID[id]; ok {
			out = append(out, athlete)
		}
	}
	return out
}
