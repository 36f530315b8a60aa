/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package progression drives elimination across tournament stages: it
// ranks per-filter scores, removes the configured number of athletes, and
// carries the surviving set forward until a new VERSUS stage is generated
// for it. Score values come from the external scoring collaborator.
package progression

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/arenaworks/arenacomp/internal/errs"
	"github.com/arenaworks/arenacomp/internal/events"
	"github.com/arenaworks/arenacomp/internal/models"
	"github.com/arenaworks/arenacomp/internal/schedule"
	"github.com/arenaworks/arenacomp/internal/store"
)

// EliminationRequest optionally overrides the stored filter configuration
// for a single elimination run. Zero values fall back to the filter.
type EliminationRequest struct {
	EliminationCount int                    `json:"eliminationCount,omitempty"`
	EliminationType  models.EliminationType `json:"eliminationType,omitempty"`
}

// EliminationResult reports one filter's outcome.
type EliminationResult struct {
	Eliminated       []string               `json:"eliminated"`
	Remaining        []string               `json:"remaining"`
	EliminationCount int                    `json:"eliminationCount"`
	EliminationType  models.EliminationType `json:"eliminationType"`
}

// Service is the elimination and progression engine.
type Service struct {
	repo      store.ScheduleRepository
	filters   store.FilterStore
	scores    store.ScoreSource
	generator *schedule.Generator
	publisher schedule.Publisher
	logger    zerolog.Logger
	now       func() time.Time
}

// New constructs the progression service.
func New(repo store.ScheduleRepository, filters store.FilterStore, scores store.ScoreSource, generator *schedule.Generator, publisher schedule.Publisher, logger zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		filters:   filters,
		scores:    scores,
		generator: generator,
		publisher: publisher,
		logger:    logger.With().Str("component", "progression").Logger(),
		now:       time.Now,
	}
}

// EliminateAthletes ranks the filter's scored athletes, slices off the
// configured elimination count, and stamps the filter COMPLETED with both
// lists. eliminated + remaining always partition the scored set.
func (s *Service) EliminateAthletes(ctx context.Context, eventID, filterID string, req EliminationRequest) (*EliminationResult, error) {
	filter, err := s.filters.FindFilter(ctx, eventID, filterID)
	if err != nil {
		return nil, err
	}

	count := req.EliminationCount
	if count <= 0 {
		count = filter.EliminationCount
	}
	elimType := req.EliminationType
	if elimType == "" {
		elimType = filter.EliminationType
	}
	if elimType == "" {
		elimType = models.EliminateBottomScores
	}

	scores, err := s.scores.ScoresByFilter(ctx, eventID, filterID)
	if err != nil {
		return nil, err
	}

	ranked := rankScores(scores, elimType)
	if count > len(ranked) {
		count = len(ranked)
	}

	result := &EliminationResult{
		Eliminated:       athleteIDs(ranked[:count]),
		Remaining:        athleteIDs(ranked[count:]),
		EliminationCount: count,
		EliminationType:  elimType,
	}

	eliminatedAt := s.now().UTC()
	filter.EliminationCount = count
	filter.EliminationType = elimType
	filter.EliminatedAthletes = result.Eliminated
	filter.RemainingAthletes = result.Remaining
	filter.EliminatedAt = &eliminatedAt
	filter.Status = models.FilterCompleted

	if err := s.filters.SaveFilter(ctx, filter); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("event_id", eventID).
		Str("filter_id", filterID).
		Str("type", string(elimType)).
		Int("eliminated", len(result.Eliminated)).
		Int("remaining", len(result.Remaining)).
		Msg("athletes eliminated")

	return result, nil
}

// ProcessFilterProgression walks the event's filter chain in order,
// eliminating through every filter that has scores, folding the remaining
// athletes forward as the next filter's active set. Filters without scores
// are skipped without error, so the walk is resumable as scores arrive.
// The final active set and per-filter summaries are persisted on the
// schedule.
func (s *Service) ProcessFilterProgression(ctx context.Context, eventID, scheduleID string) (*models.Schedule, error) {
	sched, err := s.repo.FindByID(ctx, eventID, scheduleID)
	if err != nil {
		return nil, err
	}

	filters, err := s.filters.FiltersByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	var active []string
	var results models.FilterResults

	for _, filter := range filters {
		if filter.EliminationCount <= 0 {
			continue
		}

		scores, err := s.scores.ScoresByFilter(ctx, eventID, filter.ID)
		if err != nil {
			return nil, err
		}
		if len(scores) == 0 {
			s.logger.Debug().Str("filter_id", filter.ID).Msg("no scores recorded yet, skipping filter")
			continue
		}

		result, err := s.EliminateAthletes(ctx, eventID, filter.ID, EliminationRequest{})
		if err != nil {
			return nil, err
		}

		active = result.Remaining
		results = append(results, models.FilterResult{
			FilterID:   filter.ID,
			FilterName: filter.Name,
			Eliminated: result.Eliminated,
			Remaining:  result.Remaining,
		})
	}

	sched.ActiveAthletes = active
	sched.ProgressionResults = results
	if err := s.repo.Save(ctx, sched); err != nil {
		return nil, err
	}

	s.publisher.Publish(events.EventTournamentAdvanced, events.Payload{
		"eventId":          eventID,
		"scheduleId":       scheduleID,
		"filtersProcessed": len(results),
		"activeAthletes":   len(active),
	})

	return sched, nil
}

// NextStage generates a fresh VERSUS schedule for the athletes surviving
// the last progression run. The surviving list's ranked order becomes the
// category order, which is the re-ordering the VERSUS selection policy
// assumes. wildcardSlots > 0 re-admits that many of the last filter's
// top-scoring eliminated athletes before generation.
func (s *Service) NextStage(ctx context.Context, eventID, scheduleID string, cfg models.ScheduleConfig, wildcardSlots int) (*models.Schedule, error) {
	if cfg.CompetitionMode != models.ModeVersus {
		return nil, errs.Validationf("next stage requires VERSUS competition mode")
	}

	sched, err := s.repo.FindByID(ctx, eventID, scheduleID)
	if err != nil {
		return nil, err
	}
	if len(sched.ActiveAthletes) == 0 {
		return nil, errs.InvalidStatef("schedule %s has no active athletes: run progression first", scheduleID)
	}

	active := sched.ActiveAthletes
	if wildcardSlots > 0 && len(sched.ProgressionResults) > 0 {
		last := sched.ProgressionResults[len(sched.ProgressionResults)-1]
		scores, err := s.scores.ScoresByFilter(ctx, eventID, last.FilterID)
		if err != nil {
			return nil, err
		}
		active = PromoteWildcards(active, last.Eliminated, scores, wildcardSlots)
	}

	return s.generator.GenerateForAthletes(ctx, eventID, cfg, active)
}

// PromoteWildcards reinserts the top-scoring eliminated athletes into the
// active set until slots are filled. This is caller policy applied before
// next-stage generation, not elimination logic.
func PromoteWildcards(active, eliminated []string, scores []models.Score, slots int) []string {
	if slots <= 0 || len(eliminated) == 0 {
		return active
	}

	best := make(map[string]float64, len(scores))
	for _, score := range scores {
		if current, ok := best[score.AthleteID]; !ok || score.Value > current {
			best[score.AthleteID] = score.Value
		}
	}

	candidates := append([]string(nil), eliminated...)
	sort.SliceStable(candidates, func(i, j int) bool {
		return best[candidates[i]] > best[candidates[j]]
	})

	if slots > len(candidates) {
		slots = len(candidates)
	}
	return append(append([]string(nil), active...), candidates[:slots]...)
}

// rankScores orders scores so the head of the list is what elimination
// removes: ascending for BOTTOM_SCORES, descending for TOP_SCORES,
// shuffled for RANDOM. Ties keep recording order.
func rankScores(scores []models.Score, elimType models.EliminationType) []models.Score {
	ranked := append([]models.Score(nil), scores...)
	switch elimType {
	case models.EliminateTopScores:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Value > ranked[j].Value
		})
	case models.EliminateRandom:
		rand.Shuffle(len(ranked), func(i, j int) {
			ranked[i], ranked[j] = ranked[j], ranked[i]
		})
	default:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Value < ranked[j].Value
		})
	}
	return ranked
}

func athleteIDs(scores []models.Score) []string {
	ids := make([]string, len(scores))
	for i, score := range scores {
		ids[i] = score.AthleteID
	}
	return ids
}
