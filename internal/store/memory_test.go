/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package store

import (
	"context"
	"testing"
	"time"

	"github.com/arenaworks/arenacomp/internal/errs"
	"github.com/arenaworks/arenacomp/internal/models"
)

func TestMemoryScheduleRoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	schedule := &models.Schedule{
		ID:        "sch-1",
		EventID:   "ev-1",
		Status:    models.StatusDraft,
		CreatedAt: time.Now(),
	}
	if err := mem.Save(ctx, schedule); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := mem.FindByID(ctx, "ev-1", "sch-1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if loaded.Status != models.StatusDraft {
		t.Errorf("Status = %s, want DRAFT", loaded.Status)
	}

	if _, err := mem.FindByID(ctx, "other-event", "sch-1"); !errs.IsNotFound(err) {
		t.Errorf("cross-event lookup should be NotFound, got %v", err)
	}
	if _, err := mem.FindByID(ctx, "ev-1", "missing"); !errs.IsNotFound(err) {
		t.Errorf("missing schedule should be NotFound, got %v", err)
	}
}

func TestMemoryPublishedFilter(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	base := time.Now()
	for i, status := range []models.ScheduleStatus{models.StatusDraft, models.StatusPublished, models.StatusPublished} {
		_ = mem.Save(ctx, &models.Schedule{
			ID:        string(rune('a' + i)),
			EventID:   "ev-1",
			Status:    status,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	all, err := mem.FindByEventID(ctx, "ev-1")
	if err != nil {
		t.Fatalf("FindByEventID: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d, want 3", len(all))
	}
	if !all[0].CreatedAt.After(all[2].CreatedAt) {
		t.Error("schedules not ordered newest first")
	}

	published, err := mem.FindPublishedByEventID(ctx, "ev-1")
	if err != nil {
		t.Fatalf("FindPublishedByEventID: %v", err)
	}
	if len(published) != 2 {
		t.Errorf("len(published) = %d, want 2", len(published))
	}
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	_ = mem.Save(ctx, &models.Schedule{ID: "sch-1", EventID: "ev-1"})

	if err := mem.Delete(ctx, "ev-1", "sch-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mem.Delete(ctx, "ev-1", "sch-1"); !errs.IsNotFound(err) {
		t.Errorf("second delete should be NotFound, got %v", err)
	}
}

func TestMemoryFiltersOrdered(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	_ = mem.SaveFilter(ctx, &models.EliminationFilter{ID: "f2", EventID: "ev-1", Position: 2, Name: "Semis"})
	_ = mem.SaveFilter(ctx, &models.EliminationFilter{ID: "f1", EventID: "ev-1", Position: 1, Name: "Quarters"})

	filters, err := mem.FiltersByEvent(ctx, "ev-1")
	if err != nil {
		t.Fatalf("FiltersByEvent: %v", err)
	}
	if len(filters) != 2 || filters[0].ID != "f1" || filters[1].ID != "f2" {
		t.Errorf("filters out of order: %+v", filters)
	}
}

func TestMemoryScores(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	mem.AddScore(models.Score{ID: "s1", EventID: "ev-1", FilterID: "f1", AthleteID: "a", Value: 10})
	mem.AddScore(models.Score{ID: "s2", EventID: "ev-1", FilterID: "f2", AthleteID: "b", Value: 5})

	scores, err := mem.ScoresByFilter(ctx, "ev-1", "f1")
	if err != nil {
		t.Fatalf("ScoresByFilter: %v", err)
	}
	if len(scores) != 1 || scores[0].AthleteID != "a" {
		t.Errorf("scores = %+v", scores)
	}
}
