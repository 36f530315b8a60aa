/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/arenaworks/arenacomp/internal/eventdata"
	"github.com/arenaworks/arenacomp/internal/events"
	"github.com/arenaworks/arenacomp/internal/models"
	"github.com/arenaworks/arenacomp/internal/progression"
	"github.com/arenaworks/arenacomp/internal/schedule"
	"github.com/arenaworks/arenacomp/internal/store"
)

type stubEventData struct {
	bundle *eventdata.Bundle
}

func (s *stubEventData) GetEventData(_ context.Context, _ string) (*eventdata.Bundle, error) {
	return s.bundle, nil
}

type nopPublisher struct{}

func (nopPublisher) Publish(events.EventType, events.Payload) {}

func newTestRouter() (chi.Router, *store.Memory) {
	mem := store.NewMemory()
	data := &stubEventData{bundle: &eventdata.Bundle{
		Event:      models.Event{ID: "ev-1", Name: "Summer Throwdown"},
		Days:       []models.EventDay{{ID: "d1", EventID: "ev-1", Date: time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)}},
		Categories: []models.Category{{ID: "cat-1", Name: "RX"}},
		Wods:       []models.Wod{{ID: "w1", Name: "Opener", EstimatedDurationMinutes: 20}},
		Athletes: []models.Athlete{
			{ID: "a", EventID: "ev-1", CategoryID: "cat-1"},
			{ID: "b", EventID: "ev-1", CategoryID: "cat-1"},
		},
	}}
	logger := zerolog.Nop()
	gen := schedule.NewGenerator(data, mem, nopPublisher{}, logger)
	prog := progression.New(mem, mem, mem, gen, nopPublisher{}, logger)

	r := chi.NewRouter()
	New(gen, prog, mem, nil, nopPublisher{}, logger).Routes(r)
	return r, mem
}

func doRequest(t *testing.T, router chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGenerateEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/events/ev-1/schedules", `{}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var sched models.Schedule
	if err := json.Unmarshal(rec.Body.Bytes(), &sched); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if sched.Status != models.StatusDraft {
		t.Errorf("status = %q, want DRAFT", sched.Status)
	}
	if len(sched.Days) != 1 {
		t.Errorf("days = %d, want 1", len(sched.Days))
	}
}

func TestGenerateEndpointRejectsBadConfig(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/events/ev-1/schedules", `{"competitionMode":"ROUND_ROBIN"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestGetScheduleNotFound(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/api/v1/events/ev-1/schedules/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", rec.Code, rec.Body.String())
	}
}

func TestPublishLifecycleEndpoints(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/events/ev-1/schedules", `{}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("generate status = %d: %s", rec.Code, rec.Body.String())
	}
	var sched models.Schedule
	_ = json.Unmarshal(rec.Body.Bytes(), &sched)

	base := "/api/v1/events/ev-1/schedules/" + sched.ID

	rec = doRequest(t, router, http.MethodPost, base+"/publish", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("publish status = %d: %s", rec.Code, rec.Body.String())
	}
	var published models.Schedule
	_ = json.Unmarshal(rec.Body.Bytes(), &published)
	if published.Status != models.StatusPublished {
		t.Errorf("status after publish = %q", published.Status)
	}
	if published.PublishedAt == nil {
		t.Error("publishedAt not set")
	}

	rec = doRequest(t, router, http.MethodPost, base+"/unpublish", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unpublish status = %d: %s", rec.Code, rec.Body.String())
	}
	var draft models.Schedule
	_ = json.Unmarshal(rec.Body.Bytes(), &draft)
	if draft.Status != models.StatusDraft {
		t.Errorf("status after unpublish = %q", draft.Status)
	}
}

func TestDeleteEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/events/ev-1/schedules", `{}`)
	var sched models.Schedule
	_ = json.Unmarshal(rec.Body.Bytes(), &sched)

	base := "/api/v1/events/ev-1/schedules/" + sched.ID

	rec = doRequest(t, router, http.MethodDelete, base, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodGet, base, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestUpdateSessionEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/events/ev-1/schedules", `{}`)
	var sched models.Schedule
	_ = json.Unmarshal(rec.Body.Bytes(), &sched)
	sessionID := sched.Days[0].Sessions[0].ID

	path := "/api/v1/events/ev-1/schedules/" + sched.ID + "/sessions/" + sessionID
	rec = doRequest(t, router, http.MethodPatch, path, `{"startTime":"10:15"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch status = %d: %s", rec.Code, rec.Body.String())
	}

	var updated models.Schedule
	_ = json.Unmarshal(rec.Body.Bytes(), &updated)
	if got := updated.FindSession(sessionID); got == nil || got.StartTime != "10:15" {
		t.Errorf("session start not updated: %+v", got)
	}
}

func TestEliminateEndpoint(t *testing.T) {
	router, mem := newTestRouter()
	ctx := context.Background()

	_ = mem.SaveFilter(ctx, &models.EliminationFilter{
		ID: "f1", EventID: "ev-1", Name: "Cut",
		EliminationCount: 1, EliminationType: models.EliminateBottomScores,
	})
	mem.AddScore(models.Score{ID: "s1", EventID: "ev-1", FilterID: "f1", AthleteID: "a", Value: 10})
	mem.AddScore(models.Score{ID: "s2", EventID: "ev-1", FilterID: "f1", AthleteID: "b", Value: 4})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/events/ev-1/filters/f1/eliminate", `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var result progression.EliminationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(result.Eliminated) != 1 || result.Eliminated[0] != "b" {
		t.Errorf("eliminated = %v, want [b]", result.Eliminated)
	}
}
