/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/arenaworks/arenacomp/internal/events"
	"github.com/arenaworks/arenacomp/internal/models"
	"github.com/arenaworks/arenacomp/internal/schedule"
	"github.com/arenaworks/arenacomp/internal/telemetry"
)

func (a *API) handleGenerate(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	var cfg models.ScheduleConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sched, err := a.generator.Generate(r.Context(), eventID, cfg)
	if err != nil {
		telemetry.GenerationsTotal.WithLabelValues("error").Inc()
		a.writeDomainError(w, err)
		return
	}

	telemetry.GenerationsTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusCreated, sched)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	schedules, err := a.repo.FindByEventID(r.Context(), eventID)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"schedules": schedules})
}

func (a *API) handleListPublished(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	if cached, ok := a.cache.GetPublishedSchedules(r.Context(), eventID); ok {
		writeJSON(w, http.StatusOK, map[string]any{"schedules": cached})
		return
	}

	schedules, err := a.repo.FindPublishedByEventID(r.Context(), eventID)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}
	a.cache.SetPublishedSchedules(r.Context(), eventID, schedules)
	writeJSON(w, http.StatusOK, map[string]any{"schedules": schedules})
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	scheduleID := chi.URLParam(r, "scheduleID")

	sched, err := a.repo.FindByID(r.Context(), eventID, scheduleID)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sched)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	scheduleID := chi.URLParam(r, "scheduleID")

	if err := a.repo.Delete(r.Context(), eventID, scheduleID); err != nil {
		a.writeDomainError(w, err)
		return
	}
	a.cache.InvalidateEvent(r.Context(), eventID)
	a.publisher.Publish(events.EventScheduleDeleted, events.Payload{
		"eventId":    eventID,
		"scheduleId": scheduleID,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handlePublish(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	scheduleID := chi.URLParam(r, "scheduleID")

	sched, err := a.repo.FindByID(r.Context(), eventID, scheduleID)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	if err := schedule.Publish(sched, time.Now().UTC()); err != nil {
		a.writeDomainError(w, err)
		return
	}
	if err := a.repo.Save(r.Context(), sched); err != nil {
		a.writeDomainError(w, err)
		return
	}

	a.cache.InvalidateEvent(r.Context(), eventID)
	telemetry.PublishesTotal.WithLabelValues("publish").Inc()
	a.publisher.Publish(events.EventSchedulePublished, events.Payload{
		"eventId":    eventID,
		"scheduleId": sched.ID,
	})
	writeJSON(w, http.StatusOK, sched)
}

func (a *API) handleUnpublish(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	scheduleID := chi.URLParam(r, "scheduleID")

	sched, err := a.repo.FindByID(r.Context(), eventID, scheduleID)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	schedule.Unpublish(sched)
	if err := a.repo.Save(r.Context(), sched); err != nil {
		a.writeDomainError(w, err)
		return
	}

	a.cache.InvalidateEvent(r.Context(), eventID)
	telemetry.PublishesTotal.WithLabelValues("unpublish").Inc()
	a.publisher.Publish(events.EventScheduleUnpublished, events.Payload{
		"eventId":    eventID,
		"scheduleId": sched.ID,
	})
	writeJSON(w, http.StatusOK, sched)
}

func (a *API) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	scheduleID := chi.URLParam(r, "scheduleID")
	sessionID := chi.URLParam(r, "sessionID")

	var update schedule.SessionUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sched, err := a.repo.FindByID(r.Context(), eventID, scheduleID)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	if err := schedule.UpdateSession(sched, sessionID, update); err != nil {
		a.writeDomainError(w, err)
		return
	}
	if err := a.repo.Save(r.Context(), sched); err != nil {
		a.writeDomainError(w, err)
		return
	}

	a.cache.InvalidateEvent(r.Context(), eventID)
	a.publisher.Publish(events.EventScheduleUpdated, events.Payload{
		"eventId":    eventID,
		"scheduleId": sched.ID,
		"sessionId":  sessionID,
	})
	writeJSON(w, http.StatusOK, sched)
}
