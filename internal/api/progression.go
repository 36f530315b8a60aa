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

	"github.com/go-chi/chi/v5"

	"github.com/arenaworks/arenacomp/internal/models"
	"github.com/arenaworks/arenacomp/internal/progression"
	"github.com/arenaworks/arenacomp/internal/telemetry"
)

func (a *API) handleEliminate(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	filterID := chi.URLParam(r, "filterID")

	var req progression.EliminationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := a.progression.EliminateAthletes(r.Context(), eventID, filterID, req)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	telemetry.EliminationsTotal.WithLabelValues(string(result.EliminationType)).Add(float64(len(result.Eliminated)))
	writeJSON(w, http.StatusOK, result)
}

func (a *API) handleProgression(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	scheduleID := chi.URLParam(r, "scheduleID")

	sched, err := a.progression.ProcessFilterProgression(r.Context(), eventID, scheduleID)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	telemetry.ProgressionRunsTotal.Inc()
	writeJSON(w, http.StatusOK, map[string]any{
		"scheduleId":     sched.ID,
		"activeAthletes": sched.ActiveAthletes,
		"results":        sched.ProgressionResults,
	})
}

func (a *API) handleNextStage(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	scheduleID := chi.URLParam(r, "scheduleID")

	var req struct {
		models.ScheduleConfig
		WildcardSlots int `json:"wildcardSlots,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	next, err := a.progression.NextStage(r.Context(), eventID, scheduleID, req.ScheduleConfig, req.WildcardSlots)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, next)
}
