/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package api exposes the HTTP surface. Handlers decode, dispatch to the
// engine, and translate the domain error taxonomy to status codes; no
// scheduling logic lives here.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/arenaworks/arenacomp/internal/cache"
	"github.com/arenaworks/arenacomp/internal/errs"
	"github.com/arenaworks/arenacomp/internal/progression"
	"github.com/arenaworks/arenacomp/internal/schedule"
	"github.com/arenaworks/arenacomp/internal/store"
)

// API exposes HTTP handlers.
type API struct {
	generator   *schedule.Generator
	progression *progression.Service
	repo        store.ScheduleRepository
	cache       *cache.Cache
	publisher   schedule.Publisher
	logger      zerolog.Logger
}

// New creates the API wrapper. cache may be nil.
func New(generator *schedule.Generator, progressionSvc *progression.Service, repo store.ScheduleRepository, scheduleCache *cache.Cache, publisher schedule.Publisher, logger zerolog.Logger) *API {
	return &API{
		generator:   generator,
		progression: progressionSvc,
		repo:        repo,
		cache:       scheduleCache,
		publisher:   publisher,
		logger:      logger.With().Str("component", "api").Logger(),
	}
}

// Routes registers all endpoints.
func (a *API) Routes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/events/{eventID}/schedules", func(r chi.Router) {
			r.Post("/", a.handleGenerate)
			r.Get("/", a.handleList)
			r.Get("/published", a.handleListPublished)

			r.Route("/{scheduleID}", func(r chi.Router) {
				r.Get("/", a.handleGet)
				r.Delete("/", a.handleDelete)
				r.Post("/publish", a.handlePublish)
				r.Post("/unpublish", a.handleUnpublish)
				r.Patch("/sessions/{sessionID}", a.handleUpdateSession)
				r.Post("/progression", a.handleProgression)
				r.Post("/next-stage", a.handleNextStage)
			})
		})

		r.Route("/events/{eventID}/filters/{filterID}", func(r chi.Router) {
			r.Post("/eliminate", a.handleEliminate)
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeDomainError maps the error taxonomy to HTTP statuses. Anything
// outside the taxonomy is an opaque infrastructure failure.
func (a *API) writeDomainError(w http.ResponseWriter, err error) {
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		writeError(w, http.StatusNotFound, err.Error())
	case errs.KindValidation:
		writeError(w, http.StatusBadRequest, err.Error())
	case errs.KindTimeConstraint:
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errs.KindInvalidState:
		writeError(w, http.StatusConflict, err.Error())
	default:
		a.logger.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
