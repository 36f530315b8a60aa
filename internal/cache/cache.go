/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package cache provides a Redis-based caching layer for published
// schedules, the hot read path during a live competition. Cache failures
// degrade to database reads; they never surface to callers.
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/arenaworks/arenacomp/internal/models"
)

// Default TTL values.
const (
	DefaultPublishedTTL = 5 * time.Minute
)

// Key prefixes.
const (
	KeyPublished = "arenacomp:cache:published:" // + event_id
)

// Config contains cache configuration.
type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PublishedTTL time.Duration

	// DisableOnError disables caching after a Redis failure instead of
	// retrying every request.
	DisableOnError bool
}

// DefaultConfig returns default cache configuration.
func DefaultConfig() Config {
	return Config{
		RedisAddr:      "localhost:6379",
		PublishedTTL:   DefaultPublishedTTL,
		DisableOnError: true,
	}
}

// Cache provides Redis-backed caching with graceful fallback.
type Cache struct {
	client   *redis.Client
	logger   zerolog.Logger
	config   Config
	mu       sync.Mutex
	disabled bool
}

// New connects the cache. A nil return means caching is off entirely.
func New(cfg Config, logger zerolog.Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if cfg.PublishedTTL <= 0 {
		cfg.PublishedTTL = DefaultPublishedTTL
	}
	return &Cache{
		client: client,
		logger: logger.With().Str("component", "cache").Logger(),
		config: cfg,
	}
}

// GetPublishedSchedules returns the cached published schedules for an
// event. The second return is false on miss, disabled cache, or error.
func (c *Cache) GetPublishedSchedules(ctx context.Context, eventID string) ([]models.Schedule, bool) {
	if c == nil || c.isDisabled() {
		return nil, false
	}

	raw, err := c.client.Get(ctx, KeyPublished+eventID).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.fail(err, "cache get failed")
		}
		return nil, false
	}

	var schedules []models.Schedule
	if err := json.Unmarshal(raw, &schedules); err != nil {
		c.logger.Warn().Err(err).Str("event_id", eventID).Msg("cache entry corrupt, dropping")
		c.client.Del(ctx, KeyPublished+eventID)
		return nil, false
	}
	return schedules, true
}

// SetPublishedSchedules stores the published schedules for an event.
func (c *Cache) SetPublishedSchedules(ctx context.Context, eventID string, schedules []models.Schedule) {
	if c == nil || c.isDisabled() {
		return
	}

	raw, err := json.Marshal(schedules)
	if err != nil {
		c.logger.Warn().Err(err).Msg("cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, KeyPublished+eventID, raw, c.config.PublishedTTL).Err(); err != nil {
		c.fail(err, "cache set failed")
	}
}

// InvalidateEvent drops the event's cached schedules. Called on publish,
// unpublish, update and delete.
func (c *Cache) InvalidateEvent(ctx context.Context, eventID string) {
	if c == nil || c.isDisabled() {
		return
	}
	if err := c.client.Del(ctx, KeyPublished+eventID).Err(); err != nil {
		c.fail(err, "cache invalidate failed")
	}
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

func (c *Cache) isDisabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disabled
}

func (c *Cache) fail(err error, msg string) {
	c.logger.Warn().Err(err).Msg(msg)
	if c.config.DisableOnError {
		c.mu.Lock()
		c.disabled = true
		c.mu.Unlock()
		c.logger.Warn().Msg("cache disabled after error")
	}
}
