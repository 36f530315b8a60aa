/*
Copyright (C) 2026 Arena Works

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package eventbus publishes domain events to NATS for other bounded
// contexts. Publishing is fire-and-forget: failures are logged, never
// surfaced, and never roll back a committed schedule.
package eventbus

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"github.com/arenaworks/arenacomp/internal/events"
)

const subjectPrefix = "arenacomp.events."

// NATSBus bridges the in-process bus to a NATS cluster. When NATS is not
// configured or unreachable, events still flow to in-process subscribers.
type NATSBus struct {
	conn     *nats.Conn
	fallback *events.Bus
	logger   zerolog.Logger
	nodeID   string
}

// NewNATSBus connects to NATS at natsURL. An empty URL or a failed
// connection degrades to the in-process bus only.
func NewNATSBus(natsURL string, logger zerolog.Logger) *NATSBus {
	bus := &NATSBus{
		fallback: events.NewBus(),
		logger:   logger.With().Str("component", "eventbus").Logger(),
		nodeID:   uuid.NewString(),
	}

	if natsURL == "" {
		bus.logger.Info().Msg("NATS not configured, events stay in-process")
		return bus
	}

	conn, err := nats.Connect(natsURL,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.Timeout(5*time.Second),
	)
	if err != nil {
		bus.logger.Warn().Err(err).Str("url", natsURL).Msg("NATS unavailable, using in-process bus only")
		return bus
	}

	bus.conn = conn
	bus.logger.Info().Str("url", natsURL).Msg("connected to NATS")
	return bus
}

// Subscribe registers an in-process subscriber for an event type.
func (nb *NATSBus) Subscribe(eventType events.EventType) events.Subscriber {
	return nb.fallback.Subscribe(eventType)
}

// Unsubscribe removes an in-process subscriber.
func (nb *NATSBus) Unsubscribe(eventType events.EventType, sub events.Subscriber) {
	nb.fallback.Unsubscribe(eventType, sub)
}

// Publish fans the event out to in-process subscribers and, when
// connected, to NATS. Errors are swallowed after logging.
func (nb *NATSBus) Publish(eventType events.EventType, payload events.Payload) {
	nb.fallback.Publish(eventType, payload)

	if nb.conn == nil {
		return
	}

	data, err := marshalMessage(eventType, payload, nb.nodeID)
	if err != nil {
		nb.logger.Warn().Err(err).Str("event_type", string(eventType)).Msg("event marshal failed")
		return
	}
	if err := nb.conn.Publish(subjectPrefix+string(eventType), data); err != nil {
		nb.logger.Warn().Err(err).Str("event_type", string(eventType)).Msg("NATS publish failed")
	}
}

// PublishBatch publishes several events in order with the same
// fire-and-forget semantics.
func (nb *NATSBus) PublishBatch(eventType events.EventType, payloads []events.Payload) {
	for _, payload := range payloads {
		nb.Publish(eventType, payload)
	}
}

// Close drains and closes the NATS connection.
func (nb *NATSBus) Close() error {
	if nb.conn == nil {
		return nil
	}
	if err := nb.conn.Drain(); err != nil {
		return fmt.Errorf("drain nats: %w", err)
	}
	return nil
}

type message struct {
	EventType events.EventType `json:"event_type"`
	Payload   events.Payload   `json:"payload"`
	Timestamp time.Time        `json:"timestamp"`
	NodeID    string           `json:"node_id"`
	MessageID string           `json:"message_id"`
}

func marshalMessage(eventType events.EventType, payload events.Payload, nodeID string) ([]byte, error) {
	return json.Marshal(message{
		EventType: eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
		NodeID:    nodeID,
		MessageID: uuid.NewString(),
	})
}
