package model

import "time"

// OutboxEvent is a domain event written in the same transaction as the
// change it describes and relayed to the broker afterwards.
type OutboxEvent struct {
	ID          uint64     // outbox_events.id
	EventID     string     // outbox_events.event_id (uuid)
	Topic       string     // outbox_events.topic
	Payload     []byte     // outbox_events.payload (JSON)
	Attempts    int        // outbox_events.attempts
	LastError   string     // outbox_events.last_error (nullable)
	CreatedAt   time.Time  // outbox_events.created_at
	PublishedAt *time.Time // outbox_events.published_at (nullable)
	DeadAt      *time.Time // outbox_events.dead_at (nullable), set once the relay gives up
}
