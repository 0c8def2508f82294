package jobs

import (
	"context"
	"log/slog"

	"github.com/iliyamo/movie-ticketing/internal/lib/logger/sl"
	"github.com/iliyamo/movie-ticketing/internal/model"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OutboxStore
type OutboxStore interface {
	ListPending(ctx context.Context, limit int) ([]model.OutboxEvent, error)
	MarkPublished(ctx context.Context, id uint64) error
	MarkFailed(ctx context.Context, id uint64, cause string) error
	MarkDead(ctx context.Context, id uint64, cause string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Publisher
type Publisher interface {
	Publish(ctx context.Context, topic, messageID string, body []byte) error
	Ping(ctx context.Context) error
}

const (
	defaultRelayBatch       = 100
	defaultRelayMaxAttempts = 10
)

// Relay moves committed outbox events to the broker. An event is marked
// published only after the broker accepted it, so delivery is at least once.
type Relay struct {
	log         *slog.Logger
	store       OutboxStore
	pub         Publisher
	batch       int
	maxAttempts int
}

// NewRelay builds a relay publishing up to batch events per run. An event
// whose publish fails maxAttempts times is dead-lettered.
func NewRelay(log *slog.Logger, store OutboxStore, pub Publisher, batch, maxAttempts int) *Relay {
	if batch <= 0 {
		batch = defaultRelayBatch
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultRelayMaxAttempts
	}
	return &Relay{log: log, store: store, pub: pub, batch: batch, maxAttempts: maxAttempts}
}

// RunOnce publishes one batch of pending events and returns how many were
// published.
//
// An unreachable broker ends the run before any event is touched, so an
// outage does not count against the events. A failed publish otherwise
// stops the batch to keep ordering, unless the event has used up its
// attempts: then it is dead-lettered and the batch moves on.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	const op = "jobs.Relay.RunOnce"
	log := r.log.With(slog.String("op", op))

	events, err := r.store.ListPending(ctx, r.batch)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}
	if err := r.pub.Ping(ctx); err != nil {
		log.Warn("broker unreachable, relay skipped", sl.Err(err), slog.Int("pending", len(events)))
		return 0, err
	}

	published := 0
	for _, ev := range events {
		if err := r.pub.Publish(ctx, ev.Topic, ev.EventID, ev.Payload); err != nil {
			attempts := ev.Attempts + 1
			if attempts >= r.maxAttempts {
				log.Error("event dead-lettered", sl.Err(err), slog.String("event_id", ev.EventID), slog.Int("attempts", attempts))
				if mErr := r.store.MarkDead(ctx, ev.ID, err.Error()); mErr != nil {
					return published, mErr
				}
				continue
			}
			log.Warn("publish failed", sl.Err(err), slog.String("event_id", ev.EventID), slog.Int("attempts", attempts))
			if mErr := r.store.MarkFailed(ctx, ev.ID, err.Error()); mErr != nil {
				log.Error("mark failed", sl.Err(mErr), slog.String("event_id", ev.EventID))
			}
			return published, err
		}
		if err := r.store.MarkPublished(ctx, ev.ID); err != nil {
			// the event will be sent again; consumers see the same event_id
			return published, err
		}
		published++
	}
	if published > 0 {
		log.Debug("outbox relayed", slog.Int("count", published))
	}
	return published, nil
}
