package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iliyamo/movie-ticketing/internal/model"
)

// OutboxRepo gives the relay job access to unpublished events.
type OutboxRepo struct {
	db *sql.DB
}

func NewOutboxRepo(db *sql.DB) *OutboxRepo { return &OutboxRepo{db: db} }

func insertOutboxTx(ctx context.Context, tx *sql.Tx, ev model.OutboxEvent) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO outbox_events (event_id, topic, payload) VALUES (?, ?, ?)",
		ev.EventID, ev.Topic, ev.Payload)
	return err
}

// ListPending returns up to limit unpublished, not dead-lettered events,
// oldest first.
func (r *OutboxRepo) ListPending(ctx context.Context, limit int) ([]model.OutboxEvent, error) {
	const op = "repository.OutboxRepo.ListPending"

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, event_id, topic, payload, attempts, last_error, created_at
		 FROM outbox_events
		 WHERE published_at IS NULL AND dead_at IS NULL
		 ORDER BY id ASC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := []model.OutboxEvent{}
	for rows.Next() {
		var (
			ev      model.OutboxEvent
			lastErr sql.NullString
		)
		if err := rows.Scan(&ev.ID, &ev.EventID, &ev.Topic, &ev.Payload, &ev.Attempts, &lastErr, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ev.LastError = lastErr.String
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// MarkPublished stamps published_at so the event is not relayed again.
func (r *OutboxRepo) MarkPublished(ctx context.Context, id uint64) error {
	const op = "repository.OutboxRepo.MarkPublished"

	if _, err := r.db.ExecContext(ctx,
		"UPDATE outbox_events SET published_at = UTC_TIMESTAMP(), attempts = attempts + 1 WHERE id = ?", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// MarkFailed records a failed publish attempt. The event stays pending.
func (r *OutboxRepo) MarkFailed(ctx context.Context, id uint64, cause string) error {
	const op = "repository.OutboxRepo.MarkFailed"

	if _, err := r.db.ExecContext(ctx,
		"UPDATE outbox_events SET attempts = attempts + 1, last_error = ? WHERE id = ?", truncateCause(cause), id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// MarkDead records the last failed attempt and takes the event out of the
// pending set. The row is kept for inspection and manual replay.
func (r *OutboxRepo) MarkDead(ctx context.Context, id uint64, cause string) error {
	const op = "repository.OutboxRepo.MarkDead"

	if _, err := r.db.ExecContext(ctx,
		"UPDATE outbox_events SET attempts = attempts + 1, last_error = ?, dead_at = UTC_TIMESTAMP() WHERE id = ?",
		truncateCause(cause), id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// truncateCause fits cause into outbox_events.last_error.
func truncateCause(cause string) string {
	if len(cause) > 500 {
		return cause[:500]
	}
	return cause
}
