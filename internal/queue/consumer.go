package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/movie-ticketing/internal/lib/logger/sl"
)

// Notifier is told about every confirmed booking after it has been
// audited. Notification failures never reject the message.
type Notifier interface {
	NotifyBookingConfirmed(ctx context.Context, ev BookingConfirmedEvent) error
}

// Consumer reads booking.confirmed messages, appends an audit line per
// event and forwards the event to the notifier.
type Consumer struct {
	url      string
	queue    string
	prefetch int
	log      *slog.Logger
	audit    *AuditLog
	notifier Notifier
}

func NewConsumer(url, queue string, prefetch int, audit *AuditLog, notifier Notifier, log *slog.Logger) *Consumer {
	return &Consumer{url: url, queue: queue, prefetch: prefetch, audit: audit, notifier: notifier, log: log}
}

// Run keeps consuming until ctx is cancelled, reconnecting with capped
// exponential backoff when the broker is unreachable.
func (c *Consumer) Run(ctx context.Context) error {
	const op = "queue.Consumer.Run"
	log := c.log.With(slog.String("op", op), slog.String("queue", c.queue))

	backoff := time.Second
	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			log.Warn("failed to dial broker", sl.Err(err), slog.Duration("retry_in", backoff))
			if !sleepCtx(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		err = c.consumeLoop(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warn("consume loop ended, reconnecting", sl.Err(err))
		if !sleepCtx(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		c.log.Warn("set QoS failed", sl.Err(err))
	}
	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := c.Handle(ctx, d.Body); err != nil {
				c.log.Error("handle message failed", sl.Err(err), slog.String("message_id", d.MessageId))
				_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
				continue
			}
			_ = d.Ack(false)
		}
	}
}

// Handle processes one message body. A malformed body or a failed audit
// write is returned as an error.
func (c *Consumer) Handle(ctx context.Context, body []byte) error {
	var ev BookingConfirmedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if c.audit != nil {
		if err := c.audit.Append(ev); err != nil {
			return err
		}
	}
	if c.notifier != nil {
		if err := c.notifier.NotifyBookingConfirmed(ctx, ev); err != nil {
			c.log.Warn("notification failed", sl.Err(err), slog.String("event_id", ev.EventID))
		}
	}
	return nil
}

// AuditLog appends one human-readable line per confirmed booking to a file.
type AuditLog struct {
	mu   sync.Mutex
	path string
}

func NewAuditLog(path string) *AuditLog { return &AuditLog{path: path} }

// Append writes the audit line of ev, creating the directory and file when
// missing.
func (a *AuditLog) Append(ev BookingConfirmedEvent) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if dir := filepath.Dir(a.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(a.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(AuditLine(ev)); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// AuditLine formats ev as a single newline-terminated line.
func AuditLine(ev BookingConfirmedEvent) string {
	codes := make([]string, 0, len(ev.Tickets))
	for _, t := range ev.Tickets {
		codes = append(codes, t.TicketCode)
	}
	return fmt.Sprintf("[%s] Booking confirmed | event_id=%s | showing_id=%d | user=%s(%d) | movie=%q | cinema=%q | theater=%q | starts_at=%s | seats=[%s] | tickets=[%s] | total=%.0f\n",
		ev.ConfirmedAt, ev.EventID, ev.ShowingID, ev.Username, ev.UserID, ev.MovieTitle, ev.ClusterName, ev.TheaterName,
		ev.StartsAt, strings.Join(ev.SeatNames(), ","), strings.Join(codes, ","), ev.Total)
}
