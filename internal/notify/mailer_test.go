package notify

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/iliyamo/movie-ticketing/internal/config"
	"github.com/iliyamo/movie-ticketing/internal/lib/logger/handlers/slogdiscard"
	"github.com/iliyamo/movie-ticketing/internal/queue"
)

func event() queue.BookingConfirmedEvent {
	return queue.BookingConfirmedEvent{
		EventID:     "ev-1",
		Username:    "alice",
		FullName:    "Alice",
		Email:       "alice@example.com",
		MovieTitle:  "Dune",
		TheaterName: "Rap 1",
		ClusterName: "BHD Bitexco",
		StartsAt:    "2026-03-01T19:30:00Z",
		Tickets: []queue.TicketLine{
			{SeatID: 1, SeatName: "A1", Price: 75000, TicketCode: "code1"},
			{SeatID: 2, SeatName: "A2", Price: 75000, TicketCode: "code2"},
		},
		Total: 150000,
	}
}

type captured struct {
	from string
	to   []string
	raw  bytes.Buffer
}

func capture(c *captured, fail error) gomail.SendFunc {
	return func(from string, to []string, msg io.WriterTo) error {
		if fail != nil {
			return fail
		}
		c.from, c.to = from, to
		_, err := msg.WriteTo(&c.raw)
		return err
	}
}

func TestNewMailer_DisabledWithoutHost(t *testing.T) {
	t.Parallel()

	m := NewMailer(config.Mail{Host: "  "}, slogdiscard.NewDiscardLogger())
	assert.Nil(t, m)
	// a nil mailer is a valid no-op notifier
	assert.NoError(t, m.NotifyBookingConfirmed(context.Background(), event()))
}

func TestMailer_Sends(t *testing.T) {
	t.Parallel()

	var c captured
	m := NewMailerWithSender("noreply@movieticketing.com", capture(&c, nil), slogdiscard.NewDiscardLogger())

	require.NoError(t, m.NotifyBookingConfirmed(context.Background(), event()))
	assert.Equal(t, "noreply@movieticketing.com", c.from)
	assert.Equal(t, []string{"alice@example.com"}, c.to)

	raw := c.raw.String()
	assert.Contains(t, raw, "Subject: Your tickets for Dune")
	assert.Contains(t, raw, "code2")
	assert.Contains(t, raw, "ticket-1.png")
	assert.Contains(t, raw, "image/png")
}

func TestMailer_SkipsWithoutEmail(t *testing.T) {
	t.Parallel()

	var c captured
	m := NewMailerWithSender("x@y.z", capture(&c, errors.New("must not be called")), slogdiscard.NewDiscardLogger())

	ev := event()
	ev.Email = ""
	assert.NoError(t, m.NotifyBookingConfirmed(context.Background(), ev))
}

func TestMailer_SendError(t *testing.T) {
	t.Parallel()

	var c captured
	m := NewMailerWithSender("x@y.z", capture(&c, errors.New("smtp down")), slogdiscard.NewDiscardLogger())

	err := m.NotifyBookingConfirmed(context.Background(), event())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp down")
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	txt := plainText(event())
	assert.Contains(t, txt, "seat A1  75000  ticket code1")
	assert.Contains(t, txt, "Total: 150000")
}
