// Package notify sends booking confirmation e-mails.
package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/iliyamo/movie-ticketing/internal/config"
	"github.com/iliyamo/movie-ticketing/internal/queue"
	"github.com/iliyamo/movie-ticketing/internal/utils"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<h2>Booking confirmed</h2>
<p>Hi {{if .FullName}}{{.FullName}}{{else}}{{.Username}}{{end}},</p>
<p>Your tickets for <b>{{.MovieTitle}}</b> at {{.ClusterName}} / {{.TheaterName}} on {{.StartsAt}}:</p>
<table>
{{range $i, $t := .Tickets}}<tr><td>{{$t.SeatName}}</td><td>{{$t.Price}}</td><td>{{$t.TicketCode}}</td><td><img src="cid:ticket-{{$i}}.png" alt="{{$t.TicketCode}}"/></td></tr>
{{end}}</table>
<p>Total: {{.Total}}</p>
`))

// Mailer renders and sends the confirmation e-mail of a booking.
type Mailer struct {
	log  *slog.Logger
	from string
	send func(m ...*gomail.Message) error
}

// NewMailer returns nil when SMTP is not configured; callers treat a nil
// *Mailer as "notifications disabled".
func NewMailer(cfg config.Mail, log *slog.Logger) *Mailer {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil
	}
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &Mailer{log: log, from: cfg.From, send: d.DialAndSend}
}

// NewMailerWithSender builds a Mailer on top of any gomail.Sender.
func NewMailerWithSender(from string, s gomail.Sender, log *slog.Logger) *Mailer {
	return &Mailer{log: log, from: from, send: func(m ...*gomail.Message) error { return gomail.Send(s, m...) }}
}

// NotifyBookingConfirmed e-mails the customer one QR code per ticket.
// Events without an e-mail address are skipped.
func (m *Mailer) NotifyBookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error {
	const op = "notify.Mailer.NotifyBookingConfirmed"

	if m == nil {
		return nil
	}
	if strings.TrimSpace(ev.Email) == "" {
		m.log.Debug("no e-mail address, skipping", slog.String("op", op), slog.String("event_id", ev.EventID))
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := m.build(ev)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := m.send(msg); err != nil {
		return fmt.Errorf("%s: send: %w", op, err)
	}
	m.log.Info("confirmation e-mail sent", slog.String("op", op), slog.String("event_id", ev.EventID))
	return nil
}

func (m *Mailer) build(ev queue.BookingConfirmedEvent) (*gomail.Message, error) {
	if len(ev.Tickets) == 0 {
		return nil, errors.New("event has no tickets")
	}

	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, ev); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", ev.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Your tickets for %s", ev.MovieTitle))
	msg.SetBody("text/plain", plainText(ev))
	msg.AddAlternative("text/html", body.String())

	for i, t := range ev.Tickets {
		png, err := utils.TicketQRPNG(t.TicketCode, utils.DefaultQRSize)
		if err != nil {
			return nil, fmt.Errorf("qr for %s: %w", t.TicketCode, err)
		}
		name := fmt.Sprintf("ticket-%d.png", i)
		msg.Embed(name,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(png)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {"image/png"},
				"Content-ID":   {"<" + name + ">"},
			}),
		)
	}
	return msg, nil
}

func plainText(ev queue.BookingConfirmedEvent) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Booking confirmed: %s, %s / %s, %s\n", ev.MovieTitle, ev.ClusterName, ev.TheaterName, ev.StartsAt)
	for _, t := range ev.Tickets {
		fmt.Fprintf(&sb, "  seat %s  %.0f  ticket %s\n", t.SeatName, t.Price, t.TicketCode)
	}
	fmt.Fprintf(&sb, "Total: %.0f\n", ev.Total)
	return sb.String()
}
