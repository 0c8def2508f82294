package jobs

import (
	"context"
	"log/slog"
	"time"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenPurger
type TokenPurger interface {
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// TokenCleanup deletes refresh tokens that expired or were revoked.
type TokenCleanup struct {
	log    *slog.Logger
	tokens TokenPurger
	now    func() time.Time
}

func NewTokenCleanup(log *slog.Logger, tokens TokenPurger) *TokenCleanup {
	return &TokenCleanup{log: log, tokens: tokens, now: time.Now}
}

func (t *TokenCleanup) RunOnce(ctx context.Context) (int64, error) {
	n, err := t.tokens.PurgeExpired(ctx, t.now().UTC())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		t.log.Info("refresh tokens purged", slog.String("op", "jobs.TokenCleanup.RunOnce"), slog.Int64("count", n))
	}
	return n, nil
}
