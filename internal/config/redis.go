package config

// Redis backs the distributed rate limiter and the catalog response cache.
// When the server cannot be reached at startup the constructor returns nil
// and callers degrade by disabling both features.

import (
	"context"
	"crypto/tls"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-ticketing/internal/lib/logger/sl"
)

// NewRedisClient builds a client from cfg and pings it with a short timeout.
// The returned client is nil when Redis is disabled or unreachable.
func NewRedisClient(cfg Redis, log *slog.Logger) *redis.Client {
	if !cfg.Enabled {
		return nil
	}
	var tlsConf *tls.Config
	if cfg.TLS {
		tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(&redis.Options{
		Addr:      cfg.Addr,
		Password:  cfg.Password,
		DB:        cfg.DB,
		TLSConfig: tlsConf,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, rate limiting and caching disabled",
			slog.String("addr", cfg.Addr), sl.Err(err))
		_ = client.Close()
		return nil
	}
	return client
}
