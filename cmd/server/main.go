package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/movie-ticketing/internal/config"
	"github.com/iliyamo/movie-ticketing/internal/database"
	"github.com/iliyamo/movie-ticketing/internal/handler"
	"github.com/iliyamo/movie-ticketing/internal/jobs"
	"github.com/iliyamo/movie-ticketing/internal/lib/logger/handlers/slogpretty"
	"github.com/iliyamo/movie-ticketing/internal/lib/logger/sl"
	"github.com/iliyamo/movie-ticketing/internal/middleware"
	"github.com/iliyamo/movie-ticketing/internal/notify"
	"github.com/iliyamo/movie-ticketing/internal/queue"
	"github.com/iliyamo/movie-ticketing/internal/repository"
	"github.com/iliyamo/movie-ticketing/internal/response"
	"github.com/iliyamo/movie-ticketing/internal/router"
	"github.com/iliyamo/movie-ticketing/internal/service"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("starting movie ticketing", slog.String("env", cfg.Env), slog.String("version", cfg.Version))
	log.Debug("debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Error("failed to open database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.Migrate {
		if err := database.Migrate(ctx, db); err != nil {
			log.Error("failed to apply schema", sl.Err(err))
			os.Exit(1)
		}
	}

	// nil when disabled or unreachable; the limiter and cache then pass through
	rdb := config.NewRedisClient(cfg.Redis, log)

	cinemas := repository.NewCinemaRepo(db)
	showings := repository.NewShowingRepo(db)
	movies := repository.NewMovieRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	outbox := repository.NewOutboxRepo(db)

	bookingSvc := service.NewBookingService(log, service.BookingDeps{
		Showings: showings,
		Seats:    repository.NewSeatRepo(db),
		Bookings: repository.NewBookingRepo(db),
		Users:    users,
		Theaters: cinemas,
		Movies:   movies,
	}, cfg.Database.QueryTimeout)
	catalogSvc := service.NewCatalogService(log, cinemas, showings, movies, cfg.Database.QueryTimeout)
	authSvc := service.NewAuthService(log, users, tokens, cfg.Auth, cfg.Database.QueryTimeout)

	if cfg.Auth.AdminUsername != "" && cfg.Auth.AdminPassword != "" {
		if err := authSvc.EnsureAdmin(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
			log.Error("failed to bootstrap admin", sl.Err(err))
			os.Exit(1)
		}
	}

	probes := []handler.Probe{{Name: "database", Ping: db.PingContext, Required: true}}
	if rdb != nil {
		defer rdb.Close()
		probes = append(probes, handler.Probe{Name: "redis", Ping: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}

	var pub *queue.Publisher
	if cfg.Broker.Enabled {
		pub = queue.NewPublisher(cfg.Broker.URL, log)
		defer pub.Close()
		probes = append(probes, handler.Probe{Name: "broker", Ping: pub.Ping})
	}

	sched, err := jobs.NewScheduler(log)
	if err != nil {
		log.Error("failed to create scheduler", sl.Err(err))
		os.Exit(1)
	}
	if pub != nil {
		relay := jobs.NewRelay(log, outbox, pub, cfg.Jobs.OutboxBatch, cfg.Jobs.OutboxMaxAttempts)
		if err := sched.Add(jobs.RelayTask(relay, cfg.Jobs.OutboxInterval)); err != nil {
			log.Error("failed to schedule outbox relay", sl.Err(err))
			os.Exit(1)
		}
	}
	if err := sched.Add(jobs.TokenCleanupTask(jobs.NewTokenCleanup(log, tokens), cfg.Jobs.TokenPurgeInterval)); err != nil {
		log.Error("failed to schedule token cleanup", sl.Err(err))
		os.Exit(1)
	}
	sched.Start()

	if cfg.Broker.Enabled && cfg.Broker.ConsumerEnabled {
		consumer := queue.NewConsumer(cfg.Broker.URL, cfg.Broker.Queue, cfg.Broker.Prefetch,
			queue.NewAuditLog(cfg.Broker.AuditLogPath), notify.NewMailer(cfg.Mail, log), log)
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("booking consumer stopped", sl.Err(err))
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = response.ErrorHandler(log, !cfg.IsProd())
	e.Validator = handler.NewValidator()

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.HTTP.CORSOrigins}))
	e.Use(echomw.Secure())
	e.Use(echomw.Gzip())
	e.Use(echomw.BodyLimit(cfg.HTTP.BodyLimit))
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.NewTokenBucket(cfg.RateLimit, rdb, cfg.Auth.JWTSecret, log))

	router.RegisterRoutes(e, router.Handlers{
		Root: handler.NewRootHandler(handler.Info{
			Name:      cfg.Name,
			Version:   cfg.Version,
			Env:       cfg.Env,
			APIPrefix: cfg.HTTP.APIPrefix,
		}, probes...),
		Auth:    handler.NewAuthHandler(log, authSvc),
		Booking: handler.NewBookingHandler(log, bookingSvc),
		Catalog: handler.NewCatalogHandler(log, catalogSvc),
	}, router.Options{
		APIPrefix:    cfg.HTTP.APIPrefix,
		JWTSecret:    cfg.Auth.JWTSecret,
		LegacyToken:  cfg.Legacy.Token,
		CatalogCache: middleware.NewRedisCache(cfg.Cache, rdb),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      e,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("starting server", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("application stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}
	if err := sched.Shutdown(); err != nil {
		log.Error("failed to stop scheduler", sl.Err(err))
	}

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return setupPrettySlog()
	}
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
	}
	return slog.New(opts.NewPrettyHandler(os.Stdout))
}
