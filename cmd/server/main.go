package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"badgeregistry/internal/badge"
	"badgeregistry/internal/badge/cache"
	"badgeregistry/internal/badge/events"
	badgemetrics "badgeregistry/internal/badge/metrics"
	"badgeregistry/internal/badge/service"
	"badgeregistry/internal/badge/store"
	jwttoken "badgeregistry/internal/jwt_token"
	"badgeregistry/internal/platform/config"
	"badgeregistry/internal/platform/httpserver"
	"badgeregistry/internal/platform/kafka"
	"badgeregistry/internal/platform/logger"
	"badgeregistry/internal/platform/metrics"
	"badgeregistry/internal/platform/postgres"
	platformredis "badgeregistry/internal/platform/redis"
	"badgeregistry/internal/platform/tracing"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "badgeregistry: %v\n", err)
		os.Exit(1)
	}
}

// run wires dependencies, serves HTTP and relays outbox events until a
// signal arrives. Business logic lives in internal/badge.
func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error("tracing shutdown failed", "error", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.New(registry)
	badgeMetrics := badgemetrics.New(registry)

	st, tx, closeStore, err := buildStore(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer closeStore()

	var opts []service.Option
	redisClient, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		opts = append(opts, service.WithMetadataCache(cache.NewMetadataCache(redisClient.Client, cache.WithTTL(cfg.Redis.MetadataTTL))))
		log.Info("contract metadata cache enabled")
	}

	publisher, closePublisher, err := buildPublisher(ctx, cfg.Kafka, log)
	if err != nil {
		return err
	}
	defer closePublisher()

	svc := badge.NewService(st, cfg.Registry.Moderators, tx, log, badgeMetrics, opts...)
	if err := svc.InitContractMetadata(ctx, cfg.Registry.Metadata); err != nil {
		return fmt.Errorf("init contract metadata: %w", err)
	}
	if len(cfg.Registry.Moderators) == 0 {
		log.Warn("no moderators configured; mint and reward will be rejected")
	}

	jwtService := jwttoken.NewJWTService(cfg.Server.JWTSigningKey, cfg.Server.JWTIssuer, cfg.Server.JWTAudience)

	router := chi.NewRouter()
	router.Get("/healthz", healthHandler(redisClient))
	router.Handle("/metrics", httpMetrics.Handler())
	badge.NewHandler(svc, log, httpMetrics, jwttoken.MiddlewareValidator{JWTService: jwtService}, cfg.Server.RequestTimeout).Register(router)

	srv := httpserver.New(cfg.Server.Addr, router, cfg.Server.WriteTimeout)
	relay := badge.NewRelay(st, publisher, cfg.Outbox.PollInterval, cfg.Outbox.BatchSize, log, badgeMetrics)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting badge registry", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := relay.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("badge registry stopped")
	return nil
}

func buildStore(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (badge.Store, service.StoreTx, func(), error) {
	if cfg.URL == "" {
		log.Info("using in-memory badge store")
		return store.NewInMemory(), nil, func() {}, nil
	}

	if err := store.Migrate(cfg.URL); err != nil {
		return nil, nil, nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := postgres.Open(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	st := store.NewPostgres(db)
	log.Info("using postgres badge store")
	return st, newBadgePostgresTx(db, st, cfg.TxTimeout), func() { _ = db.Close() }, nil
}

func buildPublisher(ctx context.Context, cfg config.KafkaConfig, log *slog.Logger) (events.Publisher, func(), error) {
	client, err := kafka.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		log.Info("publishing badge events to the log")
		return events.NewLogPublisher(log), func() {}, nil
	}
	if err := kafka.EnsureTopic(ctx, client, cfg.Topic); err != nil {
		client.Close()
		return nil, nil, err
	}
	log.Info("publishing badge events to kafka", "topic", cfg.Topic)
	return events.NewKafkaPublisher(client, cfg.Topic), client.Close, nil
}

func healthHandler(redisClient *platformredis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
