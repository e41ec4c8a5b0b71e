package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	httpAdapter "github.com/iho/pinledger/internal/adapter/http"
	"github.com/iho/pinledger/internal/adapter/http/handler"
	"github.com/iho/pinledger/internal/adapter/http/middleware"
	"github.com/iho/pinledger/internal/adapter/repository/memory"
	redisRepo "github.com/iho/pinledger/internal/adapter/repository/redis"
	"github.com/iho/pinledger/internal/domain"
	"github.com/iho/pinledger/internal/infrastructure/config"
	"github.com/iho/pinledger/internal/infrastructure/logger"
	"github.com/iho/pinledger/internal/infrastructure/metrics"
	"github.com/iho/pinledger/internal/infrastructure/redis"
	"github.com/iho/pinledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, prometheus.DefaultRegisterer, prometheus.DefaultGatherer); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

// app is the wired HTTP handler together with resources that need closing.
type app struct {
	handler     http.Handler
	rateLimiter *middleware.RateLimiter
	redisClient *goredis.Client
}

func (a *app) Close() error {
	if a.redisClient != nil {
		return a.redisClient.Close()
	}
	return nil
}

func loadSeed(cfg *config.Config) ([]domain.Account, error) {
	if cfg.SeedFile == "" {
		return memory.DefaultSeed(), nil
	}
	return memory.LoadSeedFile(cfg.SeedFile)
}

func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger, reg prometheus.Registerer, gatherer prometheus.Gatherer) (*app, error) {
	seed, err := loadSeed(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed: %w", err)
	}

	store, err := memory.NewAccountStore(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to build account store: %w", err)
	}
	log.Info().Int("accounts", len(seed)).Msg("account store ready")

	// Initialize repositories
	txManager := memory.NewTxManager(store)
	accountRepo := memory.NewAccountRepository(store)
	ledgerRepo := memory.NewLedgerRepository(store)
	idGen := memory.NewULIDGenerator()

	m := metrics.New(reg)

	// Initialize use cases
	accountLedger := usecase.NewAccountLedger(txManager, accountRepo, idGen).WithLockTimeout(cfg.LockTimeout)
	ledger := usecase.NewInstrumentedLedger(accountLedger, m)
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo)

	a := &app{}
	routerCfg := httpAdapter.RouterConfig{
		AccountHandler:  handler.NewAccountHandler(ledger),
		TransferHandler: handler.NewTransferHandler(ledger),
		LedgerHandler:   handler.NewLedgerHandler(ledgerUC),
		Logger:          log,
		IdempotencyTTL:  cfg.IdempotencyTTL,
		HTTPMetrics:     middleware.NewHTTPMetrics(reg),
		MetricsHandler:  promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
	}

	// Redis is optional; without it requests are not deduplicated.
	var pinger handler.Pinger
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(ctx, cfg.RedisURL, cfg.RedisConnectTimeout)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		log.Info().Msg("connected to redis")

		a.redisClient = client
		routerCfg.IdempotencyStore = redisRepo.NewIdempotencyStore(client)
		pinger = handler.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
	} else {
		log.Warn().Msg("REDIS_URL not set, idempotency keys are ignored")
	}
	routerCfg.HealthHandler = handler.NewHealthHandler(pinger)

	if cfg.RateLimitRPS > 0 {
		a.rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).WithHitCounter(m.RateLimitHits)
		routerCfg.RateLimiter = a.rateLimiter
	}

	a.handler = httpAdapter.NewRouter(routerCfg)

	return a, nil
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger, reg prometheus.Registerer, gatherer prometheus.Gatherer) error {
	a, err := newApp(ctx, cfg, log, reg, gatherer)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.rateLimiter != nil && cfg.RateLimitCleanup > 0 {
		go a.rateLimiter.Run(ctx, cfg.RateLimitCleanup)
	}

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      a.handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}
