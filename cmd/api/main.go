package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"news-api/internal/common/pagination"
	"news-api/internal/config"
	pgRepo "news-api/internal/infra/adapter/persistence/postgres"
	"news-api/internal/infra/db"
	"news-api/internal/observability/logging"
	"news-api/internal/observability/metrics"
	"news-api/internal/observability/tracing"
	"news-api/internal/resilience/circuitbreaker"

	artUC "news-api/internal/usecase/article"
	comUC "news-api/internal/usecase/comment"
	topicUC "news-api/internal/usecase/topic"
	userUC "news-api/internal/usecase/user"

	hhttp "news-api/internal/handler/http"
	harticle "news-api/internal/handler/http/article"
	hcomment "news-api/internal/handler/http/comment"
	"news-api/internal/handler/http/requestid"
	htopic "news-api/internal/handler/http/topic"
	huser "news-api/internal/handler/http/user"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	version := getVersion()
	shutdownTracing := tracing.Setup("news-api", version)

	handler := setupServer(logger, database, cfg, version)

	runServer(logger, database, handler, cfg, version, shutdownTracing)
}

func getVersion() string {
	if version := os.Getenv("VERSION"); version != "" {
		return version
	}
	return "dev"
}

// setupServer wires repositories through the circuit breaker, builds the
// services, registers all routes and applies the middleware chain.
func setupServer(logger *slog.Logger, database *sql.DB, cfg config.Config, version string) http.Handler {
	protected := circuitbreaker.NewDBCircuitBreaker(database)

	artSvc := &artUC.Service{Repo: pgRepo.NewArticleRepo(protected)}
	comSvc := &comUC.Service{Repo: pgRepo.NewCommentRepo(protected)}
	topicSvc := &topicUC.Service{Repo: pgRepo.NewTopicRepo(protected)}
	userSvc := &userUC.Service{Repo: pgRepo.NewUserRepo(protected)}

	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()
	mux.Handle("GET /api", hhttp.EndpointsHandler{})
	mux.Handle("GET /api/{$}", hhttp.EndpointsHandler{})
	harticle.Register(mux, artSvc, paginationCfg, logger)
	hcomment.Register(mux, comSvc, artSvc, paginationCfg)
	htopic.Register(mux, topicSvc)
	huser.Register(mux, userSvc)

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	// Everything unmatched gets the fixed 404 body.
	mux.Handle("/", hhttp.NotFoundHandler{})

	return applyMiddleware(logger, mux, cfg)
}

// applyMiddleware wraps the handler, innermost first:
// request ID → tracing → logging → metrics → recovery → body limit → rate limit.
func applyMiddleware(logger *slog.Logger, handler http.Handler, cfg config.Config) http.Handler {
	chain := handler

	if cfg.RateLimit.Enabled {
		limiter := hhttp.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		chain = limiter.Middleware(chain)
		logger.Info("rate limiting enabled",
			slog.Float64("rps", cfg.RateLimit.RPS),
			slog.Int("burst", cfg.RateLimit.Burst))
	} else {
		logger.Warn("rate limiting is disabled")
	}

	chain = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server, the metrics refresher and the shutdown
// watcher, then waits for all of them to finish.
func runServer(logger *slog.Logger, database *sql.DB, handler http.Handler, cfg config.Config, version string, shutdownTracing func(context.Context) error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout.Std(),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	refresher := &metrics.Refresher{
		DB:       database,
		Interval: cfg.Metrics.RefreshInterval.Std(),
		Logger:   logger,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if err := refresher.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", slog.Any("error", err))
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("tracer shutdown failed", slog.Any("error", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
