package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/okatkov/wordvault/internal/adapter/postgres"
	"github.com/okatkov/wordvault/internal/adapter/postgres/word"
	"github.com/okatkov/wordvault/internal/auth"
	"github.com/okatkov/wordvault/internal/config"
	"github.com/okatkov/wordvault/internal/service/quiz"
	"github.com/okatkov/wordvault/internal/service/vocabulary"
	"github.com/okatkov/wordvault/internal/transport/middleware"
	"github.com/okatkov/wordvault/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, runs migrations, wires services and transport, and serves
// HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	wordRepo := word.New(pool)

	vocabService := vocabulary.NewService(logger, wordRepo, cfg.Vocabulary)
	quizService := quiz.NewService(logger, wordRepo, cfg.Quiz)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, nil)

	wordHandler := rest.NewWordHandler(vocabService, quizService, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	router := rest.NewRouter(wordHandler, healthHandler, middleware.Auth(jwtManager))

	global := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMin > 0 {
		limiter := middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()
		global = append(global, limiter.Limit(cfg.Server.RateLimitPerMin))
	}
	handler := middleware.Chain(global...)(router)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
