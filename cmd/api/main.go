package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/softsell/site/backend/internal/analysis/reply"
	"github.com/softsell/site/backend/internal/config"
	"github.com/softsell/site/backend/internal/handler"
	"github.com/softsell/site/backend/internal/logging"
	"github.com/softsell/site/backend/internal/middleware"
	"github.com/softsell/site/backend/internal/model/contact"
	"github.com/softsell/site/backend/internal/model/faq"
	"github.com/softsell/site/backend/internal/model/site"
	"github.com/softsell/site/backend/internal/service/chat"
	contactservice "github.com/softsell/site/backend/internal/service/contact"
	"github.com/softsell/site/backend/internal/storage/sqlite"
	"github.com/softsell/site/backend/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "softsell: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if envErr != nil {
		logger.Info("no .env file loaded, using process environment", zap.Error(envErr))
	}

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, logger)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer shutdownTelemetry()

	rules := faq.DefaultRules()
	if cfg.Chat.RulesPath != "" {
		rules, err = faq.LoadRulesFile(cfg.Chat.RulesPath)
		if err != nil {
			return fmt.Errorf("load faq rules: %w", err)
		}
		logger.Info("faq rules loaded", zap.String("path", cfg.Chat.RulesPath), zap.Int("rules", len(rules)))
	}

	chatSvc := chat.NewService(
		reply.NewMatcher(rules),
		chat.WithReplyDelay(cfg.Chat.ReplyDelayMin, cfg.Chat.ReplyDelayMax),
		chat.WithLogger(logger.Named("chat")),
	)

	store, closeStore, err := openContactStore(ctx, cfg.Contact)
	if err != nil {
		return err
	}
	defer closeStore()
	contactSvc := contactservice.NewService(store, logger.Named("contact"))

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled() {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.Window, cfg.RateLimit.Capacity)
		go sweepLimiter(ctx, limiter, cfg.RateLimit.Window)
	} else {
		logger.Info("rate limiting disabled")
	}

	router := handler.NewRouter(handler.Dependencies{
		Server:     cfg.Server,
		Content:    site.Default(),
		ChatSvc:    chatSvc,
		ContactSvc: contactSvc,
		Limiter:    limiter,
		Logger:     logger.Named("http"),
	})

	return startServer(ctx, cfg.Server, router, logger)
}

func openContactStore(ctx context.Context, cfg config.ContactConfig) (contact.Store, func(), error) {
	if cfg.Store != config.StoreSQLite {
		return contact.NewMemoryStore(), func() {}, nil
	}

	store, err := sqlite.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open contact store: %w", err)
	}
	zap.L().Info("contact submissions stored in sqlite", zap.String("path", cfg.SQLitePath))
	return store, func() {
		if err := store.Close(); err != nil {
			zap.L().Warn("close contact store", zap.Error(err))
		}
	}, nil
}

func sweepLimiter(ctx context.Context, limiter *middleware.RateLimiter, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Sweep()
		}
	}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, logger *zap.Logger) error {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("SoftSell backend listening", zap.String("addr", addr))
	if err := runServer(ctx, srv); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
