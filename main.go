package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	database "github.com/foodie-express/foodie-server/app/db"
	appLogger "github.com/foodie-express/foodie-server/app/logger"
	"github.com/foodie-express/foodie-server/config"
	"github.com/foodie-express/foodie-server/internal/api/auth"
	"github.com/foodie-express/foodie-server/internal/api/cart"
	"github.com/foodie-express/foodie-server/internal/api/catalog"
	"github.com/foodie-express/foodie-server/internal/api/chat"
	"github.com/foodie-express/foodie-server/internal/api/orders"
	"github.com/foodie-express/foodie-server/internal/kv"
	api "github.com/foodie-express/foodie-server/internal/router"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger(cfg.Mode)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	backing, cleanup := setupStore(ctx, &cfg, logger)
	defer cleanup()
	store := kv.NewInstrumentedStore(backing)

	// --- Dependency Injection ---
	catalogService := catalog.NewCatalogService(logger)
	catalogHandler := catalog.NewCatalogHandler(catalogService, logger)

	authRepo := auth.NewKVAuthRepo(store, logger)
	authService := auth.NewAuthService(authRepo, cfg.JWT, logger)
	authHandler := auth.NewAuthHandler(authService, logger)

	cartService := cart.NewCartService(logger)
	cartHandler := cart.NewCartHandler(cartService, catalogService, logger)

	orderRepo := orders.NewKVOrderRepo(store, logger)
	orderService := orders.NewOrderService(orderRepo, cartService, catalogService, logger)
	orderHandler := orders.NewOrderHandler(orderService, logger)

	chatRepo := chat.NewKVChatRepo(store, logger)
	chatService := chat.NewChatService(chatRepo, catalogService, logger)
	chatHandler := chat.NewChatHandler(chatService, logger)

	// A persisted session from a previous run is trusted as-is on read.
	if user, err := authRepo.GetSession(ctx); err == nil && user != nil {
		logger.Info("Restored persisted session",
			slog.String("user_id", user.ID),
			slog.String("role", string(user.Role)),
		)
	}

	// --- Router Setup ---
	routerConfig := &api.Config{
		AuthHandler:            authHandler,
		CatalogHandler:         catalogHandler,
		CartHandler:            cartHandler,
		OrderHandler:           orderHandler,
		ChatHandler:            chatHandler,
		AuthenticateMiddleware: auth.Authenticate(logger, cfg.JWT),
	}
	mainRouter := api.SetupRouter(routerConfig)

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(cfg.Server.Timeout))
	router.Use(middleware.Compress(5, "application/json"))
	router.Mount("/", mainRouter)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.MetricsPort),
		Handler: metricsMux,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("Starting metrics server", slog.String("address", metricsSrv.Addr))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutdown signal received, starting graceful shutdown...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
		}
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Metrics server graceful shutdown failed", slog.Any("error", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Application shut down complete.")
}

// setupStore builds the configured key-value backing. Redis and Postgres
// failures degrade to the in-memory store with a warning rather than
// refusing to start; the app is fully functional without durable
// storage, it just forgets on restart.
func setupStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (kv.Store, func()) {
	noop := func() {}

	switch cfg.Storage.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		defer pingCancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			logger.Warn("Redis unreachable, falling back to in-memory storage", slog.Any("error", err))
			_ = client.Close()
			return kv.NewMemoryStore(), noop
		}
		logger.Info("Using Redis storage backend", slog.String("addr", cfg.Storage.Redis.Addr))
		return kv.NewRedisStore(client, cfg.Storage.KeyPrefix), func() { _ = client.Close() }

	case "postgres":
		dbConfig, err := database.NewDatabaseConfig(cfg, logger)
		if err != nil {
			logger.Warn("Invalid Postgres config, falling back to in-memory storage", slog.Any("error", err))
			return kv.NewMemoryStore(), noop
		}
		if err := database.RunMigrations(dbConfig.ConnectionURL, logger); err != nil {
			logger.Warn("Postgres migrations failed, falling back to in-memory storage", slog.Any("error", err))
			return kv.NewMemoryStore(), noop
		}
		pool, err := database.Init(dbConfig.ConnectionURL, logger)
		if err != nil {
			logger.Warn("Postgres unreachable, falling back to in-memory storage", slog.Any("error", err))
			return kv.NewMemoryStore(), noop
		}
		if !database.WaitForDB(ctx, pool, logger) {
			logger.Warn("Postgres not ready, falling back to in-memory storage")
			pool.Close()
			return kv.NewMemoryStore(), noop
		}
		logger.Info("Using Postgres storage backend")
		return kv.NewPostgresStore(pool), pool.Close

	default:
		if cfg.Storage.Backend != "memory" && cfg.Storage.Backend != "" {
			logger.Warn("Unknown storage backend, using in-memory storage",
				slog.String("backend", cfg.Storage.Backend))
		}
		logger.Info("Using in-memory storage backend")
		return kv.NewMemoryStore(), noop
	}
}

// setupLogger configures and returns the application logger.
func setupLogger(mode string) *slog.Logger {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = mode
	}

	if env == "production" {
		jsonOpts := &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}
		logger := slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
		return logger
	}

	// Colored logs for development
	tintOpts := &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}
	logger := slog.New(tint.NewHandler(os.Stdout, tintOpts))
	log.Println("Initialized development logger (tint)")
	return logger
}
