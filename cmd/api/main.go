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
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	pgRepo "recipe-catalog/internal/infra/adapter/persistence/postgres"
	"recipe-catalog/internal/infra/db"
	"recipe-catalog/internal/infra/ideasource"
	"recipe-catalog/pkg/config"

	ideasUC "recipe-catalog/internal/usecase/ideas"
	recUC "recipe-catalog/internal/usecase/recipe"

	hhttp "recipe-catalog/internal/handler/http"
	hauth "recipe-catalog/internal/handler/http/auth"
	hideas "recipe-catalog/internal/handler/http/ideas"
	hrecipe "recipe-catalog/internal/handler/http/recipe"
	"recipe-catalog/internal/handler/http/requestid"
	"recipe-catalog/internal/observability/logging"
	authservice "recipe-catalog/internal/service/auth"
)

func main() {
	logger := initLogger()
	secret := validateJWTSecret(logger)
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, database, secret, version)

	runServer(logger, handler, version)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// validateJWTSecret validates the JWT_SECRET environment variable for security requirements.
func validateJWTSecret(logger *slog.Logger) []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value", slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
	return []byte(secret)
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer configures and returns the HTTP handler with all routes and middleware.
func setupServer(logger *slog.Logger, database *sql.DB, secret []byte, version string) http.Handler {
	tokenTTL := config.GetEnvDuration("TOKEN_TTL", 30*time.Minute)
	codec := authservice.NewCodec(secret, tokenTTL)
	authSvc := authservice.NewService(codec, pgRepo.NewUserRepo(database))
	recipeSvc := &recUC.Service{Repo: pgRepo.NewRecipeRepo(database)}

	ideasSvc := setupIdeas(logger)

	mux := http.NewServeMux()

	// レート制限: 認証エンドポイントは1分間に5リクエストまで
	loginLimiter := hhttp.NewRateLimiter(5, 1*time.Minute)

	authHandler := &hauth.Handler{Auth: authSvc}
	authHandler.Register(mux, loginLimiter)
	hrecipe.Register(mux, recipeSvc, authSvc)
	hideas.Register(mux, ideasSvc)

	mux.Handle("GET    /health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET    /ready", &hhttp.ReadinessHandler{DB: database})
	mux.HandleFunc("GET    /live", hhttp.LivenessHandler)
	mux.Handle("GET    /metrics", promhttp.Handler())

	// Apply in reverse order (innermost to outermost)
	var handler http.Handler = mux
	handler = hhttp.Metrics()(handler)
	handler = hhttp.LimitRequestBody(1 << 20)(handler) // 1MB limit
	handler = hhttp.Logging(logger)(handler)
	handler = hhttp.Recover(logger)(handler)
	handler = requestid.Middleware(handler)

	return handler
}

// setupIdeas wires the configured idea sources into the aggregation service.
func setupIdeas(logger *slog.Logger) *ideasUC.Service {
	sources, err := config.LoadIdeaSources()
	if err != nil {
		logger.Error("failed to load idea source configuration", slog.Any("error", err))
		os.Exit(1)
	}

	specs := make([]ideasource.Spec, 0, len(sources))
	for _, s := range sources {
		specs = append(specs, ideasource.Spec{
			ID:        s.ID,
			Kind:      s.Kind,
			Subreddit: s.Subreddit,
			FeedURL:   s.FeedURL,
		})
	}

	httpClient := &http.Client{Timeout: 10 * time.Second}
	order, clients, err := ideasource.Build(specs, httpClient)
	if err != nil {
		logger.Error("invalid idea source configuration", slog.Any("error", err))
		os.Exit(1)
	}

	svc, err := ideasUC.NewService(order, clients, ideasUC.Config{
		Limit:            config.GetEnvInt("IDEAS_LIMIT", 10),
		PerSourceTimeout: config.GetEnvDuration("IDEAS_SOURCE_TIMEOUT", 5*time.Second),
		OverallDeadline:  config.GetEnvDuration("IDEAS_OVERALL_DEADLINE", 8*time.Second),
	})
	if err != nil {
		logger.Error("failed to build ideas service", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("idea sources configured", slog.Int("count", len(order)))
	return svc
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := config.GetEnvString("LISTEN_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
