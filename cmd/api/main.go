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
	"strings"
	"syscall"
	"time"

	"lawgan/internal/infra/db"
	"lawgan/internal/repository"
	"lawgan/pkg/config"

	pgRepo "lawgan/internal/infra/adapter/persistence/postgres"
	sqliteRepo "lawgan/internal/infra/adapter/persistence/sqlite"

	adUC "lawgan/internal/usecase/advertisement"
	admUC "lawgan/internal/usecase/admin"
	artUC "lawgan/internal/usecase/article"
	boardUC "lawgan/internal/usecase/board"
	execUC "lawgan/internal/usecase/executive"
	quoteUC "lawgan/internal/usecase/quote"

	hhttp "lawgan/internal/handler/http"
	had "lawgan/internal/handler/http/advertisement"
	hadmin "lawgan/internal/handler/http/admin"
	harticle "lawgan/internal/handler/http/article"
	hauth "lawgan/internal/handler/http/auth"
	hboard "lawgan/internal/handler/http/board"
	hexec "lawgan/internal/handler/http/executive"
	hquote "lawgan/internal/handler/http/quote"
	"lawgan/internal/handler/http/middleware"
	"lawgan/internal/handler/http/requestid"
)

// maxBodyBytes caps incoming request bodies. Article images arrive as
// base64 in JSON, so the limit matches the platform's 200KB body cap.
const maxBodyBytes = 200 * 1024

func main() {
	logger := initLogger()
	validateJWTSecret(logger)

	backend := storageBackend()
	database := initDatabase(logger, backend)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	components := setupServer(logger, database, backend, version)

	runServer(logger, components, version)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// validateJWTSecret validates the JWT_SECRET environment variable for security requirements.
func validateJWTSecret(logger *slog.Logger) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	// Enforce a minimum of 32 characters (256 bits).
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	// Reject common weak secrets outright.
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value", slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
}

// storageBackend returns the configured storage backend, "postgres" or "sqlite".
func storageBackend() string {
	backend := strings.ToLower(config.GetEnvString("STORAGE_BACKEND", "postgres"))
	if backend != "sqlite" {
		backend = "postgres"
	}
	return backend
}

// initDatabase opens the configured backend and runs schema migrations.
func initDatabase(logger *slog.Logger, backend string) *sql.DB {
	var database *sql.DB
	switch backend {
	case "sqlite":
		database = db.OpenSQLite()
	default:
		database = db.OpenPostgres()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Migrate(ctx, database, backend); err != nil {
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

// repositories bundles the per-resource repositories for one storage backend.
type repositories struct {
	Admins         repository.AdminRepository
	Articles       repository.ArticleRepository
	BoardMembers   repository.BoardMemberRepository
	Executives     repository.ExecutiveRepository
	Advertisements repository.AdvertisementRepository
	Quotes         repository.QuoteRepository
}

func buildRepositories(database *sql.DB, backend string) repositories {
	if backend == "sqlite" {
		return repositories{
			Admins:         sqliteRepo.NewAdminRepo(database),
			Articles:       sqliteRepo.NewArticleRepo(database),
			BoardMembers:   sqliteRepo.NewBoardMemberRepo(database),
			Executives:     sqliteRepo.NewExecutiveRepo(database),
			Advertisements: sqliteRepo.NewAdvertisementRepo(database),
			Quotes:         sqliteRepo.NewQuoteRepo(database),
		}
	}
	return repositories{
		Admins:         pgRepo.NewAdminRepo(database),
		Articles:       pgRepo.NewArticleRepo(database),
		BoardMembers:   pgRepo.NewBoardMemberRepo(database),
		Executives:     pgRepo.NewExecutiveRepo(database),
		Advertisements: pgRepo.NewAdvertisementRepo(database),
		Quotes:         pgRepo.NewQuoteRepo(database),
	}
}

// ServerComponents holds components needed for server operation and shutdown.
type ServerComponents struct {
	Handler http.Handler
}

// setupServer configures and returns the HTTP handler with all routes and middleware.
func setupServer(logger *slog.Logger, database *sql.DB, backend, version string) *ServerComponents {
	repos := buildRepositories(database, backend)

	admSvc := &admUC.Service{Repo: repos.Admins}
	artSvc := &artUC.Service{Repo: repos.Articles}
	boardSvc := &boardUC.Service{Repo: repos.BoardMembers}
	execSvc := &execUC.Service{Repo: repos.Executives}
	adSvc := &adUC.Service{Repo: repos.Advertisements}
	quoteSvc := &quoteUC.Service{Repo: repos.Quotes}

	secret := os.Getenv("JWT_SECRET")
	issuer := hauth.NewIssuer(secret)
	authz := hauth.Authz([]byte(secret))

	mux := http.NewServeMux()

	health := &hhttp.HealthHandler{DB: database, Version: version, Backend: backend}
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /live", health.Live)
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	signinLimiter := hhttp.NewSignInLimiter(
		config.GetEnvFloat("SIGNIN_RATE_PER_MINUTE", 10),
		config.GetEnvInt("SIGNIN_RATE_BURST", 5))

	hadmin.Register(mux, admSvc, issuer, signinLimiter.Limit)
	harticle.Register(mux, artSvc, authz)
	hboard.Register(mux, boardSvc, authz)
	hexec.Register(mux, execSvc, authz)
	had.Register(mux, adSvc, authz)
	hquote.Register(mux, quoteSvc, authz)

	handler := applyMiddleware(logger, mux)

	return &ServerComponents{Handler: handler}
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): CORS, prefix strip, request ID, recovery,
// logging, metrics, input validation, body limit, timeout.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	corsConfig := middleware.LoadCORSConfig()
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Bool("allow_credentials", corsConfig.AllowCredentials))

	requestTimeout := config.GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second)

	chain := handler

	// Applied in reverse order (innermost to outermost).
	chain = hhttp.Timeout(requestTimeout)(chain)
	chain = hhttp.LimitRequestBody(maxBodyBytes)(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = hhttp.StripAPIPrefix(chain)
	chain = middleware.CORS(corsConfig)(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, components *ServerComponents, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := ":" + config.GetEnvString("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           components.Handler,
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
