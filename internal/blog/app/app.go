package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/blog/internal/blog/http"
	"github.com/aussiebroadwan/blog/internal/blog/mail"
	"github.com/aussiebroadwan/blog/internal/blog/oauth"
	"github.com/aussiebroadwan/blog/internal/blog/revocation"
	"github.com/aussiebroadwan/blog/internal/blog/service"
	"github.com/aussiebroadwan/blog/internal/blog/store"
	"github.com/aussiebroadwan/blog/internal/blog/store/drivers/postgres"
	"github.com/aussiebroadwan/blog/internal/blog/store/drivers/sqlite"
	"github.com/aussiebroadwan/blog/pkg/cryptox"
	"github.com/aussiebroadwan/blog/pkg/slogx"
	"github.com/rs/cors"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// migratingStore is a store driver that owns its schema.
type migratingStore interface {
	store.Store
	ApplyMigrations() error
}

// Application encapsulates the blog service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db      store.Store
	revoked revocation.List
	sweeper service.Sweeper // only the in-memory list needs sweeping
	mailer  mail.Sender

	// Services
	tokens              *service.TokenIssuer
	sessionService      *service.SessionService
	oauthBridge         *service.OAuthBridge
	userService         *service.UserService
	postService         *service.PostService
	categoryService     *service.CategoryService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "blog-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}
	cfg.warnings(app.logger)

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initRevocation(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initServices(); err != nil {
		app.closeDependencies()
		return nil, err
	}

	if app.cfg.SeedSampleData {
		if err := service.SeedSampleData(context.Background(), app.db); err != nil {
			app.closeDependencies()
			return nil, fmt.Errorf("failed to seed sample data: %w", err)
		}
	}

	app.initHTTP()

	return app, nil
}

// Handler returns the fully wrapped HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.server.Handler
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("blog service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			app.closeDependencies()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application. Housekeeping must have
// been started.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down blog service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Let queued reset mail finish
	app.sessionService.WaitForMail()

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	if err := app.closeDependencies(); err != nil {
		return err
	}

	app.logger.Info("blog service stopped")
	return nil
}

func (app *Application) closeDependencies() error {
	if closer, ok := app.revoked.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			app.logger.Error("error closing revocation list", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}
	return nil
}

// parseDatabaseURL splits DATABASE_URL into a driver name and its DSN.
// sqlite URLs follow the sqlite:///relative and sqlite:////absolute form;
// anything that is not a postgres URL is taken as a sqlite file path.
func parseDatabaseURL(raw string) (driver, dsn string) {
	switch {
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return "postgres", raw
	case strings.HasPrefix(raw, "sqlite:///"):
		return "sqlite", strings.TrimPrefix(raw, "sqlite:///")
	case strings.HasPrefix(raw, "sqlite://"):
		return "sqlite", strings.TrimPrefix(raw, "sqlite://")
	default:
		return "sqlite", raw
	}
}

// initDatabase opens the configured store and applies migrations
func (app *Application) initDatabase() error {
	driver, dsn := parseDatabaseURL(app.cfg.DatabaseURL)

	var (
		db  migratingStore
		err error
	)
	switch driver {
	case "postgres":
		db, err = postgres.NewStore(dsn)
	default:
		if dsn != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(dsn), 0750); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
			dsn = "file:" + dsn
		}
		db, err = sqlite.NewStore(dsn)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}
	app.db = db

	app.logger.Info("database migrations applied successfully", "driver", driver)
	return nil
}

// initRevocation picks Redis when configured, otherwise an in-process list
// that housekeeping sweeps.
func (app *Application) initRevocation() error {
	if app.cfg.RedisURL == "" {
		mem := revocation.NewMemoryList()
		app.revoked = mem
		app.sweeper = mem
		app.logger.Info("using in-memory token revocation list")
		return nil
	}

	list, err := revocation.NewRedisListFromURL(app.cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to configure redis: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := list.Ping(ctx); err != nil {
		_ = list.Close()
		return fmt.Errorf("failed to reach redis: %w", err)
	}

	app.revoked = list
	app.logger.Info("using redis token revocation list")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	tokens, err := service.NewTokenIssuer(
		app.cfg.SecretKey,
		app.cfg.AccessTokenTTL,
		app.cfg.RefreshTokenTTL,
		app.cfg.ResetTokenTTL,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize token issuer: %w", err)
	}
	app.tokens = tokens

	app.mailer = mail.New(mail.Config{
		FromEmail:    app.cfg.FromEmail,
		FromName:     app.cfg.FromName,
		AppURL:       app.cfg.AppURL,
		ResendAPIKey: app.cfg.ResendAPIKey,
		SMTPHost:     app.cfg.SMTPHost,
		SMTPPort:     app.cfg.SMTPPort,
		SMTPUser:     app.cfg.SMTPUser,
		SMTPPassword: app.cfg.SMTPPassword,
	})

	app.sessionService = &service.SessionService{
		Store:   app.db,
		Tokens:  tokens,
		Revoked: app.revoked,
		Mailer:  app.mailer,
	}

	app.oauthBridge = &service.OAuthBridge{Store: app.db, Tokens: tokens}
	if app.cfg.GoogleClientID != "" {
		app.oauthBridge.Provider = oauth.NewGoogle(oauth.GoogleConfig{
			ClientID:     app.cfg.GoogleClientID,
			ClientSecret: app.cfg.GoogleClientSecret,
			RedirectURI:  app.cfg.GoogleRedirectURI,
		})
		app.logger.Info("google sign-in enabled")
	}

	app.userService = &service.UserService{Store: app.db}
	app.postService = &service.PostService{Store: app.db}
	app.categoryService = &service.CategoryService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.sweeper,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	// Wire services to router
	router.SessionService = app.sessionService
	router.OAuthBridge = app.oauthBridge
	router.UserService = app.userService
	router.PostService = app.postService
	router.CategoryService = app.categoryService
	router.CookieSecure = app.cfg.CookieSecure
	router.ExposeResetToken = app.cfg.ExposeResetToken
	router.ApplyRoutes()

	app.router = router

	// Browsers need credentials allowed for the refresh cookie
	handler := cors.New(cors.Options{
		AllowedOrigins:   app.cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(router)

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
