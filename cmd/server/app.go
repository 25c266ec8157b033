package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/moloke/lightverse/internal/config"
	"github.com/moloke/lightverse/internal/domain/memorize"
	"github.com/moloke/lightverse/internal/platform/postgres"
	"github.com/moloke/lightverse/internal/platform/twilio"
	"github.com/moloke/lightverse/internal/service/auth"
	"github.com/moloke/lightverse/internal/service/practice"
	"github.com/moloke/lightverse/internal/store"
	"github.com/moloke/lightverse/internal/task"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore    store.UserStore
	verseStore   store.VerseStore
	sessionStore store.SessionStore
	streakStore  store.StreakStore
	messageStore store.MessageLogStore
	otpStore     store.OTPStore
	txRunner     store.TxRunner

	// Services
	jwtService      auth.JWTService
	otpService      *auth.OTPService
	practiceService practice.PracticeService
	engine          memorize.Service
	smsClient       *twilio.Client

	// Background jobs
	scheduler *task.Scheduler
}

// newApplication creates a new application instance with all dependencies
// initialized.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	app.smsClient, err = twilio.NewClient(cfg.Twilio, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SMS client: %w", err)
	}

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.verseStore = postgres.NewPostgresVerseStore(db, logger)
	app.sessionStore = postgres.NewPostgresSessionStore(db, logger)
	app.streakStore = postgres.NewPostgresStreakStore(db, logger)
	app.messageStore = postgres.NewPostgresMessageLogStore(db, logger)
	app.otpStore = postgres.NewPostgresOTPStore(db, logger)
	app.txRunner = postgres.NewTxRunner(db, logger)

	app.engine = memorize.NewDefaultService()

	app.otpService, err = auth.NewOTPService(
		app.userStore,
		app.otpStore,
		app.smsClient,
		app.jwtService,
		auth.NewBcryptHasher(),
		cfg.Auth,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OTP service: %w", err)
	}

	app.practiceService = practice.NewPracticeService(
		app.userStore,
		app.verseStore,
		app.sessionStore,
		app.streakStore,
		app.messageStore,
		app.txRunner,
		app.engine,
		app.smsClient,
		logger,
	)

	dailyJob := task.NewDailyVerseJob(
		app.userStore,
		app.verseStore,
		app.sessionStore,
		app.messageStore,
		app.engine,
		app.smsClient,
		logger,
	)
	app.scheduler = task.NewScheduler(dailyJob, cfg.Jobs.DailySendHourUTC, logger)

	logger.Info("application initialized")
	return app, nil
}

// Run starts the background scheduler and the HTTP server, handling
// lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	app.scheduler.Start()

	router := app.setupRouter()
	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.scheduler != nil {
		app.scheduler.Stop()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("application shutdown completed")
}
