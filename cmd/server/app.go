package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/mesto-project/mesto-api/internal/config"
	"github.com/mesto-project/mesto-api/internal/platform/postgres"
	"github.com/mesto-project/mesto-api/internal/service/auth"
	"github.com/mesto-project/mesto-api/internal/store"
)

// application bundles the process-wide dependencies: configuration,
// logger, database handle, stores, and the auth services. Constructed
// once at startup and read-only afterwards.
type application struct {
	config           *config.Config
	logger           *slog.Logger
	db               *sql.DB
	userStore        store.UserStore
	cardStore        store.CardStore
	jwtService       auth.JWTService
	passwordVerifier *auth.BcryptVerifier
}

// newApplication connects to the database, applies migrations, and wires
// the service layer.
func newApplication(cfg *config.Config, log *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	if err := postgres.MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("database migrations applied")

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           log,
		db:               db,
		userStore:        postgres.NewUserStore(db, log),
		cardStore:        postgres.NewCardStore(db, log),
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
