// Package server wires the records backend together: configuration, logging,
// the database handle, repositories and services, plus the one-shot
// background schema initialization that runs at startup.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/uelms-project/uelms/internal/common"
	"github.com/uelms-project/uelms/internal/logging"
	"github.com/uelms-project/uelms/internal/server/config"
	"github.com/uelms-project/uelms/internal/server/repositories/repomanager"
	"github.com/uelms-project/uelms/internal/server/schema"
	"github.com/uelms-project/uelms/internal/server/services"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	Auth     *services.AuthService
	Rechecks *services.RecheckService
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorConnection, err)
	}

	// Fail fast on a dead handle instead of hanging on the first statement.
	pingCtx, cancel := context.WithTimeout(context.Background(), c.ConnTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrorConnection, err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	ensurer := schema.NewEnsurer(func(ctx context.Context) error {
		return rm.RunMigrations(ctx, db)
	})

	auth := services.NewAuthService(db, rm, ensurer, c, logger)
	rechecks := services.NewRecheckService(db, rm, ensurer, logger)

	return &App{config: c, logger: logger, db: db, Auth: auth, Rechecks: rechecks}, nil
}

// StartBackgroundInit launches the one-shot startup task that migrates the
// schema and seeds the bootstrap admin, decoupled from the caller so the
// first screen stays responsive. A user action racing it is safe: both paths
// go through the same ensure-once latch. The returned channel closes when
// the task finishes.
func (a *App) StartBackgroundInit(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := a.Auth.SeedDefaultAdmin(ctx); err != nil {
			a.logger.Error(ctx, "startup schema initialization failed", "error", err.Error())
			return
		}
		a.logger.Info(ctx, "schema ready")
	}()
	return done
}

func (a *App) Logger() logging.Logger {
	return a.logger
}

func (a *App) Close() error {
	return a.db.Close()
}
