package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/biovital365/mandala-api/internal/config"
	"github.com/biovital365/mandala-api/internal/domain/interpretation"
	"github.com/biovital365/mandala-api/internal/domain/numerology"
	"github.com/biovital365/mandala-api/internal/platform/metrics"
	"github.com/biovital365/mandala-api/internal/platform/postgres"
	"github.com/biovital365/mandala-api/internal/report"
	"github.com/biovital365/mandala-api/internal/service"
	"github.com/biovital365/mandala-api/internal/service/auth"
	"github.com/biovital365/mandala-api/internal/store"
)

// application holds the shared dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	registry *prometheus.Registry
	metrics  *metrics.Metrics

	userStore        store.UserStore
	calculationStore store.CalculationStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	userService      service.UserService
	readingService   service.ReadingService
	renderer         *report.Renderer
}

// newApplication wires every dependency from cfg and an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		registry: prometheus.NewRegistry(),
	}

	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.New(app.registry)

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, logger)
	app.calculationStore = postgres.NewPostgresCalculationStore(db, logger)

	app.userService = service.NewUserService(app.userStore, db, logger)

	catalog, err := interpretation.DefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load interpretation catalog: %w", err)
	}
	app.readingService, err = service.NewReadingService(
		app.calculationStore,
		numerology.NewService(time.Now),
		interpretation.NewResolver(catalog),
		app.metrics,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create reading service: %w", err)
	}

	app.renderer, err = report.NewRenderer(cfg.Report)
	if err != nil {
		return nil, fmt.Errorf("failed to create report renderer: %w", err)
	}

	logger.Info("application initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"report_timezone", cfg.Report.Timezone)
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup closes the database pool.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
