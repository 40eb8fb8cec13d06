package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"atscv/internal/config"
	"atscv/internal/database"
	"atscv/internal/database/migration"
	handlers "atscv/internal/http/handler"
	"atscv/internal/http/middleware"
	"atscv/internal/logger"
	"atscv/internal/metrics"
	"atscv/internal/otel"
	"atscv/internal/parser"
	"atscv/internal/repository"
	"atscv/internal/repository/postgres"
	"atscv/internal/service"
	"atscv/internal/storage"
)

// @title ATS CV Analyzer API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.Init(cfg.Log)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server_failed")
	}
}

// run wires the API and serves until SIGINT or SIGTERM. Every resource it
// opens is released before it returns.
func run(cfg *config.AppConfig, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Error().Err(err).Msg("tracing shutdown failed")
		}
	}()

	// The report index is optional; without DB_HOST reports are only written to the store.
	var (
		db   *sql.DB
		repo repository.ReportRepository
	)
	if cfg.Database.Enabled() {
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
		repo = postgres.NewReportPostgres(db)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	analysisMetrics, err := metrics.New(reg)
	if err != nil {
		return fmt.Errorf("register analysis metrics: %w", err)
	}
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("register http metrics: %w", err)
	}

	opts := []service.Option{
		service.WithLogger(log.With().Str("component", "analysis").Logger()),
		service.WithRecorder(analysisMetrics),
		service.WithDefaultRole(cfg.Analysis.DefaultRole),
	}
	archive, err := newArchive(ctx, cfg, repo, log)
	if err != nil {
		return err
	}
	if archive != nil {
		opts = append(opts, service.WithArchive(archive))
	}
	analysisSvc := service.NewAnalysisService(parser.New(), opts...)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.Analysis.MaxUploadBytes,
		AppName:      "atscv " + cfg.Version,
	})

	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	handlers.RegisterRoutes(app, db, analysisSvc, cfg.Version)

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("reports_backend", cfg.Reports.Backend).Bool("report_index", repo != nil).Msg("server_starting")

	if err := app.Listen(addr); err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return nil
}

// newArchive returns nil and no error when REPORTS_BACKEND=none.
func newArchive(ctx context.Context, cfg *config.AppConfig, repo repository.ReportRepository, log zerolog.Logger) (*service.ReportArchive, error) {
	store, err := storage.FromConfig(ctx, cfg.Reports, cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("initialize report storage: %w", err)
	}
	if store == nil {
		if repo != nil {
			log.Warn().Msg("report index configured but REPORTS_BACKEND=none; reports are not archived")
		}
		return nil, nil
	}
	archive, err := service.NewReportArchive(store, repo)
	if err != nil {
		return nil, fmt.Errorf("initialize report archive: %w", err)
	}
	return archive, nil
}
