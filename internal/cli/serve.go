package cli

import (
	"context"
	"net/http"
	"time"

	ingestHttp "newsdesk-service/internal/ingest/adapters/http/fiber"
	"newsdesk-service/internal/platform/logger"
	"newsdesk-service/internal/platform/metrics"
	"newsdesk-service/internal/platform/postgres"
	reportsHttp "newsdesk-service/internal/reports/adapters/http/fiber"
	reportsRepoPg "newsdesk-service/internal/reports/adapters/postgres"
	reportsCache "newsdesk-service/internal/reports/adapters/redis"
	reportsUsecase "newsdesk-service/internal/reports/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"golang.org/x/sync/errgroup"

	_ "newsdesk-service/docs"
)

const (
	apiPrefix       = "/news/api"
	shutdownTimeout = 5 * time.Second
)

func newServeCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.serve(cmd.Context())
		},
	}
}

// routes is everything the HTTP app needs besides the logger.
type routes struct {
	reports *reportsHttp.ReportHandler
	loads   *ingestHttp.LoadHandler
	metrics *metrics.Metrics
	health  func(ctx context.Context) error
}

func (st *state) serve(ctx context.Context) error {
	b, err := st.openBackends(ctx)
	if err != nil {
		return err
	}
	defer b.Close()

	if st.cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(ctx, b.db); err != nil {
			return err
		}
		st.log.Info().Msg("schema applied")
	}

	loc, err := st.cfg.Report.Location()
	if err != nil {
		return err
	}

	m := metrics.New()

	// Repositories
	recordRepository := reportsRepoPg.NewRecordRepository(reportsRepoPg.NewSQLDB(b.db))

	// Usecases
	var reporter reportsHttp.ReportUseCase = reportsUsecase.NewTopicReporter(recordRepository, loc)
	if b.rdb != nil {
		reporter = reportsCache.NewCachedReporter(reporter, b.rdb, st.cfg.Redis.TTL, st.log, m)
	}
	catalog := reportsUsecase.NewCatalog(recordRepository)
	loader := st.newLoader(b)

	if _, err := loader.BootstrapChannels(ctx); err != nil {
		return err
	}

	app := newApp(st.log, st.cfg.Server.ReadTimeout, st.cfg.Server.WriteTimeout, routes{
		reports: reportsHttp.NewReportHandler(reporter, catalog),
		loads:   ingestHttp.NewLoadHandler(loader, m),
		metrics: m,
		health:  b.db.PingContext,
	})

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		st.log.Info().Str("addr", st.cfg.Server.Addr).Msg("server started")
		return app.Listen(st.cfg.Server.Addr)
	})

	g.Go(func() error {
		<-gCtx.Done()
		st.log.Info().Msg("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		st.log.Error().Err(err).Msg("server stopped with error")
		return err
	}
	st.log.Info().Msg("server exiting")
	return nil
}

func newApp(log zerolog.Logger, readTimeout, writeTimeout time.Duration, r routes) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ReadTimeout:           readTimeout,
		WriteTimeout:          writeTimeout,
		DisableStartupMessage: true,
	})

	if r.metrics != nil {
		app.Use(r.metrics.Middleware())
	}
	app.Use(logger.RequestLogger(log))

	api := app.Group(apiPrefix)

	// report endpoints, registered before the :id lookups they share a prefix with
	api.Get("/audience/by-date/", r.reports.ByDate)
	api.Get("/topic/timeline/", r.reports.Timeline)
	api.Get("/topic/segments/", r.reports.BestSegments)

	// read-only lookups
	api.Get("/channel/", r.reports.ListChannels)
	api.Get("/topic/", r.reports.ListTopics)
	api.Get("/topic/:id/", r.reports.GetTopic)
	api.Get("/segment/", r.reports.ListSegments)
	api.Get("/segment/:id/", r.reports.GetSegment)
	api.Get("/audience/", r.reports.ListAudience)

	// bulk load endpoints
	api.Post("/segment/bulk", r.loads.BulkLoadSegments)
	api.Post("/audience/bulk", r.loads.BulkLoadAudience)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	if r.metrics != nil {
		app.Get("/metrics", r.metrics.Handler())
	}

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if r.health != nil {
			if err := r.health(c.UserContext()); err != nil {
				return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return app
}
