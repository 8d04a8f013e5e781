package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"bridges/docs"
	"bridges/internal/blast"
	"bridges/internal/cache"
	"bridges/internal/citexplore"
	"bridges/internal/config"
	"bridges/internal/database"
	"bridges/internal/database/migration"
	handlers "bridges/internal/http/handler"
	"bridges/internal/http/middleware"
	"bridges/internal/httpclient"
	"bridges/internal/imex"
	"bridges/internal/logger"
	"bridges/internal/ols"
	bridgesotel "bridges/internal/otel"
	"bridges/internal/picr"
	"bridges/internal/repository/postgres"
	"bridges/internal/service"
	"bridges/internal/storage"
	"bridges/internal/taxonomy"
	"bridges/internal/uniprot"
)

// @title Bridges API
// @version 1.0
// @description Uniform access to the remote bioinformatics services used during curation.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.New(logger.Config{Level: cfg.LogLevel, Location: cfg.Location()})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := bridgesotel.Init(ctx, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize tracing")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	// Object storage keeps BLAST archives and uploaded OBO sources
	objStore, err := storage.NewMinIO(cfg.MinIO, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize object storage")
	}

	lookups, err := cache.Open(cache.Config{Backend: cfg.Cache.Backend, Path: cfg.Cache.Path, MaxBytes: cfg.Cache.MaxBytes})
	if err != nil {
		log.WithError(err).Fatal("failed to open cache")
	}
	defer lookups.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	bridgeMetrics, err := httpclient.NewMetrics(reg)
	if err != nil {
		log.WithError(err).Fatal("failed to register bridge metrics")
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.WithError(err).Fatal("failed to register http metrics")
	}

	b := cfg.Bridges
	hcCfg := httpclient.DefaultConfig()
	hcCfg.Timeout = b.HTTPTimeout
	shared := httpclient.New(hcCfg)
	newClient := func(name, baseURL string) *httpclient.Client {
		return httpclient.NewClient(name, baseURL,
			httpclient.WithHTTPClient(shared),
			httpclient.WithMetrics(bridgeMetrics),
			httpclient.WithUserAgent(b.UserAgent),
		)
	}

	blastClient := blast.New(newClient(blast.Name, b.BlastURL), b.BlastEmail)
	uniprotHTTP := newClient(uniprot.Name, b.UniProtURL)

	// Initialize repositories and services
	termRepo := postgres.NewTermPostgres(db)
	deps := handlers.Deps{
		DB:           db,
		Blast:        service.NewBlastService(blastClient, objStore, log),
		Ontologies:   service.NewOntologyService(objStore, termRepo, log),
		Publications: citexplore.New(newClient(citexplore.Name, b.EuropePMCURL)),
		Imex:         imex.New(newClient(imex.Name, b.ImexURL), b.ImexUser, b.ImexPassword),
		OLS:          ols.New(newClient(ols.Name, b.OLSURL), lookups, cfg.Cache.TTL),
		Taxonomy:     taxonomy.New(newClient(taxonomy.Name, b.UniProtURL), lookups, cfg.Cache.TTL),
		Uniprot:      uniprot.New(uniprotHTTP, lookups, cfg.Cache.TTL),
		PICR:         picr.New(newClient(picr.Name, b.PICRURL)),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())

	handlers.RegisterRoutes(app, deps)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("shutdown failed")
		}
	}()

	addr := ":" + cfg.Port
	log.WithFields(logrus.Fields{"addr": addr, "host": cfg.AppHost}).Info("server_starting")
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
