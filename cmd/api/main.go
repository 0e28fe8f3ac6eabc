package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ggorockee/cookiemap/docs"
	"github.com/ggorockee/cookiemap/internal/candidates"
	"github.com/ggorockee/cookiemap/internal/config"
	"github.com/ggorockee/cookiemap/internal/connector"
	"github.com/ggorockee/cookiemap/internal/discovery"
	"github.com/ggorockee/cookiemap/internal/handlers"
	applogger "github.com/ggorockee/cookiemap/internal/logger"
	"github.com/ggorockee/cookiemap/internal/middleware"
	"github.com/ggorockee/cookiemap/internal/models"
	"github.com/ggorockee/cookiemap/internal/promotion"
	"github.com/ggorockee/cookiemap/internal/storage"
	"github.com/ggorockee/cookiemap/internal/stores"
	"github.com/ggorockee/cookiemap/internal/telemetry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
)

// @title Cookie Map API
// @version 1.0.0
// @description Store discovery, review and publication for the cookie map
// @BasePath /v1
func main() {
	os.Exit(serve())
}

// serve runs the API until shutdown and returns the process exit code
func serve() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	if err := applogger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	defer applogger.Sync()

	log := applogger.GetLogger("main")

	ctx := context.Background()
	tel, err := telemetry.New(ctx, "cookiemap-api", cfg.SigNozEndpoint)
	if err != nil {
		log.Warnf("telemetry init failed, continuing without it: %v", err)
		tel = telemetry.NewNoop("cookiemap-api")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			log.Warnf("telemetry shutdown failed: %v", err)
		}
	}()

	candidateTable := candidates.New(storage.NewFileBackend(cfg.Storage.CandidatesPath()))
	storeTable := stores.New(storage.NewFileBackend(cfg.Storage.StoresPath()))

	if cfg.Storage.SeedOnEmpty {
		seedIfEmpty(ctx, storeTable)
	}

	docs.SwaggerInfo.Host = cfg.ServerHost

	app := fiber.New(fiber.Config{
		AppName:      "Cookie Map API",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     `{"time":"${time}","request_id":"${locals:requestid}","status":${status},"latency":"${latency}","ip":"${ip}","method":"${method}","path":"${path}","user_agent":"${ua}","error":"${error}"}` + "\n",
		TimeFormat: "2006-01-02T15:04:05Z07:00",
		TimeZone:   "UTC",
	}))
	app.Use(middleware.Prometheus())
	app.Use(tel.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET, POST, OPTIONS",
		AllowHeaders:  "Accept, Content-Type, Origin, User-Agent, X-Requested-With",
		ExposeHeaders: "Content-Length, Content-Type, X-Request-ID",
		MaxAge:        86400,
	}))

	setupRoutes(app, cfg, tel, candidateTable, storeTable)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Errorf("Error shutting down server: %v", err)
		}
	}()

	log.Infof("Server starting on port %s (env=%s, data=%s)", cfg.ServerPort, cfg.ServerEnv, cfg.Storage.DataDir)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Errorf("Failed to start server: %v", err)
		return 1
	}
	return 0
}

func setupRoutes(app *fiber.App, cfg *config.Config, tel *telemetry.Telemetry, candidateTable *candidates.Table, storeTable *stores.Table) {
	app.Get("/v1/docs/*", swagger.HandlerDefault)

	if cfg.IsDevelopment() {
		app.Get("/metrics", middleware.PrometheusHandler())
	} else {
		app.Get("/metrics", middleware.InternalOnly(), middleware.PrometheusHandler())
	}

	readiness := handlers.ReadinessCheck(
		handlers.Probe{Name: candidates.TableName, Check: func(ctx context.Context) error {
			_, err := candidateTable.GetAll(ctx)
			return err
		}},
		handlers.Probe{Name: stores.TableName, Check: func(ctx context.Context) error {
			_, err := storeTable.GetAll(ctx)
			return err
		}},
	)

	app.Get("/healthz", handlers.HealthCheck)
	app.Get("/v1/health", handlers.HealthCheck)
	app.Get("/v1/liveness", handlers.LivenessCheck)
	app.Get("/v1/readiness", readiness)

	v1 := app.Group("/v1")

	// public map surface
	handlers.SetupStoreRoutes(v1.Group("/stores"), storeTable)

	discoverySvc := discovery.NewService(connector.NewRegistryFromConfig(cfg), candidateTable, tel)
	handlers.SetupDiscoveryRoutes(v1.Group("/discovery"), discoverySvc)

	// unauthenticated review surface
	promotionSvc := promotion.NewService(candidateTable, storeTable, tel)
	handlers.SetupAdminRoutes(v1.Group("/admin"), candidateTable, promotionSvc, storeTable)
}

func seedIfEmpty(ctx context.Context, storeTable *stores.Table) {
	log := applogger.GetLogger("main")

	existing, err := storeTable.GetAll(ctx)
	if err != nil {
		log.Warnf("could not read published stores, skipping seed: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	seeded, err := storeTable.ReplaceAll(ctx, models.SeedStores())
	if err != nil {
		log.Warnf("seeding published stores failed: %v", err)
		return
	}
	log.Infof("seeded %d published stores", len(seeded))
}
