package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/docksidelabs/leadrouter-backend/api/routes"
	"github.com/docksidelabs/leadrouter-backend/internal/accounts"
	"github.com/docksidelabs/leadrouter-backend/internal/geo"
	"github.com/docksidelabs/leadrouter-backend/internal/leads"
	"github.com/docksidelabs/leadrouter-backend/internal/routing"
	"github.com/docksidelabs/leadrouter-backend/internal/vendors"
	"github.com/docksidelabs/leadrouter-backend/pkg/config"
	"github.com/docksidelabs/leadrouter-backend/pkg/db"
	"github.com/docksidelabs/leadrouter-backend/pkg/logger"
	"github.com/docksidelabs/leadrouter-backend/pkg/metrics"
	"github.com/docksidelabs/leadrouter-backend/pkg/migrate"
	"github.com/docksidelabs/leadrouter-backend/pkg/outbox"
	"github.com/docksidelabs/leadrouter-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	dbResolver, err := geo.NewDBResolver(dbClient.DB())
	if err != nil {
		logg.Error(context.Background(), "failed to create geo resolver", err)
		os.Exit(1)
	}
	resolver, err := geo.NewCachedResolver(dbResolver, redisClient, cfg.Geo.CacheTTL, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cached geo resolver", err)
		os.Exit(1)
	}

	outboxService := outbox.NewService(outbox.NewRepository(dbClient.DB()), logg)
	routingMetrics := metrics.NewRoutingMetrics(prometheus.DefaultRegisterer)

	leadsRepo := leads.NewRepository(dbClient.DB())
	routingService, err := routing.NewService(
		vendors.NewRepository(dbClient.DB()),
		leadsRepo,
		accounts.NewRepository(dbClient.DB()),
		resolver,
		dbClient,
		outboxService,
		routingMetrics,
		logg,
		routing.Options{BulkConcurrency: cfg.Routing.BulkReassignConcurrency},
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create routing service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, leadsRepo, routingService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
