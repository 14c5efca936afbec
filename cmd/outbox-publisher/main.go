package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/docksidelabs/leadrouter-backend/pkg/config"
	"github.com/docksidelabs/leadrouter-backend/pkg/db"
	"github.com/docksidelabs/leadrouter-backend/pkg/logger"
	"github.com/docksidelabs/leadrouter-backend/pkg/migrate"
	"github.com/docksidelabs/leadrouter-backend/pkg/outbox"
	"github.com/docksidelabs/leadrouter-backend/pkg/pubsub"
)

const serviceKind = "outbox-publisher"

func main() {
	bootCtx := context.Background()
	logg := logger.New(logger.Options{ServiceName: serviceKind})

	if err := godotenv.Load(); err != nil {
		logg.Warn(bootCtx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	exitOn(bootCtx, logg, "failed to load config", err)
	cfg.Service.Kind = serviceKind

	logg = logger.New(logger.Options{
		ServiceName: serviceKind,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(bootCtx, cfg.DB, logg)
	exitOn(bootCtx, logg, "failed to bootstrap database", err)
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(bootCtx, "error closing database", err)
		}
	}()

	err = migrate.MaybeRunDev(bootCtx, cfg, logg, dbClient)
	exitOn(bootCtx, logg, "failed to run dev migrations", err)

	pubsubClient, err := pubsub.NewClient(bootCtx, cfg.GCP, cfg.PubSub, logg)
	exitOn(bootCtx, logg, "failed to bootstrap pubsub", err)
	defer func() {
		if err := pubsubClient.Close(); err != nil {
			logg.Error(bootCtx, "error closing pubsub client", err)
		}
	}()

	service, err := NewService(ServiceParams{
		Config:     cfg,
		Logger:     logg,
		DB:         dbClient,
		PubSub:     pubsubClient,
		Repository: outbox.NewRepository(dbClient.DB()),
	})
	exitOn(bootCtx, logg, "failed to create outbox publisher", err)

	ctx, stop := signal.NotifyContext(bootCtx, os.Interrupt)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "serviceKind": serviceKind})

	logg.Info(ctx, "starting outbox publisher")
	if err := service.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error(ctx, "outbox publisher stopped unexpectedly", err)
		os.Exit(1)
	}
	logg.Info(ctx, "outbox publisher shutting down gracefully")
}

func exitOn(ctx context.Context, logg *logger.Logger, msg string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, msg, err)
	os.Exit(1)
}
