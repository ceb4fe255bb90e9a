package main

import (
	"context"
	"os"
	_ "time/tzdata"

	"crowd-server/config"
	"crowd-server/di"
	"crowd-server/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stdout,
	})

	container, err := di.NewContainer(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize container")
	}
	defer func() {
		if err := container.RedisClient.Close(); err != nil {
			logging.Warn().Err(err).Msg("failed to close redis client")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go container.Hub.Run(ctx)

	logging.Info().Msg("refreshing snapshot")
	if err := container.SnapshotRefresherService.RefreshSnapshot(ctx); err != nil {
		logging.Error().Err(err).Msg("initial snapshot refresh failed")
	}
	if cfg.Refresher.Enabled {
		logging.Info().Dur("interval", cfg.Refresher.Interval).Msg("starting periodic job")
		container.SnapshotRefresherService.StartPeriodicJob(ctx, cfg.Refresher.Interval)
	}

	if err := container.CrowdHttpServer.Start(ctx); err != nil {
		logging.Error().Err(err).Msg("server stopped with error")
		cancel()
		os.Exit(1)
	}
}
