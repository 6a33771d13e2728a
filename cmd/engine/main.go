package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/Pollutrace/pkg/engine"
	"github.com/lintang-b-s/Pollutrace/pkg/http"
	"github.com/lintang-b-s/Pollutrace/pkg/http/usecases"
	"github.com/lintang-b-s/Pollutrace/pkg/logger"
	"github.com/lintang-b-s/Pollutrace/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configDir = flag.String("config_dir", "./data/", "directory holding config.yaml")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(*configDir); err != nil {
		panic(err)
	}

	logger, err := logger.NewWithLevel(viper.GetString(util.CONFIG_LOG_LEVEL))
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync

	zoneEngine, err := engine.NewEngineFromFiles(engine.FilesFromViper(), engine.OptionsFromViper(), logger)
	if err != nil {
		logger.Fatal("failed to build zone engine", zap.Error(err))
	}

	zoneService := usecases.NewZoneService(logger, zoneEngine)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api := http.NewServer(logger).Use(ctx, http.ConfigFromViper(), zoneService)

	signal := http.GracefulShutdown()
	logger.Info("Pollutrace Zone Server Stopping", zap.String("signal", signal.String()))
	cleanup()

	if err := api.Wait(); err != nil {
		logger.Error("zone server stopped with error", zap.Error(err))
	}
	logger.Info("Pollutrace Zone Server Stopped")
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
