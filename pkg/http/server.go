package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/lintang-b-s/Pollutrace/pkg/http/router"
	"github.com/lintang-b-s/Pollutrace/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/Pollutrace/pkg/http/server"
	"github.com/lintang-b-s/Pollutrace/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// ConfigFromViper reads the server settings loaded by util.ReadConfig.
func ConfigFromViper() http_server.Config {
	return http_server.Config{
		Port:      viper.GetInt(util.CONFIG_API_PORT),
		Timeout:   viper.GetDuration(util.CONFIG_API_TIMEOUT),
		RateLimit: viper.GetFloat64(util.CONFIG_RATE_LIMIT),
		RateBurst: viper.GetInt(util.CONFIG_RATE_BURST),
	}
}

// Use starts the zone API in the background. Wait returns once it stops.
func (s *Server) Use(
	ctx context.Context,
	config http_server.Config,
	zoneService controllers.ZoneService,
) *Server {
	api := http_router.NewAPI(s.Log)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return api.Run(ctx, config, zoneService)
	})
	s.g = g
	return s
}

func (s *Server) Wait() error {
	if s.g == nil {
		return nil
	}
	return s.g.Wait()
}

// GracefulShutdown blocks until SIGINT or SIGTERM and returns the signal.
func GracefulShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return <-quit
}
