package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

type Config struct {
	Port    int
	Timeout time.Duration

	RateLimit float64
	RateBurst int
}

func (c Config) UseRateLimit() bool {
	return c.RateLimit > 0
}

// New builds the http.Server of the API. every request context derives from ctx.
func New(ctx context.Context, handler http.Handler, config Config) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		ReadTimeout:       config.Timeout,
		WriteTimeout:      config.Timeout,
		IdleTimeout:       2 * config.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
