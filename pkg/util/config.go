package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lintang-b-s/Pollutrace/pkg"
	"github.com/spf13/viper"
)

const (
	CONFIG_ZONES_FILE      = "ZONES_FILE"
	CONFIG_LINKS_FILE      = "LINKS_FILE"
	CONFIG_NETWORK_FILE    = "NETWORK_FILE"
	CONFIG_ROUTES_FILE     = "ROUTES_FILE"
	CONFIG_ROUTES_DIRECTED = "ROUTES_DIRECTED"
	CONFIG_LOG_LEVEL       = "LOG_LEVEL"
	CONFIG_TRACE_CACHE     = "TRACE_CACHE_SIZE"
	CONFIG_WORKERS         = "WORKERS"
	CONFIG_API_PORT        = "API_PORT"
	CONFIG_API_TIMEOUT     = "API_TIMEOUT"
	CONFIG_RATE_LIMIT      = "RATE_LIMIT"
	CONFIG_RATE_BURST      = "RATE_BURST"
)

func setDefaults() {
	viper.SetDefault(CONFIG_ZONES_FILE, "./data/air_sensors.csv")
	viper.SetDefault(CONFIG_LINKS_FILE, "./data/zone_links.csv")
	viper.SetDefault(CONFIG_NETWORK_FILE, "./data/zone_network.csv")
	viper.SetDefault(CONFIG_ROUTES_FILE, "./data/zone_routes.csv")
	viper.SetDefault(CONFIG_ROUTES_DIRECTED, false)
	viper.SetDefault(CONFIG_LOG_LEVEL, "info")
	viper.SetDefault(CONFIG_TRACE_CACHE, pkg.DEFAULT_TRACE_CACHE_SIZE)
	viper.SetDefault(CONFIG_WORKERS, pkg.DEFAULT_WORKERS)
	viper.SetDefault(CONFIG_API_PORT, 6060)
	viper.SetDefault(CONFIG_API_TIMEOUT, "30s")
	viper.SetDefault(CONFIG_RATE_LIMIT, 0.0)
	viper.SetDefault(CONFIG_RATE_BURST, 20)
}

// ReadConfig loads config.yaml from dir (./data/ when empty). A missing config file is not an
// error: defaults and POLLUTRACE_* environment variables still apply.
func ReadConfig(dir string) error {
	setDefaults()

	viper.SetEnvPrefix("POLLUTRACE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if dir == "" {
		dir = "./data/"
	}
	viper.SetConfigName("config")
	viper.AddConfigPath(dir)

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
