package engine

import (
	"github.com/lintang-b-s/Pollutrace/pkg/util"
	"github.com/spf13/viper"
)

// FilesFromViper reads the input paths loaded by util.ReadConfig.
func FilesFromViper() Files {
	return Files{
		Zones:          viper.GetString(util.CONFIG_ZONES_FILE),
		Links:          viper.GetString(util.CONFIG_LINKS_FILE),
		Network:        viper.GetString(util.CONFIG_NETWORK_FILE),
		Routes:         viper.GetString(util.CONFIG_ROUTES_FILE),
		RoutesDirected: viper.GetBool(util.CONFIG_ROUTES_DIRECTED),
	}
}

func OptionsFromViper() Options {
	return Options{
		TraceCacheSize: viper.GetInt(util.CONFIG_TRACE_CACHE),
		Workers:        viper.GetInt(util.CONFIG_WORKERS),
	}
}
