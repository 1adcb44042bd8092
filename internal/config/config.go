package config

import (
	"log/slog"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

type Config struct {
	AuthID       string     `mapstructure:"auth_id"`
	AuthPassword string     `mapstructure:"auth_password"`
	APIURL       string     `mapstructure:"api_url"`
	LogLevel     slog.Level `mapstructure:"log_level"`
	Verbose      bool       `mapstructure:"verbose"`
}

var Cfg Config

func initViper() {
	viper.SetDefault("api_url", "https://api.cloudns.net")
	viper.SetDefault("log_level", slog.LevelInfo)

	viper.SetEnvPrefix("CLOUDNS")
	viper.AutomaticEnv()
	_ = viper.BindEnv("auth_id")
	_ = viper.BindEnv("auth_password")
	_ = viper.BindEnv("api_url")
	_ = viper.BindEnv("log_level")
}

// LoadConfig resolves settings from flags bound by the commands and from
// CLOUDNS_* environment variables. Credentials are never read from or
// written to disk.
func LoadConfig() error {
	initViper()

	return viper.Unmarshal(&Cfg, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc()))
}
