// Package config loads the application configuration file consumed by the
// web server: listen address, Homebox connection, and analysis overrides.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Homebox struct {
	URL   string `mapstructure:"url"`
	Token string `mapstructure:"token"`
}

type Analysis struct {
	StaleDays     int `mapstructure:"stale_days"`
	QuickFlipDays int `mapstructure:"quick_flip_days"`
}

type Config struct {
	Server   Server   `mapstructure:"server"`
	Homebox  Homebox  `mapstructure:"homebox"`
	Analysis Analysis `mapstructure:"analysis"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("analysis.stale_days", 90)
	v.SetDefault("analysis.quick_flip_days", 14)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.Homebox.URL == "" {
		return nil, fmt.Errorf("homebox.url is required")
	}

	return &config, nil
}
