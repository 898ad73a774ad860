package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fuegovic/homebox-analytics/pkg/models/domain"
	"github.com/fuegovic/homebox-analytics/pkg/server"
	"github.com/fuegovic/homebox-analytics/pkg/services/analysis"
	"github.com/fuegovic/homebox-analytics/pkg/services/config"
	"github.com/fuegovic/homebox-analytics/pkg/store/homebox"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the analytics web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.yaml",
		"Path to the server configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Environment wins over the config file for the connection secrets.
	if url := os.Getenv("HOMEBOX_URL"); url != "" {
		cfg.Homebox.URL = url
	}
	if token := os.Getenv("HOMEBOX_TOKEN"); token != "" {
		cfg.Homebox.Token = token
	}

	settings := analysis.DefaultSettings()
	if cfg.Analysis.StaleDays > 0 {
		settings.StaleDays = cfg.Analysis.StaleDays
	}
	if cfg.Analysis.QuickFlipDays > 0 {
		settings.QuickFlipDays = cfg.Analysis.QuickFlipDays
	}

	client := homebox.NewClient(domain.ConnectionProfile{
		Name:  "web",
		Host:  cfg.Homebox.URL,
		Token: cfg.Homebox.Token,
	})

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().Msgf("Serving reports for %s", cfg.Homebox.URL)

	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Items:    client,
			Settings: settings,
		},
	})

	return api.Start()
}
