package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/NunoEdgarGub1/tidyhydat/internal/config"
	"github.com/NunoEdgarGub1/tidyhydat/realtime"
)

// Version is set at build time via -ldflags "-X main.Version=...".
var Version = "dev"

var (
	cfgFile   string
	dbPath    string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "hydat",
	Short: "Look up Canadian hydrometric stations and water data",
	Long: `hydat works with the two national sources of Canadian water data: the
HYDAT archive of validated historical records published by the Water
Survey of Canada, and the realtime datamart of unvalidated readings.
It downloads the archive, searches stations across both sources, and
reads the realtime feeds.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "HYDAT database path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text or json, overrides config)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration, applies flag overrides, and installs the
// logger. Every subcommand that touches data calls it first.
func setup() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	setupLogging(cfg.LogFormat)
	return cfg, nil
}

func setupLogging(format string) {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func newRealtimeClient(cfg *config.Config) *realtime.Client {
	return realtime.NewClient(
		realtime.WithBaseURL(cfg.Realtime.BaseURL),
		realtime.WithHTTPClient(&http.Client{Timeout: cfg.RealtimeTimeout()}),
	)
}
