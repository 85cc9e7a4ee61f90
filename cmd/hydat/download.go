package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/NunoEdgarGub1/tidyhydat/hydat"
)

var downloadDest string

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download and install the current HYDAT release",
	RunE:  runDownload,
}

func init() {
	downloadCmd.Flags().StringVar(&downloadDest, "dest", "", "destination directory (default: alongside the configured database path)")
	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dest := downloadDest
	if dest == "" {
		dest = filepath.Dir(cfg.DBPath)
	}

	path, err := hydat.Download(ctx, dest, hydat.WithDownloadURL(cfg.Download.URL))
	if err != nil {
		return err
	}

	v, err := hydat.Version(ctx, hydat.FromPath(path))
	if err != nil {
		return fmt.Errorf("verifying downloaded database: %w", err)
	}
	fmt.Printf("HYDAT %s (released %s) installed at %s\n", v.Version, v.Date.Format(time.DateOnly), path)
	return nil
}
