package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/NunoEdgarGub1/tidyhydat/hydat"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the hydat CLI version and the installed HYDAT release",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	fmt.Printf("hydat %s\n", Version)

	v, err := hydat.Version(context.Background(), cfg.Source())
	if errors.Is(err, hydat.ErrDatabaseMissing) {
		fmt.Println("HYDAT database: not downloaded (run 'hydat download')")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("HYDAT database %s, released %s\n", v.Version, v.Date.Format(time.DateOnly))
	return nil
}
