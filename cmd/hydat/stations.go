package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NunoEdgarGub1/tidyhydat/hydat"
)

var stationsProvince string

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List the hydrometric stations in the HYDAT database",
	RunE:  runStations,
}

func init() {
	stationsCmd.Flags().StringVar(&stationsProvince, "province", "", "filter by two-letter province or territory code")
	rootCmd.AddCommand(stationsCmd)
}

func runStations(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	stations, err := hydat.Stations(context.Background(), cfg.Source())
	if err != nil {
		return err
	}

	prov := strings.ToUpper(stationsProvince)
	count := 0
	for _, s := range stations {
		if prov != "" && s.Province != prov {
			continue
		}
		count++
		rt := " "
		if s.RealTime {
			rt = "R"
		}
		fmt.Printf("%-7s  %-2s  %s  %s\n", s.Number, s.Province, rt, s.Name)
	}
	fmt.Printf("\n%d stations\n", count)
	return nil
}
