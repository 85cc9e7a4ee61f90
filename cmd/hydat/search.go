package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NunoEdgarGub1/tidyhydat"
)

var searchByNumber bool

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search stations by name across HYDAT and the realtime datamart",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchByNumber, "number", false, "match against station numbers instead of names")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	rt := newRealtimeClient(cfg)
	ctx := context.Background()

	var stations []tidyhydat.Station
	if searchByNumber {
		stations, err = tidyhydat.SearchStationNumber(ctx, args[0], cfg.Source(), rt)
	} else {
		stations, err = tidyhydat.SearchStationName(ctx, args[0], cfg.Source(), rt)
	}
	if err != nil {
		return err
	}

	if len(stations) == 0 {
		if searchByNumber {
			fmt.Println("No station numbers match this criteria!")
		} else {
			fmt.Println("No station names match this criteria!")
		}
		return nil
	}

	for _, s := range stations {
		fmt.Printf("%-7s  %-2s  %s\n", s.Number, s.Province, s.Name)
	}
	fmt.Printf("\n%d stations\n", len(stations))
	return nil
}
