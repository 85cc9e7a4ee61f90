package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NunoEdgarGub1/tidyhydat/hydat"
)

var agenciesCmd = &cobra.Command{
	Use:   "agencies",
	Short: "List the agencies that contribute to or operate stations",
	RunE:  runAgencies,
}

var officesCmd = &cobra.Command{
	Use:   "offices",
	Short: "List the Water Survey of Canada regional offices",
	RunE:  runOffices,
}

var datumsCmd = &cobra.Command{
	Use:   "datums",
	Short: "List the vertical datums water levels are referenced to",
	RunE:  runDatums,
}

func init() {
	rootCmd.AddCommand(agenciesCmd)
	rootCmd.AddCommand(officesCmd)
	rootCmd.AddCommand(datumsCmd)
}

func runAgencies(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	agencies, err := hydat.AgencyList(context.Background(), cfg.Source())
	if err != nil {
		return err
	}
	for _, a := range agencies {
		fmt.Printf("%4d  %s\n", a.ID, a.NameEn.String)
	}
	return nil
}

func runOffices(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	offices, err := hydat.RegOfficeList(context.Background(), cfg.Source())
	if err != nil {
		return err
	}
	for _, o := range offices {
		fmt.Printf("%4d  %s\n", o.ID, o.NameEn.String)
	}
	return nil
}

func runDatums(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	datums, err := hydat.DatumList(context.Background(), cfg.Source())
	if err != nil {
		return err
	}
	for _, d := range datums {
		fmt.Printf("%4d  %s\n", d.ID, d.NameEn.String)
	}
	return nil
}
