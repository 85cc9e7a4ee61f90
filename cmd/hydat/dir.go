package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NunoEdgarGub1/tidyhydat/hydat"
)

var dirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Print the directory where the HYDAT database is stored",
	RunE:  runDir,
}

func init() {
	rootCmd.AddCommand(dirCmd)
}

func runDir(cmd *cobra.Command, args []string) error {
	fmt.Println(hydat.Dir())
	return nil
}
