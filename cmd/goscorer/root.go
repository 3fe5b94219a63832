package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goscorer",
	Short: "Score a finished Go board for territory, area, or final result",
}

func init() {
	rootCmd.AddCommand(territoryCmd)
	rootCmd.AddCommand(areaCmd)
	rootCmd.AddCommand(finalCmd)
}
