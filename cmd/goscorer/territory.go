package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/goscorer/boardfmt"
	"github.com/katalvlaran/goscorer/scorer"
)

var territoryCmd = &cobra.Command{
	Use:   "territory",
	Short: "Print the full per-point territory/seki/false-eye/dame/eye-value annotation",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cmd.Context().Err(); err != nil {
			return err
		}

		boardPath, _ := cmd.Flags().GetString("board")
		scoreFalseEyes, _ := cmd.Flags().GetBool("score-false-eyes")

		rows, stones, dead, err := readBoard(boardPath)
		if err != nil {
			return err
		}

		scoring, err := scorer.TerritoryScoring(stones, dead, scorer.Options{ScoreFalseEyes: scoreFalseEyes})
		if err != nil {
			return fmt.Errorf("territory scoring: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), boardfmt.RenderGrids(rows, stones, scoring))
		return nil
	},
}

func init() {
	territoryCmd.Flags().String("board", "", "board file path, or - / omitted for stdin")
	territoryCmd.Flags().Bool("score-false-eyes", false, "count unscorable false eyes as territory anyway")
}
