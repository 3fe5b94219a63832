package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/goscorer/board"
	"github.com/katalvlaran/goscorer/boardfmt"
	"github.com/katalvlaran/goscorer/scorer"
)

var areaCmd = &cobra.Command{
	Use:   "area",
	Short: "Print the per-point area-scoring color grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cmd.Context().Err(); err != nil {
			return err
		}

		boardPath, _ := cmd.Flags().GetString("board")

		_, stones, dead, err := readBoard(boardPath)
		if err != nil {
			return err
		}

		scoring, err := scorer.AreaScoring(stones, dead)
		if err != nil {
			return fmt.Errorf("area scoring: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "AREA:")
		fmt.Fprintln(cmd.OutOrStdout(), boardfmt.String2D(scoring, func(c board.Color) string {
			return c.String()
		}))
		return nil
	},
}

func init() {
	areaCmd.Flags().String("board", "", "board file path, or - / omitted for stdin")
}
