package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/goscorer/board"
	"github.com/katalvlaran/goscorer/scorer"
)

var finalCmd = &cobra.Command{
	Use:   "final",
	Short: "Print the final numeric score (territory rules by default, or area with --area)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cmd.Context().Err(); err != nil {
			return err
		}

		boardPath, _ := cmd.Flags().GetString("board")
		useArea, _ := cmd.Flags().GetBool("area")
		scoreFalseEyes, _ := cmd.Flags().GetBool("score-false-eyes")
		capturesBlack, _ := cmd.Flags().GetFloat64("captures-black")
		capturesWhite, _ := cmd.Flags().GetFloat64("captures-white")
		komi, _ := cmd.Flags().GetFloat64("komi")

		_, stones, dead, err := readBoard(boardPath)
		if err != nil {
			return err
		}

		var result map[board.Color]float64
		if useArea {
			result, err = scorer.FinalAreaScore(stones, dead, komi)
		} else {
			result, err = scorer.FinalTerritoryScore(stones, dead, capturesBlack, capturesWhite, komi, scorer.Options{ScoreFalseEyes: scoreFalseEyes})
		}
		if err != nil {
			return fmt.Errorf("final score: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Black: %g\n", result[board.Black])
		fmt.Fprintf(cmd.OutOrStdout(), "White: %g\n", result[board.White])
		return nil
	},
}

func init() {
	finalCmd.Flags().String("board", "", "board file path, or - / omitted for stdin")
	finalCmd.Flags().Bool("area", false, "score by area rules instead of territory rules")
	finalCmd.Flags().Bool("score-false-eyes", false, "(territory rules only) count unscorable false eyes as territory anyway")
	finalCmd.Flags().Float64("captures-black", 0, "(territory rules only) points black already banked from prior captures")
	finalCmd.Flags().Float64("captures-white", 0, "(territory rules only) points white already banked from prior captures")
	finalCmd.Flags().Float64("komi", 0, "points added to white's score")
}
