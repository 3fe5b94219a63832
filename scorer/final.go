package scorer

import "github.com/katalvlaran/goscorer/board"

// FinalTerritoryScore runs TerritoryScoring and folds in points for
// marked-dead stones, already-off-the-board captures, and komi, to
// produce the final numeric score each side would report.
func FinalTerritoryScore(
	stones [][]board.Color, dead [][]bool,
	blackPointsFromCaptures, whitePointsFromCaptures, komi float64,
	opts Options,
) (map[board.Color]float64, error) {
	scoring, err := TerritoryScoring(stones, dead, opts)
	if err != nil {
		return nil, err
	}

	b, err := board.New(stones, dead)
	if err != nil {
		return nil, err
	}

	var blackScore, whiteScore float64
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			switch scoring[y][x].IsTerritoryFor {
			case board.Black:
				blackScore++
			case board.White:
				whiteScore++
			}

			if b.Dead[y][x] {
				switch b.Stones[y][x] {
				case board.Black:
					whiteScore++
				case board.White:
					blackScore++
				}
			}
		}
	}

	blackScore += blackPointsFromCaptures
	whiteScore += whitePointsFromCaptures
	whiteScore += komi

	return map[board.Color]float64{board.Black: blackScore, board.White: whiteScore}, nil
}

// FinalAreaScore runs AreaScoring and folds in komi to produce the final
// numeric score each side would report.
func FinalAreaScore(stones [][]board.Color, dead [][]bool, komi float64) (map[board.Color]float64, error) {
	scoring, err := AreaScoring(stones, dead)
	if err != nil {
		return nil, err
	}

	var blackScore, whiteScore float64
	for _, row := range scoring {
		for _, c := range row {
			switch c {
			case board.Black:
				blackScore++
			case board.White:
				whiteScore++
			}
		}
	}
	whiteScore += komi

	return map[board.Color]float64{board.Black: blackScore, board.White: whiteScore}, nil
}
