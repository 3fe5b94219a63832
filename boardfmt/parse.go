package boardfmt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/goscorer/board"
)

// Sentinel errors for Parse.
var (
	// ErrEmptyInput indicates the board string has no non-blank lines.
	ErrEmptyInput = errors.New("boardfmt: board string has no rows")
	// ErrNonRectangular indicates a row has a different length than the first row.
	ErrNonRectangular = errors.New("boardfmt: not all rows have the same length")
)

// Parse reads a multi-line board string using this module's legend: "."
// empty, "x" black, "o" white, "b" black marked dead, "w" white marked
// dead. Any other character is left empty, matching the reference test
// harness's own parser. Blank lines (anywhere in the input) are dropped; each
// remaining line is trimmed of surrounding whitespace before its
// characters are read, so callers may indent fixtures.
//
// Returns the parsed rows (trimmed, in board order) alongside the stones
// and marked-dead grids, or ErrEmptyInput / ErrNonRectangular.
func Parse(stoneStr string) (rows []string, stones [][]board.Color, dead [][]bool, err error) {
	for _, line := range strings.Split(stoneStr, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			rows = append(rows, trimmed)
		}
	}
	if len(rows) == 0 {
		return nil, nil, nil, ErrEmptyInput
	}

	width := len([]rune(rows[0]))
	stones = make([][]board.Color, len(rows))
	dead = make([][]bool, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, nil, nil, fmt.Errorf("%w: row %d has length %d, expected %d", ErrNonRectangular, y, len(runes), width)
		}
		stones[y] = make([]board.Color, width)
		dead[y] = make([]bool, width)
		for x, c := range runes {
			switch c {
			case 'x':
				stones[y][x] = board.Black
			case 'o':
				stones[y][x] = board.White
			case 'b':
				stones[y][x] = board.Black
				dead[y][x] = true
			case 'w':
				stones[y][x] = board.White
				dead[y][x] = true
			}
		}
	}
	return rows, stones, dead, nil
}
