package boardfmt

import (
	"strings"

	"github.com/katalvlaran/goscorer/board"
	"github.com/katalvlaran/goscorer/scorer"
)

// String2D renders a grid one character per point, row by row.
func String2D[T any](grid [][]T, f func(T) string) string {
	lines := make([]string, len(grid))
	for y, row := range grid {
		var b strings.Builder
		for _, item := range row {
			b.WriteString(f(item))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// String2D2 renders a grid by zipping two same-shaped grids point by
// point, mirroring the reference harness's string2d2 two-board render.
func String2D2[T1, T2 any](grid1 [][]T1, grid2 [][]T2, f func(T1, T2) string) string {
	lines := make([]string, len(grid1))
	for y := range grid1 {
		var b strings.Builder
		for x := range grid1[y] {
			b.WriteString(f(grid1[y][x], grid2[y][x]))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// RenderGrids renders the six-section snapshot the reference test
// harness produces for a scoring result: a BOARD echo of rows, then
// TERRITORY, SEKI, FALSE EYES, UNSCORABLE FALSE EYES, DAME, and EYEVALUE
// grids, each overlaying scoring onto the original board characters.
//
// rows and stones must have come from the same Parse call (or an
// equivalent board of the same shape as scoring); RenderGrids does not
// itself validate that the three agree on shape.
func RenderGrids(rows []string, stones [][]board.Color, scoring [][]scorer.LocScore) string {
	runeRows := make([][]rune, len(rows))
	for y, row := range rows {
		runeRows[y] = []rune(row)
	}

	var out strings.Builder
	out.WriteString("BOARD:\n")
	out.WriteString(strings.Join(rows, "\n"))
	out.WriteString("\n")

	out.WriteString("TERRITORY:\n")
	out.WriteString(String2D2(scoring, runeRows, func(s scorer.LocScore, c rune) string {
		switch s.IsTerritoryFor {
		case board.Black:
			return "z"
		case board.White:
			return "a"
		default:
			return string(c)
		}
	}))
	out.WriteString("\n")

	out.WriteString("SEKI:\n")
	out.WriteString(String2D2(scoring, stones, func(s scorer.LocScore, c board.Color) string {
		switch {
		case s.BelongsToSekiGroup == board.Black && c != board.Empty:
			return "x"
		case s.BelongsToSekiGroup == board.White && c != board.Empty:
			return "o"
		case s.BelongsToSekiGroup == board.Black:
			return "z"
		case s.BelongsToSekiGroup == board.White:
			return "a"
		default:
			return "."
		}
	}))
	out.WriteString("\n")

	out.WriteString("FALSE EYES:\n")
	out.WriteString(String2D2(scoring, runeRows, func(s scorer.LocScore, c rune) string {
		if s.IsFalseEye {
			return "F"
		}
		return string(c)
	}))
	out.WriteString("\n")

	out.WriteString("UNSCORABLE FALSE EYES:\n")
	out.WriteString(String2D2(scoring, runeRows, func(s scorer.LocScore, c rune) string {
		if s.IsUnscorableFalseEye {
			return "F"
		}
		return string(c)
	}))
	out.WriteString("\n")

	out.WriteString("DAME:\n")
	out.WriteString(String2D2(scoring, runeRows, func(s scorer.LocScore, c rune) string {
		if s.IsDame {
			return "1"
		}
		return string(c)
	}))
	out.WriteString("\n")

	out.WriteString("EYEVALUE:\n")
	out.WriteString(String2D2(scoring, runeRows, func(s scorer.LocScore, c rune) string {
		if s.EyeValue == 0 {
			return string(c)
		}
		return string("0123456789"[s.EyeValue])
	}))
	out.WriteString("\n")

	return out.String()
}
