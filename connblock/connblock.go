package connblock

import "github.com/katalvlaran/goscorer/board"

// Mark returns a Height x Width grid where cell (y,x) holds the color of
// the player whose connection-block pattern matched there, or board.Empty
// if none did.
func Mark(b *board.Board) [][]board.Color {
	out := board.NewColorGrid(b.Height, b.Width, board.Empty)

	for _, pla := range []board.Color{board.Black, board.White} {
		opp := board.Opponent(pla)
		for _, o := range orientations {
			for _, p := range patterns {
				markOne(b, out, pla, opp, o, p)
			}
		}
	}

	return out
}

// markOne tries one (pattern, orientation, player) combination across every
// valid anchor on the board, writing pla into out wherever it matches.
func markOne(b *board.Board, out [][]board.Color, pla, opp board.Color, o orientation, p pattern) {
	pylen := len(p)
	pxlen := len(p[0])
	edge := isEdgePattern(p)
	if edge {
		pylen--
	}

	yRange := fullRange(b.Height)
	xRange := fullRange(b.Width)
	if edge {
		switch {
		case o.dydy == -1:
			yRange = []int{len(p) - 2}
		case o.dydy == 1:
			yRange = []int{b.Height - (len(p) - 1)}
		case o.dydx == -1:
			xRange = []int{len(p) - 2}
		case o.dydx == 1:
			xRange = []int{b.Width - (len(p) - 1)}
		}
	}

	for _, y := range yRange {
		for _, x := range xRange {
			target := func(pdy, pdx int) (int, int) {
				return y + o.dydy*pdy + o.dxdy*pdx, x + o.dydx*pdy + o.dxdx*pdx
			}

			ty, tx := target(pylen-1, pxlen-1)
			if !b.InBounds(y, x) || !b.InBounds(ty, tx) {
				continue
			}

			atY, atX := -1, -1
			mismatch := false
			for pdy := 0; pdy < pylen && !mismatch; pdy++ {
				for pdx := 0; pdx < pxlen; pdx++ {
					c := p[pdy][pdx]
					if c == glyphAny {
						continue
					}
					ty, tx := target(pdy, pdx)
					switch c {
					case glyphPla:
						if !b.IsLivingColor(ty, tx, pla) {
							mismatch = true
						}
					case glyphEmpty:
						stone := b.Stones[ty][tx]
						if stone != board.Empty && !b.IsLivingColor(ty, tx, pla) && !(stone == opp && b.Dead[ty][tx]) {
							mismatch = true
						}
					case glyphTarget:
						if b.Stones[ty][tx] != board.Empty {
							mismatch = true
						} else {
							atY, atX = ty, tx
						}
					default:
						board.Invariant(false, "connblock: unknown pattern glyph %q", c)
					}
					if mismatch {
						break
					}
				}
			}

			if !mismatch {
				board.Invariant(atY >= 0, "connblock: matched pattern without a target point")
				out[atY][atX] = pla
			}
		}
	}
}

func fullRange(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	return r
}
