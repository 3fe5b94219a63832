package connblock

// glyph is one cell of a pattern row.
//
//	'?' anything
//	'p' a living stone of the pattern's player
//	'e' empty, OR a living stone of the player, OR a dead opponent stone
//	'@' must be empty; this is the point that gets marked if the whole
//	    pattern matches
//	'x' edge-of-board marker; only ever appears in a pattern's last row,
//	    and is never matched against a board cell directly — it instead
//	    restricts which (y,x) anchors are tried (see isEdgePattern below).
const (
	glyphAny    = '?'
	glyphPla    = 'p'
	glyphEmpty  = 'e'
	glyphTarget = '@'
	glyphEdge   = 'x'
)

// pattern is a small rectangular grid of glyphs, row-major.
type pattern []string

// patterns is the fixed table of six connection-block shapes, taken
// verbatim from the reference scorer. Each is tried in eight orientations
// (see orientations) for both players.
var patterns = []pattern{
	{
		"pp",
		"@e",
		"pe",
	},
	{
		"ep?",
		"e@e",
		"ep?",
	},
	{
		"pee",
		"e@p",
		"pee",
	},
	{
		"?e?",
		"p@p",
		"xxx",
	},
	{
		"pp",
		"@e",
		"xx",
	},
	{
		"ep?",
		"e@e",
		"xxx",
	},
}

// orientation is one of the eight ways a pattern's local (row, col) axes
// map onto board (y, x) deltas: target(pdy, pdx) = (y + dydy*pdy + dxdy*pdx,
// x + dydx*pdy + dxdx*pdx).
type orientation struct {
	dydy, dydx, dxdy, dxdx int
}

// orientations lists the four axis-aligned rotations/reflections followed
// by the four transposed (diagonal-swapped) ones — the eight symmetries of
// a square, applied to each pattern in turn.
var orientations = []orientation{
	{1, 0, 0, 1},
	{-1, 0, 0, 1},
	{1, 0, 0, -1},
	{-1, 0, 0, -1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{0, 1, -1, 0},
	{0, -1, -1, 0},
}

// isEdgePattern reports whether a pattern's last row is the "xxx"
// edge-of-board marker, in which case that row is not matched against
// board cells but instead restricts which anchors are tried.
func isEdgePattern(p pattern) bool {
	last := p[len(p)-1]
	for i := 0; i < len(last); i++ {
		if last[i] == glyphEdge {
			return true
		}
	}
	return false
}
