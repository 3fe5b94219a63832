package scorer

import "github.com/katalvlaran/goscorer/board"

// LocScore describes how one board point should be scored for territory,
// plus metadata about why the algorithm came to that conclusion.
type LocScore struct {
	// IsTerritoryFor scores one point of territory for this color.
	// board.Empty means nobody scores this point — including, possibly,
	// underneath a stone marked dead, in which case the stone itself
	// (not this field) still accounts for the capture.
	IsTerritoryFor board.Color

	// BelongsToSekiGroup is non-empty if this point is part of a group
	// (or the space surrounded by it) that this algorithm believes is
	// not independently alive with two eyes, but that isn't marked dead
	// either — informational, callers may surface it to a user.
	BelongsToSekiGroup board.Color

	// IsFalseEye is true if this point is an eye that doesn't help life
	// and death. Informational.
	IsFalseEye bool

	// IsUnscorableFalseEye is true if this point is a false eye that
	// should not be counted as territory because it will eventually need
	// to be filled. IsTerritoryFor already accounts for this unless
	// Options.ScoreFalseEyes was set.
	IsUnscorableFalseEye bool

	// IsDame is true if this point is treated as dame (belongs to no
	// region). Informational only — some loosely surrounded areas are
	// instead treated as eyes for life-and-death purposes and so are not
	// flagged here even though they look dame-like.
	IsDame bool

	// EyeValue is how many eyes (max 2) the eyespace containing this
	// point is judged to be worth. Informational, not tactically
	// accurate outside of finished positions.
	EyeValue int
}

// Options configures TerritoryScoring. A single boolean mirrors the
// teacher's preference for a small explicit option struct over a
// functional-options surface when there's only one knob.
type Options struct {
	// ScoreFalseEyes, if true, scores territory in false eyes even when
	// IsUnscorableFalseEye is true.
	ScoreFalseEyes bool
}
