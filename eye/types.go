package eye

import (
	"github.com/katalvlaran/goscorer/board"
	"github.com/katalvlaran/goscorer/macrochain"
	"github.com/katalvlaran/goscorer/region"
)

// ID identifies a potential eye within a FindPotential result.
type ID int

const None ID = -1

// Info describes one potential eye.
type Info struct {
	Pla             board.Color
	RegionID        region.ID
	PotentialPoints map[board.Point]bool
	RealPoints      map[board.Point]bool
	// MacrochainNeighborsFrom maps a macrochain id to the points of this
	// eye that border it.
	MacrochainNeighborsFrom map[macrochain.ID]map[board.Point]bool
	// IsLoose is true if both colors' strict (unblocked) reach cross this
	// eye, meaning it is only an eye by virtue of a connection blocker
	// rather than being strictly surrounded.
	IsLoose  bool
	EyeValue int
}
