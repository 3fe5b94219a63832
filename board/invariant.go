package board

import "fmt"

// Invariant panics with a formatted diagnostic if cond is false. It guards
// internal conditions that later passes rely on earlier passes having
// already guaranteed (e.g. "a non-empty chain's members share one region
// id") and that should never fail on well-formed input — a panic here means
// a bug in the pipeline, not a bad board.
func Invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("board: internal invariant violated: "+format, args...))
	}
}
