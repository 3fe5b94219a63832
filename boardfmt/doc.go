// Package boardfmt is the test/CLI collaborator for this module: it
// parses the board-string legend the reference implementation's own test
// suite uses, and renders a scorer.LocScore grid back out as the same
// six-section snapshot format (TERRITORY, SEKI, FALSE EYES, UNSCORABLE
// FALSE EYES, DAME, EYEVALUE) that suite builds for each fixture.
//
// What:
//
//   - Parse reads a multi-line board string using the legend from this
//     module's external-interface contract: "." empty, "x" black, "o"
//     white, "b" black marked dead, "w" white marked dead. Blank lines
//     are skipped so callers can indent fixtures in Go source.
//   - RenderGrids reproduces the reference test harness's get_output
//     layout: a BOARD echo followed by six labeled grids, each one
//     character per point, so a human (or a golden-file diff) can read
//     off exactly what the engine concluded about every point at once.
//
// Why:
//
//   - Go board positions are naturally ASCII-art; every external example
//     of this engine's test suite communicates fixtures and expected
//     results this way, and a CLI needs the same format on both sides of
//     the wire.
//
// Complexity:
//
//   - Both Parse and RenderGrids are O(Height*Width).
package boardfmt
