package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/goscorer/board"
	"github.com/katalvlaran/goscorer/boardfmt"
)

// readBoard loads a board string from path ("-" or "" means stdin) and
// parses it with the legend every other board-string consumer here uses.
func readBoard(path string) (rows []string, stones [][]board.Color, dead [][]bool, err error) {
	var r io.Reader
	if path == "" || path == "-" {
		r = os.Stdin
	} else {
		f, openErr := os.Open(path)
		if openErr != nil {
			return nil, nil, nil, fmt.Errorf("open board file: %w", openErr)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read board: %w", err)
	}

	return boardfmt.Parse(string(data))
}
