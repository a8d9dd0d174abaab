// Package coords converts between window pixels and board squares.
package coords

import (
	"errors"

	"tapchess/src/base"
)

var (
	// ErrOutOfBoard marks a pixel that does not land on any of the
	// 64 cells. Callers drop such clicks instead of clamping them to
	// an edge square.
	ErrOutOfBoard = errors.New("pixel outside board")

	ErrBadCellSize = errors.New("cell size must be positive")
)

// SquareFromPixel maps a window pixel to the square under it by floor
// division. Pixels left of or above the board (negative coordinates)
// and pixels past the last cell are rejected.
func SquareFromPixel(x, y, cellW, cellH int) (base.Square, error) {
	if cellW <= 0 || cellH <= 0 {
		return base.Square{}, ErrBadCellSize
	}
	if x < 0 || y < 0 {
		return base.Square{}, ErrOutOfBoard
	}
	sq := base.Square{Rank: y / cellH, File: x / cellW}
	if !sq.InRange() {
		return base.Square{}, ErrOutOfBoard
	}
	return sq, nil
}

// PixelFromSquare returns the top-left pixel of a square. The renderer
// uses it to place tiles, overlays and sprites.
func PixelFromSquare(sq base.Square, cellW, cellH int) (x, y int, err error) {
	if cellW <= 0 || cellH <= 0 {
		return 0, 0, ErrBadCellSize
	}
	if !sq.InRange() {
		return 0, 0, ErrOutOfBoard
	}
	return sq.File * cellW, sq.Rank * cellH, nil
}
