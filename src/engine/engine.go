// Package engine declares the rule-engine boundary. The controller
// never owns board state or legality; it reads them through Rules and
// mutates them only via ApplyMove/NewGame.
package engine

import "tapchess/src/base"

// Rules is the collaborator owning the board, turn alternation and
// move legality.
type Rules interface {
	// Grid returns the current position in screen orientation
	// (index 0 = a8).
	Grid() base.Mailbox
	PieceAt(sq base.Square) base.Piece
	WhiteToMove() bool
	// EnPassant reports the current en-passant target square, if any.
	EnPassant() (base.Square, bool)
	Castling() base.Castling
	// LegalTargets returns every destination square of a legal move
	// starting at from, under the full current context (board, turn,
	// castling rights, en passant). Empty when from holds no piece of
	// the side to move.
	LegalTargets(from base.Square) []base.Square
	// ApplyMove executes a move given in "e2 e4" notation. It fails
	// without touching the position when the move is not legal.
	ApplyMove(notation string) error
	// NewGame resets to the standard starting position.
	NewGame()
	Status() base.GameStatus
	FEN() string
}
