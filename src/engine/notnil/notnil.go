// Package notnil adapts github.com/notnil/chess to the engine.Rules
// boundary, translating between its a1-based squares and the screen
// orientation the controller speaks.
package notnil

import (
	"fmt"

	"tapchess/src/base"
	"tapchess/src/notation"

	"github.com/notnil/chess"
)

type Engine struct {
	game *chess.Game
}

func New() *Engine {
	return &Engine{game: newGame()}
}

// NewFromFEN starts from an arbitrary position. NewGame still resets
// to the standard start.
func NewFromFEN(fen string) (*Engine, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("bad FEN %q: %w", fen, err)
	}
	return &Engine{game: chess.NewGame(opt, chess.UseNotation(chess.UCINotation{}))}, nil
}

func newGame() *chess.Game {
	return chess.NewGame(chess.UseNotation(chess.UCINotation{}))
}

func (e *Engine) Grid() base.Mailbox {
	var mb base.Mailbox
	for i := range mb {
		mb[i] = base.EmptyPiece
	}
	board := e.game.Position().Board()
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := board.Piece(sq)
		if p == chess.NoPiece {
			continue
		}
		base.SetPieceAt(&mb, squareFromChess(sq), pieceFromChess(p))
	}
	return mb
}

func (e *Engine) PieceAt(sq base.Square) base.Piece {
	if !sq.InRange() {
		return base.InvalidPiece
	}
	p := e.game.Position().Board().Piece(squareToChess(sq))
	if p == chess.NoPiece {
		return base.EmptyPiece
	}
	return pieceFromChess(p)
}

func (e *Engine) WhiteToMove() bool {
	return e.game.Position().Turn() == chess.White
}

func (e *Engine) EnPassant() (base.Square, bool) {
	sq := e.game.Position().EnPassantSquare()
	if sq == chess.NoSquare {
		return base.Square{}, false
	}
	return squareFromChess(sq), true
}

func (e *Engine) Castling() base.Castling {
	cr := e.game.Position().CastleRights()
	return base.Castling{
		WK: cr.CanCastle(chess.White, chess.KingSide),
		WQ: cr.CanCastle(chess.White, chess.QueenSide),
		BK: cr.CanCastle(chess.Black, chess.KingSide),
		BQ: cr.CanCastle(chess.Black, chess.QueenSide),
	}
}

func (e *Engine) LegalTargets(from base.Square) []base.Square {
	if !from.InRange() {
		return nil
	}
	src := squareToChess(from)
	var targets []base.Square
	seen := make(map[chess.Square]bool)
	for _, mv := range e.game.ValidMoves() {
		if mv.S1() != src || seen[mv.S2()] {
			continue
		}
		// promotions yield one legal move per piece choice; the
		// destination square is what the controller highlights
		seen[mv.S2()] = true
		targets = append(targets, squareFromChess(mv.S2()))
	}
	return targets
}

func (e *Engine) ApplyMove(not string) error {
	mv, err := notation.Decode(not)
	if err != nil {
		return err
	}
	src, dst := squareToChess(mv.From), squareToChess(mv.To)
	var chosen *chess.Move
	for _, cand := range e.game.ValidMoves() {
		if cand.S1() != src || cand.S2() != dst {
			continue
		}
		// a promotion square matches four moves; take the queen
		if chosen == nil || cand.Promo() == chess.Queen {
			chosen = cand
		}
	}
	if chosen == nil {
		return fmt.Errorf("illegal move %q", not)
	}
	return e.game.Move(chosen)
}

func (e *Engine) NewGame() {
	e.game = newGame()
}

func (e *Engine) Status() base.GameStatus {
	if e.game.Outcome() == chess.NoOutcome {
		return base.InProgress
	}
	switch e.game.Method() {
	case chess.Checkmate:
		return base.Checkmate
	case chess.Stalemate:
		return base.Stalemate
	default:
		return base.Draw
	}
}

func (e *Engine) FEN() string {
	return e.game.FEN()
}

// chess.Square counts a1=0..h8=63 rank-major from the bottom; screen
// rank 0 is algebraic rank 8

func squareToChess(sq base.Square) chess.Square {
	return chess.Square((7-sq.Rank)*8 + sq.File)
}

func squareFromChess(sq chess.Square) base.Square {
	return base.Square{Rank: 7 - int(sq)/8, File: int(sq) % 8}
}

func pieceFromChess(p chess.Piece) base.Piece {
	white := p.Color() == chess.White
	switch p.Type() {
	case chess.King:
		return pick(white, base.WKing, base.BKing)
	case chess.Queen:
		return pick(white, base.WQueen, base.BQueen)
	case chess.Rook:
		return pick(white, base.WRook, base.BRook)
	case chess.Bishop:
		return pick(white, base.WBishop, base.BBishop)
	case chess.Knight:
		return pick(white, base.WKnight, base.BKnight)
	case chess.Pawn:
		return pick(white, base.WPawn, base.BPawn)
	default:
		return base.EmptyPiece
	}
}

func pick(white bool, w, b base.Piece) base.Piece {
	if white {
		return w
	}
	return b
}
