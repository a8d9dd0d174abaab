package base

// Forsyth–Edwards Notation
const FEN_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type Piece uint8

const (
	WKing        Piece = 19
	WQueen       Piece = 18
	WRook        Piece = 15
	WBishop      Piece = 14
	WKnight      Piece = 13
	WPawn        Piece = 11
	BKing        Piece = 9
	BQueen       Piece = 8
	BRook        Piece = 5
	BBishop      Piece = 4
	BKnight      Piece = 3
	BPawn        Piece = 1
	EmptyPiece   Piece = 99
	InvalidPiece Piece = 0
)

func PieceIsWhite(p Piece) bool {
	return p >= WPawn && p <= WKing
}

func PieceIsBlack(p Piece) bool {
	return p >= BPawn && p <= BKing
}

// Square addresses one of the 64 board cells in screen orientation:
// rank 0 is the top row of the rendered board (algebraic rank 8),
// file 0 is the leftmost column (file a).
type Square struct {
	Rank int
	File int
}

func (s Square) InRange() bool {
	return s.Rank >= 0 && s.Rank < 8 && s.File >= 0 && s.File < 8
}

type Move struct {
	From Square
	To   Square
}

// Mailbox holds the full board, indexed rank*8+file in the same
// screen orientation as Square. Index 0 is a8, index 63 is h1.
type Mailbox [64]Piece

func ConvSquareToIndex(s Square) int {
	return s.Rank*8 + s.File
}

func ConvIndexToSquare(i int) Square {
	return Square{Rank: i / 8, File: i % 8}
}

func GetPieceAt(mb *Mailbox, s Square) Piece {
	if mb == nil || !s.InRange() {
		return InvalidPiece
	}
	return mb[ConvSquareToIndex(s)]
}

func SetPieceAt(mb *Mailbox, s Square, pc Piece) {
	if mb == nil || !s.InRange() {
		return
	}
	mb[ConvSquareToIndex(s)] = pc
}

type Castling struct {
	WK bool
	WQ bool
	BK bool
	BQ bool
}

type GameStatus uint8

const (
	InProgress  GameStatus = 10
	Checkmate   GameStatus = 11
	Stalemate   GameStatus = 12
	Draw        GameStatus = 13
	InvalidGame GameStatus = 88
)

func (gs GameStatus) String() string {
	switch gs {
	case InProgress:
		return "in progress"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	default:
		return "invalid"
	}
}
