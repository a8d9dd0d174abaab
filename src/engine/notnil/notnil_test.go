package notnil

import (
	"sort"
	"testing"

	"tapchess/src/base"

	"github.com/google/go-cmp/cmp"
)

func TestNew_StartingPosition(t *testing.T) {
	e := New()
	if !e.WhiteToMove() {
		t.Error("WhiteToMove = false at the start")
	}
	if got := e.FEN(); got != base.FEN_START_GAME {
		t.Errorf("FEN = %q, want %q", got, base.FEN_START_GAME)
	}
	checks := []struct {
		sq   base.Square
		want base.Piece
	}{
		{base.Square{Rank: 0, File: 0}, base.BRook},  // a8
		{base.Square{Rank: 0, File: 4}, base.BKing},  // e8
		{base.Square{Rank: 1, File: 0}, base.BPawn},  // a7
		{base.Square{Rank: 4, File: 4}, base.EmptyPiece},
		{base.Square{Rank: 6, File: 4}, base.WPawn},  // e2
		{base.Square{Rank: 7, File: 4}, base.WKing},  // e1
		{base.Square{Rank: 7, File: 3}, base.WQueen}, // d1
	}
	for _, c := range checks {
		if got := e.PieceAt(c.sq); got != c.want {
			t.Errorf("PieceAt(%v) = %v, want %v", c.sq, got, c.want)
		}
	}
	grid := e.Grid()
	for _, c := range checks {
		if got := base.GetPieceAt(&grid, c.sq); got != c.want {
			t.Errorf("Grid at %v = %v, want %v", c.sq, got, c.want)
		}
	}
}

func TestCastling_Start(t *testing.T) {
	e := New()
	want := base.Castling{WK: true, WQ: true, BK: true, BQ: true}
	if got := e.Castling(); got != want {
		t.Errorf("Castling = %+v, want %+v", got, want)
	}
}

func TestLegalTargets_PawnE2(t *testing.T) {
	e := New()
	got := e.LegalTargets(base.Square{Rank: 6, File: 4})
	sort.Slice(got, func(i, j int) bool { return got[i].Rank > got[j].Rank })
	want := []base.Square{
		{Rank: 5, File: 4}, // e3
		{Rank: 4, File: 4}, // e4
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}
}

func TestLegalTargets_OffTurnAndEmpty(t *testing.T) {
	e := New()
	if got := e.LegalTargets(base.Square{Rank: 1, File: 4}); len(got) != 0 {
		t.Errorf("black pawn targets on white's turn = %v, want none", got)
	}
	if got := e.LegalTargets(base.Square{Rank: 4, File: 4}); len(got) != 0 {
		t.Errorf("empty square targets = %v, want none", got)
	}
	if got := e.LegalTargets(base.Square{Rank: 9, File: 4}); len(got) != 0 {
		t.Errorf("out-of-range targets = %v, want none", got)
	}
}

func TestApplyMove(t *testing.T) {
	e := New()
	if err := e.ApplyMove("e2 e4"); err != nil {
		t.Fatalf("ApplyMove(e2 e4): %v", err)
	}
	if e.WhiteToMove() {
		t.Error("turn did not pass to black")
	}
	if got := e.PieceAt(base.Square{Rank: 4, File: 4}); got != base.WPawn {
		t.Errorf("e4 = %v, want WPawn", got)
	}
	if got := e.PieceAt(base.Square{Rank: 6, File: 4}); got != base.EmptyPiece {
		t.Errorf("e2 = %v, want empty", got)
	}
	ep, ok := e.EnPassant()
	if !ok || ep != (base.Square{Rank: 5, File: 4}) {
		t.Errorf("EnPassant = %v,%v, want e3", ep, ok)
	}
}

func TestApplyMove_Illegal(t *testing.T) {
	e := New()
	for _, not := range []string{"e2 e5", "e7 e5", "a8 a8", "bogus"} {
		if err := e.ApplyMove(not); err == nil {
			t.Errorf("ApplyMove(%q) succeeded, want error", not)
		}
	}
	// position untouched by the rejections
	if got := e.FEN(); got != base.FEN_START_GAME {
		t.Errorf("FEN after rejected moves = %q, want start", got)
	}
}

func TestNewGame_Resets(t *testing.T) {
	e := New()
	if err := e.ApplyMove("e2 e4"); err != nil {
		t.Fatal(err)
	}
	e.NewGame()
	if got := e.FEN(); got != base.FEN_START_GAME {
		t.Errorf("FEN after NewGame = %q, want start", got)
	}
	if !e.WhiteToMove() {
		t.Error("WhiteToMove = false after NewGame")
	}
}

func TestNewFromFEN(t *testing.T) {
	// black to move, white pawn already on e4
	fen := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"
	e, err := NewFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	if e.WhiteToMove() {
		t.Error("WhiteToMove = true, want black to move")
	}
	if got := e.PieceAt(base.Square{Rank: 4, File: 4}); got != base.WPawn {
		t.Errorf("e4 = %v, want WPawn", got)
	}
	if _, err := NewFromFEN("not a fen"); err == nil {
		t.Error("NewFromFEN accepted garbage")
	}
}

func TestStatus_FoolsMate(t *testing.T) {
	e := New()
	if got := e.Status(); got != base.InProgress {
		t.Fatalf("Status at start = %v, want in progress", got)
	}
	for _, not := range []string{"f2 f3", "e7 e5", "g2 g4", "d8 h4"} {
		if err := e.ApplyMove(not); err != nil {
			t.Fatalf("ApplyMove(%q): %v", not, err)
		}
	}
	if got := e.Status(); got != base.Checkmate {
		t.Errorf("Status after fool's mate = %v, want checkmate", got)
	}
}
