// Package notation encodes moves in the textual form the rule engine
// consumes: two algebraic squares separated by a single space, e.g.
// "e2 e4".
package notation

import (
	"errors"
	"fmt"
	"strings"

	"tapchess/src/base"
)

// ErrInvalidCoordinate marks a rank or file outside [0,8). The error
// is recoverable; a malformed click degrades to a no-op upstream.
var ErrInvalidCoordinate = errors.New("coordinate outside board")

// Encode renders a from/to pair as "<from> <to>". File 0 maps to 'a',
// rank 0 maps to digit '8' (rank 0 is the top row on screen).
func Encode(from, to base.Square) (string, error) {
	f, err := encodeSquare(from)
	if err != nil {
		return "", err
	}
	t, err := encodeSquare(to)
	if err != nil {
		return "", err
	}
	return f + " " + t, nil
}

func encodeSquare(sq base.Square) (string, error) {
	if !sq.InRange() {
		return "", fmt.Errorf("square (%d,%d): %w", sq.Rank, sq.File, ErrInvalidCoordinate)
	}
	return string([]byte{byte('a' + sq.File), byte('8' - sq.Rank)}), nil
}

// Decode parses the same format back into a Move. The engine adapter
// uses it to resolve a submitted notation against its legal moves.
func Decode(s string) (base.Move, error) {
	a, b, ok := strings.Cut(s, " ")
	if !ok {
		return base.Move{}, fmt.Errorf("notation %q: want two squares separated by a space", s)
	}
	from, err := decodeSquare(a)
	if err != nil {
		return base.Move{}, err
	}
	to, err := decodeSquare(b)
	if err != nil {
		return base.Move{}, err
	}
	return base.Move{From: from, To: to}, nil
}

func decodeSquare(tok string) (base.Square, error) {
	if len(tok) != 2 || tok[0] < 'a' || tok[0] > 'h' || tok[1] < '1' || tok[1] > '8' {
		return base.Square{}, fmt.Errorf("square %q: %w", tok, ErrInvalidCoordinate)
	}
	return base.Square{Rank: int('8' - tok[1]), File: int(tok[0] - 'a')}, nil
}
