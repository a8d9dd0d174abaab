// Package control owns the board interaction state machine: it turns
// validated square clicks into selection changes and move submissions.
package control

import (
	"tapchess/src/base"
	"tapchess/src/engine"
	"tapchess/src/logx"
	"tapchess/src/notation"
)

// Query is the read-only slice of the rule engine the transition
// function needs. engine.Rules satisfies it.
type Query interface {
	PieceAt(sq base.Square) base.Piece
	WhiteToMove() bool
	LegalTargets(from base.Square) []base.Square
}

// Command is a side effect requested by a transition. The host loop
// executes commands against the rule engine after the selection state
// has settled.
type Command interface {
	command()
}

type SubmitMove struct {
	Notation string
}

type RequestNewGame struct{}

func (SubmitMove) command()     {}
func (RequestNewGame) command() {}

// Selection is the interaction state. The zero value is Idle; when
// Active, Anchor is the selected square and Targets the legal
// destinations the engine reported for it.
type Selection struct {
	Active  bool
	Anchor  base.Square
	Targets []base.Square
}

func (s Selection) IsTarget(sq base.Square) bool {
	for _, t := range s.Targets {
		if t == sq {
			return true
		}
	}
	return false
}

// Transition applies one click to a selection. It is pure apart from
// reads through q; legal targets are re-queried on every selection and
// never carried across turns.
//
//	Idle,     own piece        -> Selected{click, Q(click)}
//	Idle,     empty/opponent   -> Idle
//	Selected, click == anchor  -> Idle
//	Selected, click in targets -> Idle, submit anchor->click
//	Selected, other own piece  -> Selected{click, Q(click)}
//	Selected, empty/opponent   -> Idle
func Transition(sel Selection, click base.Square, q Query) (Selection, []Command) {
	if !click.InRange() {
		return sel, nil
	}
	if !sel.Active {
		return trySelect(click, q), nil
	}
	if click == sel.Anchor {
		return Selection{}, nil
	}
	if sel.IsTarget(click) {
		not, err := notation.Encode(sel.Anchor, click)
		if err != nil {
			// both squares were validated on entry; degrade to deselect
			return Selection{}, nil
		}
		return Selection{}, []Command{SubmitMove{Notation: not}}
	}
	return trySelect(click, q), nil
}

func trySelect(click base.Square, q Query) Selection {
	p := q.PieceAt(click)
	switch {
	case p == base.EmptyPiece || p == base.InvalidPiece:
		return Selection{}
	case base.PieceIsWhite(p) != q.WhiteToMove():
		return Selection{}
	}
	return Selection{Active: true, Anchor: click, Targets: q.LegalTargets(click)}
}

// Controller owns the live Selection and runs commands against the
// rule engine.
type Controller struct {
	rules  engine.Rules
	sel    Selection
	logger logx.Logger
}

func NewController(rules engine.Rules, logger logx.Logger) *Controller {
	return &Controller{rules: rules, logger: logger}
}

func (c *Controller) HandleClick(sq base.Square) {
	next, cmds := Transition(c.sel, sq, c.rules)
	c.sel = next
	c.execute(cmds)
}

// Reset drops any selection and starts a fresh game.
func (c *Controller) Reset() {
	c.sel = Selection{}
	c.execute([]Command{RequestNewGame{}})
}

func (c *Controller) Selection() Selection {
	return c.sel
}

func (c *Controller) execute(cmds []Command) {
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case SubmitMove:
			c.logger.Infof("submitting move %q", cmd.Notation)
			if err := c.rules.ApplyMove(cmd.Notation); err != nil {
				// defensive: targets came from the engine itself, so a
				// rejection means it changed its mind; stay Idle
				c.logger.Warnf("engine rejected %q: %v", cmd.Notation, err)
			}
		case RequestNewGame:
			c.logger.Info("starting new game")
			c.rules.NewGame()
		}
	}
}
