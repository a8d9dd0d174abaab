package control

import "tapchess/src/base"

// Snapshot is the read-only projection the renderer consumes each
// frame: engine board state plus the controller's selection. The
// renderer feeds nothing back.
type Snapshot struct {
	Board       base.Mailbox
	Selected    *base.Square
	Highlights  []base.Square
	WhiteToMove bool
	Status      base.GameStatus
}

func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Board:       c.rules.Grid(),
		WhiteToMove: c.rules.WhiteToMove(),
		Status:      c.rules.Status(),
	}
	if c.sel.Active {
		anchor := c.sel.Anchor
		snap.Selected = &anchor
		snap.Highlights = append(snap.Highlights, c.sel.Targets...)
	}
	return snap
}
