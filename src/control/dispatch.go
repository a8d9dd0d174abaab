package control

import (
	"tapchess/src/coords"
	"tapchess/src/logx"
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

type Key int

const (
	KeyReset Key = iota
	KeyQuit
)

// Dispatcher routes raw pointer and key events into controller
// operations. It holds no interaction state of its own.
type Dispatcher struct {
	ctrl   *Controller
	cellW  int
	cellH  int
	quit   func()
	logger logx.Logger
}

func NewDispatcher(ctrl *Controller, cellW, cellH int, quit func(), logger logx.Logger) *Dispatcher {
	return &Dispatcher{ctrl: ctrl, cellW: cellW, cellH: cellH, quit: quit, logger: logger}
}

// PointerUp handles a pointer-release at window pixel (x,y). Only the
// left button plays; clicks outside the board are discarded.
func (d *Dispatcher) PointerUp(x, y int, btn Button) {
	if btn != ButtonLeft {
		return
	}
	sq, err := coords.SquareFromPixel(x, y, d.cellW, d.cellH)
	if err != nil {
		d.logger.Debugf("discarding click at (%d,%d): %v", x, y, err)
		return
	}
	d.ctrl.HandleClick(sq)
}

func (d *Dispatcher) KeyPress(k Key) {
	switch k {
	case KeyReset:
		d.ctrl.Reset()
	case KeyQuit:
		if d.quit != nil {
			d.quit()
		}
	}
}
