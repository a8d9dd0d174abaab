package gui

import (
	"tapchess/src/control"
	"tapchess/src/engine"
	"tapchess/src/logx"
	"tapchess/ui/gui/gbase"
	"tapchess/ui/gui/gbase/gconf"
	"tapchess/ui/gui/gdraw"
	"tapchess/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	rules  engine.Rules
	ctrl   *control.Controller
	disp   *control.Dispatcher
	drawer *gdraw.BoardDrawer
	cfg    *gconf.Config
	logger logx.Logger

	// edge detection, one event per press/release
	prevMouseDown bool
	prevReset     bool
	prevQuit      bool

	quitRequested bool
}

func NewGUI(rules engine.Rules, cfg *gconf.Config, logger logx.Logger) (*GUIProcessing, error) {
	assets, err := ghelper.NewGUIAssetsWorker(cfg.AssetsDir)
	if err != nil {
		return nil, err
	}
	gp := &GUIProcessing{
		rules:  rules,
		cfg:    cfg,
		logger: logger,
	}
	gp.ctrl = control.NewController(rules, logger)
	gp.disp = control.NewDispatcher(gp.ctrl, cfg.CellSize, cfg.CellSize, func() { gp.quitRequested = true }, logger)
	gp.drawer = gdraw.NewBoardDrawer(cfg.CellSize, gbase.PaletteFromString(cfg.Theme), assets)
	return gp, nil
}

func (gp *GUIProcessing) Run() error {
	side := gp.cfg.CellSize * gbase.GridSize
	ebiten.SetWindowSize(side, side)
	ebiten.SetWindowTitle("Tapchess")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	if err := ebiten.RunGame(gp); err != nil && err != gbase.ErrExit {
		return err
	}
	return nil
}

func (gp *GUIProcessing) Update() error {
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justReleased := !mouseDown && gp.prevMouseDown
	gp.prevMouseDown = mouseDown
	if justReleased {
		mx, my := ebiten.CursorPosition()
		gp.disp.PointerUp(mx, my, control.ButtonLeft)
	}

	resetDown := ebiten.IsKeyPressed(ebiten.KeyR)
	if resetDown && !gp.prevReset {
		gp.disp.KeyPress(control.KeyReset)
	}
	gp.prevReset = resetDown

	quitDown := ebiten.IsKeyPressed(ebiten.KeyEscape)
	if quitDown && !gp.prevQuit {
		gp.disp.KeyPress(control.KeyQuit)
	}
	gp.prevQuit = quitDown

	if gp.quitRequested {
		return gbase.ErrExit
	}
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	debugFEN := ""
	if gp.cfg.Debug {
		debugFEN = gp.rules.FEN()
	}
	gp.drawer.Draw(screen, gp.ctrl.Snapshot(), debugFEN)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	side := gp.cfg.CellSize * gbase.GridSize
	return side, side
}
