package ebitenrunner

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// Game is an ebiten.Game that ticks a Runner before calling the user's
// update and draw functions.
type Game struct {
	Runner     *Runner
	UpdateFunc func() error
	DrawFunc   func(screen *ebiten.Image)

	width, height int
}

// Update ticks the runner, then calls UpdateFunc. Returns ebiten.Termination
// once the runner has been killed.
func (g *Game) Update() error {
	if g.Runner.Killed() {
		return ebiten.Termination
	}
	g.Runner.Update()
	if g.UpdateFunc != nil {
		return g.UpdateFunc()
	}
	return nil
}

// Draw calls DrawFunc.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.DrawFunc != nil {
		g.DrawFunc(screen)
	}
}

// Layout returns the configured logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.width == 0 || g.height == 0 {
		return outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// Run opens a window and drives g until the window closes or the runner is
// killed. Kill fires on exit if it has not already.
func Run(g *Game, cfg RunConfig) error {
	g.width, g.height = cfg.Width, cfg.Height
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	err := ebiten.RunGame(g)
	g.Runner.Kill()
	return err
}
