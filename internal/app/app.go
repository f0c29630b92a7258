//go:build ebiten

package app

import (
	"time"

	"torus-life/internal/core"
	"torus-life/internal/input"
	"torus-life/internal/render"
	"torus-life/internal/sim"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	HUDWidth    = 220
	minInterval = time.Millisecond
	maxInterval = 2 * time.Second
)

// Game adapts a Simulator to the ebiten.Game interface. Advances are paced by
// a FixedStep inside Update so that advance, edits and drawing all happen on
// ebiten's game goroutine.
type Game struct {
	sim     *sim.Simulator
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	brush   *input.Brush
	step    *core.FixedStep

	scale    int
	rule     string
	seed     int64
	pattern  string
	running  bool
	tickOnce bool
}

// New constructs a Game for the provided simulator.
func New(s *sim.Simulator, cfg *Config) *Game {
	g := s.Grid()
	size := g.Size()
	gm := &Game{
		sim:     s,
		painter: render.NewGridPainter(size.W, size.H, render.DefaultPalette()),
		hud:     ui.NewHUD(HUDWidth),
		overlay: ui.NewOverlay(size, cfg.Scale),
		brush:   input.NewBrush(cfg.Scale),
		step:    core.NewFixedStep(s.Interval()),
		scale:   cfg.Scale,
		rule:    cfg.Rule,
		seed:    cfg.Seed,
		pattern: cfg.Pattern,
	}
	s.SetRenderer(sim.RenderFunc(gm.painter.Update))
	gm.painter.Update(g)
	return gm
}

// Reset clears the grid and reseeds it.
func (gm *Game) Reset(seed int64) {
	gm.seed = seed
	gm.sim.Edit(func(g *core.Grid) {
		g.Clear()
		_ = Seed(g, gm.pattern, seed)
		gm.painter.Update(g)
	})
	gm.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (gm *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		gm.running = !gm.running
		gm.step.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		gm.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		gm.sim.Edit(func(g *core.Grid) {
			g.Clear()
			gm.painter.Update(g)
		})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		gm.Reset(gm.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		gm.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		gm.rule = NextRule(gm.rule)
		if rule, ok := core.Lookup(gm.rule); ok {
			gm.sim.SetNamedRule(gm.rule, rule)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		gm.scaleInterval(0.5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		gm.scaleInterval(2)
	}

	gm.handlePointer()
	if gm.overlay != nil {
		gm.overlay.Update()
	}

	if (gm.running && gm.step.ShouldStep()) || gm.tickOnce {
		gm.sim.Advance()
		gm.tickOnce = false
	}
	if gm.hud != nil {
		gm.hud.Update(Status(gm.sim, gm.running))
	}
	return nil
}

func (gm *Game) handlePointer() {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		gm.brush.Down(gm, x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		gm.brush.Up()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		gm.brush.Move(gm, x, y)
	}
}

// Edit applies a grid edit through the simulator and refreshes the frame.
func (gm *Game) Edit(fn func(g *core.Grid)) {
	gm.sim.Edit(func(g *core.Grid) {
		fn(g)
		gm.painter.Update(g)
	})
}

func (gm *Game) scaleInterval(factor float64) {
	d := time.Duration(float64(gm.sim.Interval()) * factor)
	if d < minInterval {
		d = minInterval
	}
	if d > maxInterval {
		d = maxInterval
	}
	if err := gm.sim.SetInterval(d); err != nil {
		return
	}
	gm.step.SetInterval(d)
}

// Draw renders the current generation, the overlay and the HUD.
func (gm *Game) Draw(screen *ebiten.Image) {
	gm.painter.Draw(screen, gm.scale, 0, 0)
	if gm.overlay != nil {
		gm.overlay.Draw(screen)
	}
	if gm.hud != nil {
		w, _ := gm.painter.Size()
		gm.hud.Draw(screen, w*gm.scale, gm.sim.Grid().Rows()*gm.scale)
	}
}

// Layout returns the logical screen size.
func (gm *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := gm.painter.Size()
	return w*gm.scale + HUDWidth, h * gm.scale
}
