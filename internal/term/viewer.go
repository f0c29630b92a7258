package term

import (
	"context"
	"sync"
	"time"

	"torus-life/internal/app"
	"torus-life/internal/core"
	"torus-life/internal/input"
	"torus-life/internal/render"
	"torus-life/internal/sim"

	"github.com/gdamore/tcell/v2"
)

// Each grid column is drawn two terminal cells wide so cells look square.
const cellWidth = 2

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// Viewer draws a Simulator's grid to a tcell screen and translates key and
// mouse events into simulator controls.
type Viewer struct {
	screen tcell.Screen
	sim    *sim.Simulator
	brush  *input.Brush

	seed    int64
	pattern string

	mu       sync.Mutex
	rule     string
	interval time.Duration
	running  bool
}

// NewViewer binds a viewer to an initialized screen and installs itself as
// the simulator's renderer.
func NewViewer(screen tcell.Screen, s *sim.Simulator, cfg *app.Config) *Viewer {
	b := &input.Brush{CellW: cellWidth, CellH: 1}
	v := &Viewer{
		screen:   screen,
		sim:      s,
		brush:    b,
		seed:     cfg.Seed,
		pattern:  cfg.Pattern,
		rule:     cfg.Rule,
		interval: s.Interval(),
	}
	s.SetRenderer(v)
	return v
}

// Render draws the grid and the status line. It is called by the simulator
// after every advance.
func (v *Viewer) Render(g *core.Grid) {
	cells := g.Cells()
	cols := g.Cols()
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < cols; col++ {
			style := deadStyle
			if cells[row*cols+col] != 0 {
				style = aliveStyle
			}
			for i := 0; i < cellWidth; i++ {
				v.screen.SetContent(col*cellWidth+i, row, ' ', nil, style)
			}
		}
	}
	v.drawStatus(g)
	v.screen.Show()
}

func (v *Viewer) drawStatus(g *core.Grid) {
	v.mu.Lock()
	line := render.Status(sim.Describe(g, v.rule, v.interval, v.running))
	v.mu.Unlock()

	y := g.Rows()
	w, _ := v.screen.Size()
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		v.screen.SetContent(x, y, r, nil, statusStyle)
	}
}

// Run processes events until the user quits or ctx is done. The simulator
// is stopped before Run returns.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.sim.Stop()
	v.screen.EnableMouse()
	v.redraw()

	stop := context.AfterFunc(ctx, func() {
		_ = v.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			return ctx.Err()
		case *tcell.EventResize:
			v.screen.Sync()
			v.redraw()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			v.handleMouse(ev)
		}
	}
}

func (v *Viewer) handleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyTab:
		v.nextRule()
		return false
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		v.toggleRunning()
	case 'n':
		v.sim.Advance()
	case 'c':
		v.sim.Edit(func(g *core.Grid) { g.Clear() })
		v.redraw()
	case 'r':
		v.sim.Edit(func(g *core.Grid) {
			g.Clear()
			_ = app.Seed(g, v.pattern, v.seed)
		})
		v.redraw()
	case '+', '=':
		v.scaleInterval(0.5)
	case '-':
		v.scaleInterval(2)
	}
	return false
}

func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !v.brush.Painting():
		v.brush.Down(v, x, y)
	case pressed:
		v.brush.Move(v, x, y)
	default:
		v.brush.Up()
	}
}

// Edit applies a grid edit through the simulator and redraws.
func (v *Viewer) Edit(fn func(g *core.Grid)) {
	v.sim.Edit(func(g *core.Grid) {
		fn(g)
		v.Render(g)
	})
}

func (v *Viewer) redraw() {
	v.sim.Edit(v.Render)
}

func (v *Viewer) toggleRunning() {
	running := !v.sim.Running()
	if running {
		v.sim.Start()
	} else {
		v.sim.Stop()
	}
	v.mu.Lock()
	v.running = running
	v.mu.Unlock()
	v.redraw()
}

func (v *Viewer) nextRule() {
	v.mu.Lock()
	v.rule = app.NextRule(v.rule)
	name := v.rule
	v.mu.Unlock()
	if rule, ok := core.Lookup(name); ok {
		v.sim.SetNamedRule(name, rule)
	}
	v.redraw()
}

func (v *Viewer) scaleInterval(factor float64) {
	d := time.Duration(float64(v.sim.Interval()) * factor)
	if d < time.Millisecond {
		d = time.Millisecond
	}
	if d > 2*time.Second {
		d = 2 * time.Second
	}
	if err := v.sim.SetInterval(d); err != nil {
		return
	}
	v.mu.Lock()
	v.interval = d
	v.mu.Unlock()
	v.redraw()
}
