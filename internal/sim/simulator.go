package sim

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"torus-life/internal/core"
)

// ErrInvalidArgument is returned for rejected configuration values such as a
// non-positive interval.
var ErrInvalidArgument = errors.New("sim: invalid argument")

// DefaultInterval is the time between automatic advances for a new Simulator.
const DefaultInterval = 30 * time.Millisecond

// Renderer receives a notification after every advance. Render runs on the
// advancing goroutine while the Simulator is locked, so it may read the grid
// freely but must not call back into the Simulator.
type Renderer interface {
	Render(g *core.Grid)
}

// RenderFunc adapts a plain function to the Renderer interface.
type RenderFunc func(g *core.Grid)

// Render calls f(g).
func (f RenderFunc) Render(g *core.Grid) { f(g) }

// Simulator owns a grid and advances it under a rule, either on demand or on
// a repeating schedule.
type Simulator struct {
	mu       sync.Mutex
	grid     *core.Grid
	rule     core.Rule
	ruleName string
	interval time.Duration
	renderer Renderer

	running bool
	quit    chan struct{}
	done    chan struct{}
}

// New binds a stopped Simulator to g using the Conway rule and the default
// interval.
func New(g *core.Grid) *Simulator {
	return &Simulator{grid: g, rule: core.Conway, ruleName: "conway", interval: DefaultInterval}
}

// NewWithConfig binds a stopped Simulator to g using cfg.
func NewWithConfig(g *core.Grid, cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rule, _ := core.Lookup(cfg.Rule)
	s := New(g)
	s.rule = rule
	s.ruleName = cfg.Rule
	s.interval = cfg.Interval
	return s, nil
}

// Grid returns the owned grid. Reads must not overlap a running loop; use
// Edit or a Renderer for that.
func (s *Simulator) Grid() *core.Grid { return s.grid }

// SetRenderer installs the render notification target. A nil renderer
// disables notifications.
func (s *Simulator) SetRenderer(r Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderer = r
}

// SetRule replaces the evolution rule starting with the next advance. Nil
// rules are ignored.
func (s *Simulator) SetRule(rule core.Rule) {
	s.SetNamedRule("custom", rule)
}

// SetNamedRule is SetRule with a display name for Parameters.
func (s *Simulator) SetNamedRule(name string, rule core.Rule) {
	if rule == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rule = rule
	s.ruleName = name
}

// Interval returns the time between automatic advances.
func (s *Simulator) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// SetInterval changes the time between automatic advances. When running, the
// current schedule is replaced by a new one without leaving the running state.
func (s *Simulator) SetInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("set interval %s: %w", d, ErrInvalidArgument)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interval = d
	if s.running {
		s.stopLocked()
		s.startLocked()
	}
	return nil
}

// Running reports whether the timed loop is active.
func (s *Simulator) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Advance computes one generation and issues one render notification.
func (s *Simulator) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advanceLocked()
}

// Edit runs fn with exclusive access to the grid, serialized against advances.
// Input collaborators use it to apply SetCell and ToggleCell while running.
func (s *Simulator) Edit(fn func(g *core.Grid)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.grid)
}

// Start begins advancing every interval. Calling Start while running is a
// no-op.
func (s *Simulator) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.startLocked()
}

// Stop cancels the timed loop. When Stop returns no further scheduled advance
// will run and the loop goroutine has exited. Calling Stop while stopped is a
// no-op.
func (s *Simulator) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	done := s.done
	s.stopLocked()
	s.mu.Unlock()
	<-done
}

// Run starts the loop and blocks until ctx is done, then stops it.
func (s *Simulator) Run(ctx context.Context) error {
	s.Start()
	<-ctx.Done()
	s.Stop()
	return ctx.Err()
}

// Parameters reports the simulator state for status displays.
func (s *Simulator) Parameters() core.ParameterSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Describe(s.grid, s.ruleName, s.interval, s.running)
}

// Describe builds the status snapshot for g. Renderers use it to report state
// they track themselves, since they cannot call Parameters.
func Describe(g *core.Grid, rule string, interval time.Duration, running bool) core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(g.Generation(), 10)},
		{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(g.Population())},
		{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: rule},
		{Key: "interval", Label: "Interval", Type: core.ParamTypeDuration, Value: interval.String()},
		{Key: "running", Label: "Running", Type: core.ParamTypeBool, Value: strconv.FormatBool(running)},
	}}
}

func (s *Simulator) advanceLocked() {
	s.grid.Step(s.rule)
	if s.renderer != nil {
		s.renderer.Render(s.grid)
	}
}

func (s *Simulator) startLocked() {
	quit := make(chan struct{})
	done := make(chan struct{})
	s.quit, s.done = quit, done
	s.running = true
	go s.loop(s.interval, quit, done)
}

// stopLocked invalidates the current loop before clearing the flag. The loop
// goroutine exits on its own; Stop waits for it.
func (s *Simulator) stopLocked() {
	close(s.quit)
	s.quit = nil
	s.done = nil
	s.running = false
}

func (s *Simulator) loop(interval time.Duration, quit <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			s.mu.Lock()
			select {
			case <-quit:
				s.mu.Unlock()
				return
			default:
			}
			s.advanceLocked()
			s.mu.Unlock()
		}
	}
}
