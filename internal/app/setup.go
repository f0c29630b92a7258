package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/sim"
)

// Build creates the grid described by cfg, seeds it and binds a stopped
// Simulator to it. Settings overrides are folded back into cfg.Interval and
// cfg.Rule so frontends display what the Simulator runs.
func Build(cfg *Config) (*sim.Simulator, error) {
	sc := cfg.SimConfig()
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	cfg.Interval, cfg.Rule = sc.Interval, sc.Rule

	g, err := core.NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	if err := Seed(g, cfg.Pattern, cfg.Seed); err != nil {
		return nil, err
	}
	return sim.NewWithConfig(g, sc)
}

// RunHeadless lets s advance on its own schedule for d, then stops it. It
// returns early with ctx's error when ctx is done first.
func RunHeadless(ctx context.Context, s *sim.Simulator, d time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	if err := s.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

// Status reports s's parameters for a status display. paced marks a frontend
// that drives Advance itself instead of the Simulator's loop, so the running
// entry reflects either source.
func Status(s *sim.Simulator, paced bool) core.ParameterSnapshot {
	snap := s.Parameters()
	if !paced {
		return snap
	}
	for i, p := range snap.Params {
		if p.Key == "running" {
			snap.Params[i].Value = strconv.FormatBool(true)
		}
	}
	return snap
}

// Seed fills g according to pattern: empty means random cells from seed,
// "none" leaves the grid empty, anything else names a pattern stamped at the
// center.
func Seed(g *core.Grid, pattern string, seed int64) error {
	switch pattern {
	case "":
		g.Randomize(core.NewRNG(seed))
	case "none":
	default:
		p, ok := core.LookupPattern(pattern)
		if !ok {
			return fmt.Errorf("unknown pattern %q (have %v)", pattern, core.PatternNames())
		}
		size := p.Size()
		g.Stamp(p, (g.Rows()-size.H)/2, (g.Cols()-size.W)/2)
	}
	return nil
}

// NextRule returns the registered rule name after current, wrapping around.
func NextRule(current string) string {
	names := core.RuleNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
