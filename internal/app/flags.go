package app

import (
	"flag"
	"fmt"
	"slices"
	"strings"
	"time"

	"torus-life/internal/sim"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Rows     int
	Cols     int
	Scale    int
	TPS      int
	Interval time.Duration
	Rule     string
	Seed     int64
	Pattern  string
	// Settings holds simulator key=value overrides parsed with sim.FromMap.
	Settings map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:     64,
		Cols:     96,
		Scale:    8,
		TPS:      60,
		Interval: sim.DefaultInterval,
		Rule:     "conway",
		Seed:     42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid height in cells")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid width in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the host loop")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations")
	fs.StringVar(&c.Rule, "rule", c.Rule, "evolution rule (conway, highlife, daynight, seeds, lifewithoutdeath)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random initial state")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed with a named pattern instead of random cells; \"none\" starts empty")
	fs.Func("set", "simulator setting key=value, repeatable (keys: "+strings.Join(sim.ConfigKeys, ", ")+")", c.setSetting)
}

func (c *Config) setSetting(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	if !ok {
		return fmt.Errorf("setting %q: expected key=value", kv)
	}
	if !slices.Contains(sim.ConfigKeys, key) {
		return fmt.Errorf("setting %q: unknown key (have %v)", key, sim.ConfigKeys)
	}
	if c.Settings == nil {
		c.Settings = map[string]string{}
	}
	c.Settings[key] = value
	return nil
}

// SimConfig extracts the simulator part of the configuration. Keys present in
// Settings override the matching flags.
func (c *Config) SimConfig() sim.Config {
	sc := sim.Config{Interval: c.Interval, Rule: c.Rule}
	if len(c.Settings) == 0 {
		return sc
	}
	set := sim.FromMap(c.Settings)
	if _, ok := c.Settings["interval_ms"]; ok {
		sc.Interval = set.Interval
	}
	if _, ok := c.Settings["rule"]; ok {
		sc.Rule = set.Rule
	}
	return sc
}
