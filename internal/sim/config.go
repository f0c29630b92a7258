package sim

import (
	"fmt"
	"strconv"
	"time"

	"torus-life/internal/core"
)

// Config controls a Simulator's cadence and rule.
type Config struct {
	Interval time.Duration
	Rule     string
}

// ConfigKeys lists the keys FromMap understands.
var ConfigKeys = []string{"interval_ms", "rule"}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Interval: DefaultInterval, Rule: "conway"}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["interval_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Interval = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	return c
}

// Validate reports whether the configuration can drive a Simulator.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval %s: %w", c.Interval, ErrInvalidArgument)
	}
	if _, ok := core.Lookup(c.Rule); !ok {
		return fmt.Errorf("unknown rule %q: %w", c.Rule, ErrInvalidArgument)
	}
	return nil
}
