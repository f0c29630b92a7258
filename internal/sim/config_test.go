package sim

import (
	"errors"
	"testing"
	"time"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"interval_ms": "120", "rule": "highlife"})
	if c.Interval != 120*time.Millisecond || c.Rule != "highlife" {
		t.Fatalf("FromMap = %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	c = FromMap(map[string]string{"interval_ms": "-4", "rule": ""})
	if c != DefaultConfig() {
		t.Fatalf("invalid values must keep defaults, got %+v", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map must yield the default config")
	}
}

func TestValidateRejects(t *testing.T) {
	for _, c := range []Config{
		{Interval: 0, Rule: "conway"},
		{Interval: time.Millisecond, Rule: "b3s23x"},
	} {
		if err := c.Validate(); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("Validate(%+v) = %v, expected ErrInvalidArgument", c, err)
		}
		g := newGrid(t, 2, 2)
		if s, err := NewWithConfig(g, c); err == nil || s != nil {
			t.Fatalf("NewWithConfig(%+v) accepted an invalid config", c)
		}
	}
}
