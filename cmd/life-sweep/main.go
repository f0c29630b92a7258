package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"torus-life/internal/core"
)

type scenario struct {
	rule    string
	seed    int64
	density float64
}

func (s scenario) String() string {
	return fmt.Sprintf("rule=%s seed=%d density=%.2f", s.rule, s.seed, s.density)
}

type scenarioResult struct {
	scenario
	initial    int
	final      int
	peak       int
	generation uint64
	// period is the cycle length detected in the last steps, 0 when none.
	period int
}

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	rows := flag.Int("rows", 64, "grid height in cells")
	cols := flag.Int("cols", 64, "grid width in cells")
	seeds := flag.Int("seeds", 8, "seeds per rule")
	rules := flag.String("rules", strings.Join(core.RuleNames(), ","), "comma separated rule names")
	flag.Parse()

	var names []string
	for _, name := range strings.Split(*rules, ",") {
		name = strings.TrimSpace(name)
		if _, ok := core.Lookup(name); !ok {
			log.Fatalf("unknown rule %q (have %v)", name, core.RuleNames())
		}
		names = append(names, name)
	}
	if *rows <= 0 || *cols <= 0 {
		log.Fatalf("grid must be at least 1x1, got %dx%d", *rows, *cols)
	}

	var sets []scenario
	for _, name := range names {
		for seed := int64(1); seed <= int64(*seeds); seed++ {
			for _, density := range []float64{0, 0.3, 0.5} {
				sets = append(sets, scenario{rule: name, seed: seed, density: density})
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios on %dx%d (%d workers, %d steps)\n", len(sets), *rows, *cols, *workers, *steps)

	start := time.Now()
	all := sweep(sets, *rows, *cols, *steps, *workers)
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool {
		if all[i].rule != all[j].rule {
			return all[i].rule < all[j].rule
		}
		return all[i].final > all[j].final
	})

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, res := range all {
		fmt.Printf("%-40s initial=%5d final=%5d peak=%5d gen=%d period=%d\n",
			res.scenario, res.initial, res.final, res.peak, res.generation, res.period)
	}
}

// sweep runs every scenario on a pool of workers and returns the results in
// completion order.
func sweep(sets []scenario, rows, cols, steps, workers int) []scenarioResult {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc, rows, cols, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	return all
}

// historyDepth bounds the cycle detection window.
const historyDepth = 8

func runScenario(sc scenario, rows, cols, steps int) scenarioResult {
	g, err := core.NewGrid(rows, cols)
	if err != nil {
		return scenarioResult{scenario: sc}
	}
	rule, _ := core.Lookup(sc.rule)
	rng := core.NewRNG(sc.seed)
	if sc.density > 0 {
		g.RandomizeDensity(rng, sc.density)
	} else {
		g.Randomize(rng)
	}

	res := scenarioResult{scenario: sc, initial: g.Population()}
	res.peak = res.initial
	var history [][]uint8
	for step := 0; step < steps; step++ {
		g.Step(rule)
		if pop := g.Population(); pop > res.peak {
			res.peak = pop
		}
		if steps-step <= historyDepth {
			history = append(history, g.Snapshot())
		}
	}
	res.final = g.Population()
	res.generation = g.Generation()
	res.period = detectPeriod(history)
	return res
}

// detectPeriod returns the smallest p such that the last snapshot equals the
// one p steps before it.
func detectPeriod(history [][]uint8) int {
	if len(history) < 2 {
		return 0
	}
	last := history[len(history)-1]
	for p := 1; p < len(history); p++ {
		if slices.Equal(history[len(history)-1-p], last) {
			return p
		}
	}
	return 0
}
