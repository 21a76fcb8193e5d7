package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"chosenoffset.com/folio/internal/sim"
)

type runStats struct {
	runIndex   int
	seed       int64
	steps      int
	bounces    int
	violations int
	firstBad   int
	simSeconds float64
}

type reportOptions struct {
	runs     int
	steps    int
	dt       float64
	seedBase int64
	enemies  int
	variant  string
	intent   string
}

// fixedIntent holds the player direction for a whole run.
type fixedIntent struct{ dx, dy float64 }

func (f fixedIntent) Axis() (float64, float64) { return f.dx, f.dy }

func parseIntent(s string) (fixedIntent, error) {
	var in fixedIntent
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'w':
			in.dy--
		case 's':
			in.dy++
		case 'a':
			in.dx--
		case 'd':
			in.dx++
		default:
			return in, fmt.Errorf("unknown intent key %q", r)
		}
	}
	return in, nil
}

func optionsFor(variant string, enemies int) (sim.Options, error) {
	var o sim.Options
	switch variant {
	case "bluecondition":
		o = sim.DefaultOptions()
	case "gametwo":
		o = sim.GameTwoOptions()
		// the sandbox never spawns on its own; give it a swarm to measure
		o.SpawnOnStart = true
	default:
		return o, fmt.Errorf("unknown variant %q", variant)
	}
	if enemies >= 0 {
		o.EnemyCount = enemies
	}
	return o, nil
}

func runOnce(opts sim.Options, intent fixedIntent, steps int, dt float64, seed int64, idx int) runStats {
	s := sim.New(opts, intent, rand.New(rand.NewSource(seed)))
	st := runStats{runIndex: idx, seed: seed, firstBad: -1}
	for i := 0; i < steps; i++ {
		s.Advance(dt)
		if !s.Player.Inside(opts.WorldWidth, opts.WorldHeight) {
			st.violations++
		}
		for j := range s.Enemies {
			if !s.Enemies[j].Inside(opts.WorldWidth, opts.WorldHeight) {
				st.violations++
				if st.firstBad < 0 {
					st.firstBad = i
				}
			}
		}
	}
	st.steps = s.Steps()
	st.bounces = s.Bounces()
	st.simSeconds = s.Clock()
	return st
}

func report(w io.Writer, ro reportOptions) (int, error) {
	opts, err := optionsFor(ro.variant, ro.enemies)
	if err != nil {
		return 0, err
	}
	intent, err := parseIntent(ro.intent)
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(w, "variant=%s enemies=%d steps=%d dt=%.4f world=%.0fx%.0f\n",
		ro.variant, opts.EnemyCount, ro.steps, ro.dt, opts.WorldWidth, opts.WorldHeight)
	fmt.Fprintln(w, "run  seed        steps  bounces  bounces/s  violations  first-bad-step")
	totalViolations := 0
	for r := 0; r < ro.runs; r++ {
		seed := ro.seedBase + int64(r)
		st := runOnce(opts, intent, ro.steps, ro.dt, seed, r+1)
		rate := 0.0
		if st.simSeconds > 0 {
			rate = float64(st.bounces) / st.simSeconds
		}
		fmt.Fprintf(w, "%-4d %-11d %-6d %-8d %-10.1f %-11d %d\n",
			st.runIndex, st.seed, st.steps, st.bounces, rate, st.violations, st.firstBad)
		totalViolations += st.violations
	}
	return totalViolations, nil
}

func main() {
	var ro reportOptions
	flag.IntVar(&ro.runs, "runs", 3, "number of headless simulation runs")
	flag.IntVar(&ro.steps, "steps", 600, "steps per run")
	flag.Float64Var(&ro.dt, "dt", 1.0/60.0, "seconds per step")
	flag.Int64Var(&ro.seedBase, "seed", 42, "RNG seed for run 1; later runs add 1")
	flag.IntVar(&ro.enemies, "enemies", -1, "enemy count override (-1 keeps the variant's)")
	flag.StringVar(&ro.variant, "variant", "bluecondition", "bluecondition or gametwo")
	flag.StringVar(&ro.intent, "intent", "", "held keys for the player, e.g. wd")
	flag.Parse()

	if ro.runs <= 0 || ro.steps <= 0 || ro.dt <= 0 {
		fmt.Fprintln(os.Stderr, "error: -runs, -steps and -dt must be > 0")
		os.Exit(2)
	}

	violations, err := report(os.Stdout, ro)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	if violations > 0 {
		fmt.Fprintf(os.Stderr, "FAIL: %d world-bounds violations\n", violations)
		os.Exit(1)
	}
}
