// Package show schedules repeating patterns against an LED strip.
//
// A show is a Pattern driven by a Runner. The Runner paces the
// pattern's per-step updates, triggers repaints and owns the generic
// cycle/step bookkeeping every pattern shares.
package show

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/stripshow/stripshow/internal/params"
	"github.com/stripshow/stripshow/internal/strip"
)

// Forever makes a show loop until stopped.
const Forever = -1

// Pattern is what a concrete show implements. The Runner calls
// BeforeStart once, then Update for every step of every cycle, then
// Shutdown when the show ends normally. Update reports whether the
// strip must be repainted. Any error from a hook aborts the show
// unmodified; Shutdown does not run in that case.
type Pattern interface {
	BeforeStart() error
	Update(step, cycle int) (repaint bool, err error)
	Shutdown() error
}

// ParameterSetter lets a pattern accept parameters of its own through
// the same contract the Runner uses for the generic ones.
type ParameterSetter interface {
	SetParameter(name string, value any) error
}

// RunnableChecker lets a pattern veto a run, e.g. when one of its own
// required parameters was never set.
type RunnableChecker interface {
	CheckRunnable() error
}

// Runner drives one pattern against one strip. Configure it with
// SetParameter, then call Run. Runner is not safe for concurrent use;
// the only method that may be called from another goroutine is Stop.
type Runner struct {
	strip   *strip.Strip
	pattern Pattern
	log     zerolog.Logger

	pause    time.Duration
	pauseSet bool

	stepsPerCycle int
	stepsSet      bool

	numCycles int
	cyclesSet bool

	stop atomic.Bool
}

func NewRunner(s *strip.Strip, p Pattern) *Runner {
	return &Runner{strip: s, pattern: p, log: zerolog.Nop()}
}

func (r *Runner) SetLogger(log zerolog.Logger) {
	r.log = log
}

// SetParameter validates and applies one option. The Runner recognizes
// pause_sec, num_steps_per_cycle and num_cycles; anything else is
// offered to the pattern, and rejected if the pattern does not take
// parameters either.
func (r *Runner) SetParameter(name string, value any) error {
	switch name {
	case "pause_sec":
		if err := params.NotNegativeNumeric(value, name); err != nil {
			return err
		}
		r.pause = time.Duration(params.AsFloat(value) * float64(time.Second))
		r.pauseSet = true
	case "num_steps_per_cycle":
		if err := params.PositiveInteger(value, name); err != nil {
			return err
		}
		r.stepsPerCycle = params.AsInt(value)
		r.stepsSet = true
	case "num_cycles":
		if err := params.Integer(value, name); err != nil {
			return err
		}
		if n := params.AsInt(value); n == Forever {
			r.numCycles = Forever
		} else if err := params.PositiveInteger(value, name); err != nil {
			return err
		} else {
			r.numCycles = n
		}
		r.cyclesSet = true
	default:
		if ps, ok := r.pattern.(ParameterSetter); ok {
			return ps.SetParameter(name, value)
		}
		return params.Unknown(name)
	}
	return nil
}

// ApplyParameters sets every option in values. Handy for feeding a
// show's settings sub-tree straight into the Runner.
func (r *Runner) ApplyParameters(values map[string]any) error {
	for name, value := range values {
		if err := r.SetParameter(name, value); err != nil {
			return err
		}
	}
	return nil
}

// CheckRunnable verifies all required options are set, then gives the
// pattern a chance to check its own.
func (r *Runner) CheckRunnable() error {
	if !r.pauseSet {
		return params.Missing("pause_sec")
	}
	if !r.stepsSet {
		return params.Missing("num_steps_per_cycle")
	}
	if !r.cyclesSet {
		return params.Missing("num_cycles")
	}
	if rc, ok := r.pattern.(RunnableChecker); ok {
		return rc.CheckRunnable()
	}
	return nil
}

// Stop requests cooperative termination. The request is observed only
// at cycle boundaries, so it can take up to one full cycle
// (num_steps_per_cycle * pause_sec) before the show actually ends. An
// in-flight sleep or transmission is never interrupted.
func (r *Runner) Stop() {
	r.stop.Store(true)
	r.log.Debug().Msg("stop requested")
}

// Run executes the show: BeforeStart, a forced initial repaint, then
// the cycle loop, and on normal termination Shutdown plus one final
// flush so the strip is left in a consistent state. Hook and transport
// errors propagate immediately and skip the shutdown/flush path.
func (r *Runner) Run() error {
	if err := r.CheckRunnable(); err != nil {
		return err
	}
	r.log.Debug().
		Dur("pause", r.pause).
		Int("num_steps_per_cycle", r.stepsPerCycle).
		Int("num_cycles", r.numCycles).
		Msg("show starting")

	if err := r.pattern.BeforeStart(); err != nil {
		return err
	}
	if err := r.strip.Show(); err != nil {
		return err
	}

	for cycle := 0; ; cycle++ {
		for step := 0; step < r.stepsPerCycle; step++ {
			repaint, err := r.pattern.Update(step, cycle)
			if err != nil {
				return err
			}
			if repaint {
				if err := r.strip.Show(); err != nil {
					return err
				}
			}
			// Scheduling point after every step, even at zero pause.
			time.Sleep(r.pause)
		}
		// Termination is checked once per cycle, here and only here.
		if r.completed(cycle+1) || r.stop.Load() {
			break
		}
	}

	if err := r.pattern.Shutdown(); err != nil {
		return err
	}
	if err := r.strip.SyncUp(); err != nil {
		return err
	}
	r.log.Debug().Msg("show finished")
	return nil
}

func (r *Runner) completed(cycles int) bool {
	return r.numCycles != Forever && cycles >= r.numCycles
}
