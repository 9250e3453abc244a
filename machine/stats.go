package machine

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Stats counts simulation activity of one automaton.
//
// Counters are updated atomically, so concurrent simulations may share an
// automaton. Each counter sits on its own cache line to keep goroutines on
// different cores from invalidating each other's lines on every step.
type Stats struct {
	simulations atomic.Uint64
	_           cpu.CacheLinePad
	steps       atomic.Uint64
	_           cpu.CacheLinePad
	accepted    atomic.Uint64
	_           cpu.CacheLinePad
	skipped     atomic.Uint64
	_           cpu.CacheLinePad
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	// Simulations is the number of completed Simulate calls.
	Simulations uint64

	// Steps is the number of transitions taken across all simulations.
	Steps uint64

	// Accepted is the number of simulations that produced a match.
	Accepted uint64

	// PrefilterSkips is the number of start offsets skipped by the
	// LongestSubstring prefilter.
	PrefilterSkips uint64
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Simulations:    s.simulations.Load(),
		Steps:          s.steps.Load(),
		Accepted:       s.accepted.Load(),
		PrefilterSkips: s.skipped.Load(),
	}
}

// Reset zeroes every counter.
func (s *Stats) Reset() {
	s.simulations.Store(0)
	s.steps.Store(0)
	s.accepted.Store(0)
	s.skipped.Store(0)
}

// AddSteps records n transitions.
func (s *Stats) AddSteps(n int) {
	if n > 0 {
		s.steps.Add(uint64(n))
	}
}

// AddSkipped records n offsets skipped by the prefilter.
func (s *Stats) AddSkipped(n int) {
	if n > 0 {
		s.skipped.Add(uint64(n))
	}
}

// Record counts one completed simulation.
func (s *Stats) Record(r Result) {
	s.simulations.Add(1)
	if r.Accepted {
		s.accepted.Add(1)
	}
}
