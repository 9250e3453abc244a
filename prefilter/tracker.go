package prefilter

// Tracker wraps a Prefilter with effectiveness tracking for one simulation.
//
// The tracker counts candidates (offsets the prefilter reported) and
// confirms (candidates from which the automaton walk accepted). When the
// ratio stays below a threshold after a warmup, the tracker retires the
// prefilter and the caller falls back to trying every offset. Results do
// not change either way; only the amount of scanning does.
//
// A Tracker is not safe for concurrent use. Engines create one per call.
//
// Example usage:
//
//	tr := prefilter.NewTracker(pf)
//	for pos := 0; pos < len(input); pos++ {
//	    if tr.IsActive() {
//	        if pos = tr.Find(input, pos); pos == -1 {
//	            break
//	        }
//	    }
//	    if walk(input, pos) {
//	        tr.ConfirmMatch()
//	    }
//	}
type Tracker struct {
	inner Prefilter

	candidates uint64
	confirms   uint64

	checkInterval  uint64
	minEfficiency  float64
	warmupPeriod   uint64
	lastCheckpoint uint64

	active bool
}

// TrackerConfig holds configuration for the effectiveness tracker.
type TrackerConfig struct {
	// CheckInterval is how often to check effectiveness (in candidates).
	// Default: 64
	CheckInterval uint64

	// MinEfficiency is the minimum acceptable ratio of confirms/candidates.
	// Default: 0.1
	MinEfficiency float64

	// WarmupPeriod is the minimum number of candidates before checking.
	// Default: 128
	WarmupPeriod uint64
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinEfficiency: 0.1,
		WarmupPeriod:  128,
	}
}

// NewTracker creates a tracker with the default config.
// Returns nil if inner is nil.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig creates a tracker with a custom config.
// Returns nil if inner is nil.
func NewTrackerWithConfig(inner Prefilter, config TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}
	return &Tracker{
		inner:         inner,
		checkInterval: config.CheckInterval,
		minEfficiency: config.MinEfficiency,
		warmupPeriod:  config.WarmupPeriod,
		active:        true,
	}
}

// Find returns the next candidate at or after start. It returns -1 when
// none exists; callers must check IsActive first, since a retired tracker
// does not search.
func (t *Tracker) Find(haystack []byte, start int) int {
	if !t.active {
		return -1
	}
	pos := t.inner.Find(haystack, start)
	if pos >= 0 {
		t.candidates++
		t.checkEffectiveness()
	}
	return pos
}

// ConfirmMatch records that the last candidate led to an accepting walk.
// It is a no-op on a nil tracker.
func (t *Tracker) ConfirmMatch() {
	if t != nil {
		t.confirms++
	}
}

// IsActive reports whether the prefilter is still in use. A nil tracker
// is never active.
func (t *Tracker) IsActive() bool {
	return t != nil && t.active
}

// Stats returns (candidates, confirms, efficiency, active).
func (t *Tracker) Stats() (candidates, confirms uint64, efficiency float64, active bool) {
	candidates = t.candidates
	confirms = t.confirms
	if candidates > 0 {
		efficiency = float64(confirms) / float64(candidates)
	}
	active = t.active
	return
}

// Inner returns the underlying prefilter.
func (t *Tracker) Inner() Prefilter {
	return t.inner
}

func (t *Tracker) checkEffectiveness() {
	if t.candidates < t.warmupPeriod {
		return
	}
	if t.candidates-t.lastCheckpoint < t.checkInterval {
		return
	}
	t.lastCheckpoint = t.candidates

	if float64(t.confirms)/float64(t.candidates) < t.minEfficiency {
		t.active = false
	}
}
