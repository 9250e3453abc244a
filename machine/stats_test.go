package machine

import (
	"sync"
	"testing"

	"github.com/coregx/fsm/state"
)

func TestStats(t *testing.T) {
	var s Stats
	s.AddSteps(3)
	s.AddSteps(-1)
	s.AddSkipped(2)
	s.Record(NewResult(true, state.NewSet(2), Indices{0, 1}, []byte("a")))
	s.Record(Reject(nil))

	got := s.Snapshot()
	want := StatsSnapshot{Simulations: 2, Steps: 3, Accepted: 1, PrefilterSkips: 2}
	if got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}

	s.Reset()
	if got := s.Snapshot(); got != (StatsSnapshot{}) {
		t.Errorf("after Reset, Snapshot() = %+v", got)
	}
}

func TestStatsConcurrent(t *testing.T) {
	var s Stats
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				s.AddSteps(1)
			}
		}()
	}
	wg.Wait()

	if got := s.Snapshot().Steps; got != 8000 {
		t.Errorf("Steps = %d, want 8000", got)
	}
}
