package solver

import (
	"math"
	"sync"
	"sync/atomic"
)

// incumbent is the best assignment found by any worker.
type incumbent struct {
	score atomic.Int64

	mu     sync.Mutex
	values []int
}

func newIncumbent() *incumbent {
	in := &incumbent{}
	in.score.Store(math.MinInt64)
	return in
}

// best returns the incumbent score, or math.MinInt64 when there is none.
func (in *incumbent) best() int64 {
	return in.score.Load()
}

// offer replaces the incumbent if score beats it.
func (in *incumbent) offer(values []int, score int) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	if int64(score) <= in.score.Load() {
		return false
	}
	in.values = values
	in.score.Store(int64(score))
	return true
}

func (in *incumbent) get() ([]int, int, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.values == nil {
		return nil, 0, false
	}
	out := make([]int, len(in.values))
	copy(out, in.values)
	return out, int(in.score.Load()), true
}
