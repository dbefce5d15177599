package clock

import (
	"sync"
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	clock := &RealClock{}

	before := time.Now()
	actual := clock.Now()
	after := time.Now()

	if actual.Before(before) || actual.After(after) {
		t.Errorf("RealClock.Now() returned time outside expected range: got %v, expected between %v and %v", actual, before, after)
	}
}

func TestFakeClock(t *testing.T) {
	start := time.Date(2024, 10, 4, 19, 30, 0, 0, time.UTC)

	t.Run("returns fixed time", func(t *testing.T) {
		clock := NewFakeClock(start)
		if first, second := clock.Now(), clock.Now(); !first.Equal(start) || !second.Equal(start) {
			t.Errorf("FakeClock.Now() = %v, %v, want %v", first, second, start)
		}
	})

	t.Run("set and advance", func(t *testing.T) {
		clock := NewFakeClock(start)
		clock.Advance(90 * time.Minute)
		if got, want := clock.Now(), start.Add(90*time.Minute); !got.Equal(want) {
			t.Errorf("After Advance(), Now() = %v, want %v", got, want)
		}
		clock.Set(start)
		if got := clock.Now(); !got.Equal(start) {
			t.Errorf("After Set(), Now() = %v, want %v", got, start)
		}
	})

	t.Run("stepping clock moves on every read", func(t *testing.T) {
		clock := NewSteppingClock(start, time.Second)
		for i := 0; i < 3; i++ {
			if got, want := clock.Now(), start.Add(time.Duration(i)*time.Second); !got.Equal(want) {
				t.Errorf("read %d: Now() = %v, want %v", i, got, want)
			}
		}
	})

	t.Run("concurrent reads", func(t *testing.T) {
		clock := NewSteppingClock(start, time.Millisecond)
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					clock.Now()
				}
			}()
		}
		wg.Wait()
		if got, want := clock.Now(), start.Add(800*time.Millisecond); !got.Equal(want) {
			t.Errorf("after 800 reads, Now() = %v, want %v", got, want)
		}
	})
}

func TestDeadline(t *testing.T) {
	start := time.Date(2024, 10, 4, 19, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		timeout time.Duration
		advance time.Duration
		want    bool
	}{
		{"not yet", time.Minute, 59 * time.Second, false},
		{"exactly at", time.Minute, time.Minute, true},
		{"past", time.Minute, time.Hour, true},
		{"no timeout", 0, 24 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := NewFakeClock(start)
			d := NewDeadline(clock, tt.timeout)
			clock.Advance(tt.advance)
			if got := d.Expired(); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}
