package scheduler

import (
	"sync"
	"time"
)

// Scheduler runs delayed callbacks grouped under a key, here the order id.
// Cancelling a key stops every timer scheduled under it, which is what lets
// a replaced order's pending transitions die with it instead of firing into
// whatever order exists later.
type Scheduler struct {
	mu      sync.Mutex
	timers  map[string][]*time.Timer
	stopped bool
}

func New() *Scheduler {
	return &Scheduler{timers: make(map[string][]*time.Timer)}
}

// Schedule runs fn after delay unless the key is cancelled first. A timer
// already past the point of cancellation may still run fn, so callbacks must
// tolerate firing for a key that no longer matters.
func (s *Scheduler) Schedule(key string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		s.remove(key, t)
		fn()
	})

	s.timers[key] = append(s.timers[key], t)
}

// Cancel stops all timers scheduled under key.
func (s *Scheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.timers[key] {
		t.Stop()
	}

	delete(s.timers, key)
}

// Stop cancels everything and refuses further scheduling.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true

	for key, timers := range s.timers {
		for _, t := range timers {
			t.Stop()
		}

		delete(s.timers, key)
	}
}

// Running reports whether the scheduler still accepts work. Used by the
// health endpoint.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return !s.stopped
}

func (s *Scheduler) remove(key string, fired *time.Timer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.timers[key][:0]

	for _, t := range s.timers[key] {
		if t != fired {
			remaining = append(remaining, t)
		}
	}

	if len(remaining) == 0 {
		delete(s.timers, key)
	} else {
		s.timers[key] = remaining
	}
}
