// Package lockout implements a per-client-address failure counter with a
// time window, used to throttle brute-force authentication attempts.
//
// State is process-local: it is created lazily on the first attempt from
// an address and is not persisted across restarts.
package lockout

import (
	"sync"
	"time"
)

// timeNow is a test seam for the clock.
var timeNow = time.Now

type state struct {
	failures    int
	windowStart time.Time
}

// Tracker keeps one failure counter per client address. All methods are
// safe for concurrent use: the read-modify-write of a counter is atomic
// with respect to other connection handlers.
type Tracker struct {
	mu          sync.Mutex
	maxFailures int
	window      time.Duration
	states      map[string]*state
}

// NewTracker returns a Tracker that blocks an address after maxFailures
// failed attempts until window has elapsed since the lockout started.
func NewTracker(maxFailures int, window time.Duration) *Tracker {
	return &Tracker{
		maxFailures: maxFailures,
		window:      window,
		states:      make(map[string]*state),
	}
}

// Blocked reports whether addr is currently locked out. An expired window
// clears the counter, so a subsequent attempt is evaluated normally.
func (t *Tracker) Blocked(addr string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.states[addr]
	if !ok || s.failures < t.maxFailures {
		return false
	}

	if timeNow().Sub(s.windowStart) >= t.window {
		s.failures = 0
		return false
	}

	return true
}

// RecordFailure registers one failed attempt from addr and returns the
// updated counter value. When the counter reaches the threshold, the
// lockout window starts at the current time.
func (t *Tracker) RecordFailure(addr string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := timeNow()

	s, ok := t.states[addr]
	if !ok {
		s = &state{}
		t.states[addr] = s
	}

	// stale series: the window has passed since the first failure
	if s.failures > 0 && now.Sub(s.windowStart) >= t.window {
		s.failures = 0
	}

	if s.failures == 0 {
		s.windowStart = now
	}

	s.failures++

	if s.failures == t.maxFailures {
		s.windowStart = now
	}

	return s.failures
}

// Reset clears the counter for addr after a successful authentication.
func (t *Tracker) Reset(addr string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.states, addr)
}

// Threshold returns the configured failure threshold.
func (t *Tracker) Threshold() int {
	return t.maxFailures
}
