// Package leaktest counts goroutines around code that starts background work,
// such as connection pools, the JWKS refresher and the HTTP server.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	pollInterval = 10 * time.Millisecond
	// DefaultSettle is how long Verify waits for goroutines to wind down
	DefaultSettle = 2 * time.Second
)

// Snapshot is the goroutine count taken before the code under test runs
type Snapshot struct {
	t        testing.TB
	baseline int
}

// Take records the current goroutine count
func Take(t testing.TB) *Snapshot {
	t.Helper()
	runtime.Gosched()
	return &Snapshot{t: t, baseline: runtime.NumGoroutine()}
}

// Verify polls until at most tolerance extra goroutines remain or settle
// elapses, and fails the test in the latter case.
func (s *Snapshot) Verify(tolerance int, settle time.Duration) {
	s.t.Helper()

	deadline := time.Now().Add(settle)
	current := runtime.NumGoroutine()
	for current > s.baseline+tolerance && time.Now().Before(deadline) {
		time.Sleep(pollInterval)
		runtime.GC()
		current = runtime.NumGoroutine()
	}

	if leaked := current - s.baseline; leaked > tolerance {
		s.t.Errorf("goroutine leak: baseline=%d now=%d leaked=%d tolerance=%d",
			s.baseline, current, leaked, tolerance)
	}
}

// Check runs fn and verifies nothing it started is still running
func Check(t testing.TB, fn func()) {
	t.Helper()
	snap := Take(t)
	fn()
	snap.Verify(0, DefaultSettle)
}
