package scan

import "time"

// Clock abstracts the time operations used by Writer, so that tests can
// substitute a fake clock and verify timing behavior deterministically.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// Sleep blocks for the given duration. Implementations must treat
	// non-positive durations as a no-op.
	Sleep(d time.Duration)
}

// realClock is the Clock used outside tests. It wraps the time package.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
