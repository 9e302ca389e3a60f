package replay

import "time"

// Clock schedules callbacks. It exists so tests can drive ticks by hand.
type Clock interface {
	// AfterFunc calls f on its own goroutine after d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the callback
	// has already fired or been stopped; the callback may still be running.
	Stop() bool
}

type systemClock struct{}

// SystemClock returns the Clock backed by time.AfterFunc.
func SystemClock() Clock { return systemClock{} }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
