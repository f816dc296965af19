package usecase

import "time"

// SystemScheduler runs callbacks on real timers. Tests substitute a
// manual scheduler so debounce behavior is driven by virtual time.
type SystemScheduler struct{}

// AfterFunc schedules fn after d and returns a cancel function.
// Canceling after the callback has fired is a no-op.
func (SystemScheduler) AfterFunc(d time.Duration, fn func()) func() {
	timer := time.AfterFunc(d, fn)
	return func() { timer.Stop() }
}
