package timer

import "time"

// Timer is a source of the current time.
type Timer interface {
	Now() time.Time
}

// System reads the wall clock.
var System Timer = systemTimer{}

type systemTimer struct{}

func (systemTimer) Now() time.Time { return time.Now() }

// FixedTimer always reports the same instant. Useful for deterministic seeds.
type FixedTimer struct {
	At time.Time
}

// Now returns the fixed instant.
func (f FixedTimer) Now() time.Time { return f.At }

// Seed derives a random seed from the timer's current instant.
func Seed(t Timer) uint64 {
	return uint64(t.Now().UnixNano())
}
