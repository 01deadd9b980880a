package pubsub

import "time"

// Clock supplies the current instant. All scheduling decisions go through
// it so tests can inject synthetic time instead of sleeping.
type Clock interface {
	Now() time.Time
}

// systemClock is the default Clock backed by the wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
