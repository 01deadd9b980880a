package idempotency

import "time"

// Clock supplies the current instant for expiry checks, injectable so
// tests can exercise barrier lifecycles with synthetic time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
