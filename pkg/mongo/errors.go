package mongo

import "errors"

var (
	// ErrFailedToConnectToMongo is returned when no attempt produced a client that answers pings
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")

	// ErrHealthcheckFailed wraps ping failures reported by Healthcheck
	ErrHealthcheckFailed = errors.New("mongo healthcheck failed")
)
