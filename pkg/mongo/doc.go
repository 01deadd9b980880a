// Package mongo dials the MongoDB deployment behind the barrier store.
// It wraps the official v2 driver with a retrying New, environment-driven
// Config, and a probe-shaped Healthcheck; the upsert semantics live in
// the idempotency package.
//
// The driver connects lazily, so New pings after every Connect and keeps
// retrying until a ping succeeds. NewWithDatabase additionally selects
// the database handle that NewMongoStore expects.
//
// # Usage
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "dispatch")
//	if err != nil {
//	    return err
//	}
//
//	store, err := idempotency.NewMongoStore(db, "")
//
// Connection failures surface as ErrFailedToConnectToMongo; Healthcheck
// joins ping errors with ErrHealthcheckFailed so errors.Is can match
// either layer.
package mongo
