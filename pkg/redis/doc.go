// Package redis dials the Redis instance behind the barrier store. It
// wraps go-redis with a retrying Connect, environment-driven Config, and
// a probe-shaped Healthcheck; everything past the connection (SET NX,
// TTLs) belongs to the idempotency package.
//
// # Usage
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	store, err := idempotency.NewRedisStore(client)
//
// Connect keeps dialing until the server answers a ping, the configured
// attempts run out, or the connect timeout expires. Failures come back
// as sentinel errors (ErrRedisNotReady, ErrFailedToParseRedisConnString)
// joined with the driver's error, so errors.Is works on both layers.
package redis
