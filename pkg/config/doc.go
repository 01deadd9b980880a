// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 to
// deliver a small API that:
//
//   - Loads values from one or more .env files (falling back to the
//     default .env in the working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Caches each successfully loaded configuration type so it is parsed
//     at most once for the lifetime of the process, even under concurrent
//     access.
//   - Exposes panic-on-failure variants (MustLoad, MustLoadEnv) for
//     configuration the process cannot start without.
//   - Allows explicit cache reset or forced reload, which is handy in
//     tests.
//
// # Usage
//
// Describe the configuration as a struct with env tags:
//
//	type DispatchConfig struct {
//	    PollInterval   time.Duration `env:"PUBSUB_POLL_INTERVAL" envDefault:"100ms"`
//	    HandlerTimeout time.Duration `env:"PUBSUB_HANDLER_TIMEOUT" envDefault:"1m"`
//	}
//
// and load it once at startup:
//
//	var cfg DispatchConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Subsequent Load calls for the same type return the cached copy.
package config
