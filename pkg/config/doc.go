// Package config loads typed configuration structs from environment
// variables, with optional .env file support.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 behind a
// small API: declare a struct with env tags, pass a pointer to Load, and the
// struct is populated from the process environment. Each configuration type
// is parsed at most once per process; later calls for the same type are
// served from an in-memory cache, so independent packages can load the same
// config without coordinating.
//
// # Usage
//
//	type DriverConfig struct {
//	    MaxPolls     int           `env:"EXECUTOR_MAX_POLLS" envDefault:"0"`
//	    StallTimeout time.Duration `env:"EXECUTOR_STALL_TIMEOUT" envDefault:"0"`
//	}
//
//	var cfg DriverConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// The first Load in a process also attempts to read a .env file from the
// working directory; a missing file is not an error. LoadEnv reads
// additional .env files explicitly, and MustLoad panics on failure for
// configuration the program cannot run without.
//
// # Caching
//
// The cache is keyed by the fully-qualified type name and guarded by a
// sync.Once per type, so concurrent first loads parse exactly once. The
// cache stores a copy of the parsed struct; mutating the caller's value
// after Load does not affect later loads.
package config
