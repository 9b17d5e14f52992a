package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache stores parsed configuration structs keyed by type name, with one
// sync.Once per type so concurrent first loads parse at most once.
type cache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	store = &cache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvOnce sync.Once
)

// LoadEnv reads the given .env files into the process environment. Existing
// environment variables are never overridden, matching godotenv semantics.
// With no arguments it reads the default .env from the working directory.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load populates v from the environment. The first call for a given type
// parses env tags via env.Parse and caches the result; subsequent calls for
// the same type return the cached copy.
//
// Before the first parse in the process, Load attempts to read the default
// .env file; its absence is ignored.
func Load[T any](v *T) error {
	defaultEnvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeName[T]()

	store.mu.RLock()
	if cached, ok := store.values[key]; ok {
		*v = cached.(T)
		store.mu.RUnlock()
		return nil
	}
	store.mu.RUnlock()

	store.mu.Lock()
	once, ok := store.onces[key]
	if !ok {
		once = new(sync.Once)
		store.onces[key] = once
	}
	store.mu.Unlock()

	var parseErr error
	once.Do(func() {
		if err := env.Parse(v); err != nil {
			parseErr = errors.Join(ErrParsingConfig, err)
			return
		}
		store.mu.Lock()
		// Store a copy so later mutation of *v cannot leak into the cache.
		store.values[key] = *v
		store.mu.Unlock()
	})
	if parseErr != nil {
		return parseErr
	}

	store.mu.RLock()
	defer store.mu.RUnlock()
	if cached, ok := store.values[key]; ok {
		*v = cached.(T)
		return nil
	}
	// The once already ran (and failed) in another goroutine; the error is
	// only reported there, so surface a generic failure here.
	return ErrConfigNotLoaded
}

// MustLoad is Load that panics on failure, for configuration the program
// cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load required configuration: %v", err))
	}
}

// typeName returns a stable cache key for T.
func typeName[T any]() string {
	t := reflect.TypeOf(*new(T))
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
