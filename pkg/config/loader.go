// Package config loads typed configuration from the process environment and
// optional .env files using github.com/caarlos0/env/v11 and
// github.com/joho/godotenv.
//
// Each struct type is parsed once and cached for the lifetime of the process:
//
//	var cfg requestid.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Tests use ForceReload or ResetCache after changing the environment.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu    sync.RWMutex
	cache = make(map[reflect.Type]any)

	defaultEnvOnce sync.Once
)

// LoadEnv reads the given .env files into the process environment.
// Variables already present in the environment are not overridden; with no
// paths the .env file in the working directory is used.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv that panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Load parses environment variables into v according to its `env` tags.
// The first successful result for a type is cached and returned by later calls.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvOnce.Do(func() {
		// a missing .env file is fine
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	mu.RLock()
	cached, ok := cache[key]
	mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	return parse(key, v)
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// ForceReload parses v again, replacing any cached value of its type.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	return parse(reflect.TypeFor[T](), v)
}

// ResetCache drops every cached configuration.
func ResetCache() {
	mu.Lock()
	cache = make(map[reflect.Type]any)
	mu.Unlock()
}

func parse[T any](key reflect.Type, v *T) error {
	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	mu.Lock()
	cache[key] = parsed
	mu.Unlock()

	*v = parsed
	return nil
}
