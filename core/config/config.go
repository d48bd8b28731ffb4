package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> parsed config value
)

// Load parses environment variables into cfg. A .env file in the working
// directory is loaded once per process before the first parse. Each config
// type is parsed once and cached; later calls for the same type receive the
// cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config target cannot be nil")
	}

	dotenvOnce.Do(func() {
		// Missing .env files are fine; real environments set vars directly.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", key, err)
	}

	cached, _ := cache.LoadOrStore(key, *cfg)
	*cfg = cached.(T)
	return nil
}

// MustLoad is like Load but panics on failure. Useful during startup where
// a missing required variable should stop the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
