// Package config provides type-safe environment variable loading with
// per-type caching. It loads .env files on first use and parses variables
// into struct fields via the caarlos0/env library.
//
// Basic usage:
//
//	type LocaleConfig struct {
//		Language string `env:"LOCALE_LANG" envDefault:"en"`
//		Debug    bool   `env:"LOCALE_DEBUG" envDefault:"false"`
//	}
//
//	var cfg LocaleConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each configuration type is loaded once per process; subsequent Load calls
// for the same type return the cached value.
package config
