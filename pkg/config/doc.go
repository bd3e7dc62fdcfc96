// Package config loads typed configuration structs from the environment.
//
// Values are read with github.com/caarlos0/env/v11 field tags. A .env file in
// the working directory is loaded once through github.com/joho/godotenv before
// the first parse; variables already set in the process take precedence.
//
// Load caches the parsed struct per type and prefix, so repeated calls are
// cheap and always return the same values. Parse skips the cache.
//
//	type Config struct {
//		TrimSpace bool `env:"TRIM_SPACE" envDefault:"false"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("PARAM_")); err != nil {
//		return err
//	}
package config
