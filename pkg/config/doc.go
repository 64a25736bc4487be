// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct parsing and
// github.com/joho/godotenv for .env files. Every config struct type is parsed
// once per process and served from a cache afterwards:
//
//	type Config struct {
//		Workers int `env:"UABENCH_WORKERS" envDefault:"4"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Failures can be matched with errors.Is against ErrParsingConfig,
// ErrNilPointer and ErrLoadingEnvFile. Tests that change the environment call
// Reset between cases.
package config
