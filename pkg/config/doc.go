// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more `.env` files into the process environment
//     (the default `.env` in the working directory when called without paths).
//   - Load parses the environment into any struct annotated with `env` tags and
//     caches the result per type, so repeated calls do not re-parse.
//   - ForceReloadConfig bypasses the cache and ResetCache clears it, which is
//     mostly useful in tests.
//
// # Usage
//
//	type Config struct {
//	    Env      string `env:"FIELDCHECK_ENV" envDefault:"development"`
//	    LogLevel string `env:"FIELDCHECK_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Parse failures wrap ErrParsingConfig and a missing env file wraps
// ErrLoadingEnvFile; compare with errors.Is.
package config
