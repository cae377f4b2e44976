package main

import (
	"log/slog"

	"github.com/dmitrymomot/fieldcheck/pkg/config"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

const serviceName = "fieldcheck"

// Config is read from the environment or a .env file.
type Config struct {
	Env       string `env:"FIELDCHECK_ENV" envDefault:"development"`
	LogLevel  string `env:"FIELDCHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"FIELDCHECK_LOG_FORMAT" envDefault:"text"`
}

func loadConfig(envFiles []string) (Config, error) {
	var cfg Config
	if len(envFiles) > 0 {
		if err := config.LoadEnv(envFiles...); err != nil {
			return cfg, err
		}
		if err := config.ForceReloadConfig(&cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger applies the environment defaults first so explicit level and
// format settings win.
func newLogger(cfg Config, opts ...logger.Option) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	all := append([]logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithLevel(level),
		logger.WithFormat(format),
	}, opts...)
	return logger.New(all...), nil
}
