package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	text2blog "github.com/stelarn/go-text2blog"
	"github.com/stelarn/go-text2blog/internal/config"
	"github.com/stelarn/go-text2blog/internal/hints"
	"github.com/stelarn/go-text2blog/internal/log"
)

// session is the state every config-aware command starts from: the
// effective settings and a logger honoring -q/-v.
type session struct {
	cfg     *config.Config
	logger  zerolog.Logger
	quiet   bool
	noColor bool
}

// logLevel resolves the level: flags win over the environment, which wins
// over the info default.
func logLevel(f commonFlags, envLevel string) string {
	switch {
	case f.verbose:
		return "debug"
	case f.quiet:
		return "error"
	case envLevel != "":
		return envLevel
	default:
		return "info"
	}
}

// newSession loads the environment, the logger and the settings file.
func newSession(f commonFlags, env *Environment) (*session, error) {
	envCfg := loadEnvConfig(env.Getenv)
	noColor := f.noColor || envCfg.NoColor

	logger, err := log.New(log.Config{
		Level:   logLevel(f, envCfg.LogLevel),
		Output:  env.Stderr,
		NoColor: noColor,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", log.EnvLevel, err)
	}
	warnUnknownEnvVars(env.Environ(), logger)

	name := f.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	switch {
	case cfg.Path != "":
		logger.Debug().Str(log.FieldConfig, cfg.Path).Msg("settings loaded")
	case name != "":
		// An explicit name that resolves nowhere still runs on defaults.
		logger.Warn().
			Strs("searched", cfg.Searched).
			Str("hint", strings.TrimPrefix(hints.ForConfigNotFound(cfg.Searched), "\n  hint: ")).
			Msg("settings not found, using built-in defaults")
	default:
		logger.Debug().Msg("no settings file, using built-in defaults")
	}

	applyEnvConfig(envCfg, cfg)

	return &session{
		cfg:     cfg,
		logger:  logger,
		quiet:   f.quiet,
		noColor: noColor,
	}, nil
}

// converter builds a converter from the session's effective settings.
func (s *session) converter() (*text2blog.Converter, error) {
	return text2blog.NewConverter(text2blog.WithConfig(s.cfg.ConverterConfig()))
}
