package main

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/stelarn/go-text2blog/internal/config"
	"github.com/stelarn/go-text2blog/internal/log"
)

// envPrefix is shared by every recognized environment variable.
const envPrefix = "TEXT2BLOG_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without writing a settings file.
type envConfig struct {
	ConfigPath string // TEXT2BLOG_CONFIG: settings file name or path
	OutputDir  string // TEXT2BLOG_OUTPUT_DIR: default output directory
	EscapeHTML *bool  // TEXT2BLOG_ESCAPE_HTML: escape inserted text (nil = unset)
	NoColor    bool   // TEXT2BLOG_NO_COLOR: disable colored output
	LogLevel   string // TEXT2BLOG_LOG_LEVEL: default log level
}

// knownEnvVars lists valid TEXT2BLOG_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TEXT2BLOG_CONFIG":      true,
	"TEXT2BLOG_OUTPUT_DIR":  true,
	"TEXT2BLOG_ESCAPE_HTML": true,
	"TEXT2BLOG_NO_COLOR":    true,
	log.EnvLevel:            true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable booleans are treated as unset.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath: getenv("TEXT2BLOG_CONFIG"),
		OutputDir:  getenv("TEXT2BLOG_OUTPUT_DIR"),
		EscapeHTML: envBoolPtr(getenv("TEXT2BLOG_ESCAPE_HTML")),
		NoColor:    envBool(getenv("TEXT2BLOG_NO_COLOR")),
		LogLevel:   getenv(log.EnvLevel),
	}
}

func envBool(s string) bool {
	b := envBoolPtr(s)
	return b != nil && *b
}

// envBoolPtr parses s, returning nil when it is empty or not a boolean so
// that an explicit "false" can be told apart from an unset variable.
func envBoolPtr(s string) *bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &b
}

// warnUnknownEnvVars logs warnings for unrecognized TEXT2BLOG_* variables.
// Helps catch typos like TEXT2BLOG_OUTPUTDIR instead of TEXT2BLOG_OUTPUT_DIR.
func warnUnknownEnvVars(environ []string, logger zerolog.Logger) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn().Str("variable", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig overrides settings file values with every variable that is
// set, so that CLI flags > env vars > settings file > defaults
// (CLI flags are applied later by each command).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.EscapeHTML != nil {
		cfg.Convert.EscapeHTML = *env.EscapeHTML
	}
}
