package main

import (
	"fmt"

	"github.com/stelarn/go-text2blog/internal/config"
	"github.com/stelarn/go-text2blog/internal/yamlutil"
)

// runConfig prints the effective settings (file, environment and defaults
// merged) to stdout, and where they came from to stderr.
func runConfig(args []string, flags *configFlags, env *Environment) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: config takes no arguments", ErrUsage)
	}
	format, err := yamlutil.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	s, err := newSession(flags.common, env)
	if err != nil {
		return err
	}

	data, err := config.Marshal(s.cfg, format)
	if err != nil {
		return err
	}

	if !s.quiet {
		source := s.cfg.Path
		if source == "" {
			source = "built-in defaults"
		}
		fmt.Fprintf(env.Stderr, "source: %s\n", source)
	}
	_, err = env.Stdout.Write(data)
	return err
}
