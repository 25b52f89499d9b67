package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stelarn/go-text2blog/internal/config"
	"github.com/stelarn/go-text2blog/internal/fileutil"
	"github.com/stelarn/go-text2blog/internal/yamlutil"
)

// ErrFileExists is returned when init would overwrite a file without --force.
var ErrFileExists = errors.New("file already exists")

// runInit writes the starter settings file. The target is the positional
// path, the user config directory with --user, or text2blog_settings.json
// in the working directory. A .yaml/.yml target is written as YAML.
func runInit(args []string, flags *initFlags, env *Environment) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: init takes at most one path", ErrUsage)
	}
	if len(args) == 1 && flags.user {
		return fmt.Errorf("%w: --user and a path", ErrOutputConflict)
	}

	target, err := initTarget(args, flags.user)
	if err != nil {
		return err
	}

	if !flags.force {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("%w: %s", ErrFileExists, target)
		}
	}

	data, err := starterSettings(env, target)
	if err != nil {
		return err
	}

	if err := writeSettings(target, data); err != nil {
		return err
	}
	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Settings written: %s\n", target)
	}
	return nil
}

func initTarget(args []string, user bool) (string, error) {
	switch {
	case len(args) == 1:
		return args[0], nil
	case user:
		return config.UserConfigPath()
	default:
		return config.DefaultName + ".json", nil
	}
}

// starterSettings returns the embedded settings, re-encoded when the target
// asks for YAML. The embedded file is checked against the config schema
// either way.
func starterSettings(env *Environment, target string) ([]byte, error) {
	raw, err := env.AssetLoader.LoadSettings()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("embedded settings: %w", err)
	}

	if yamlutil.FormatFromPath(target) == yamlutil.FormatYAML {
		return config.Marshal(cfg, yamlutil.FormatYAML)
	}
	return raw, nil
}

func writeSettings(target string, data []byte) error {
	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %w", ErrCreateOutputDir, err)
		}
	}
	if err := fileutil.WriteFileAtomic(target, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
