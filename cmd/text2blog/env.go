package main

import (
	"io"
	"os"
	"time"

	"github.com/stelarn/go-text2blog/internal/assets"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, process environment, and asset loading.
type Environment struct {
	Now         func() time.Time
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	AssetLoader assets.AssetLoader
	Getenv      func(string) string
	Environ     func() []string
}

// DefaultEnv returns production environment with embedded assets.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
		Getenv:      os.Getenv,
		Environ:     os.Environ,
	}
}
