package text2blog

import (
	"errors"

	"github.com/stelarn/go-text2blog/internal/pipeline"
)

// Sentinel errors for configuration validation.
var (
	ErrEmptySymbol    = errors.New("symbol cannot be empty")
	ErrInvalidSymbol  = errors.New("invalid symbol")
	ErrShadowedSymbol = errors.New("symbol shadowed by a higher-priority symbol")
	ErrInvalidColor   = errors.New("invalid color")

	// ErrInvalidLayout is the page skeleton error raised by the render stage.
	ErrInvalidLayout = pipeline.ErrInvalidLayout
)
