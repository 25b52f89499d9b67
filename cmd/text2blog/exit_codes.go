package main

import (
	"errors"
	"os"

	text2blog "github.com/stelarn/go-text2blog"
	"github.com/stelarn/go-text2blog/internal/config"
	"github.com/stelarn/go-text2blog/internal/hints"
	"github.com/stelarn/go-text2blog/internal/log"
	"github.com/stelarn/go-text2blog/internal/yamlutil"
)

// Exit codes for the text2blog CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, config.ErrConfigRead) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrCreateOutputDir) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrWatch) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrOutputConflict) ||
		errors.Is(err, ErrFileExists) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, text2blog.ErrEmptySymbol) ||
		errors.Is(err, text2blog.ErrInvalidSymbol) ||
		errors.Is(err, text2blog.ErrShadowedSymbol) ||
		errors.Is(err, text2blog.ErrInvalidColor) ||
		errors.Is(err, yamlutil.ErrUnknownFormat) ||
		errors.Is(err, log.ErrInvalidLevel) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or an empty string.
func hintFor(err error) string {
	switch {
	case errors.Is(err, text2blog.ErrShadowedSymbol):
		return hints.ForShadowedSymbols()
	case errors.Is(err, text2blog.ErrInvalidColor):
		return hints.ForInvalidColor()
	case errors.Is(err, config.ErrConfigParse):
		return hints.ForConfigParse()
	case errors.Is(err, ErrInvalidExtension):
		return hints.ForInputExtension(inputExtensions)
	case errors.Is(err, ErrFileExists):
		return hints.ForExistingFile()
	case errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	}
	return ""
}
