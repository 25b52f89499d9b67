package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	text2blog "github.com/stelarn/go-text2blog"
	"github.com/stelarn/go-text2blog/internal/fileutil"
	"github.com/stelarn/go-text2blog/internal/log"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage           = errors.New("invalid usage")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrReadInput       = errors.New("failed to read input")
	ErrWriteOutput     = errors.New("failed to write page")
	ErrCreateOutputDir = errors.New("failed to create output directory")
	ErrOutputConflict  = errors.New("conflicting output options")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Page       *text2blog.Result
	Err        error
	Duration   time.Duration
}

// runConvert orchestrates the conversion process. Files are converted one
// at a time; a failure is reported and the remaining files still run.
func runConvert(ctx context.Context, inputs []string, flags *convertFlags, env *Environment) error {
	if flags.stdout && flags.output != "" {
		return fmt.Errorf("%w: --stdout and --output", ErrOutputConflict)
	}

	s, err := newSession(flags.common, env)
	if err != nil {
		return err
	}
	if flags.escapeHTML {
		s.cfg.Convert.EscapeHTML = true
	}

	conv, err := s.converter()
	if err != nil {
		return err
	}

	output := flags.output
	if output == "" && !flags.stdout {
		output = s.cfg.Output.Dir
	}

	if isStdin(inputs) {
		return convertStdin(conv, output, flags.stdout, s, env)
	}

	files, err := discoverFiles(inputs, output)
	if err != nil {
		return err
	}

	status := newStatusLine(env.Stdout, s.cfg.Theme(), s.noColor, s.quiet)
	logger := log.WithComponent(s.logger, "convert")

	var failed []ConversionResult
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		res := convertFile(conv, f, flags.stdout, env)
		if res.Err != nil {
			logger.Error().Err(res.Err).Str(log.FieldInput, res.InputPath).Msg("conversion failed")
			failed = append(failed, res)
			continue
		}

		logger.Debug().
			Str(log.FieldInput, res.InputPath).
			Str(log.FieldOutput, res.OutputPath).
			Str(log.FieldTitle, res.Page.Title).
			Int(log.FieldBlocks, res.Page.Blocks).
			Int(log.FieldLinks, len(res.Page.Links)).
			Int(log.FieldLines, res.Page.Lines).
			Dur(log.FieldDuration, res.Duration).
			Msg("page converted")
		if !flags.stdout {
			status.saved(res.OutputPath)
		}
	}

	switch {
	case len(failed) == 0:
		return nil
	case len(files) == 1:
		return failed[0].Err
	default:
		return fmt.Errorf("%d of %d conversion(s) failed: %w", len(failed), len(files), failed[0].Err)
	}
}

// convertFile reads, converts and writes one file. With toStdout the page
// is written to env.Stdout instead.
func convertFile(conv *text2blog.Converter, f FileToConvert, toStdout bool, env *Environment) ConversionResult {
	start := env.Now()
	result := ConversionResult{InputPath: f.InputPath, OutputPath: f.OutputPath}

	data, err := os.ReadFile(f.InputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrReadInput, err)
		return result
	}

	result.Page = conv.Convert(string(data))

	if toStdout {
		result.Err = writeStdout(env.Stdout, result.Page.HTML)
	} else {
		result.Err = writePage(f.OutputPath, result.Page.HTML)
	}
	result.Duration = env.Now().Sub(start)
	return result
}

// convertStdin converts standard input. The page goes to stdout unless an
// output file was given.
func convertStdin(conv *text2blog.Converter, output string, toStdout bool, s *session, env *Environment) error {
	data, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
	}
	page := conv.Convert(string(data))

	if toStdout || output == "" {
		return writeStdout(env.Stdout, page.HTML)
	}

	path := output
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		path = filepath.Join(output, "index.html")
	}
	if path, err = fileutil.EnsureExtension(path, fileutil.HTMLExtension); err != nil {
		return err
	}
	if err := writePage(path, page.HTML); err != nil {
		return err
	}
	newStatusLine(env.Stdout, s.cfg.Theme(), s.noColor, s.quiet).saved(path)
	return nil
}

// writePage writes html atomically, creating parent directories.
func writePage(path string, html []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %w", ErrCreateOutputDir, err)
		}
	}
	if err := fileutil.WriteFileAtomic(path, html, filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// writeStdout writes the page bytes unchanged.
func writeStdout(w io.Writer, html []byte) error {
	if _, err := w.Write(html); err != nil {
		return fmt.Errorf("%w: stdout: %w", ErrWriteOutput, err)
	}
	return nil
}
