package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/stelarn/go-text2blog/internal/log"
)

// ErrWatch is returned when the file watcher cannot be started.
var ErrWatch = errors.New("failed to watch input")

// runWatch converts input once, then again after every change until ctx
// is canceled. Conversion failures after the first are logged, not fatal.
func runWatch(ctx context.Context, args []string, flags *watchFlags, env *Environment) error {
	if len(args) != 1 || args[0] == stdinArg {
		return fmt.Errorf("%w: watch needs exactly one input file", ErrUsage)
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
	if output == "" {
		output = s.cfg.Output.Dir
	}
	files, err := discoverFiles(args, output)
	if err != nil {
		return err
	}
	if len(files) != 1 {
		return fmt.Errorf("%w: watch needs a single file, %s holds %d", ErrUsage, args[0], len(files))
	}
	file := files[0]

	target, err := filepath.Abs(file.InputPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWatch, err)
	}

	logger := log.WithComponent(s.logger, "watch")
	status := newStatusLine(env.Stdout, s.cfg.Theme(), s.noColor, s.quiet)
	rebuild := func() error {
		res := convertFile(conv, file, false, env)
		if res.Err != nil {
			return res.Err
		}
		logger.Debug().
			Str(log.FieldOutput, res.OutputPath).
			Int(log.FieldBlocks, res.Page.Blocks).
			Dur(log.FieldDuration, res.Duration).
			Msg("page converted")
		status.saved(res.OutputPath)
		return nil
	}

	if err := rebuild(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWatch, err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: editors often replace the file instead of writing it.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("%w: %w", ErrWatch, err)
	}
	logger.Info().Str(log.FieldInput, file.InputPath).Msg("watching for changes, press Ctrl+C to stop")

	return watchLoop(ctx, watcher.Events, watcher.Errors, target, flags.debounce, rebuild, logger)
}

// watchLoop re-runs rebuild once per burst of changes to target. A burst
// ends when no matching event arrives for debounce. Everything runs on the
// calling goroutine. It returns nil when ctx is canceled or the watcher closes.
func watchLoop(
	ctx context.Context,
	events <-chan fsnotify.Event,
	errs <-chan error,
	target string,
	debounce time.Duration,
	rebuild func() error,
	logger zerolog.Logger,
) error {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug().Str(log.FieldEvent, event.Op.String()).Msg("change detected")
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := rebuild(); err != nil {
				logger.Error().Err(err).Msg("conversion failed")
			}

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watcher error")
		}
	}
}
