package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// defaultDebounce is how long watch waits for writes to settle.
const defaultDebounce = 200 * time.Millisecond

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	noColor bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	output     string
	stdout     bool
	escapeHTML bool
}

// watchFlags holds flags for the watch command.
type watchFlags struct {
	common     commonFlags
	output     string
	escapeHTML bool
	debounce   time.Duration
}

// initFlags holds flags for the init command.
type initFlags struct {
	force bool
	user  bool
	quiet bool
}

// configFlags holds flags for the config command.
type configFlags struct {
	common commonFlags
	format string
}

// inspectFlags holds flags for the inspect command.
type inspectFlags struct {
	common commonFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "settings file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")
}

// newFlagSet creates a FlagSet that reports through usage instead of
// printing pflag's own messages.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseError wraps a pflag error as a usage error. -h/--help is passed through.
func parseError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newFlagSet("convert", w, printConvertUsage)

	fs.StringVarP(&f.output, "output", "o", "", "output directory, or .html file for a single input")
	fs.BoolVar(&f.stdout, "stdout", false, "print pages to stdout instead of writing files")
	fs.BoolVar(&f.escapeHTML, "escape-html", false, "escape HTML special characters in inserted text")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseWatchFlags parses watch command flags and returns positional args.
func parseWatchFlags(args []string, w io.Writer) (*watchFlags, []string, error) {
	f := &watchFlags{}
	fs := newFlagSet("watch", w, printWatchUsage)

	fs.StringVarP(&f.output, "output", "o", "", "output directory or .html file")
	fs.BoolVar(&f.escapeHTML, "escape-html", false, "escape HTML special characters in inserted text")
	fs.DurationVar(&f.debounce, "debounce", defaultDebounce, "wait for writes to settle before converting")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	if f.debounce <= 0 {
		return nil, nil, fmt.Errorf("%w: --debounce must be positive, got %s", ErrUsage, f.debounce)
	}
	return f, fs.Args(), nil
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string, w io.Writer) (*initFlags, []string, error) {
	f := &initFlags{}
	fs := newFlagSet("init", w, printInitUsage)

	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing settings file")
	fs.BoolVar(&f.user, "user", false, "write to the user config directory")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags and returns positional args.
func parseConfigFlags(args []string, w io.Writer) (*configFlags, []string, error) {
	f := &configFlags{}
	fs := newFlagSet("config", w, printConfigUsage)

	fs.StringVar(&f.format, "format", "json", "output format: json, yaml")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseInspectFlags parses inspect command flags and returns positional args.
func parseInspectFlags(args []string, w io.Writer) (*inspectFlags, []string, error) {
	f := &inspectFlags{}
	fs := newFlagSet("inspect", w, printInspectUsage)

	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}
