package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	flag "github.com/spf13/pflag"

	"github.com/stelarn/go-text2blog/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// commands lists the first arguments dispatched as subcommands.
var commands = map[string]bool{
	"convert": true,
	"watch":   true,
	"inspect": true,
	"init":    true,
	"config":  true,
	"version": true,
	"help":    true,
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	return commands[arg]
}

// looksLikeInput reports whether arg can be handed to convert directly,
// so "text2blog post.txt" works as "text2blog convert post.txt".
func looksLikeInput(arg string) bool {
	return arg == stdinArg || fileutil.HasExtension(arg, inputExtensions...)
}

// runMain dispatches args and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) && looksLikeInput(cmd) {
		cmd, rest = "convert", args[1:]
	}

	err := dispatch(ctx, cmd, rest, env)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func dispatch(ctx context.Context, cmd string, args []string, env *Environment) error {
	switch cmd {
	case "convert":
		flags, rest, err := parseConvertFlags(args, env.Stderr)
		if err != nil {
			return err
		}
		return runConvert(ctx, rest, flags, env)
	case "watch":
		flags, rest, err := parseWatchFlags(args, env.Stderr)
		if err != nil {
			return err
		}
		return runWatch(ctx, rest, flags, env)
	case "inspect":
		flags, rest, err := parseInspectFlags(args, env.Stderr)
		if err != nil {
			return err
		}
		return runInspect(rest, flags, env)
	case "init":
		flags, rest, err := parseInitFlags(args, env.Stderr)
		if err != nil {
			return err
		}
		return runInit(rest, flags, env)
	case "config":
		flags, rest, err := parseConfigFlags(args, env.Stderr)
		if err != nil {
			return err
		}
		return runConfig(rest, flags, env)
	case "version":
		fmt.Fprintf(env.Stdout, "text2blog %s (%s)\n", Version, runtime.Version())
		return nil
	case "help":
		return runHelp(args, env)
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}
