package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: text2blog <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert text files to HTML blog pages")
	fmt.Fprintln(w, "  watch      Convert a file again whenever it changes")
	fmt.Fprintln(w, "  inspect    Show how each line is classified")
	fmt.Fprintln(w, "  init       Write a starter settings file")
	fmt.Fprintln(w, "  config     Print the effective settings")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'text2blog help <command>' for details on a specific command.")
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Settings and output control:")
	fmt.Fprintln(w, "  -c, --config <name>       Settings file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w, "      --no-color            Disable colored output")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: text2blog convert [input...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert text files to HTML blog pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    .txt, .text or .t2b file, or a directory to walk")
	fmt.Fprintln(w, "           (none or - reads stdin and prints the page)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output directory, or .html file for one input")
	fmt.Fprintln(w, "      --stdout              Print pages instead of writing files")
	fmt.Fprintln(w, "      --escape-html         Escape HTML special characters in text")
	fmt.Fprintln(w)
	printCommonFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markup (default symbols):")
	fmt.Fprintln(w, "  ##### Title               Page title, shown in the sidebar")
	fmt.Fprintln(w, "  #### Section              Sidebar link to the next subsection")
	fmt.Fprintln(w, "  ### Subsection            New post block with a heading")
	fmt.Fprintln(w, "  ## Detail                 Minor heading inside the block")
	fmt.Fprintln(w, "  anything else             Paragraph; blank lines are skipped")
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: text2blog watch <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a file, then convert it again after every change.")
	fmt.Fprintln(w, "Stop with Ctrl+C.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output directory or .html file")
	fmt.Fprintln(w, "      --escape-html         Escape HTML special characters in text")
	fmt.Fprintln(w, "      --debounce <d>        Wait for writes to settle (default 200ms)")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printInspectUsage prints usage for the inspect command.
func printInspectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: text2blog inspect [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show the kind of every line and the anchors sections link to.")
	fmt.Fprintln(w, "Reads stdin when no input is given.")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: text2blog init [path] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write the starter settings file (default: ./text2blog_settings.json).")
	fmt.Fprintln(w, "A .yaml or .yml path is written as YAML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --force               Overwrite an existing file")
	fmt.Fprintln(w, "      --user                Write to the user config directory")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: text2blog config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective settings and where they were loaded from.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --format <f>          Output format: json, yaml (default json)")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "watch":
		printWatchUsage(env.Stdout)
	case "inspect":
		printInspectUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: text2blog version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: text2blog help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
