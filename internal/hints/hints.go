// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigParse returns hints for settings files that fail to decode.
func ForConfigParse() string {
	return format("settings are JSON or YAML; run 'text2blog config' to print the valid keys")
}

// ForConfigNotFound returns hints when an explicit settings path does not exist.
// Suggests creating one in the user config directory when it was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "run 'text2blog init' to create " + filepath.Base(firstOr(searchedPaths, "text2blog_settings.json"))

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/text2blog/") {
			hint += " or 'text2blog init --user' to create " + p
			break
		}
	}

	return format(hint)
}

// ForShadowedSymbols explains the prefix ordering rule.
func ForShadowedSymbols() string {
	return format("symbols are tested as main_title, section_title, subsection_title, subsubsection_title; " +
		"an earlier symbol must not be a prefix of a later one")
}

// ForInvalidColor lists the accepted color forms.
func ForInvalidColor() string {
	return format("use a hex color such as #2e2e2e or a color name such as black; only hex colors tint the status line")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInputExtension lists the input extensions accepted in directories.
func ForInputExtension(supported []string) string {
	if len(supported) == 0 {
		return ""
	}
	return formatHints([]string{
		"supported: " + strings.Join(supported, ", "),
		"use - to read from stdin",
	})
}

// ForExistingFile suggests --force when init would overwrite a file.
func ForExistingFile() string {
	return format("use --force to overwrite")
}

func firstOr(s []string, fallback string) string {
	if len(s) == 0 {
		return fallback
	}
	return s[0]
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
