// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// HTMLExtension is the extension of generated pages.
const HTMLExtension = ".html"

// ValidateExtension checks that the extension is safe to append to a file name.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "text2blog_settings" -> false (name)
//   - "./blog.json" -> true (relative path)
//   - "/etc/text2blog/blog.yaml" -> true (absolute)
//   - "C:\blog\settings.json" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// HasExtension reports whether path ends with one of exts, ignoring case.
func HasExtension(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// EnsureExtension returns path with its extension replaced by ext.
// A path that already ends in ext (any case) is returned unchanged.
func EnsureExtension(path, ext string) (string, error) {
	if err := ValidateExtension(ext); err != nil {
		return "", err
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if HasExtension(path, ext) {
		return path, nil
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext, nil
}

// OutputPath derives the page path for an input file: the input's base name
// with an .html extension, inside outDir, or next to the input when outDir is empty.
func OutputPath(input, outDir string) string {
	out, _ := EnsureExtension(input, HTMLExtension) // HTMLExtension is valid
	if outDir == "" {
		return out
	}
	return filepath.Join(outDir, filepath.Base(out))
}
