package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/stelarn/go-text2blog/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension = errors.New("input must have a .txt, .text or .t2b extension")
	ErrNoInput          = errors.New("no input files found")
)

// stdinArg selects standard input.
const stdinArg = "-"

// inputExtensions are the plain-text extensions picked up from directories.
var inputExtensions = []string{".txt", ".text", ".t2b"}

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles expands inputs into files to convert, in argument order.
// Directories are walked; explicit files must carry an input extension.
// output is a directory, or a single .html file when exactly one file results.
func discoverFiles(inputs []string, output string) ([]FileToConvert, error) {
	var files []FileToConvert
	for _, input := range inputs {
		found, err := discoverInput(input, output)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoInput, strings.Join(inputs, ", "))
	}
	if len(files) > 1 && isHTMLFile(output) {
		return nil, fmt.Errorf("%w: %s is a single file but %d inputs were found", ErrOutputConflict, output, len(files))
	}
	return files, nil
}

func discoverInput(inputPath, output string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	if !info.IsDir() {
		if err := validateInputExtension(inputPath); err != nil {
			return nil, err
		}
		return []FileToConvert{{InputPath: inputPath, OutputPath: resolveOutputPath(inputPath, output, "")}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.HasExtension(path, inputExtensions...) {
			return nil
		}
		files = append(files, FileToConvert{InputPath: path, OutputPath: resolveOutputPath(path, output, inputPath)})
		return nil
	})
	return files, err
}

// resolveOutputPath determines the page path for an input file.
// Files found under baseInputDir keep their relative directory below output.
func resolveOutputPath(inputPath, output, baseInputDir string) string {
	if output == "" {
		return fileutil.OutputPath(inputPath, "")
	}
	if isHTMLFile(output) {
		return output
	}

	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(output, fileutil.OutputPath(relPath, ""))
		}
	}
	return fileutil.OutputPath(inputPath, output)
}

// isHTMLFile reports whether an --output value names a page rather than a directory.
func isHTMLFile(output string) bool {
	return output != "" && fileutil.HasExtension(output, fileutil.HTMLExtension, ".htm")
}

// validateInputExtension checks that the file has a plain-text extension.
func validateInputExtension(path string) error {
	if !fileutil.HasExtension(path, inputExtensions...) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// isStdin reports whether the inputs select standard input.
func isStdin(inputs []string) bool {
	return len(inputs) == 0 || (len(inputs) == 1 && inputs[0] == stdinArg)
}
