// Package yamlutil wraps settings decoding and encoding to isolate the
// external dependency. JSON is a subset of YAML, so one decoder reads both
// settings formats.
package yamlutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits settings input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrUnknownFormat  = errors.New("yamlutil: unknown format")
)

// Format selects the encoding used by Marshal.
type Format string

// Supported settings formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q (must be json or yaml)", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from a file extension, defaulting to JSON
// when the extension is not .yaml or .yml.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict decodes JSON or YAML and rejects unknown fields.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Marshal encodes v in the given format.
func Marshal(v any, format Format) ([]byte, error) {
	var opts []yaml.EncodeOption
	switch format {
	case FormatYAML:
		opts = append(opts, yaml.Indent(2))
	case FormatJSON:
		opts = append(opts, yaml.JSON())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	result, err := yaml.MarshalWithOptions(v, opts...)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}
