package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	text2blog "github.com/stelarn/go-text2blog"
	"github.com/stelarn/go-text2blog/internal/fileutil"
	"github.com/stelarn/go-text2blog/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrConfigRead     = errors.New("failed to read config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
)

// DefaultName is the settings file name searched when no name is given.
const DefaultName = "text2blog_settings"

// appDirName is the directory under the user config dir holding settings.
const appDirName = "text2blog"

// Field length limits.
const (
	MaxColorLength  = 32   // hex form or color name, e.g. "light goldenrod yellow"
	MaxSymbolLength = 32   // line prefix
	MaxDirLength    = 4096 // PATH_MAX on Linux
)

// Config mirrors the settings resource. Color keys sit at the top level;
// symbols are nested.
type Config struct {
	WindowBG      string        `yaml:"window_bg"`
	TextBoxBG     string        `yaml:"text_box_bg"`
	TextBoxFG     string        `yaml:"text_box_fg"`
	ButtonBG      string        `yaml:"button_bg"`
	ButtonFG      string        `yaml:"button_fg"`
	StatusLabelBG string        `yaml:"status_label_bg"`
	StatusLabelFG string        `yaml:"status_label_fg"`
	Symbols       SymbolsConfig `yaml:"symbols"`
	Output        OutputConfig  `yaml:"output,omitempty"`
	Convert       ConvertConfig `yaml:"convert,omitempty"`

	// Path is the file the config was loaded from; empty means built-in defaults.
	Path string `yaml:"-"`
	// Searched lists the candidate paths tried when no file was found.
	Searched []string `yaml:"-"`
}

// SymbolsConfig holds the four line prefixes.
type SymbolsConfig struct {
	MainTitle          string `yaml:"main_title"`
	SectionTitle       string `yaml:"section_title"`
	SubsectionTitle    string `yaml:"subsection_title"`
	SubsubsectionTitle string `yaml:"subsubsection_title"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Default output directory (empty = next to the input)
}

// ConvertConfig defines converter options.
type ConvertConfig struct {
	EscapeHTML bool `yaml:"escape_html"`
}

// DefaultConfig returns the built-in settings used when no file exists.
func DefaultConfig() *Config {
	theme := text2blog.DefaultTheme()
	sym := text2blog.DefaultSymbols()
	return &Config{
		WindowBG:      theme.WindowBG,
		TextBoxBG:     theme.TextBoxBG,
		TextBoxFG:     theme.TextBoxFG,
		ButtonBG:      theme.ButtonBG,
		ButtonFG:      theme.ButtonFG,
		StatusLabelBG: theme.StatusLabelBG,
		StatusLabelFG: theme.StatusLabelFG,
		Symbols: SymbolsConfig{
			MainTitle:          sym.MainTitle,
			SectionTitle:       sym.SectionTitle,
			SubsectionTitle:    sym.SubsectionTitle,
			SubsubsectionTitle: sym.SubsubsectionTitle,
		},
	}
}

// Theme returns the color settings.
func (c *Config) Theme() text2blog.Theme {
	return text2blog.Theme{
		WindowBG:      c.WindowBG,
		TextBoxBG:     c.TextBoxBG,
		TextBoxFG:     c.TextBoxFG,
		ButtonBG:      c.ButtonBG,
		ButtonFG:      c.ButtonFG,
		StatusLabelBG: c.StatusLabelBG,
		StatusLabelFG: c.StatusLabelFG,
	}
}

// ConverterConfig returns the immutable configuration passed to the converter.
func (c *Config) ConverterConfig() text2blog.Config {
	return text2blog.Config{
		Theme:      c.Theme(),
		Symbols:    text2blog.Symbols(c.Symbols),
		EscapeHTML: c.Convert.EscapeHTML,
	}
}

// Validate checks field lengths, colors and symbol invariants.
// Called automatically by LoadConfig and Parse, but available for callers
// who build or modify a Config afterwards (e.g. after applying flags).
func (c *Config) Validate() error {
	colors := []struct {
		name  string
		value string
	}{
		{"window_bg", c.WindowBG},
		{"text_box_bg", c.TextBoxBG},
		{"text_box_fg", c.TextBoxFG},
		{"button_bg", c.ButtonBG},
		{"button_fg", c.ButtonFG},
		{"status_label_bg", c.StatusLabelBG},
		{"status_label_fg", c.StatusLabelFG},
	}
	for _, col := range colors {
		if err := validateFieldLength(col.name, col.value, MaxColorLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("symbols.main_title", c.Symbols.MainTitle, MaxSymbolLength); err != nil {
		return err
	}
	if err := validateFieldLength("symbols.section_title", c.Symbols.SectionTitle, MaxSymbolLength); err != nil {
		return err
	}
	if err := validateFieldLength("symbols.subsection_title", c.Symbols.SubsectionTitle, MaxSymbolLength); err != nil {
		return err
	}
	if err := validateFieldLength("symbols.subsubsection_title", c.Symbols.SubsubsectionTitle, MaxSymbolLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxDirLength); err != nil {
		return err
	}

	return c.ConverterConfig().Validate()
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// applyDefaults fills every empty color and symbol from the built-in defaults,
// so a settings file only needs the keys it changes.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.WindowBG, def.WindowBG)
	fill(&c.TextBoxBG, def.TextBoxBG)
	fill(&c.TextBoxFG, def.TextBoxFG)
	fill(&c.ButtonBG, def.ButtonBG)
	fill(&c.ButtonFG, def.ButtonFG)
	fill(&c.StatusLabelBG, def.StatusLabelBG)
	fill(&c.StatusLabelFG, def.StatusLabelFG)
	fill(&c.Symbols.MainTitle, def.Symbols.MainTitle)
	fill(&c.Symbols.SectionTitle, def.Symbols.SectionTitle)
	fill(&c.Symbols.SubsectionTitle, def.Symbols.SubsectionTitle)
	fill(&c.Symbols.SubsubsectionTitle, def.Symbols.SubsubsectionTitle)
}

// Parse decodes a JSON or YAML settings document, fills omitted keys from
// the defaults and validates the result. Unknown keys are rejected.
// An empty or whitespace-only document yields the defaults.
func Parse(data []byte) (*Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return DefaultConfig(), nil
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig loads settings from a file path or settings name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's a name searched in standard locations; empty means DefaultName.
//
// A missing settings file is not an error: the built-in defaults are
// returned with Path empty and Searched listing the paths tried. A file
// that exists but cannot be read, parsed or validated is an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultName
	}

	var configPath string
	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		var tried []string
		var err error
		configPath, tried, err = resolveConfigPath(nameOrPath)
		if errors.Is(err, ErrConfigNotFound) {
			cfg := DefaultConfig()
			cfg.Searched = tried
			return cfg, nil
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			cfg.Searched = []string{configPath}
			return cfg, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigRead, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	cfg.Path = configPath
	return cfg, nil
}

// Marshal renders cfg in the given format, e.g. for "text2blog config".
func Marshal(cfg *Config, format yamlutil.Format) ([]byte, error) {
	return yamlutil.Marshal(cfg, format)
}

// configExtensions are tried in order, .json first.
var configExtensions = []string{".json", ".yaml", ".yml"}

// resolveConfigPath searches for a settings file by name.
// Tries locations in order: current directory, <UserConfigDir>/text2blog/.
// Returns the tried paths along with ErrConfigNotFound.
func resolveConfigPath(name string) (string, []string, error) {
	triedPaths := make([]string, 0, len(configExtensions)*2) // 2 locations

	for _, ext := range configExtensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range configExtensions {
			userPath := filepath.Join(userConfigDir, appDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", triedPaths, fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// UserConfigPath returns <UserConfigDir>/text2blog/<DefaultName>.json,
// where "text2blog init --user" writes the starter settings.
func UserConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, DefaultName+".json"), nil
}
