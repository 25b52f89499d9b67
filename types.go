package text2blog

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Default line-prefix symbols, from most to least specific.
const (
	DefaultMainTitleSymbol          = "#####"
	DefaultSectionTitleSymbol       = "####"
	DefaultSubsectionTitleSymbol    = "###"
	DefaultSubsubsectionTitleSymbol = "##"
)

// Symbols is the ordered set of line prefixes. Lines are matched against
// MainTitle, SectionTitle, SubsectionTitle, SubsubsectionTitle in that order.
type Symbols struct {
	MainTitle          string // document title, shown in <title> and the sidebar
	SectionTitle       string // sidebar link only
	SubsectionTitle    string // opens a new anchored block
	SubsubsectionTitle string // sub-heading inside the current block
}

// DefaultSymbols returns the built-in "#####", "####", "###", "##" set.
func DefaultSymbols() Symbols {
	return Symbols{
		MainTitle:          DefaultMainTitleSymbol,
		SectionTitle:       DefaultSectionTitleSymbol,
		SubsectionTitle:    DefaultSubsectionTitleSymbol,
		SubsubsectionTitle: DefaultSubsubsectionTitleSymbol,
	}
}

// namedSymbol pairs a symbol with its settings key for error messages.
type namedSymbol struct {
	name  string
	value string
}

// ordered returns the symbols in matching priority order.
func (s Symbols) ordered() []namedSymbol {
	return []namedSymbol{
		{"main_title", s.MainTitle},
		{"section_title", s.SectionTitle},
		{"subsection_title", s.SubsectionTitle},
		{"subsubsection_title", s.SubsubsectionTitle},
	}
}

// Validate checks that every symbol is non-empty, single-line, and not
// shadowed: a symbol tested earlier must not be a prefix of one tested later,
// or the later one could never match.
func (s Symbols) Validate() error {
	ordered := s.ordered()

	for _, sym := range ordered {
		if sym.value == "" {
			return fmt.Errorf("%w: %s", ErrEmptySymbol, sym.name)
		}
		if strings.ContainsAny(sym.value, "\r\n") {
			return fmt.Errorf("%w: %s contains a line break", ErrInvalidSymbol, sym.name)
		}
	}

	for i, earlier := range ordered {
		for _, later := range ordered[i+1:] {
			if strings.HasPrefix(later.value, earlier.value) {
				return fmt.Errorf("%w: %s %q starts with %s %q", ErrShadowedSymbol,
					later.name, later.value, earlier.name, earlier.value)
			}
		}
	}

	return nil
}

// Theme holds the colors of the desktop form. The converter does
// not use them; drivers may (the CLI colors its status line).
type Theme struct {
	WindowBG      string
	TextBoxBG     string
	TextBoxFG     string
	ButtonBG      string
	ButtonFG      string
	StatusLabelBG string
	StatusLabelFG string
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() Theme {
	return Theme{
		WindowBG:      "#2e2e2e",
		TextBoxBG:     "#2e2e2e",
		TextBoxFG:     "#ffffff",
		ButtonBG:      "#4e4e4e",
		ButtonFG:      "#ffffff",
		StatusLabelBG: "#2e2e2e",
		StatusLabelFG: "#ffffff",
	}
}

// hexColorPattern matches #rgb and #rrggbb.
var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether color is a #rgb or #rrggbb hex color. Other
// accepted forms (color names, #rrrgggbbb) are valid settings but cannot be
// rendered by terminal styling.
func IsHexColor(color string) bool {
	return hexColorPattern.MatchString(color)
}

// Validate checks that every theme color is set and holds no control
// characters. Any color name or hex form the desktop toolkit understands is
// accepted, e.g. "black", "light gray" or "#ffff00000000".
func (t Theme) Validate() error {
	colors := []namedSymbol{
		{"window_bg", t.WindowBG},
		{"text_box_bg", t.TextBoxBG},
		{"text_box_fg", t.TextBoxFG},
		{"button_bg", t.ButtonBG},
		{"button_fg", t.ButtonFG},
		{"status_label_bg", t.StatusLabelBG},
		{"status_label_fg", t.StatusLabelFG},
	}
	for _, c := range colors {
		if strings.TrimSpace(c.value) == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidColor, c.name)
		}
		if strings.ContainsFunc(c.value, unicode.IsControl) {
			return fmt.Errorf("%w: %s = %q contains a control character", ErrInvalidColor, c.name, c.value)
		}
	}
	return nil
}

// Config is the immutable conversion configuration. Build it once at startup
// and pass it by value.
type Config struct {
	Theme      Theme
	Symbols    Symbols
	EscapeHTML bool // HTML-escape inserted text; false reproduces the raw output
}

// DefaultConfig returns the built-in theme and symbols with escaping off.
func DefaultConfig() Config {
	return Config{
		Theme:   DefaultTheme(),
		Symbols: DefaultSymbols(),
	}
}

// Validate checks the theme and symbols.
func (c Config) Validate() error {
	if err := c.Symbols.Validate(); err != nil {
		return err
	}
	return c.Theme.Validate()
}
