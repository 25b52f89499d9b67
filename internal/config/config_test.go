package config

// Notes:
// - Tests that change the working directory or XDG_CONFIG_HOME use t.Chdir
//   and t.Setenv, so they cannot run in parallel.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	text2blog "github.com/stelarn/go-text2blog"
	"github.com/stelarn/go-text2blog/internal/yamlutil"
)

// ---------------------------------------------------------------------------
// TestDefaultConfig - Built-in settings
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.WindowBG != "#2e2e2e" {
		t.Errorf("WindowBG = %q, want %q", cfg.WindowBG, "#2e2e2e")
	}
	if cfg.ButtonBG != "#4e4e4e" {
		t.Errorf("ButtonBG = %q, want %q", cfg.ButtonBG, "#4e4e4e")
	}
	if cfg.Symbols.MainTitle != "#####" {
		t.Errorf("Symbols.MainTitle = %q, want %q", cfg.Symbols.MainTitle, "#####")
	}
	if cfg.Symbols.SubsubsectionTitle != "##" {
		t.Errorf("Symbols.SubsubsectionTitle = %q, want %q", cfg.Symbols.SubsubsectionTitle, "##")
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty", cfg.Path)
	}
	if cfg.Output.Dir != "" {
		t.Errorf("Output.Dir = %q, want empty", cfg.Output.Dir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestConverterConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Convert.EscapeHTML = true

	got := cfg.ConverterConfig()
	want := text2blog.DefaultConfig()
	want.EscapeHTML = true

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ConverterConfig() mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestValidateFieldLength - Length limits
// ---------------------------------------------------------------------------

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fieldName string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "test", "", 10, false},
		{"value at limit is valid", "test", "1234567890", 10, false},
		{"value over limit returns error", "test.field", "12345678901", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength(tt.fieldName, tt.value, tt.maxLength)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrFieldTooLong) {
				t.Fatalf("error = %v, want ErrFieldTooLong", err)
			}
			if !strings.Contains(err.Error(), tt.fieldName) {
				t.Errorf("error %q should name field %q", err, tt.fieldName)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParse - Decoding, defaults and validation
// ---------------------------------------------------------------------------

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr error
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "empty document yields defaults",
			data: "  \n",
			check: func(t *testing.T, cfg *Config) {
				if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "full json settings",
			data: `{
    "window_bg": "#000000",
    "text_box_bg": "#111111",
    "text_box_fg": "#eeeeee",
    "button_bg": "#222222",
    "button_fg": "#dddddd",
    "status_label_bg": "#333333",
    "status_label_fg": "#cccccc",
    "symbols": {
        "main_title": "TITLE:",
        "section_title": "NAV:",
        "subsection_title": "H2:",
        "subsubsection_title": "H4:"
    }
}`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.WindowBG != "#000000" {
					t.Errorf("WindowBG = %q, want %q", cfg.WindowBG, "#000000")
				}
				if cfg.StatusLabelFG != "#cccccc" {
					t.Errorf("StatusLabelFG = %q, want %q", cfg.StatusLabelFG, "#cccccc")
				}
				if cfg.Symbols.SectionTitle != "NAV:" {
					t.Errorf("Symbols.SectionTitle = %q, want %q", cfg.Symbols.SectionTitle, "NAV:")
				}
			},
		},
		{
			name: "partial yaml keeps defaults for omitted keys",
			data: "button_bg: \"#123456\"\nsymbols:\n  subsubsection_title: \"%%\"\nconvert:\n  escape_html: true\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.ButtonBG != "#123456" {
					t.Errorf("ButtonBG = %q, want %q", cfg.ButtonBG, "#123456")
				}
				if cfg.WindowBG != "#2e2e2e" {
					t.Errorf("WindowBG = %q, want default", cfg.WindowBG)
				}
				if cfg.Symbols.SubsubsectionTitle != "%%" {
					t.Errorf("Symbols.SubsubsectionTitle = %q, want %q", cfg.Symbols.SubsubsectionTitle, "%%")
				}
				if cfg.Symbols.MainTitle != "#####" {
					t.Errorf("Symbols.MainTitle = %q, want default", cfg.Symbols.MainTitle)
				}
				if !cfg.Convert.EscapeHTML {
					t.Error("Convert.EscapeHTML = false, want true")
				}
			},
		},
		{
			name:    "unknown key rejected",
			data:    `{"window_bg": "#000000", "font": "mono"}`,
			wantErr: ErrConfigParse,
		},
		{
			name:    "malformed json rejected",
			data:    `{"window_bg": `,
			wantErr: ErrConfigParse,
		},
		{
			name: "named and long hex colors accepted",
			data: `{"window_bg": "black", "text_box_fg": "white", "button_bg": "light gray", "button_fg": "#ffff00000000"}`,
			check: func(t *testing.T, cfg *Config) {
				want := text2blog.Theme{
					WindowBG:      "black",
					TextBoxBG:     "#2e2e2e",
					TextBoxFG:     "white",
					ButtonBG:      "light gray",
					ButtonFG:      "#ffff00000000",
					StatusLabelBG: "#2e2e2e",
					StatusLabelFG: "#ffffff",
				}
				if diff := cmp.Diff(want, cfg.Theme()); diff != "" {
					t.Errorf("Theme() mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:    "blank color rejected",
			data:    `{"button_fg": "  "}`,
			wantErr: text2blog.ErrInvalidColor,
		},
		{
			name:    "overlong color rejected",
			data:    `{"button_fg": "` + strings.Repeat("a", MaxColorLength+1) + `"}`,
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "shadowed symbol rejected",
			data:    `{"symbols": {"main_title": "#"}}`,
			wantErr: text2blog.ErrShadowedSymbol,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := Parse([]byte(tt.data))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - Resolution and fallback
// ---------------------------------------------------------------------------

func TestLoadConfig_ExplicitPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "blog.yaml")
	if err := os.WriteFile(path, []byte("window_bg: \"#010101\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
	if cfg.WindowBG != "#010101" {
		t.Errorf("WindowBG = %q, want %q", cfg.WindowBG, "#010101")
	}
}

func TestLoadConfig_MissingPathFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.json")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty", cfg.Path)
	}
	if diff := cmp.Diff([]string{path}, cfg.Searched); diff != "" {
		t.Errorf("Searched mismatch (-want +got):\n%s", diff)
	}
	if cfg.WindowBG != DefaultConfig().WindowBG {
		t.Errorf("WindowBG = %q, want default", cfg.WindowBG)
	}
}

func TestLoadConfig_InvalidFileIsAnError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"symbols": {"section_title": ""}, "nope": 1}`), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Fatalf("LoadConfig() error = %v, want ErrConfigParse", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should mention %q", err, path)
	}
}

func TestLoadConfig_SearchesWorkingDirectoryFirst(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	if err := os.WriteFile(DefaultName+".yml", []byte("button_fg: \"#abcdef\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Path != DefaultName+".yml" {
		t.Errorf("Path = %q, want %q", cfg.Path, DefaultName+".yml")
	}
	if cfg.ButtonFG != "#abcdef" {
		t.Errorf("ButtonFG = %q, want %q", cfg.ButtonFG, "#abcdef")
	}
}

func TestLoadConfig_JSONWinsOverYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	if err := os.WriteFile("blog.json", []byte(`{"window_bg": "#0a0a0a"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("blog.yaml", []byte("window_bg: \"#0b0b0b\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig("blog")
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.WindowBG != "#0a0a0a" {
		t.Errorf("WindowBG = %q, want %q", cfg.WindowBG, "#0a0a0a")
	}
}

func TestLoadConfig_UserConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only drives os.UserConfigDir on Linux")
	}
	dir := t.TempDir()
	t.Chdir(dir)
	xdg := filepath.Join(dir, "xdg")
	t.Setenv("XDG_CONFIG_HOME", xdg)

	userPath, err := UserConfigPath()
	if err != nil {
		t.Skipf("no user config dir on this platform: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(userPath), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(userPath, []byte(`{"text_box_fg": "#fafafa"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Path != userPath {
		t.Errorf("Path = %q, want %q", cfg.Path, userPath)
	}
	if cfg.TextBoxFG != "#fafafa" {
		t.Errorf("TextBoxFG = %q, want %q", cfg.TextBoxFG, "#fafafa")
	}
}

func TestLoadConfig_NothingFound(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty", cfg.Path)
	}
	if len(cfg.Searched) == 0 {
		t.Fatal("Searched should list the candidate paths")
	}
	if cfg.Searched[0] != DefaultName+".json" {
		t.Errorf("Searched[0] = %q, want %q", cfg.Searched[0], DefaultName+".json")
	}
}

// ---------------------------------------------------------------------------
// TestMarshal - Rendering for "text2blog config"
// ---------------------------------------------------------------------------

func TestMarshal_RoundTripsThroughParse(t *testing.T) {
	t.Parallel()

	for _, format := range []yamlutil.Format{yamlutil.FormatJSON, yamlutil.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			want := DefaultConfig()
			want.ButtonBG = "#999999"
			want.Output.Dir = "public"

			data, err := Marshal(want, format)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			if strings.Contains(string(data), "Path") || strings.Contains(string(data), "Searched") {
				t.Errorf("Marshal() leaked runtime fields:\n%s", data)
			}

			got, err := Parse(data)
			if err != nil {
				t.Fatalf("Parse() error: %v\n%s", err, data)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
