package assets

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*
var templates embed.FS

//go:embed settings/*
var settings embed.FS

// EmbeddedLoader loads assets from embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads an HTML template from embedded assets by name.
// The name should not include the .html extension.
// A single trailing line ending is dropped so the rendered page ends at </html>.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	s := string(content)
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}

// LoadSettings returns the embedded starter settings file.
func (e *EmbeddedLoader) LoadSettings() ([]byte, error) {
	content, err := settings.ReadFile("settings/" + SettingsFileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return content, nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
