package assets

// AssetLoader defines the contract for loading page templates and the
// starter settings file.
type AssetLoader interface {
	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)

	// LoadSettings returns the raw starter settings file.
	LoadSettings() ([]byte, error)
}
