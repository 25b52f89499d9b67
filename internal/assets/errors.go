package assets

import "errors"

// Sentinel errors for asset operations.
var (
	ErrTemplateNotFound = errors.New("page template not found")
	ErrInvalidAssetName = errors.New("invalid asset name") // separators, dots or control characters
	ErrAssetRead        = errors.New("failed to read embedded asset")
)
