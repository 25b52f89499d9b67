package assets

import (
	"fmt"
	"strings"
)

// maxAssetNameLength bounds asset names; embedded names are short identifiers.
const maxAssetNameLength = 64

// ValidateAssetName checks that an asset name is safe to join into an
// embedded path. Returns ErrInvalidAssetName if the name is empty, too long,
// or contains path separators, dots, or control characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxAssetNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrInvalidAssetName, len(name), maxAssetNameLength)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("%w: %q contains control character", ErrInvalidAssetName, name)
		}
	}
	return nil
}
