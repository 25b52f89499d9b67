//go:build !windows

package fileutil

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// WriteFileAtomic writes data to path so readers see either the old content
// or the new content, never a partial page. The data is synced before rename.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(perm))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	// No-op once the file has been committed.
	defer func() { _ = pending.Cleanup() }()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write pending file: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}
