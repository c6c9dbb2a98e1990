// Package fileutils holds small filesystem helpers shared by the packages
// that persist user state.
package fileutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// AtomicWrite writes a file atomically: gen writes into a hidden temp file in
// the same directory, which is fsynced and then renamed over path. A failure
// at any point leaves the previous file untouched and removes the temp file.
func AtomicWrite(path string, gen func(w io.Writer) error) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		// CreateTemp("") would use the system temp dir, and the final rename
		// could then cross filesystems.
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		tmp.Close()
		os.Remove(tmpName)
	}()

	if err := gen(tmp); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	// The rename must not be observable before the content is durable.
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	// Directory sync is best effort; the rename itself already succeeded.
	if df, err := os.Open(dir); err == nil {
		df.Sync()
		df.Close()
	}

	return nil
}
