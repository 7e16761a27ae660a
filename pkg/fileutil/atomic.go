// Package fileutil provides file system utilities for reading skill documents
// and atomically replacing the generated index.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/thoreinstein/skillindex/internal/errors"
)

// AtomicWriteFile writes data to a file atomically using a temp file + rename pattern.
// An interrupted write leaves any previous file at path intact.
//
// The caller is responsible for ensuring the parent directory exists.
// Permissions are applied to the final file via the perm parameter.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	// Same directory so the rename stays on one filesystem
	tmp, err := os.CreateTemp(dir, ".skillindex-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	tmpName := tmp.Name()
	defer func() {
		// Only present if the rename never happened
		if _, statErr := os.Stat(tmpName); statErr == nil {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}

	return nil
}
