package fs

import (
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to path atomically using a temp file + rename.
// The temp file is created in the same directory as path to ensure atomic rename on POSIX.
// If the operation fails, the original file (if any) is left unchanged.
// The caller must ensure the parent directory exists.
func WriteFileAtomic(fsys FS, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	pattern := ".devrando-tmp-*"

	tmpPath, w, err := fsys.CreateTemp(dir, pattern)
	if err != nil {
		return err
	}

	success := false
	defer func() {
		if !success {
			fsys.Remove(tmpPath)
		}
	}()

	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}

	// Close before rename; some platforms refuse to rename open files.
	if err := w.Close(); err != nil {
		return err
	}

	if err := fsys.Chmod(tmpPath, perm); err != nil {
		return err
	}

	if err := fsys.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}
