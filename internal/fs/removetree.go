package fs

import (
	"os"
	"path/filepath"
)

// RemoveTree recursively deletes path and everything under it.
//
// When the FS provides the BulkRemover capability (RealFS does), the whole
// tree is removed in one call. Otherwise it falls back to a manual walk:
// stat each entry, recurse into directories, unlink files, then remove the
// emptied directory. A missing path is not an error.
func RemoveTree(fsys FS, path string) error {
	if br, ok := fsys.(BulkRemover); ok {
		return br.RemoveAll(path)
	}
	return removeTreeWalk(fsys, path)
}

func removeTreeWalk(fsys FS, path string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if !info.IsDir() {
		return fsys.Remove(path)
	}

	entries, err := fsys.ReadDir(path)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			if err := removeTreeWalk(fsys, child); err != nil {
				return err
			}
			continue
		}
		if err := fsys.Remove(child); err != nil {
			return err
		}
	}

	return fsys.Remove(path)
}
