// Package filex provides small filesystem helpers for provisioning
// per-student storage directories.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates the directory at path if it does not already exist.
// An existing directory is not an error.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}

// EnsureSubDir creates a subdirectory of root named dirName and returns
// its full path. The operation is idempotent: a pre-existing directory
// is returned as-is.
func EnsureSubDir(root, dirName string) (string, error) {
	dir := filepath.Join(root, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
