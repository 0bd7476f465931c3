// Package filestore persists uploaded images under a configurable root
// directory. The database only ever stores the relative path returned
// by Save, or an absolute external URL that never touches this package.
package filestore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var baseDir = "./public/uploads"

// Init sets the storage root and makes sure it exists
func Init(dir string) error {
	if dir == "" {
		return errors.New("upload directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	baseDir = dir
	return nil
}

// BaseDir returns the current storage root
func BaseDir() string {
	return baseDir
}

// IsExternalURL reports whether a stored image value points outside the
// local file store
func IsExternalURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}

// Save writes an uploaded file into the given namespace (e.g. "teams")
// under a random name and returns the relative path to store in the
// database, e.g. "teams/9f1c...c2.png".
func Save(file *multipart.FileHeader, namespace string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.New().String() + ext
	relPath := filepath.Join(namespace, name)

	if err := os.MkdirAll(filepath.Join(baseDir, namespace), 0755); err != nil {
		return "", fmt.Errorf("failed to create namespace directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(baseDir, relPath))
	if err != nil {
		return "", fmt.Errorf("failed to create stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write stored file: %w", err)
	}

	return filepath.ToSlash(relPath), nil
}

// Delete removes a stored file. Deletion is idempotent: a missing file
// is not an error. External URLs are never deleted.
func Delete(relPath string) error {
	if relPath == "" || IsExternalURL(relPath) {
		return nil
	}
	err := os.Remove(filepath.Join(baseDir, filepath.FromSlash(relPath)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete stored file %s: %w", relPath, err)
	}
	return nil
}
