// Package store persists plan documents. The Storage interface is the
// abstract read/write-file capability the rest of the system depends
// on; PlanStore maps plan identifiers onto it and serializes competing
// parse-mutate-serialize cycles with a file lock.
package store

import (
	"fmt"
	"os"
)

// Storage is the abstract storage capability consumed by the plan
// tooling. The subsystem only ever reads one document and writes one
// document per operation.
type Storage interface {
	// Exists reports whether a file exists at the given path.
	Exists(path string) bool

	// ReadText reads the entire file as text.
	ReadText(path string) (string, error)

	// WriteText replaces the file's content with the given text.
	WriteText(path, content string) error

	// CreateDirectory creates the directory and any missing parents.
	CreateDirectory(path string) error
}

// OSStorage implements Storage on the local filesystem.
type OSStorage struct{}

// NewOSStorage creates a filesystem-backed Storage.
func NewOSStorage() *OSStorage {
	return &OSStorage{}
}

// Exists reports whether a file exists at the given path.
func (*OSStorage) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadText reads the entire file as text.
func (*OSStorage) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteText replaces the file's content atomically: the text is
// written to a temporary file first, then renamed into place, so a
// concurrent reader never observes a partial document.
func (*OSStorage) WriteText(path, content string) error {
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// CreateDirectory creates the directory and any missing parents.
func (*OSStorage) CreateDirectory(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}
