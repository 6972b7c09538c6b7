package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/riordanpawley/taskboard/internal/domain"
)

// FileBackend stores the boards document as a JSON file
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend writing to path
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Name identifies the backend in logs and errors
func (b *FileBackend) Name() string {
	return "file"
}

// Path returns the document location
func (b *FileBackend) Path() string {
	return b.path
}

// Load reads the document. A missing file is not an error.
func (b *FileBackend) Load(ctx context.Context) (*domain.BoardsData, error) {
	raw, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "load", Backend: b.Name(), Err: err}
	}

	data, err := Decode(raw)
	if err != nil {
		return nil, &domain.StorageError{Op: "load", Backend: b.Name(), Err: err}
	}
	return data, nil
}

// Save writes the document through a temp file and rename so a crash never
// leaves a truncated document behind
func (b *FileBackend) Save(ctx context.Context, data domain.BoardsData) error {
	raw, err := Encode(data)
	if err != nil {
		return &domain.StorageError{Op: "save", Backend: b.Name(), Err: err}
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &domain.StorageError{Op: "save", Backend: b.Name(), Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".boards-*.json")
	if err != nil {
		return &domain.StorageError{Op: "save", Backend: b.Name(), Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return &domain.StorageError{Op: "save", Backend: b.Name(), Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &domain.StorageError{Op: "save", Backend: b.Name(), Err: err}
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return &domain.StorageError{Op: "save", Backend: b.Name(), Err: err}
	}
	return nil
}

// Close is a no-op for files
func (b *FileBackend) Close() error {
	return nil
}
