package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FileStore writes each key to its own "<key>.txt" file inside dir.
type FileStore struct {
	fs     afero.Fs
	dir    string
	closed bool
}

var _ ValueStore = (*FileStore)(nil)

func NewFileStore(fs afero.Fs, dir string) (*FileStore, error) {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("can not create data directory %s: %w", dir, err)
	}

	return &FileStore{fs: fs, dir: dir}, nil
}

func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, key+".txt")
}

func (s *FileStore) Read(key string) (string, error) {
	if s.closed {
		return "", ErrStoreClosed
	}

	data, err := afero.ReadFile(s.fs, s.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("file for '%s': %w", key, ErrRecordNotFound)
		}
		return "", fmt.Errorf("failed to read '%s': %w", s.Path(key), err)
	}

	return strings.TrimSpace(string(data)), nil
}

// Write replaces the file through a temporary sibling and a rename, so a
// crash never leaves a half-written value behind.
func (s *FileStore) Write(key, value string) error {
	if s.closed {
		return ErrStoreClosed
	}

	target := s.Path(key)
	tmp := target + ".tmp"

	if err := afero.WriteFile(s.fs, tmp, []byte(value), 0600); err != nil {
		return fmt.Errorf("failed to write '%s': %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, target); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("failed to replace '%s': %w", target, err)
	}

	return nil
}

func (s *FileStore) Close() error {
	s.closed = true
	return nil
}
