// Package blob loads user-selected files from the local filesystem.
package blob

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.BlobLoader = (*Loader)(nil)

// DefaultMaxBytes caps the size of a loaded file.
const DefaultMaxBytes = 64 << 20

// Loader reads files into blobs.
type Loader struct {
	maxBytes int64
}

// NewLoader creates a loader. A non-positive maxBytes uses DefaultMaxBytes.
func NewLoader(maxBytes int64) *Loader {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Loader{maxBytes: maxBytes}
}

// Load reads the file at path. The blob is named after the file's base name.
// A leading ~/ is expanded to the home directory.
func (l *Loader) Load(path string) (*domain.Blob, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}
	if info.Size() > l.maxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", domain.ErrInvalidInput, path, info.Size(), l.maxBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	return &domain.Blob{
		Name: filepath.Base(path),
		Data: data,
		Path: abs,
	}, nil
}

func expandHome(path string) (string, error) {
	if len(path) < 2 || path[:2] != "~/" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
