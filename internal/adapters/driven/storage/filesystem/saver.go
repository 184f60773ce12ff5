// Package filesystem saves exported artifacts as files on local disk.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driven"
)

// Ensure ArtifactSaver implements the interface.
var _ driven.ArtifactSaver = (*ArtifactSaver)(nil)

// ArtifactSaver writes artifacts into a directory.
type ArtifactSaver struct {
	dir string
}

// NewArtifactSaver creates a saver for dir. An empty dir means the
// current working directory.
func NewArtifactSaver(dir string) *ArtifactSaver {
	if dir == "" {
		dir = "."
	}
	return &ArtifactSaver{dir: dir}
}

// Dir returns the target directory.
func (s *ArtifactSaver) Dir() string {
	return s.dir
}

// Save writes the artifact as dir/<filename> and returns its path.
func (s *ArtifactSaver) Save(ctx context.Context, artifact domain.Artifact) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("%w: create export directory: %w", domain.ErrSaveUnavailable, err)
	}
	return WriteArtifact(filepath.Join(s.dir, artifact.Filename), artifact)
}

// WriteArtifact writes the artifact content to path and returns the
// absolute path written.
func WriteArtifact(path string, artifact domain.Artifact) (string, error) {
	if artifact.Filename == "" {
		return "", fmt.Errorf("%w: artifact has no filename", domain.ErrInvalidInput)
	}
	if err := os.WriteFile(path, artifact.Content, 0644); err != nil {
		return "", fmt.Errorf("%w: write %s: %w", domain.ErrSaveUnavailable, path, err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path, nil
}
