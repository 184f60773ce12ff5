package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driven"
)

// Ensure ArtifactStore implements the interface.
var _ driven.ArtifactSaver = (*ArtifactStore)(nil)

// ArtifactStore is an in-memory implementation of driven.ArtifactSaver.
type ArtifactStore struct {
	mu        sync.RWMutex
	artifacts map[string]domain.Artifact
	err       error
}

// NewArtifactStore creates a new in-memory artifact store.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{
		artifacts: make(map[string]domain.Artifact),
	}
}

// FailWith makes every subsequent Save return err. Pass nil to reset.
func (s *ArtifactStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Save stores a copy of the artifact under its filename.
func (s *ArtifactStore) Save(ctx context.Context, artifact domain.Artifact) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}

	stored := artifact
	stored.Content = append([]byte(nil), artifact.Content...)
	s.artifacts[artifact.Filename] = stored
	return fmt.Sprintf("memory://%s", artifact.Filename), nil
}

// Get returns a saved artifact by filename.
func (s *ArtifactStore) Get(filename string) (domain.Artifact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.artifacts[filename]
	return a, ok
}

// List returns saved filenames in sorted order.
func (s *ArtifactStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.artifacts))
	for name := range s.artifacts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
