package driven

import (
	"context"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

// ArtifactSaver persists an exported artifact outside the application.
type ArtifactSaver interface {
	// Save writes the artifact and returns where it ended up.
	// Returns domain.ErrSaveUnavailable when the mechanism cannot be used and
	// domain.ErrCancelled when the user declined.
	Save(ctx context.Context, artifact domain.Artifact) (string, error)
}
