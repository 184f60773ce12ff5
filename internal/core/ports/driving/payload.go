package driving

import (
	"context"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

// PayloadBuilder validates input fields and packages them for submission.
// It validates within one mode; it never arbitrates between modes.
type PayloadBuilder interface {
	// IsReady reports whether all required fields of mode are present.
	IsReady(mode domain.InputMode, fields domain.InputFields) bool

	// Build returns the envelope for mode. It must only be called when
	// IsReady holds; otherwise it returns an error wrapping
	// domain.ErrNotReady and no envelope.
	Build(mode domain.InputMode, fields domain.InputFields) (domain.Envelope, error)

	// Preview renders a local preview of an image blob. Failure is cosmetic
	// and never affects readiness or Build.
	Preview(blob domain.Blob) (*domain.ImagePreview, error)

	// Load reads a selected file into a blob.
	Load(path string) (*domain.Blob, error)

	// Pick asks the user for a file suited to mode (file or image) with a
	// native dialog and loads it. Returns an error wrapping
	// domain.ErrCancelled when the dialog is dismissed.
	Pick(ctx context.Context, mode domain.InputMode) (*domain.Blob, error)
}
