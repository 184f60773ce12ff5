package driven

import (
	"context"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

// ImagePreviewer renders a bounded local preview of an image blob.
type ImagePreviewer interface {
	// Preview decodes the blob and scales it to fit maxWidth x maxHeight pixels.
	Preview(blob domain.Blob, maxWidth, maxHeight int) (*domain.ImagePreview, error)
}

// BlobLoader reads a user-selected file into a blob.
type BlobLoader interface {
	// Load reads the file at path. The blob name is the file's base name.
	Load(path string) (*domain.Blob, error)
}

// PickKind selects the filter used by a FilePicker.
type PickKind string

// Available pick kinds.
const (
	PickSpreadsheet PickKind = "spreadsheet"
	PickImage       PickKind = "image"
)

// FilePicker asks the user to choose a file with a native dialog.
type FilePicker interface {
	// Pick returns the chosen path. Returns an error wrapping
	// domain.ErrCancelled when the dialog was dismissed.
	Pick(ctx context.Context, kind PickKind) (string, error)
}
