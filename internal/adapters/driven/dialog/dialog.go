// Package dialog provides native file dialogs through zenity.
//
// Picker implements driven.FilePicker for choosing input files and Saver
// implements driven.ArtifactSaver with a save-as dialog.
package dialog

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncruces/zenity"

	"github.com/custodia-labs/suneye-cli/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driven"
	"github.com/custodia-labs/suneye-cli/internal/logger"
)

// Ensure dialog types implement the interfaces.
var (
	_ driven.FilePicker    = (*Picker)(nil)
	_ driven.ArtifactSaver = (*Saver)(nil)
)

// File filters offered by the dialogs.
var (
	SpreadsheetFilter = zenity.FileFilter{
		Name:     "Spreadsheets",
		Patterns: []string{"*.csv", "*.xlsx", "*.xls"},
	}
	ImageFilter = zenity.FileFilter{
		Name:     "Images",
		Patterns: []string{"*.jpg", "*.jpeg", "*.png", "*.gif", "*.webp", "*.bmp", "*.tif", "*.tiff"},
	}
	JSONFilter = zenity.FileFilter{
		Name:     "JSON",
		Patterns: []string{"*.json"},
	}
)

type selectFunc func(options ...zenity.Option) (string, error)

// Picker opens a native open-file dialog.
type Picker struct {
	selectFile selectFunc
}

// NewPicker creates a file picker.
func NewPicker() *Picker {
	return &Picker{selectFile: zenity.SelectFile}
}

// Pick returns the chosen file path.
func (p *Picker) Pick(ctx context.Context, kind driven.PickKind) (string, error) {
	var filter zenity.FileFilter
	var title string
	switch kind {
	case driven.PickSpreadsheet:
		filter, title = SpreadsheetFilter, "Select spreadsheet"
	case driven.PickImage:
		filter, title = ImageFilter, "Select image"
	default:
		return "", fmt.Errorf("%w: unknown pick kind %q", domain.ErrInvalidInput, kind)
	}

	path, err := p.selectFile(
		zenity.Context(ctx),
		zenity.Title(title),
		zenity.FileFilters{filter},
	)
	if err != nil {
		return "", mapDialogError("file picker", domain.ErrPickerUnavailable, err)
	}
	logger.Debug("Picked %s: %s", kind, path)
	return path, nil
}

// Saver asks where to save an artifact, then writes it there.
type Saver struct {
	selectFileSave selectFunc
}

// NewSaver creates a save-as dialog saver.
func NewSaver() *Saver {
	return &Saver{selectFileSave: zenity.SelectFileSave}
}

// Save shows a save dialog preset to the artifact filename and writes the
// artifact to the chosen path.
func (s *Saver) Save(ctx context.Context, artifact domain.Artifact) (string, error) {
	path, err := s.selectFileSave(
		zenity.Context(ctx),
		zenity.Title("Export analysis"),
		zenity.Filename(artifact.Filename),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{JSONFilter},
	)
	if err != nil {
		return "", mapDialogError("save dialog", domain.ErrSaveUnavailable, err)
	}
	return filesystem.WriteArtifact(path, artifact)
}

// mapDialogError converts zenity errors into domain errors. Failures other
// than a dismissal are wrapped in unavailable.
func mapDialogError(what string, unavailable, err error) error {
	if errors.Is(err, zenity.ErrCanceled) {
		return fmt.Errorf("%s: %w", what, domain.ErrCancelled)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", what, domain.ErrCancelled, err)
	}
	logger.Warn("%s failed: %v", what, err)
	return fmt.Errorf("%w: %s: %w", unavailable, what, err)
}
