package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driven"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driving"
	"github.com/custodia-labs/suneye-cli/internal/logger"
)

// Ensure PayloadService implements the interface.
var _ driving.PayloadBuilder = (*PayloadService)(nil)

// PayloadService validates per-mode input and builds envelopes.
type PayloadService struct {
	previewer driven.ImagePreviewer
	loader    driven.BlobLoader
	picker    driven.FilePicker
	preview   domain.PreviewSettings
}

// NewPayloadService creates a new payload service.
// The previewer, loader and picker are optional (can be nil).
func NewPayloadService(
	previewer driven.ImagePreviewer,
	loader driven.BlobLoader,
	picker driven.FilePicker,
	preview domain.PreviewSettings,
) *PayloadService {
	if preview.MaxWidth <= 0 {
		preview.MaxWidth = domain.DefaultPreviewMaxWidth
	}
	if preview.MaxHeight <= 0 {
		preview.MaxHeight = domain.DefaultPreviewMaxHeight
	}
	return &PayloadService{
		previewer: previewer,
		loader:    loader,
		picker:    picker,
		preview:   preview,
	}
}

// IsReady reports whether all required fields of mode are present.
func (s *PayloadService) IsReady(mode domain.InputMode, fields domain.InputFields) bool {
	return fields.Ready(mode)
}

// Build packages the fields of exactly one mode into an envelope.
func (s *PayloadService) Build(mode domain.InputMode, fields domain.InputFields) (domain.Envelope, error) {
	if !mode.IsValid() {
		return domain.Envelope{}, fmt.Errorf("%w: unknown input mode %q", domain.ErrInvalidInput, mode)
	}
	if !fields.Ready(mode) {
		return domain.Envelope{}, fmt.Errorf("%w: %w: %s", domain.ErrValidation, domain.ErrNotReady, mode)
	}

	var payload domain.Payload
	switch mode {
	case domain.InputModeCoordinates:
		payload = domain.CoordinatePayload{
			Latitude:  strings.TrimSpace(fields.Latitude),
			Longitude: strings.TrimSpace(fields.Longitude),
		}
	case domain.InputModeFile:
		payload = domain.FilePayload{File: *fields.File}
	case domain.InputModeImage:
		payload = domain.ImagePayload{Image: *fields.Image}
	}

	env := domain.Envelope{Mode: mode, Payload: payload}
	logger.Debug("Built %s envelope: %s", mode, env.Describe())
	return env, nil
}

// Preview renders a bounded preview of an image blob.
// Each terminal cell holds two vertical pixels.
func (s *PayloadService) Preview(blob domain.Blob) (*domain.ImagePreview, error) {
	if s.previewer == nil {
		return nil, domain.ErrPreviewUnavailable
	}
	p, err := s.previewer.Preview(blob, s.preview.MaxWidth, s.preview.MaxHeight*2)
	if err != nil {
		logger.Warn("Preview of %s failed: %v", blob.Name, err)
		if errors.Is(err, domain.ErrPreviewUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrPreviewUnavailable, err)
	}
	return p, nil
}

// Load reads a selected file into a blob.
func (s *PayloadService) Load(path string) (*domain.Blob, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}
	if s.loader == nil {
		return nil, fmt.Errorf("%w: no file loader configured", domain.ErrInvalidInput)
	}
	blob, err := s.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	logger.Debug("Loaded %s (%d bytes)", blob.Name, blob.Size())
	return blob, nil
}

// Pick opens a native dialog filtered for mode and loads the chosen file.
func (s *PayloadService) Pick(ctx context.Context, mode domain.InputMode) (*domain.Blob, error) {
	var kind driven.PickKind
	switch mode {
	case domain.InputModeFile:
		kind = driven.PickSpreadsheet
	case domain.InputModeImage:
		kind = driven.PickImage
	default:
		return nil, fmt.Errorf("%w: no file to pick for %s", domain.ErrInvalidInput, mode)
	}
	if s.picker == nil {
		return nil, fmt.Errorf("%w: file dialogs are not available", domain.ErrInvalidInput)
	}

	path, err := s.picker.Pick(ctx, kind)
	if err != nil {
		return nil, err
	}
	return s.Load(path)
}
