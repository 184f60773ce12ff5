package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driven"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driving"
	"github.com/custodia-labs/suneye-cli/internal/logger"
	"github.com/custodia-labs/suneye-cli/internal/metrics"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService renders results and saves them as artifacts.
type ExportService struct {
	saver driven.ArtifactSaver
	now   func() time.Time
}

// NewExportService creates a new export service.
// The saver is optional; without one Export returns domain.ErrSaveUnavailable.
func NewExportService(saver driven.ArtifactSaver) *ExportService {
	return &ExportService{
		saver: saver,
		now:   time.Now,
	}
}

// Render returns the 2-space indented form of the result.
func (s *ExportService) Render(result domain.AnalysisResult) string {
	return string(result.Indented())
}

// Export builds an artifact named after the current time and saves it.
func (s *ExportService) Export(ctx context.Context, result domain.AnalysisResult) (domain.Artifact, string, error) {
	artifact, err := domain.NewArtifact(result, s.now())
	if err != nil {
		return domain.Artifact{}, "", err
	}
	if s.saver == nil {
		return artifact, "", domain.ErrSaveUnavailable
	}

	location, err := s.saver.Save(ctx, artifact)
	if err != nil {
		if errors.Is(err, domain.ErrCancelled) {
			logger.Info("Export of %s cancelled", artifact.Filename)
			metrics.Exports.WithLabelValues(metrics.OutcomeCancelled).Inc()
			return artifact, "", err
		}
		logger.Error("Export of %s failed: %v", artifact.Filename, err)
		metrics.Exports.WithLabelValues(metrics.OutcomeError).Inc()
		if errors.Is(err, domain.ErrSaveUnavailable) {
			return artifact, "", err
		}
		return artifact, "", fmt.Errorf("%w: %w", domain.ErrSaveUnavailable, err)
	}

	logger.Info("Exported %s to %s", artifact.Filename, location)
	metrics.Exports.WithLabelValues(metrics.OutcomeOK).Inc()
	return artifact, location, nil
}
