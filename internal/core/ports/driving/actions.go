package driving

import (
	"context"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

// ExportService serialises results to downloadable artifacts.
type ExportService interface {
	// Render returns the display form of a result. It is byte-identical to
	// the exported content.
	Render(result domain.AnalysisResult) string

	// Export builds the artifact and saves it. Returns the artifact and the
	// location reported by the save mechanism.
	Export(ctx context.Context, result domain.AnalysisResult) (domain.Artifact, string, error)
}

// CalculationService runs the electricity calculation for a sample.
type CalculationService interface {
	// Calculate validates the raw sample id and queries the calculation
	// service. It never returns an error; failures are encoded in the outcome.
	Calculate(ctx context.Context, rawSampleID string) domain.CalculationResult
}
