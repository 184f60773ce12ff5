package driven

import (
	"context"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

// AnalysisGateway is the boundary to the analysis service.
type AnalysisGateway interface {
	// Analyze sends exactly one request for the envelope.
	// Any syntactically valid JSON response body becomes the result.
	// Failures wrap domain.ErrTransport.
	Analyze(ctx context.Context, envelope domain.Envelope) (domain.AnalysisResult, error)
}

// CalculationGateway is the boundary to the electricity calculation service.
type CalculationGateway interface {
	// Calculate requests the estimate for one sample.
	// Returns an error wrapping domain.ErrNotFound when the service reports no such
	// sample, or domain.ErrTransport for any other failure.
	Calculate(ctx context.Context, query domain.CalculationQuery) (*domain.EnergyEstimate, error)
}
