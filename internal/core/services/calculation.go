package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driven"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driving"
	"github.com/custodia-labs/suneye-cli/internal/logger"
)

// Ensure CalculationService implements the interface.
var _ driving.CalculationService = (*CalculationService)(nil)

// CalculationService looks up energy estimates for a sample id.
type CalculationService struct {
	gateway driven.CalculationGateway
}

// NewCalculationService creates a new calculation service.
func NewCalculationService(gateway driven.CalculationGateway) *CalculationService {
	return &CalculationService{gateway: gateway}
}

// Calculate validates the raw sample id and performs at most one call.
// Invalid input never reaches the gateway.
func (s *CalculationService) Calculate(ctx context.Context, rawSampleID string) domain.CalculationResult {
	query, err := domain.ParseCalculationQuery(rawSampleID)
	if err != nil {
		logger.Debug("Rejected sample id %q: %v", rawSampleID, err)
		return domain.CalculationResult{Outcome: domain.CalculationInvalid, Err: err}
	}

	if s.gateway == nil {
		return domain.CalculationResult{
			Outcome:  domain.CalculationTransportError,
			SampleID: query.SampleID,
			Err:      domain.ErrTransport,
		}
	}

	logger.Section("Electricity Calculation")
	logger.Info("Calculating energy for sample %d", query.SampleID)

	estimate, err := s.gateway.Calculate(ctx, query)
	switch {
	case err == nil && estimate != nil:
		logger.Info("Sample %d: daily=%s kWh yearly=%s kWh",
			query.SampleID, domain.FormatNumber(estimate.DailyKWh), domain.FormatNumber(estimate.YearlyKWh))
		return domain.CalculationResult{
			Outcome:   domain.CalculationFound,
			SampleID:  query.SampleID,
			DailyKWh:  estimate.DailyKWh,
			YearlyKWh: estimate.YearlyKWh,
		}
	case errors.Is(err, domain.ErrNotFound):
		logger.Info("Sample %d not found", query.SampleID)
		return domain.CalculationResult{
			Outcome:  domain.CalculationNotFound,
			SampleID: query.SampleID,
			Err:      err,
		}
	default:
		if err == nil {
			err = domain.ErrTransport
		}
		logger.Error("Calculation for sample %d failed: %v", query.SampleID, err)
		return domain.CalculationResult{
			Outcome:  domain.CalculationTransportError,
			SampleID: query.SampleID,
			Err:      err,
		}
	}
}
