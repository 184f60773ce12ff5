package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driven"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driving"
	"github.com/custodia-labs/suneye-cli/internal/logger"
	"github.com/custodia-labs/suneye-cli/internal/metrics"
)

// Ensure SubmissionService implements the interface.
var _ driving.SubmissionService = (*SubmissionService)(nil)

// SubmissionService dispatches one envelope at a time to the analysis gateway.
type SubmissionService struct {
	gateway  driven.AnalysisGateway
	inFlight atomic.Bool
}

// NewSubmissionService creates a new submission service.
func NewSubmissionService(gateway driven.AnalysisGateway) *SubmissionService {
	return &SubmissionService{gateway: gateway}
}

// Submit performs exactly one analysis call for the envelope.
// Transport and decoding failures are returned wrapped in domain.ErrTransport.
func (s *SubmissionService) Submit(ctx context.Context, envelope domain.Envelope) (domain.AnalysisResult, error) {
	if !envelope.Valid() {
		return domain.AnalysisResult{}, fmt.Errorf("%w: %w: malformed envelope", domain.ErrValidation, domain.ErrInvalidInput)
	}
	if s.gateway == nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: no analysis gateway configured", domain.ErrTransport)
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return domain.AnalysisResult{}, domain.ErrSubmissionInProgress
	}
	defer s.inFlight.Store(false)

	logger.Section("Analysis Submission")
	logger.Info("Submitting %s input: %s", envelope.Mode.Description(), envelope.Describe())

	start := time.Now()
	result, err := s.gateway.Analyze(ctx, envelope)
	elapsed := time.Since(start)
	if err != nil {
		logger.Error("Analysis failed after %s: %v", elapsed.Round(time.Millisecond), err)
		metrics.Submissions.WithLabelValues(string(envelope.Mode), metrics.OutcomeError).Inc()
		if errors.Is(err, domain.ErrTransport) {
			return domain.AnalysisResult{}, err
		}
		return domain.AnalysisResult{}, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	if result.IsZero() {
		logger.Error("Analysis returned an empty result")
		metrics.Submissions.WithLabelValues(string(envelope.Mode), metrics.OutcomeError).Inc()
		return domain.AnalysisResult{}, fmt.Errorf("%w: empty response", domain.ErrTransport)
	}

	logger.Info("Analysis completed in %s", elapsed.Round(time.Millisecond))
	metrics.Submissions.WithLabelValues(string(envelope.Mode), metrics.OutcomeOK).Inc()
	return result, nil
}

// InFlight reports whether a submission is outstanding.
func (s *SubmissionService) InFlight() bool {
	return s.inFlight.Load()
}
