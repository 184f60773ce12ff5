package mcp

import (
	"context"
	"errors"

	"github.com/custodia-labs/suneye-cli/internal/adapters/driven/blob"
	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/core/services"
)

// mockSubmissionService is a mock implementation of driving.SubmissionService.
type mockSubmissionService struct {
	body      string
	err       error
	envelopes []domain.Envelope
}

func (m *mockSubmissionService) Submit(_ context.Context, envelope domain.Envelope) (domain.AnalysisResult, error) {
	m.envelopes = append(m.envelopes, envelope)
	if m.err != nil {
		return domain.AnalysisResult{}, m.err
	}
	body := m.body
	if body == "" {
		body = `{"samples":[{"sample_id":7,"irradiance":5.1}]}`
	}
	return domain.NewAnalysisResult([]byte(body))
}

func (m *mockSubmissionService) InFlight() bool {
	return false
}

// mockCalculationService is a mock implementation of driving.CalculationService.
type mockCalculationService struct {
	result  domain.CalculationResult
	queries []string
}

func (m *mockCalculationService) Calculate(_ context.Context, raw string) domain.CalculationResult {
	m.queries = append(m.queries, raw)
	return m.result
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error {
	return errors.New("read only")
}

func (m *mockSettingsService) Set(_, _ string) error {
	return errors.New("read only")
}

func (m *mockSettingsService) Keys() []string {
	return nil
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func newTestPorts() (*Ports, *mockSubmissionService, *mockCalculationService) {
	submission := &mockSubmissionService{}
	calculation := &mockCalculationService{}
	return &Ports{
		Payload:     services.NewPayloadService(nil, blob.NewLoader(0), nil, domain.PreviewSettings{}),
		Submission:  submission,
		Calculation: calculation,
	}, submission, calculation
}
