package mcp

import (
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Payload loads files and builds envelopes.
	Payload driving.PayloadBuilder

	// Submission dispatches envelopes to the analysis service.
	Submission driving.SubmissionService

	// Calculation runs electricity calculations.
	Calculation driving.CalculationService

	// Settings exposes the current configuration as a resource. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Payload == nil {
		return ErrMissingPayloadBuilder
	}
	if p.Submission == nil {
		return ErrMissingSubmissionService
	}
	if p.Calculation == nil {
		return ErrMissingCalculationService
	}
	return nil
}
