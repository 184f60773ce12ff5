// Package tui provides an interactive terminal user interface for suneye.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Payload validates inputs and loads selected files.
	Payload driving.PayloadBuilder

	// Submission dispatches envelopes to the analysis service.
	Submission driving.SubmissionService

	// Page owns the Home/Output state.
	Page driving.PageController

	// Export saves results as JSON artifacts.
	Export driving.ExportService

	// Calculation runs the electricity calculation.
	Calculation driving.CalculationService

	// Settings provides the backend address for display. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	payload driving.PayloadBuilder,
	submission driving.SubmissionService,
	page driving.PageController,
	export driving.ExportService,
	calculation driving.CalculationService,
) *Ports {
	return &Ports{
		Payload:     payload,
		Submission:  submission,
		Page:        page,
		Export:      export,
		Calculation: calculation,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Payload == nil {
		return ErrMissingPayloadBuilder
	}
	if p.Submission == nil {
		return ErrMissingSubmissionService
	}
	if p.Page == nil {
		return ErrMissingPageController
	}
	if p.Export == nil {
		return ErrMissingExportService
	}
	if p.Calculation == nil {
		return ErrMissingCalculationService
	}
	return nil
}
