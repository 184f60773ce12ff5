// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewHome is the input capture page.
	ViewHome ViewType = iota
	// ViewOutput shows the analysis result.
	ViewOutput
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewOutput:
		return "output"
	default:
		return "unknown"
	}
}

// SubmitRequested asks the controller to submit the fields of one mode.
type SubmitRequested struct {
	Mode   domain.InputMode
	Fields domain.InputFields
}

// SubmissionCompleted carries the analysis response for a ticket.
type SubmissionCompleted struct {
	Ticket domain.Ticket
	Result domain.AnalysisResult
	Err    error
}

// BackRequested asks the controller to return to the home view.
type BackRequested struct{}

// BlobLoaded carries a file read from disk or chosen in a dialog.
type BlobLoaded struct {
	Mode domain.InputMode
	Blob *domain.Blob
	Err  error
}

// PreviewReady carries the rendered preview of the selected image.
type PreviewReady struct {
	Name    string
	Preview *domain.ImagePreview
	Err     error
}

// ExportOpened asks the controller to show the export dialog.
type ExportOpened struct{}

// ExportCompleted signals the artifact was saved, or why it was not.
type ExportCompleted struct {
	Artifact domain.Artifact
	Location string
	Err      error
}

// CalculationOpened asks the controller to show the calculation dialog.
type CalculationOpened struct{}

// CalculationCompleted carries a calculation outcome for one dialog session.
type CalculationCompleted struct {
	Session int
	Result  domain.CalculationResult
}

// ModalClosed signals the open dialog was dismissed.
type ModalClosed struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
