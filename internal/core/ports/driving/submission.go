package driving

import (
	"context"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

// SubmissionService dispatches envelopes to the analysis service.
type SubmissionService interface {
	// Submit performs exactly one analysis call. It returns
	// domain.ErrSubmissionInProgress without dispatching when another
	// submission is outstanding.
	Submit(ctx context.Context, envelope domain.Envelope) (domain.AnalysisResult, error)

	// InFlight reports whether a submission is outstanding.
	InFlight() bool
}

// PageController owns the page state and its transitions.
type PageController interface {
	// State returns a snapshot of the current page state.
	State() domain.PageState

	// Pending returns the outstanding submission ticket, if any.
	Pending() (domain.Ticket, bool)

	// BeginSubmission issues a ticket for a new submission from Home.
	BeginSubmission(mode domain.InputMode) (domain.Ticket, error)

	// CompleteSubmission moves Home to Output if ticket is still pending.
	// Returns false when the response was stale and ignored.
	CompleteSubmission(ticket domain.Ticket, result domain.AnalysisResult) bool

	// FailSubmission clears the pending ticket, leaving the view unchanged.
	FailSubmission(ticket domain.Ticket, err error) bool

	// Back returns to Home, clearing the active result and any pending ticket.
	Back()
}
