package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driving"
	"github.com/custodia-labs/suneye-cli/internal/logger"
)

// Ensure PageService implements the interface.
var _ driving.PageController = (*PageService)(nil)

// PageService owns the Home/Output state machine.
//
// A submission is tracked by a ticket. Completing or failing a ticket that
// is no longer pending (because Back was pressed or a newer submission
// replaced it) has no effect.
type PageService struct {
	mu      sync.Mutex
	state   domain.PageState
	pending *domain.Ticket
	now     func() time.Time
	newID   func() string
}

// NewPageService creates a page controller starting on Home.
func NewPageService() *PageService {
	return &PageService{
		state: domain.PageState{CurrentView: domain.ViewHome},
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// State returns a snapshot of the current page state.
func (s *PageService) State() domain.PageState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	if st.ActiveResult != nil {
		r := *st.ActiveResult
		st.ActiveResult = &r
	}
	return st
}

// Pending returns the outstanding submission ticket, if any.
func (s *PageService) Pending() (domain.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return domain.Ticket{}, false
	}
	return *s.pending, true
}

// BeginSubmission issues a ticket for a submission started from Home.
func (s *PageService) BeginSubmission(mode domain.InputMode) (domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !mode.IsValid() {
		return domain.Ticket{}, domain.ErrInvalidInput
	}
	if s.state.CurrentView != domain.ViewHome {
		return domain.Ticket{}, domain.ErrInvalidTransition
	}
	if s.pending != nil {
		return domain.Ticket{}, domain.ErrSubmissionInProgress
	}

	t := domain.Ticket{ID: s.newID(), Mode: mode, IssuedAt: s.now()}
	s.pending = &t
	logger.Debug("Issued submission ticket %s for %s", t.ID, mode)
	return t, nil
}

// CompleteSubmission applies a result if the ticket is still pending.
func (s *PageService) CompleteSubmission(ticket domain.Ticket, result domain.AnalysisResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isPending(ticket) {
		logger.Debug("Discarding stale result for ticket %s", ticket.ID)
		return false
	}
	s.pending = nil
	if result.IsZero() || s.state.CurrentView != domain.ViewHome {
		return false
	}

	r := result
	s.state = domain.PageState{
		CurrentView:     domain.ViewOutput,
		ActiveResult:    &r,
		ActiveInputMode: ticket.Mode,
	}
	return true
}

// FailSubmission clears the pending ticket. The view is left unchanged.
func (s *PageService) FailSubmission(ticket domain.Ticket, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isPending(ticket) {
		return false
	}
	s.pending = nil
	logger.Debug("Submission %s failed: %v", ticket.ID, err)
	return true
}

// Back returns from Output to Home, dropping the result. On Home it does
// nothing, so a pending submission still lands.
func (s *PageService) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.CurrentView == domain.ViewHome {
		return
	}
	s.state = domain.PageState{CurrentView: domain.ViewHome}
	s.pending = nil
}

func (s *PageService) isPending(ticket domain.Ticket) bool {
	return s.pending != nil && s.pending.ID == ticket.ID
}
