package domain

import "time"

// View identifies which page is shown.
type View int

const (
	// ViewHome is the input capture page.
	ViewHome View = iota
	// ViewOutput shows the active analysis result.
	ViewOutput
)

// String returns the string representation of the view.
func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewOutput:
		return "output"
	default:
		return "unknown"
	}
}

// PageState is the navigation state of a session.
//
// Invariant: CurrentView == ViewOutput iff ActiveResult != nil, and
// ActiveInputMode is non-empty only on ViewOutput.
type PageState struct {
	CurrentView     View
	ActiveResult    *AnalysisResult
	ActiveInputMode InputMode
}

// Consistent reports whether the state satisfies the page invariant.
func (s PageState) Consistent() bool {
	if (s.CurrentView == ViewOutput) != (s.ActiveResult != nil) {
		return false
	}
	if s.CurrentView == ViewHome && s.ActiveInputMode != "" {
		return false
	}
	if s.CurrentView == ViewOutput && !s.ActiveInputMode.IsValid() {
		return false
	}
	return true
}

// Ticket identifies one in-flight submission. A response is applied only
// if its ticket is still the pending one.
type Ticket struct {
	ID       string
	Mode     InputMode
	IssuedAt time.Time
}
