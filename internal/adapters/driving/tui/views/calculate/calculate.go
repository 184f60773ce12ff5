// Package calculate provides the electricity calculation dialog.
package calculate

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driving"
)

// View is the calculation dialog. Each Open starts a new session; responses
// carrying an older session are dropped.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.CalculationService
	ctx     context.Context

	input   *input.Field
	session int
	open    bool
	running bool
	result  *domain.CalculationResult
	hints   []string
}

// NewView creates a new calculation dialog.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.CalculationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	field := input.NewField(s, "Sample ID", "e.g. 42")
	field.SetCharLimit(20)
	field.SetWidth(40)

	return &View{
		styles:  s,
		keymap:  km,
		service: service,
		ctx:     context.Background(),
		input:   field,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Open starts a new session with an empty query. Numeric sampleIDs are shown
// as hints.
func (v *View) Open(sampleIDs []string) tea.Cmd {
	v.session++
	v.open = true
	v.running = false
	v.result = nil
	v.hints = calculable(sampleIDs)
	v.input.Reset()
	return v.input.Focus()
}

// Close ends the session, discarding the query and any result.
func (v *View) Close() {
	v.session++
	v.open = false
	v.running = false
	v.result = nil
	v.input.Reset()
	v.input.Blur()
}

// Update handles messages for the dialog.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		keyStr := msg.String()
		switch {
		case keymap.Matches(keyStr, v.keymap.Cancel):
			return v, func() tea.Msg { return messages.ModalClosed{} }
		case keymap.Matches(keyStr, v.keymap.Confirm):
			return v, v.calculate()
		}

	case messages.CalculationCompleted:
		v.Apply(msg)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// Apply shows a completed calculation. It returns false when the response
// belongs to a session that has ended.
func (v *View) Apply(msg messages.CalculationCompleted) bool {
	if !v.open || msg.Session != v.session {
		return false
	}
	v.running = false
	result := msg.Result
	v.result = &result
	return true
}

func (v *View) calculate() tea.Cmd {
	if v.running || v.service == nil {
		return nil
	}
	v.running = true
	v.result = nil

	service := v.service
	ctx := v.ctx
	session := v.session
	raw := v.input.Value()
	return func() tea.Msg {
		return messages.CalculationCompleted{Session: session, Result: service.Calculate(ctx, raw)}
	}
}

// View renders the dialog.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Electricity Calculation"))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n")
	if len(v.hints) > 0 {
		b.WriteString(v.styles.Muted.Render("Known sample IDs: " + strings.Join(v.hints, ", ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case v.running:
		b.WriteString(v.styles.Warning.Render("Calculating..."))
	case v.result == nil:
		b.WriteString(v.styles.Help.Render("[enter] Calculate  [esc] Close"))
	case v.result.Found():
		b.WriteString(v.styles.Success.Render(v.result.Message()))
	default:
		b.WriteString(v.styles.Error.Render(v.result.Message()))
	}

	return v.styles.Modal.Render(b.String())
}

// SetHints replaces the sample id hints.
func (v *View) SetHints(sampleIDs []string) {
	v.hints = calculable(sampleIDs)
}

// calculable keeps the ids the calculation service accepts.
func calculable(sampleIDs []string) []string {
	var out []string
	for _, id := range sampleIDs {
		if _, err := domain.ParseCalculationQuery(id); err == nil {
			out = append(out, id)
		}
	}
	return out
}

// IsOpen returns whether a session is active.
func (v *View) IsOpen() bool {
	return v.open
}

// Session returns the current session number.
func (v *View) Session() int {
	return v.session
}

// Running returns whether a calculation is outstanding for this session.
func (v *View) Running() bool {
	return v.running
}

// Result returns the result shown in this session, if any.
func (v *View) Result() *domain.CalculationResult {
	return v.result
}

// Query returns the typed sample id.
func (v *View) Query() string {
	return v.input.Value()
}
