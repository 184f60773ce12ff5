// Package export provides the dialog that saves the result as a JSON file.
package export

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driving"
)

// Buttons, in display order.
const (
	buttonDownload = iota
	buttonCancel
)

// View is the export confirmation dialog.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.ExportService
	ctx     context.Context

	result   domain.AnalysisResult
	selected int
	saving   bool
	err      error
}

// NewView creates a new export dialog.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.ExportService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:  s,
		keymap:  km,
		service: service,
		ctx:     context.Background(),
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Open prepares the dialog for result.
func (v *View) Open(result domain.AnalysisResult) {
	v.result = result
	v.selected = buttonDownload
	v.saving = false
	v.err = nil
}

// Update handles messages for the dialog.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ExportCompleted:
		v.saving = false
		if msg.Err != nil && !errors.Is(msg.Err, domain.ErrCancelled) {
			v.err = msg.Err
		}
		return v, nil
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.saving {
		return v, nil
	}
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Cancel):
		return v, closed
	case keymap.Matches(keyStr, v.keymap.Left):
		v.selected = buttonDownload
	case keymap.Matches(keyStr, v.keymap.Right):
		v.selected = buttonCancel
	case keymap.Matches(keyStr, v.keymap.Confirm):
		if v.selected == buttonCancel {
			return v, closed
		}
		return v, v.export()
	}
	return v, nil
}

func closed() tea.Msg {
	return messages.ModalClosed{}
}

func (v *View) export() tea.Cmd {
	if v.service == nil {
		return nil
	}
	v.saving = true
	v.err = nil
	service := v.service
	ctx := v.ctx
	result := v.result
	return func() tea.Msg {
		artifact, location, err := service.Export(ctx, result)
		return messages.ExportCompleted{Artifact: artifact, Location: location, Err: err}
	}
}

// View renders the dialog.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Export Results"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Normal.Render("Download the analysis results as a JSON file"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(domain.ArtifactPrefix + "<timestamp>.json"))
	b.WriteString("\n\n")

	switch {
	case v.saving:
		b.WriteString(v.styles.Warning.Render("Saving..."))
	default:
		//nolint:misspell // lipgloss.Center is the correct constant from the library
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
			v.styles.ButtonFor(v.selected == buttonDownload).Render("Download"),
			" ",
			v.styles.ButtonFor(v.selected == buttonCancel).Render("Cancel"),
		))
	}

	if v.err != nil {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Error.Render(v.err.Error()))
	}

	return v.styles.Modal.Render(b.String())
}

// Saving returns whether an export is running.
func (v *View) Saving() bool {
	return v.saving
}

// Err returns the last export failure.
func (v *View) Err() error {
	return v.err
}
