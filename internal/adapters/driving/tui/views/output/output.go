// Package output provides the result page.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

// maxSampleHints bounds the sample ids listed under the result.
const maxSampleHints = 8

// chrome is the number of lines used around the viewport.
const chrome = 7

// View shows the indented analysis result with the page actions.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	viewport viewport.Model

	mode      domain.InputMode
	content   string
	sampleIDs []string

	width  int
	height int
	ready  bool
}

// NewView creates a new output view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	vp := viewport.New(80, 24-chrome)
	vp.KeyMap.Up = km.Up
	vp.KeyMap.Down = km.Down
	vp.KeyMap.PageUp = km.PageUp
	vp.KeyMap.PageDown = km.PageDown

	return &View{
		styles:   s,
		keymap:   km,
		viewport: vp,
		width:    80,
		height:   24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetResult replaces the displayed result. rendered must be the export form
// of the result so the screen and the artifact match byte for byte.
func (v *View) SetResult(rendered string, mode domain.InputMode, sampleIDs []string) {
	v.content = rendered
	v.mode = mode
	v.sampleIDs = sampleIDs
	v.viewport.SetContent(v.styles.Code.Render(rendered))
	v.viewport.GotoTop()
}

// Clear removes the displayed result.
func (v *View) Clear() {
	v.content = ""
	v.mode = ""
	v.sampleIDs = nil
	v.viewport.SetContent("")
}

// Update handles messages for the output view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		keyStr := msg.String()
		switch {
		case keymap.Matches(keyStr, v.keymap.Back):
			return v, func() tea.Msg { return messages.BackRequested{} }
		case keymap.Matches(keyStr, v.keymap.Export):
			return v, func() tea.Msg { return messages.ExportOpened{} }
		case keymap.Matches(keyStr, v.keymap.Calculate):
			return v, func() tea.Msg { return messages.CalculationOpened{} }
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the result page.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Analysis Result"))
	if v.mode != "" {
		b.WriteString(v.styles.Muted.Render("  " + v.mode.Description()))
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Border.Width(v.width - 2).Render(v.viewport.View()))
	b.WriteString("\n")

	scroll := fmt.Sprintf("%3.0f%%", v.viewport.ScrollPercent()*100)
	b.WriteString(v.styles.Muted.Render(scroll))
	if hint := v.sampleHint(); hint != "" {
		b.WriteString("  ")
		b.WriteString(v.styles.Normal.Render(hint))
	}
	b.WriteString("\n")

	b.WriteString(v.styles.Help.Render("[e] Export  [c] Electricity Calculation  [b] Back to Home"))

	return b.String()
}

func (v *View) sampleHint() string {
	if len(v.sampleIDs) == 0 {
		return ""
	}
	ids := v.sampleIDs
	more := ""
	if len(ids) > maxSampleHints {
		more = fmt.Sprintf(" (+%d more)", len(ids)-maxSampleHints)
		ids = ids[:maxSampleHints]
	}
	return "Sample IDs: " + strings.Join(ids, ", ") + more
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.viewport.Width = width - 4
	h := height - chrome
	if h < 3 {
		h = 3
	}
	v.viewport.Height = h
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view has received dimensions.
func (v *View) Ready() bool {
	return v.ready
}

// Content returns the displayed result text.
func (v *View) Content() string {
	return v.content
}

// Mode returns the input mode that produced the result.
func (v *View) Mode() domain.InputMode {
	return v.mode
}

// YOffset returns the current scroll offset.
func (v *View) YOffset() int {
	return v.viewport.YOffset
}
