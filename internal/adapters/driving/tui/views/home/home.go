// Package home provides the input page: one card per input mode.
package home

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/components/preview"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driving"
)

// Focus order of the inputs.
const (
	fieldLatitude = iota
	fieldLongitude
	fieldFile
	fieldImage
	fieldCount
)

// selection is a blob together with the text it was loaded from.
type selection struct {
	blob *domain.Blob
	from string
}

// View is the home page with the coordinate, file and image cards.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	payload driving.PayloadBuilder
	ctx     context.Context

	fields [fieldCount]*input.Field
	focus  int

	file  selection
	image selection

	preview    *domain.ImagePreview
	previewErr error

	// note is a short hint under the cards (missing fields, load errors).
	note       string
	submitting bool
	backend    string

	width  int
	height int
	ready  bool
}

// NewView creates a new home view.
func NewView(s *styles.Styles, km *keymap.KeyMap, payload driving.PayloadBuilder) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:  s,
		keymap:  km,
		payload: payload,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
	v.fields[fieldLatitude] = input.NewField(s, "Latitude", "e.g. 12.9716")
	v.fields[fieldLongitude] = input.NewField(s, "Longitude", "e.g. 77.5946")
	v.fields[fieldFile] = input.NewField(s, "Spreadsheet", "path to .xlsx, .xls or .csv")
	v.fields[fieldImage] = input.NewField(s, "Image", "path to an image")
	v.fields[fieldLatitude].Focus()
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetBackend shows where submissions are sent.
func (v *View) SetBackend(baseURL string) {
	v.backend = baseURL
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.fields[v.focus].Init()
}

// Update handles messages for the home view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.BlobLoaded:
		return v, v.handleBlobLoaded(msg)

	case messages.PreviewReady:
		v.handlePreviewReady(msg)
		return v, nil
	}

	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.NextField):
		return v, v.setFocus((v.focus + 1) % fieldCount)

	case keymap.Matches(keyStr, v.keymap.PrevField):
		return v, v.setFocus((v.focus + fieldCount - 1) % fieldCount)

	case keymap.Matches(keyStr, v.keymap.Browse):
		return v, v.pick()

	case keymap.Matches(keyStr, v.keymap.Submit):
		return v, v.submitOrLoad()
	}

	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	v.dropStaleSelection()
	return v, cmd
}

func (v *View) setFocus(i int) tea.Cmd {
	v.fields[v.focus].Blur()
	v.focus = i
	v.note = ""
	return v.fields[v.focus].Focus()
}

// dropStaleSelection forgets a blob once its path text was edited.
func (v *View) dropStaleSelection() {
	if v.file.blob != nil && v.fields[fieldFile].Value() != v.file.from {
		v.file = selection{}
	}
	if v.image.blob != nil && v.fields[fieldImage].Value() != v.image.from {
		v.image = selection{}
		v.preview = nil
		v.previewErr = nil
	}
}

// submitOrLoad loads a freshly typed path, otherwise submits the focused card.
func (v *View) submitOrLoad() tea.Cmd {
	if v.submitting {
		return nil
	}
	mode := v.ActiveMode()

	if path := v.pendingPath(mode); path != "" {
		return v.load(mode, path)
	}

	fields := v.Fields()
	if v.payload == nil || !v.payload.IsReady(mode, fields) {
		v.note = missingHint(mode)
		return nil
	}

	v.note = ""
	return func() tea.Msg {
		return messages.SubmitRequested{Mode: mode, Fields: fields}
	}
}

// pendingPath returns typed path text that has not been loaded yet.
func (v *View) pendingPath(mode domain.InputMode) string {
	var sel selection
	var text string
	switch mode {
	case domain.InputModeFile:
		sel, text = v.file, v.fields[fieldFile].Value()
	case domain.InputModeImage:
		sel, text = v.image, v.fields[fieldImage].Value()
	default:
		return ""
	}
	if strings.TrimSpace(text) == "" || (sel.blob != nil && sel.from == text) {
		return ""
	}
	return text
}

func (v *View) load(mode domain.InputMode, path string) tea.Cmd {
	if v.payload == nil {
		return nil
	}
	payload := v.payload
	return func() tea.Msg {
		blob, err := payload.Load(path)
		return messages.BlobLoaded{Mode: mode, Blob: blob, Err: err}
	}
}

func (v *View) pick() tea.Cmd {
	mode := v.ActiveMode()
	if mode == domain.InputModeCoordinates || v.payload == nil {
		return nil
	}
	payload := v.payload
	ctx := v.ctx
	return func() tea.Msg {
		blob, err := payload.Pick(ctx, mode)
		return messages.BlobLoaded{Mode: mode, Blob: blob, Err: err}
	}
}

func (v *View) handleBlobLoaded(msg messages.BlobLoaded) tea.Cmd {
	if msg.Err != nil {
		if errors.Is(msg.Err, domain.ErrCancelled) {
			return nil
		}
		v.note = msg.Err.Error()
		return nil
	}
	if msg.Blob == nil {
		return nil
	}

	v.note = ""
	switch msg.Mode {
	case domain.InputModeFile:
		v.fields[fieldFile].SetValue(msg.Blob.Path)
		v.file = selection{blob: msg.Blob, from: v.fields[fieldFile].Value()}
		return nil

	case domain.InputModeImage:
		v.fields[fieldImage].SetValue(msg.Blob.Path)
		v.image = selection{blob: msg.Blob, from: v.fields[fieldImage].Value()}
		v.preview = nil
		v.previewErr = nil
		return v.renderPreview(*msg.Blob)
	}
	return nil
}

func (v *View) renderPreview(blob domain.Blob) tea.Cmd {
	payload := v.payload
	return func() tea.Msg {
		p, err := payload.Preview(blob)
		return messages.PreviewReady{Name: blob.Name, Preview: p, Err: err}
	}
}

func (v *View) handlePreviewReady(msg messages.PreviewReady) {
	// A different image may have been selected meanwhile.
	if v.image.blob == nil || v.image.blob.Name != msg.Name {
		return
	}
	v.preview = msg.Preview
	v.previewErr = msg.Err
}

func missingHint(mode domain.InputMode) string {
	switch mode {
	case domain.InputModeCoordinates:
		return "Enter both latitude and longitude."
	case domain.InputModeFile:
		return "Select a spreadsheet first."
	case domain.InputModeImage:
		return "Select an image first."
	default:
		return ""
	}
}

// View renders the home page.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("SunEye Solar Analysis"))
	b.WriteString("\n")
	sub := "Analyze solar potential from coordinates, a spreadsheet or an image."
	if v.backend != "" {
		sub += "  Backend: " + v.backend
	}
	b.WriteString(v.styles.Muted.Render(sub))
	b.WriteString("\n\n")

	b.WriteString(v.renderCoordinatesCard())
	b.WriteString("\n")
	b.WriteString(v.renderFileCard())
	b.WriteString("\n")
	b.WriteString(v.renderImageCard())
	b.WriteString("\n")

	switch {
	case v.submitting:
		b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Analyzing %s...", v.ActiveMode().Description())))
	case v.note != "":
		b.WriteString(v.styles.Error.Render(v.note))
	default:
		b.WriteString(v.styles.Help.Render("[enter] Analyze  [tab] Next field  [ctrl+o] Browse"))
	}

	return b.String()
}

func (v *View) cardWidth() int {
	w := v.width - 4
	if w < 30 {
		w = 30
	}
	return w
}

func (v *View) card(mode domain.InputMode, body string) string {
	active := v.ActiveMode() == mode
	title := v.styles.Subtitle.Render(mode.Description())
	if v.payload != nil && v.payload.IsReady(mode, v.Fields()) {
		title += " " + v.styles.Success.Render("● ready")
	} else {
		title += " " + v.styles.Muted.Render("○")
	}
	return v.styles.CardFor(active).Width(v.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, body),
	)
}

func (v *View) renderCoordinatesCard() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		v.fields[fieldLatitude].View(),
		v.fields[fieldLongitude].View(),
	)
	return v.card(domain.InputModeCoordinates, body)
}

func (v *View) renderFileCard() string {
	parts := []string{v.fields[fieldFile].View()}
	if v.file.blob != nil {
		parts = append(parts, v.styles.Muted.Render(
			fmt.Sprintf("Selected: %s (%d bytes)", v.file.blob.Name, v.file.blob.Size())))
	}
	return v.card(domain.InputModeFile, lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (v *View) renderImageCard() string {
	parts := []string{v.fields[fieldImage].View()}
	if v.image.blob != nil {
		parts = append(parts, v.styles.Muted.Render(
			fmt.Sprintf("Selected: %s (%d bytes)", v.image.blob.Name, v.image.blob.Size())))
		if card := preview.Card(v.styles, v.preview, v.previewErr); card != "" {
			parts = append(parts, card)
		}
	}
	return v.card(domain.InputModeImage, lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	for _, f := range v.fields {
		f.SetWidth(v.cardWidth() - 4)
	}
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

// ActiveMode returns the mode of the card holding focus.
func (v *View) ActiveMode() domain.InputMode {
	switch v.focus {
	case fieldFile:
		return domain.InputModeFile
	case fieldImage:
		return domain.InputModeImage
	default:
		return domain.InputModeCoordinates
	}
}

// Fields returns the current values of all cards.
func (v *View) Fields() domain.InputFields {
	return domain.InputFields{
		Latitude:  v.fields[fieldLatitude].Value(),
		Longitude: v.fields[fieldLongitude].Value(),
		File:      v.file.blob,
		Image:     v.image.blob,
	}
}

// SetSubmitting toggles the in-flight indicator. Submit is ignored while set.
func (v *View) SetSubmitting(submitting bool) {
	v.submitting = submitting
}

// Submitting returns whether a submission is in flight.
func (v *View) Submitting() bool {
	return v.submitting
}

// Note returns the hint shown under the cards.
func (v *View) Note() string {
	return v.note
}

// Preview returns the current image preview, if any.
func (v *View) Preview() *domain.ImagePreview {
	return v.preview
}
