package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/views/calculate"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/views/export"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/views/home"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui/views/output"
	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/logger"
)

// modal identifies the dialog drawn over the output view.
type modal int

const (
	modalNone modal = iota
	modalExport
	modalCalculate
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// App is the only caller of the page controller's transitions: views emit
// request messages and App applies them.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings shared by all views.
	keymap *keymap.KeyMap

	// statusBar shows progress, notices and key hints.
	statusBar *status.Bar

	// homeView is the input page.
	homeView *home.View

	// outputView is the result page.
	outputView *output.View

	// exportView is the export dialog.
	exportView *export.View

	// calculateView is the electricity calculation dialog.
	calculateView *calculate.View

	// currentView tracks which page is active.
	currentView messages.ViewType

	// modal tracks the open dialog, if any.
	modal modal

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	homeView := home.NewView(s, km, ports.Payload)
	if ports.Settings != nil {
		if settings, err := ports.Settings.Get(); err == nil {
			homeView.SetBackend(settings.API.BaseURL)
		}
	}

	statusBar := status.NewBar(s, km)
	statusBar.SetHints(km.HomeHelp())

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		statusBar:     statusBar,
		homeView:      homeView,
		outputView:    output.NewView(s, km),
		exportView:    export.NewView(s, km, ports.Export),
		calculateView: calculate.NewView(s, km, ports.Calculation),
		currentView:   messages.ViewHome,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.homeView.WithContext(ctx)
	a.exportView.WithContext(ctx)
	a.calculateView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("suneye - Solar Analysis"),
		a.homeView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, tea.Quit
		}
		return a, a.forward(msg)

	case messages.SubmitRequested:
		return a, a.submit(msg)

	case messages.SubmissionCompleted:
		a.completeSubmission(msg)
		return a, nil

	case messages.BackRequested:
		a.back()
		return a, nil

	case messages.BlobLoaded, messages.PreviewReady:
		a.homeView, cmd = a.homeView.Update(msg)
		return a, cmd

	case messages.ExportOpened:
		a.openExport()
		return a, nil

	case messages.ExportCompleted:
		a.completeExport(msg)
		return a, nil

	case messages.CalculationOpened:
		return a, a.openCalculation()

	case messages.CalculationCompleted:
		a.completeCalculation(msg)
		return a, nil

	case messages.ModalClosed:
		a.closeModal()
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		if msg.Err != nil {
			a.statusBar.SetError(describe(msg.Err))
		}
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink, viewport mouse) to the active view
	return a, a.forward(msg)
}

// forward passes a message to the open dialog or the active page.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.modal {
	case modalExport:
		a.exportView, cmd = a.exportView.Update(msg)
		if a.exportView.Saving() {
			a.statusBar.SetState(status.StateExporting)
		}
		return cmd
	case modalCalculate:
		a.calculateView, cmd = a.calculateView.Update(msg)
		return cmd
	case modalNone:
	}

	switch a.currentView {
	case messages.ViewHome:
		a.homeView, cmd = a.homeView.Update(msg)
	case messages.ViewOutput:
		a.outputView, cmd = a.outputView.Update(msg)
	}
	return cmd
}

// submit builds the envelope, takes a ticket and dispatches in the background.
func (a *App) submit(msg messages.SubmitRequested) tea.Cmd {
	envelope, err := a.ports.Payload.Build(msg.Mode, msg.Fields)
	if err != nil {
		a.err = err
		a.statusBar.SetError(describe(err))
		return nil
	}

	ticket, err := a.ports.Page.BeginSubmission(msg.Mode)
	if err != nil {
		a.err = err
		a.statusBar.SetError(describe(err))
		return nil
	}

	a.err = nil
	a.homeView.SetSubmitting(true)
	a.statusBar.SetState(status.StateSubmitting)
	a.statusBar.SetMessage(fmt.Sprintf("Analyzing %s...", msg.Mode.Description()))

	submission := a.ports.Submission
	ctx := a.ctx
	return func() tea.Msg {
		result, err := submission.Submit(ctx, envelope)
		return messages.SubmissionCompleted{Ticket: ticket, Result: result, Err: err}
	}
}

func (a *App) completeSubmission(msg messages.SubmissionCompleted) {
	if msg.Err != nil {
		if !a.ports.Page.FailSubmission(msg.Ticket, msg.Err) {
			logger.Debug("tui: dropping failure for stale ticket %s", msg.Ticket.ID)
			return
		}
		a.err = msg.Err
		a.syncSubmitting()
		a.statusBar.SetError(describe(msg.Err))
		return
	}

	if !a.ports.Page.CompleteSubmission(msg.Ticket, msg.Result) {
		logger.Debug("tui: dropping response for stale ticket %s", msg.Ticket.ID)
		a.syncSubmitting()
		return
	}

	state := a.ports.Page.State()
	a.syncSubmitting()
	if state.ActiveResult == nil {
		return
	}
	a.outputView.SetResult(
		a.ports.Export.Render(*state.ActiveResult),
		state.ActiveInputMode,
		state.ActiveResult.SampleIDs(),
	)
	a.currentView = messages.ViewOutput
	a.statusBar.Clear()
	a.statusBar.SetHints(a.keymap.OutputHelp())
}

// syncSubmitting mirrors the controller's pending ticket on the home view.
func (a *App) syncSubmitting() {
	_, pending := a.ports.Page.Pending()
	a.homeView.SetSubmitting(pending)
	if !pending && a.statusBar.State() == status.StateSubmitting {
		a.statusBar.Clear()
	}
}

func (a *App) back() {
	if a.currentView != messages.ViewOutput {
		return
	}
	a.closeModal()
	a.ports.Page.Back()
	a.outputView.Clear()
	a.currentView = messages.ViewHome
	a.syncSubmitting()
	a.statusBar.Clear()
	a.statusBar.SetHints(a.keymap.HomeHelp())
}

func (a *App) openExport() {
	state := a.ports.Page.State()
	if a.currentView != messages.ViewOutput || state.ActiveResult == nil {
		a.statusBar.SetError(describe(domain.ErrNoActiveResult))
		return
	}
	a.exportView.Open(*state.ActiveResult)
	a.modal = modalExport
	a.statusBar.SetHints(a.keymap.ModalHelp())
}

func (a *App) completeExport(msg messages.ExportCompleted) {
	a.exportView, _ = a.exportView.Update(msg)
	if a.statusBar.State() == status.StateExporting {
		a.statusBar.Clear()
	}

	switch {
	case msg.Err == nil:
		a.statusBar.SetNotice("Saved " + msg.Location)
		a.closeModal()
	case errors.Is(msg.Err, domain.ErrCancelled):
		a.statusBar.SetMessage("Export cancelled")
		a.closeModal()
	default:
		a.err = msg.Err
		a.statusBar.SetError(describe(msg.Err))
	}
}

func (a *App) openCalculation() tea.Cmd {
	if a.currentView != messages.ViewOutput {
		return nil
	}
	var ids []string
	if state := a.ports.Page.State(); state.ActiveResult != nil {
		ids = state.ActiveResult.SampleIDs()
	}
	a.modal = modalCalculate
	a.statusBar.SetHints(a.keymap.ModalHelp())
	return a.calculateView.Open(ids)
}

func (a *App) completeCalculation(msg messages.CalculationCompleted) {
	if !a.calculateView.Apply(msg) {
		logger.Debug("tui: dropping calculation for closed session %d", msg.Session)
		return
	}
	if msg.Result.Outcome == domain.CalculationTransportError && msg.Result.Err != nil {
		a.statusBar.SetError(describe(msg.Result.Err))
	}
}

func (a *App) closeModal() {
	if a.modal == modalCalculate {
		a.calculateView.Close()
	}
	if a.modal != modalNone {
		a.statusBar.SetHints(a.keymap.OutputHelp())
	}
	a.modal = modalNone
}

// describe turns an error into a status bar notice.
func describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrSubmissionInProgress):
		return "A submission is already in progress."
	case errors.Is(err, domain.ErrTransport):
		return "Backend error: " + err.Error()
	default:
		return err.Error()
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewOutput:
		body = a.outputView.View()
	default:
		body = a.homeView.View()
	}

	switch a.modal {
	case modalExport:
		body = a.overlay(a.exportView.View())
	case modalCalculate:
		body = a.overlay(a.calculateView.View())
	case modalNone:
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, a.statusBar.View())
}

// overlay centres a dialog in the page area.
func (a *App) overlay(dialog string) string {
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.Place(a.width, a.pageHeight(), lipgloss.Center, lipgloss.Center, dialog)
}

func (a *App) pageHeight() int {
	h := a.height - 1
	if h < 1 {
		h = 1
	}
	return h
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// ModalOpen returns whether a dialog is shown.
func (a *App) ModalOpen() bool {
	return a.modal != modalNone
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// StatusMessage returns the status bar text.
func (a *App) StatusMessage() string {
	return a.statusBar.Message()
}

// SetDimensions sets the terminal dimensions and resizes every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.statusBar.SetWidth(width)
	a.homeView.SetDimensions(width, a.pageHeight())
	a.outputView.SetDimensions(width, a.pageHeight())
}
