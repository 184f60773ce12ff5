package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/suneye-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/suneye-cli/internal/logger"
)

var errNotATerminal = errors.New("the interactive UI needs a terminal; use 'suneye analyze' in scripts")

// isTerminal reports whether fd is a terminal. Replaced in tests.
var isTerminal = term.IsTerminal

// runProgram runs the bubbletea program. Replaced in tests.
var runProgram = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for SunEye.

The Home page has three input cards: coordinates, spreadsheet and image.
Fill in one of them and press Enter to analyze. The result is shown on the
Output page, where it can be exported or used for an electricity
calculation.

Log output is written to suneye.log in the config directory while the UI runs.

Controls:
  Tab/Shift+Tab - Move between inputs
  Ctrl+O        - Browse for a file
  Enter         - Analyze / Confirm
  e             - Export result
  c             - Electricity calculation
  b/Esc         - Back / Close
  Ctrl+C        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if !isTerminal(int(os.Stdin.Fd())) || !isTerminal(int(os.Stdout.Fd())) {
		return errNotATerminal
	}

	ports := tui.NewPorts(payloadBuilder, submissionService, pageController, exportService, calculationService)
	ports.Settings = settingsService

	// Create the TUI app
	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	// Keep log lines off the alternate screen
	if restore := redirectLogs(); restore != nil {
		defer restore()
	}

	if err := runProgram(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// redirectLogs sends log output to the config directory. Returns nil when
// the log file cannot be opened; logging then stays on stderr.
func redirectLogs() func() {
	dir := opts.ConfigDir
	if dir == "" {
		var err error
		if dir, err = file.DefaultDir(); err != nil {
			return nil
		}
	}

	restore, err := logger.RedirectToFile(dir)
	if err != nil {
		return nil
	}
	return func() {
		restore() //nolint:errcheck
	}
}
