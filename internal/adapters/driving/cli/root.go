// Package cli provides the cobra commands for the suneye binary.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/suneye-cli/internal/core/ports/driving"
	"github.com/custodia-labs/suneye-cli/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services used by the commands. Populated by SetServices or by the
// factory once the global flags are parsed.
var (
	payloadBuilder     driving.PayloadBuilder
	submissionService  driving.SubmissionService
	pageController     driving.PageController
	exportService      driving.ExportService
	calculationService driving.CalculationService
	settingsService    driving.SettingsService
)

// Options holds the values of the persistent flags.
type Options struct {
	// Verbose enables debug logging.
	Verbose bool

	// ConfigDir overrides the configuration directory.
	ConfigDir string

	// BaseURL overrides api.base_url for this run.
	BaseURL string
}

// Services bundles the driving ports the commands depend on.
type Services struct {
	Payload     driving.PayloadBuilder
	Submission  driving.SubmissionService
	Page        driving.PageController
	Export      driving.ExportService
	Calculation driving.CalculationService
	Settings    driving.SettingsService
}

// ServiceFactory builds the services after flag parsing.
type ServiceFactory func(opts Options) (*Services, error)

var (
	opts    Options
	factory ServiceFactory
)

var errServicesNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "suneye",
	Short: "Terminal client for the SunEye solar analysis service",
	Long: `suneye submits a site to the SunEye solar analysis service and shows
the result.

A site is described by exactly one of:
  - a latitude/longitude pair
  - a spreadsheet of sample locations (.xlsx, .xls, .csv)
  - an image

Run without arguments to start the interactive UI, or use 'suneye analyze'
and 'suneye calculate' from scripts.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runTUI,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&opts.ConfigDir, "config-dir", "", "configuration directory (default ~/.suneye)")
	flags.StringVar(&opts.BaseURL, "base-url", "", "analysis service URL, overrides api.base_url")
}

// SetVersion sets the version reported by 'suneye version'.
func SetVersion(v string) {
	version = v
}

// SetServiceFactory registers the function that builds services once the
// persistent flags are known.
func SetServiceFactory(f ServiceFactory) {
	factory = f
}

// SetServices installs services directly.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	payloadBuilder = s.Payload
	submissionService = s.Submission
	pageController = s.Page
	exportService = s.Export
	calculationService = s.Calculation
	settingsService = s.Settings
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(opts.Verbose)
	if factory == nil {
		return nil
	}

	services, err := factory(opts)
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	SetServices(services)
	return nil
}
