package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the analysis service connection, export and preview
options.

Settings are stored in config.toml in the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting",
	Long: `Change one setting by its dotted key.

Keys:
  api.base_url             analysis service URL (http or https)
  api.timeout_seconds      request timeout
  api.requests_per_second  client-side throttle, 0 disables it
  export.dir               directory for exported results
  export.use_dialog        ask for a location with a save dialog (true/false)
  preview.max_width        image preview width in cells
  preview.max_height       image preview height in cells`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Step through every setting. Press Enter to keep the current value.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errServicesNotConfigured)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[API]")
	cmd.Printf("  Base URL: %s\n", settings.API.BaseURL)
	cmd.Printf("  Timeout: %s\n", settings.API.Timeout())
	if settings.API.RequestsPerSecond > 0 {
		cmd.Printf("  Rate limit: %s req/s\n", domain.FormatNumber(settings.API.RequestsPerSecond))
	} else {
		cmd.Println("  Rate limit: off")
	}
	if opts.BaseURL != "" {
		cmd.Printf("  Override (--base-url): %s\n", opts.BaseURL)
	}
	cmd.Println()

	cmd.Println("[Export]")
	dir := settings.Export.Dir
	if dir == "" {
		dir = "(working directory)"
	}
	cmd.Printf("  Directory: %s\n", dir)
	cmd.Printf("  Save dialog: %s\n", yesNo(settings.Export.UseDialog))
	cmd.Println()

	cmd.Println("[Preview]")
	cmd.Printf("  Size: %dx%d cells\n", settings.Preview.MaxWidth, settings.Preview.MaxHeight)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errServicesNotConfigured)
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errServicesNotConfigured)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	current := settingValues(settings)

	cmd.Println("SunEye Settings Wizard")
	cmd.Println("======================")
	cmd.Println("Press Enter to keep the value in brackets.")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())
	changed := 0
	for i, key := range settingsService.Keys() {
		cmd.Printf("%d. %s [%s]: ", i+1, key, current[key])
		input := readLine(reader)
		if input == "" || input == current[key] {
			continue
		}
		if err := settingsService.Set(key, input); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
		changed++
	}

	cmd.Println()
	cmd.Printf("Configuration complete, %d setting(s) changed.\n", changed)
	return nil
}

// settingValues renders settings keyed by their dotted names.
func settingValues(s *domain.AppSettings) map[string]string {
	return map[string]string{
		"api.base_url":            s.API.BaseURL,
		"api.timeout_seconds":     strconv.Itoa(s.API.TimeoutSeconds),
		"api.requests_per_second": domain.FormatNumber(s.API.RequestsPerSecond),
		"export.dir":              s.Export.Dir,
		"export.use_dialog":       strconv.FormatBool(s.Export.UseDialog),
		"preview.max_width":       strconv.Itoa(s.Preview.MaxWidth),
		"preview.max_height":      strconv.Itoa(s.Preview.MaxHeight),
	}
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
