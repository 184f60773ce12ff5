package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long: `Print the suneye version.

The full form also reports the Go runtime, the platform and the analysis
service URL in effect, which is what a bug report needs.`,
	Args: cobra.NoArgs,
	Run:  runVersion,
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version number")
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) {
	if versionShort {
		cmd.Println(version)
		return
	}

	cmd.Printf("suneye version %s\n", version)
	cmd.Printf("  go:       %s\n", runtime.Version())
	cmd.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	if url := effectiveBaseURL(); url != "" {
		cmd.Printf("  service:  %s\n", url)
	}
}

// effectiveBaseURL returns the --base-url override, else the configured URL.
func effectiveBaseURL() string {
	if opts.BaseURL != "" {
		return opts.BaseURL
	}
	if settingsService == nil {
		return ""
	}
	s, err := settingsService.Get()
	if err != nil {
		return ""
	}
	return s.API.BaseURL
}
