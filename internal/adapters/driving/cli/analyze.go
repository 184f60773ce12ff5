package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

// stdinPath selects standard input for --file and --image.
const stdinPath = "-"

var errOneInput = errors.New("choose exactly one input: --lat/--lon, --file or --image")

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one solar analysis",
	Long: `Submit one site to the analysis service and print the result as
indented JSON.

Exactly one input is allowed:
  --lat and --lon   coordinates, sent as text
  --file PATH       spreadsheet of sample locations
  --image PATH      image of the site

Use '-' as PATH to read the upload from standard input; --name sets the
filename sent with it.

Examples:
  suneye analyze --lat=52.37 --lon=4.89
  suneye analyze --file sites.xlsx --export
  cat roof.jpg | suneye analyze --image - --name roof.jpg`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	flags := analyzeCmd.Flags()
	flags.String("lat", "", "latitude")
	flags.String("lon", "", "longitude")
	flags.String("file", "", "spreadsheet to upload ('-' for stdin)")
	flags.String("image", "", "image to upload ('-' for stdin)")
	flags.String("name", "", "filename sent when reading from stdin")
	flags.Bool("export", false, "also save the result as solar-analysis-<millis>.json")
	flags.Bool("compact", false, "print the result exactly as received")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if payloadBuilder == nil || submissionService == nil {
		return fmt.Errorf("analyze: %w", errServicesNotConfigured)
	}

	mode, fields, err := analyzeInput(cmd)
	if err != nil {
		return err
	}

	envelope, err := payloadBuilder.Build(mode, fields)
	if err != nil {
		return err
	}

	result, err := submissionService.Submit(cmd.Context(), envelope)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	compact, _ := cmd.Flags().GetBool("compact") //nolint:errcheck
	switch {
	case compact:
		cmd.Println(string(result.Raw()))
	case exportService != nil:
		cmd.Println(exportService.Render(result))
	default:
		cmd.Println(string(result.Indented()))
	}

	doExport, _ := cmd.Flags().GetBool("export") //nolint:errcheck
	if !doExport {
		return nil
	}
	if exportService == nil {
		return fmt.Errorf("export: %w", errServicesNotConfigured)
	}
	_, location, err := exportService.Export(cmd.Context(), result)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	cmd.PrintErrf("Saved %s\n", location)
	return nil
}

// analyzeInput resolves the flags into exactly one mode and its fields.
func analyzeInput(cmd *cobra.Command) (domain.InputMode, domain.InputFields, error) {
	flags := cmd.Flags()
	useCoords := flags.Changed("lat") || flags.Changed("lon")
	useFile := flags.Changed("file")
	useImage := flags.Changed("image")

	selected := 0
	for _, used := range []bool{useCoords, useFile, useImage} {
		if used {
			selected++
		}
	}
	if selected != 1 {
		return "", domain.InputFields{}, errOneInput
	}

	var fields domain.InputFields
	switch {
	case useCoords:
		fields.Latitude, _ = flags.GetString("lat")  //nolint:errcheck
		fields.Longitude, _ = flags.GetString("lon") //nolint:errcheck
		return domain.InputModeCoordinates, fields, nil

	case useFile:
		path, _ := flags.GetString("file") //nolint:errcheck
		blob, err := loadInput(cmd, path, "upload.csv")
		if err != nil {
			return "", fields, err
		}
		fields.File = blob
		return domain.InputModeFile, fields, nil

	default:
		path, _ := flags.GetString("image") //nolint:errcheck
		blob, err := loadInput(cmd, path, "upload.jpg")
		if err != nil {
			return "", fields, err
		}
		fields.Image = blob
		return domain.InputModeImage, fields, nil
	}
}

// loadInput reads path through the payload builder, or standard input for '-'.
func loadInput(cmd *cobra.Command, path, defaultName string) (*domain.Blob, error) {
	if strings.TrimSpace(path) != stdinPath {
		return payloadBuilder.Load(path)
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		return nil, fmt.Errorf("%w: refusing to read an upload from a terminal; pipe it in", domain.ErrInvalidInput)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: standard input is empty", domain.ErrInvalidInput)
	}

	name, _ := cmd.Flags().GetString("name") //nolint:errcheck
	if name == "" {
		name = defaultName
	}
	return &domain.Blob{Name: name, Data: data, Path: stdinPath}, nil
}
