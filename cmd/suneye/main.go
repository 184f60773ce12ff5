// Command suneye is the terminal client for the SunEye solar analysis service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/suneye-cli/internal/adapters/driven/backend"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driven/blob"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driven/dialog"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driven/preview"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/suneye-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driven"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driving"
	"github.com/custodia-labs/suneye-cli/internal/core/services"
	"github.com/custodia-labs/suneye-cli/internal/logger"
	"github.com/custodia-labs/suneye-cli/internal/metrics"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// buildServices wires stores, gateways and services from the settings file
// and the global flags.
func buildServices(opts cli.Options) (*cli.Services, error) {
	metrics.Register()

	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	logger.Debug("Using config %s", configStore.Path())

	var settingsService driving.SettingsService = services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if opts.BaseURL != "" {
		if !domain.ValidBaseURL(opts.BaseURL) {
			return nil, fmt.Errorf("%w: --base-url must be an http(s) URL", domain.ErrInvalidInput)
		}
		settings.API.BaseURL = opts.BaseURL
		settingsService = baseURLOverride{SettingsService: settingsService, baseURL: opts.BaseURL}
	}

	client := backend.NewClient(backend.ConfigFromSettings(settings.API))
	logger.Debug("Analysis service at %s", client.BaseURL())

	var saver driven.ArtifactSaver = filesystem.NewArtifactSaver(settings.Export.Dir)
	if settings.Export.UseDialog {
		saver = dialog.NewSaver()
	}

	payload := services.NewPayloadService(
		preview.NewPreviewer(),
		blob.NewLoader(blob.DefaultMaxBytes),
		dialog.NewPicker(),
		settings.Preview,
	)

	return &cli.Services{
		Payload:     payload,
		Submission:  services.NewSubmissionService(client),
		Page:        services.NewPageService(),
		Export:      services.NewExportService(saver),
		Calculation: services.NewCalculationService(client),
		Settings:    settingsService,
	}, nil
}

// baseURLOverride reports the --base-url value for this run without
// persisting it.
type baseURLOverride struct {
	driving.SettingsService
	baseURL string
}

func (o baseURLOverride) Get() (*domain.AppSettings, error) {
	settings, err := o.SettingsService.Get()
	if err != nil {
		return nil, err
	}
	settings.API.BaseURL = o.baseURL
	return settings, nil
}
