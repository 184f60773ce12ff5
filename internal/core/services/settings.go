package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driven"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyBaseURL           = "api.base_url"
	KeyTimeoutSeconds    = "api.timeout_seconds"
	KeyRequestsPerSecond = "api.requests_per_second"
	KeyExportDir         = "export.dir"
	KeyExportUseDialog   = "export.use_dialog"
	KeyPreviewMaxWidth   = "preview.max_width"
	KeyPreviewMaxHeight  = "preview.max_height"
)

var settingsKeys = []string{
	KeyBaseURL,
	KeyTimeoutSeconds,
	KeyRequestsPerSecond,
	KeyExportDir,
	KeyExportUseDialog,
	KeyPreviewMaxWidth,
	KeyPreviewMaxHeight,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	baseURL := s.getString(KeyBaseURL, defaults.API.BaseURL)
	if !domain.ValidBaseURL(baseURL) {
		baseURL = defaults.API.BaseURL
	}

	settings := &domain.AppSettings{
		API: domain.APISettings{
			BaseURL:           strings.TrimRight(baseURL, "/"),
			TimeoutSeconds:    s.getPositiveInt(KeyTimeoutSeconds, defaults.API.TimeoutSeconds),
			RequestsPerSecond: s.getNonNegativeFloat(KeyRequestsPerSecond, defaults.API.RequestsPerSecond),
		},
		Export: domain.ExportSettings{
			Dir:       s.configStore.GetString(KeyExportDir),
			UseDialog: s.getBool(KeyExportUseDialog, defaults.Export.UseDialog),
		},
		Preview: domain.PreviewSettings{
			MaxWidth:  s.getPositiveInt(KeyPreviewMaxWidth, defaults.Preview.MaxWidth),
			MaxHeight: s.getPositiveInt(KeyPreviewMaxHeight, defaults.Preview.MaxHeight),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}
	if !domain.ValidBaseURL(settings.API.BaseURL) {
		return fmt.Errorf("%w: base url %q must be an http(s) URL", domain.ErrInvalidInput, settings.API.BaseURL)
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyBaseURL, settings.API.BaseURL},
		{KeyTimeoutSeconds, settings.API.TimeoutSeconds},
		{KeyRequestsPerSecond, settings.API.RequestsPerSecond},
		{KeyExportDir, settings.Export.Dir},
		{KeyExportUseDialog, settings.Export.UseDialog},
		{KeyPreviewMaxWidth, settings.Preview.MaxWidth},
		{KeyPreviewMaxHeight, settings.Preview.MaxHeight},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var parsed any
	switch key {
	case KeyBaseURL:
		if !domain.ValidBaseURL(value) {
			return fmt.Errorf("%w: %s must be an http(s) URL", domain.ErrInvalidInput, key)
		}
		parsed = strings.TrimRight(value, "/")
	case KeyTimeoutSeconds, KeyPreviewMaxWidth, KeyPreviewMaxHeight:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		parsed = n
	case KeyRequestsPerSecond:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		parsed = f
	case KeyExportUseDialog:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		parsed = b
	case KeyExportDir:
		parsed = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the settable keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingsKeys))
	copy(keys, settingsKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getNonNegativeFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetFloat(key)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
