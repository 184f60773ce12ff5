package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suneye-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
	assert.Equal(t, "http://localhost:8000", settings.API.BaseURL)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyBaseURL, "https://suneye.example.com/")
	_ = store.Set(KeyTimeoutSeconds, int64(30))
	_ = store.Set(KeyRequestsPerSecond, 2.5)
	_ = store.Set(KeyExportDir, "/tmp/exports")
	_ = store.Set(KeyExportUseDialog, true)
	_ = store.Set(KeyPreviewMaxWidth, 64)

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, "https://suneye.example.com", settings.API.BaseURL)
	assert.Equal(t, 30, settings.API.TimeoutSeconds)
	assert.InDelta(t, 2.5, settings.API.RequestsPerSecond, 1e-9)
	assert.Equal(t, "/tmp/exports", settings.Export.Dir)
	assert.True(t, settings.Export.UseDialog)
	assert.Equal(t, 64, settings.Preview.MaxWidth)
	assert.Equal(t, domain.DefaultPreviewMaxHeight, settings.Preview.MaxHeight)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyBaseURL, "ftp://nowhere")
	_ = store.Set(KeyTimeoutSeconds, -5)
	_ = store.Set(KeyRequestsPerSecond, -1.0)

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.API, settings.API)
}

func TestSettingsService_SaveAndGet(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	want := domain.AppSettings{
		API:     domain.APISettings{BaseURL: "http://analysis:9000", TimeoutSeconds: 60, RequestsPerSecond: 1},
		Export:  domain.ExportSettings{Dir: "/srv/out", UseDialog: true},
		Preview: domain.PreviewSettings{MaxWidth: 32, MaxHeight: 16},
	}

	require.NoError(t, service.Save(&want))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestSettingsService_Save_RejectsInvalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.ErrorIs(t, service.Save(nil), domain.ErrInvalidInput)

	bad := domain.DefaultAppSettings()
	bad.API.BaseURL = "localhost:8000"
	assert.ErrorIs(t, service.Save(&bad), domain.ErrInvalidInput)
}

func TestSettingsService_Set(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.Set(KeyBaseURL, "http://10.0.0.5:8000/"))
	require.NoError(t, service.Set(KeyTimeoutSeconds, "45"))
	require.NoError(t, service.Set(KeyRequestsPerSecond, "0.5"))
	require.NoError(t, service.Set(KeyExportUseDialog, "true"))
	require.NoError(t, service.Set(KeyExportDir, " ./out "))
	require.NoError(t, service.Set(KeyPreviewMaxHeight, "12"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:8000", settings.API.BaseURL)
	assert.Equal(t, 45, settings.API.TimeoutSeconds)
	assert.InDelta(t, 0.5, settings.API.RequestsPerSecond, 1e-9)
	assert.True(t, settings.Export.UseDialog)
	assert.Equal(t, "./out", settings.Export.Dir)
	assert.Equal(t, 12, settings.Preview.MaxHeight)
}

func TestSettingsService_Set_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	tests := []struct {
		key   string
		value string
	}{
		{KeyBaseURL, "not a url"},
		{KeyTimeoutSeconds, "0"},
		{KeyTimeoutSeconds, "ten"},
		{KeyRequestsPerSecond, "-2"},
		{KeyExportUseDialog, "maybe"},
		{KeyPreviewMaxWidth, "-1"},
		{"search.mode", "hybrid"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			assert.ErrorIs(t, service.Set(tt.key, tt.value), domain.ErrInvalidInput)
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()

	assert.Len(t, keys, 7)
	assert.Equal(t, KeyBaseURL, keys[0])
	keys[0] = "mutated"
	assert.Equal(t, KeyBaseURL, service.Keys()[0])
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
