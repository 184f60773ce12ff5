package domain

import (
	"net/url"
	"time"
)

const unknownDescription = "Unknown"

// Default settings values.
const (
	DefaultBaseURL          = "http://localhost:8000"
	DefaultTimeoutSeconds   = 120
	DefaultPreviewMaxWidth  = 48
	DefaultPreviewMaxHeight = 24
)

// APISettings holds the analysis service connection settings.
type APISettings struct {
	// BaseURL is the scheme://host:port of the analysis service.
	BaseURL string

	// TimeoutSeconds bounds each request.
	TimeoutSeconds int

	// RequestsPerSecond throttles outgoing calls. Zero disables the limiter.
	RequestsPerSecond float64
}

// Timeout returns the request timeout as a duration.
func (s APISettings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// ExportSettings holds artifact export configuration.
type ExportSettings struct {
	// Dir is where artifacts are written. Empty means the working directory.
	Dir string

	// UseDialog asks the user for a location with a native save dialog.
	UseDialog bool
}

// PreviewSettings bounds the image preview, in terminal cells.
type PreviewSettings struct {
	MaxWidth  int
	MaxHeight int
}

// AppSettings holds all application settings.
type AppSettings struct {
	API     APISettings
	Export  ExportSettings
	Preview PreviewSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Preview: PreviewSettings{
			MaxWidth:  DefaultPreviewMaxWidth,
			MaxHeight: DefaultPreviewMaxHeight,
		},
	}
}

// ValidBaseURL reports whether s is an absolute http(s) URL.
func ValidBaseURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
