package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, "http://localhost:8000", s.API.BaseURL)
	assert.Equal(t, 120*time.Second, s.API.Timeout())
	assert.Zero(t, s.API.RequestsPerSecond)
	assert.Empty(t, s.Export.Dir)
	assert.False(t, s.Export.UseDialog)
	assert.Equal(t, DefaultPreviewMaxWidth, s.Preview.MaxWidth)
	assert.Equal(t, DefaultPreviewMaxHeight, s.Preview.MaxHeight)
}

func TestValidBaseURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"http://localhost:8000", true},
		{"https://suneye.example.com", true},
		{"localhost:8000", false},
		{"ftp://host", false},
		{"", false},
		{"http://", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidBaseURL(tt.url))
		})
	}
}
