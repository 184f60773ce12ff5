package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

func newCalculateServer(t *testing.T, status int, body string) (*httptest.Server, *map[string]any) {
	t.Helper()
	received := map[string]any{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, CalculatePath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &received))
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &received
}

func TestCalculate_Found(t *testing.T) {
	srv, received := newCalculateServer(t, http.StatusOK,
		`{"estimated_kwh_per_day": 10.5, "estimated_kwh_per_year": 3832.5}`)
	c := NewClient(Config{BaseURL: srv.URL})

	est, err := c.Calculate(context.Background(), domain.CalculationQuery{SampleID: 42})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"sample_id": float64(42)}, *received)
	assert.Equal(t, int64(42), est.SampleID)
	assert.InDelta(t, 10.5, est.DailyKWh, 1e-9)
	assert.InDelta(t, 3832.5, est.YearlyKWh, 1e-9)
}

func TestCalculate_Outcomes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"404 with error body", http.StatusNotFound, `{"error": "Sample not found"}`, domain.ErrNotFound},
		{"404 without body", http.StatusNotFound, ``, domain.ErrNotFound},
		{"200 with error field", http.StatusOK, `{"error": "unknown sample"}`, domain.ErrNotFound},
		{"500 with error field", http.StatusInternalServerError, `{"error": "no such row"}`, domain.ErrNotFound},
		{"500 non-JSON", http.StatusInternalServerError, `Internal Server Error`, domain.ErrTransport},
		{"200 non-JSON", http.StatusOK, `ok`, domain.ErrTransport},
		{"200 missing fields", http.StatusOK, `{"estimated_kwh_per_day": 1}`, domain.ErrTransport},
		{"200 empty error string", http.StatusOK, `{"error": "", "estimated_kwh_per_day": 1}`, domain.ErrTransport},
		{"503 JSON without error", http.StatusServiceUnavailable, `{"status": "down"}`, domain.ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newCalculateServer(t, tt.status, tt.body)
			c := NewClient(Config{BaseURL: srv.URL})

			est, err := c.Calculate(context.Background(), domain.CalculationQuery{SampleID: 7})

			assert.Nil(t, est)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCalculate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	c := NewClient(Config{BaseURL: url})

	_, err := c.Calculate(context.Background(), domain.CalculationQuery{SampleID: 1})

	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestCalculateResponse_HasError(t *testing.T) {
	assert.False(t, calculateResponse{}.hasError())
	assert.False(t, calculateResponse{Error: json.RawMessage(`null`)}.hasError())
	assert.False(t, calculateResponse{Error: json.RawMessage(`""`)}.hasError())
	assert.True(t, calculateResponse{Error: json.RawMessage(`"nope"`)}.hasError())
	assert.True(t, calculateResponse{Error: json.RawMessage(`{"code": 4}`)}.hasError())
}
