package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suneye-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

func TestExportService_Render_MatchesArtifact(t *testing.T) {
	store := memory.NewArtifactStore()
	svc := NewExportService(store)
	svc.now = func() time.Time { return time.UnixMilli(1700000000123) }
	result := mustResult(t, `{"sample_id":42,"panels":[1,2]}`)

	artifact, location, err := svc.Export(context.Background(), result)

	require.NoError(t, err)
	assert.Equal(t, "solar-analysis-1700000000123.json", artifact.Filename)
	assert.Equal(t, "memory://solar-analysis-1700000000123.json", location)
	assert.Equal(t, svc.Render(result), string(artifact.Content))
	assert.Equal(t, "{\n  \"sample_id\": 42,\n  \"panels\": [\n    1,\n    2\n  ]\n}", svc.Render(result))

	saved, ok := store.Get(artifact.Filename)
	require.True(t, ok)
	assert.Equal(t, artifact.Content, saved.Content)
}

func TestExportService_Export_RoundTrip(t *testing.T) {
	svc := NewExportService(memory.NewArtifactStore())
	result := mustResult(t, `{"sample_id":7,"irradiance":5.10,"grid":{"rows":[[1,2],[3,4]],"ok":true,"note":null}}`)

	artifact, _, err := svc.Export(context.Background(), result)
	require.NoError(t, err)

	parsed, err := domain.NewAnalysisResult(artifact.Content)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(result))
}

func TestExportService_Export_Idempotent(t *testing.T) {
	store := memory.NewArtifactStore()
	svc := NewExportService(store)
	now := time.UnixMilli(1700000000000)
	svc.now = func() time.Time { return now }
	result := mustResult(t, `{"samples":[{"sample_id":1,"kwh":3.25}]}`)

	first, _, err := svc.Export(context.Background(), result)
	require.NoError(t, err)
	now = now.Add(1500 * time.Millisecond)
	second, _, err := svc.Export(context.Background(), result)
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content)
	assert.NotEqual(t, first.Filename, second.Filename)
	assert.Equal(t, "solar-analysis-1700000001500.json", second.Filename)
	assert.Len(t, store.List(), 2)
}

func TestExportService_Export_NoResult(t *testing.T) {
	store := memory.NewArtifactStore()
	svc := NewExportService(store)

	_, _, err := svc.Export(context.Background(), domain.AnalysisResult{})

	assert.ErrorIs(t, err, domain.ErrNoActiveResult)
	assert.Empty(t, store.List())
}

func TestExportService_Export_NoSaver(t *testing.T) {
	svc := NewExportService(nil)

	artifact, location, err := svc.Export(context.Background(), mustResult(t, `{}`))

	assert.ErrorIs(t, err, domain.ErrSaveUnavailable)
	assert.Empty(t, location)
	assert.NotEmpty(t, artifact.Filename)
}

func TestExportService_Export_Cancelled(t *testing.T) {
	store := memory.NewArtifactStore()
	store.FailWith(domain.ErrCancelled)
	svc := NewExportService(store)

	_, _, err := svc.Export(context.Background(), mustResult(t, `{}`))

	assert.ErrorIs(t, err, domain.ErrCancelled)
	assert.NotErrorIs(t, err, domain.ErrSaveUnavailable)
}

func TestExportService_Export_SaveFailure(t *testing.T) {
	store := memory.NewArtifactStore()
	store.FailWith(errors.New("disk full"))
	svc := NewExportService(store)

	_, _, err := svc.Export(context.Background(), mustResult(t, `{}`))

	assert.ErrorIs(t, err, domain.ErrSaveUnavailable)
	assert.Contains(t, err.Error(), "disk full")
}
