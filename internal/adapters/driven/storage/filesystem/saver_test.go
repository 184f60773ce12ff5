package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

func newArtifact(t *testing.T) domain.Artifact {
	t.Helper()
	result, err := domain.NewAnalysisResult([]byte(`{"sample_id":42,"kwh":[1.5,2]}`))
	require.NoError(t, err)
	a, err := domain.NewArtifact(result, time.UnixMilli(1700000000000))
	require.NoError(t, err)
	return a
}

func TestArtifactSaver_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	saver := NewArtifactSaver(dir)
	artifact := newArtifact(t)

	path, err := saver.Save(context.Background(), artifact)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "solar-analysis-1700000000000.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"sample_id\": 42,\n  \"kwh\": [\n    1.5,\n    2\n  ]\n}", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm()&0644)
}

func TestArtifactSaver_DefaultDir(t *testing.T) {
	assert.Equal(t, ".", NewArtifactSaver("").Dir())
}

func TestArtifactSaver_Save_CancelledContext(t *testing.T) {
	saver := NewArtifactSaver(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := saver.Save(ctx, newArtifact(t))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestArtifactSaver_Save_Unwritable(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0600))

	_, err := NewArtifactSaver(file).Save(context.Background(), newArtifact(t))

	assert.ErrorIs(t, err, domain.ErrSaveUnavailable)
}

func TestWriteArtifact_NoFilename(t *testing.T) {
	_, err := WriteArtifact(filepath.Join(t.TempDir(), "x.json"), domain.Artifact{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
