package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestServer_handleAnalyzeCoordinates(t *testing.T) {
	ctx := context.Background()

	t.Run("submits coordinates", func(t *testing.T) {
		ports, submission, _ := newTestPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := AnalyzeCoordinatesInput{Latitude: " 12.5 ", Longitude: "-3.25"}
		_, output, err := server.handleAnalyzeCoordinates(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "coordinates", output.Mode)
		assert.Equal(t, []string{"7"}, output.SampleIDs)
		assert.NotNil(t, output.Result)

		require.Len(t, submission.envelopes, 1)
		coords, ok := submission.envelopes[0].Coordinates()
		require.True(t, ok)
		assert.Equal(t, "12.5", coords.Latitude)
		assert.Equal(t, "-3.25", coords.Longitude)
	})

	t.Run("missing longitude is not dispatched", func(t *testing.T) {
		ports, submission, _ := newTestPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleAnalyzeCoordinates(ctx, nil, AnalyzeCoordinatesInput{Latitude: "1"})

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, submission.envelopes)
	})

	t.Run("returns transport errors", func(t *testing.T) {
		ports, submission, _ := newTestPorts()
		submission.err = errors.Join(domain.ErrTransport, errors.New("connection refused"))
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleAnalyzeCoordinates(ctx, nil, AnalyzeCoordinatesInput{Latitude: "1", Longitude: "2"})

		assert.ErrorIs(t, err, domain.ErrTransport)
	})
}

func TestServer_handleAnalyzeFile(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to spreadsheet", func(t *testing.T) {
		ports, submission, _ := newTestPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)
		path := writeFile(t, "sites.csv", "lat,lon\n1,2\n")

		_, output, err := server.handleAnalyzeFile(ctx, nil, AnalyzeFileInput{Path: path})

		require.NoError(t, err)
		assert.Equal(t, "file", output.Mode)
		require.Len(t, submission.envelopes, 1)
		file, ok := submission.envelopes[0].File()
		require.True(t, ok)
		assert.Equal(t, "sites.csv", file.File.Name)
		assert.Equal(t, "lat,lon\n1,2\n", string(file.File.Data))
	})

	t.Run("image kind", func(t *testing.T) {
		ports, submission, _ := newTestPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)
		path := writeFile(t, "roof.jpg", "not really a jpeg")

		_, output, err := server.handleAnalyzeFile(ctx, nil, AnalyzeFileInput{Path: path, Kind: "image"})

		require.NoError(t, err)
		assert.Equal(t, "image", output.Mode)
		require.Len(t, submission.envelopes, 1)
		_, ok := submission.envelopes[0].Image()
		assert.True(t, ok)
	})

	t.Run("rejects coordinates kind", func(t *testing.T) {
		ports, submission, _ := newTestPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleAnalyzeFile(ctx, nil, AnalyzeFileInput{Path: "x", Kind: "text"})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, submission.envelopes)
	})

	t.Run("missing file is not dispatched", func(t *testing.T) {
		ports, submission, _ := newTestPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleAnalyzeFile(ctx, nil, AnalyzeFileInput{Path: filepath.Join(t.TempDir(), "nope.csv")})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading")
		assert.Empty(t, submission.envelopes)
	})
}

func TestServer_handleCalculate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns estimate", func(t *testing.T) {
		ports, _, calculation := newTestPorts()
		calculation.result = domain.CalculationResult{
			Outcome:   domain.CalculationFound,
			SampleID:  42,
			DailyKWh:  10.5,
			YearlyKWh: 3832.5,
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleCalculate(ctx, nil, CalculateInput{SampleID: 42})

		require.NoError(t, err)
		assert.Equal(t, []string{"42"}, calculation.queries)
		assert.Equal(t, int64(42), output.SampleID)
		assert.Equal(t, 10.5, output.DailyKWh)
		assert.Equal(t, 3832.5, output.YearlyKWh)
		assert.Contains(t, output.Message, "Estimated Yearly Energy: 3832.5 kWh")
	})

	t.Run("not found is distinct from backend error", func(t *testing.T) {
		ports, _, calculation := newTestPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)

		calculation.result = domain.CalculationResult{Outcome: domain.CalculationNotFound, Err: domain.ErrNotFound}
		_, _, notFound := server.handleCalculate(ctx, nil, CalculateInput{SampleID: 9})

		calculation.result = domain.CalculationResult{Outcome: domain.CalculationTransportError, Err: domain.ErrTransport}
		_, _, transport := server.handleCalculate(ctx, nil, CalculateInput{SampleID: 9})

		require.Error(t, notFound)
		require.Error(t, transport)
		assert.ErrorIs(t, notFound, domain.ErrNotFound)
		assert.ErrorIs(t, transport, domain.ErrTransport)
		assert.Contains(t, notFound.Error(), domain.MessageSampleNotFound)
		assert.Contains(t, transport.Error(), domain.MessageBackendError)
	})
}
