package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

// mockAnalysisGateway implements driven.AnalysisGateway for testing.
type mockAnalysisGateway struct {
	result  string
	err     error
	calls   atomic.Int32
	block   chan struct{}
	entered chan struct{}
	last    domain.Envelope
	mu      sync.Mutex
}

func (m *mockAnalysisGateway) Analyze(_ context.Context, env domain.Envelope) (domain.AnalysisResult, error) {
	m.calls.Add(1)
	m.mu.Lock()
	m.last = env
	m.mu.Unlock()
	if m.entered != nil {
		m.entered <- struct{}{}
	}
	if m.block != nil {
		<-m.block
	}
	if m.err != nil {
		return domain.AnalysisResult{}, m.err
	}
	if m.result == "" {
		return domain.AnalysisResult{}, nil
	}
	return domain.NewAnalysisResult([]byte(m.result))
}

func coordinateEnvelope() domain.Envelope {
	return domain.Envelope{
		Mode:    domain.InputModeCoordinates,
		Payload: domain.CoordinatePayload{Latitude: "37.77", Longitude: "-122.42"},
	}
}

func TestSubmissionService_Submit_Success(t *testing.T) {
	gw := &mockAnalysisGateway{result: `{"sample_id": 42, "irradiance": 5.1}`}
	svc := NewSubmissionService(gw)

	result, err := svc.Submit(context.Background(), coordinateEnvelope())

	require.NoError(t, err)
	assert.Equal(t, int32(1), gw.calls.Load())
	assert.Equal(t, []string{"42"}, result.SampleIDs())
	assert.Equal(t, coordinateEnvelope(), gw.last)
	assert.False(t, svc.InFlight())
}

func TestSubmissionService_Submit_TransportError(t *testing.T) {
	gw := &mockAnalysisGateway{err: errors.New("connection refused")}
	svc := NewSubmissionService(gw)

	result, err := svc.Submit(context.Background(), coordinateEnvelope())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, result.IsZero())
	assert.False(t, svc.InFlight())
}

func TestSubmissionService_Submit_KeepsTransportError(t *testing.T) {
	gw := &mockAnalysisGateway{err: domain.ErrTransport}
	svc := NewSubmissionService(gw)

	_, err := svc.Submit(context.Background(), coordinateEnvelope())

	assert.Equal(t, domain.ErrTransport, err)
}

func TestSubmissionService_Submit_EmptyResult(t *testing.T) {
	gw := &mockAnalysisGateway{}
	svc := NewSubmissionService(gw)

	_, err := svc.Submit(context.Background(), coordinateEnvelope())

	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestSubmissionService_Submit_InvalidEnvelope(t *testing.T) {
	gw := &mockAnalysisGateway{result: `{}`}
	svc := NewSubmissionService(gw)

	_, err := svc.Submit(context.Background(), domain.Envelope{Mode: domain.InputModeFile})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, int32(0), gw.calls.Load())
}

func TestSubmissionService_Submit_NoGateway(t *testing.T) {
	svc := NewSubmissionService(nil)

	_, err := svc.Submit(context.Background(), coordinateEnvelope())

	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestSubmissionService_Submit_RejectsConcurrent(t *testing.T) {
	gw := &mockAnalysisGateway{
		result:  `{"ok": true}`,
		block:   make(chan struct{}),
		entered: make(chan struct{}, 1),
	}
	svc := NewSubmissionService(gw)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), coordinateEnvelope())
		done <- err
	}()
	<-gw.entered
	assert.True(t, svc.InFlight())

	_, err := svc.Submit(context.Background(), coordinateEnvelope())
	assert.ErrorIs(t, err, domain.ErrSubmissionInProgress)

	close(gw.block)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), gw.calls.Load())
	assert.False(t, svc.InFlight())
}
