package messages

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
)

// TestViewType_String tests the String method of ViewType
func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewHome, "home"},
		{ViewOutput, "output"},
		{ViewType(99), "unknown"},
		{ViewType(-1), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestViewType_HomeIsZeroValue(t *testing.T) {
	var v ViewType
	assert.Equal(t, ViewHome, v)
}

func TestSubmissionCompleted_CarriesTicket(t *testing.T) {
	result, err := domain.NewAnalysisResult([]byte(`{"samples":[]}`))
	require.NoError(t, err)

	ticket := domain.Ticket{ID: "t-1", Mode: domain.InputModeImage, IssuedAt: time.Unix(10, 0)}
	msg := SubmissionCompleted{Ticket: ticket, Result: result}

	assert.Equal(t, "t-1", msg.Ticket.ID)
	assert.Equal(t, domain.InputModeImage, msg.Ticket.Mode)
	assert.False(t, msg.Result.IsZero())
	assert.NoError(t, msg.Err)
}

func TestSubmitRequested_KeepsAllFields(t *testing.T) {
	msg := SubmitRequested{
		Mode: domain.InputModeCoordinates,
		Fields: domain.InputFields{
			Latitude:  "12.97",
			Longitude: "77.59",
			File:      &domain.Blob{Name: "sites.xlsx"},
		},
	}

	// Fields of other modes travel along untouched; the builder ignores them.
	assert.True(t, msg.Fields.Ready(domain.InputModeCoordinates))
	assert.True(t, msg.Fields.Ready(domain.InputModeFile))
	assert.False(t, msg.Fields.Ready(domain.InputModeImage))
}

func TestCalculationCompleted_Session(t *testing.T) {
	msg := CalculationCompleted{
		Session: 3,
		Result:  domain.CalculationResult{Outcome: domain.CalculationNotFound, Err: domain.ErrNotFound},
	}

	assert.Equal(t, 3, msg.Session)
	assert.False(t, msg.Result.Found())
	assert.ErrorIs(t, msg.Result.Err, domain.ErrNotFound)
}

func TestErrorOccurred(t *testing.T) {
	err := errors.New("boom")
	msg := ErrorOccurred{Err: err}
	assert.Equal(t, err, msg.Err)
}

// TestMessagesAreTeaMsgs ensures every message can travel through a tea.Cmd.
func TestMessagesAreTeaMsgs(t *testing.T) {
	msgs := []tea.Msg{
		SubmitRequested{},
		SubmissionCompleted{},
		BackRequested{},
		BlobLoaded{},
		PreviewReady{},
		ExportOpened{},
		ExportCompleted{},
		CalculationOpened{},
		CalculationCompleted{},
		ModalClosed{},
		ErrorOccurred{},
		Quit{},
	}

	for _, m := range msgs {
		cmd := func() tea.Msg { return m }
		assert.Equal(t, m, cmd())
	}
}
