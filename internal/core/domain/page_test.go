package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestView_String(t *testing.T) {
	assert.Equal(t, "home", ViewHome.String())
	assert.Equal(t, "output", ViewOutput.String())
	assert.Equal(t, "unknown", View(9).String())
}

func TestPageState_Consistent(t *testing.T) {
	result := &AnalysisResult{}

	tests := []struct {
		name  string
		state PageState
		want  bool
	}{
		{"initial home", PageState{}, true},
		{"output with result", PageState{CurrentView: ViewOutput, ActiveResult: result, ActiveInputMode: InputModeFile}, true},
		{"output without result", PageState{CurrentView: ViewOutput, ActiveInputMode: InputModeFile}, false},
		{"home with result", PageState{ActiveResult: result}, false},
		{"home with mode", PageState{ActiveInputMode: InputModeImage}, false},
		{"output without mode", PageState{CurrentView: ViewOutput, ActiveResult: result}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Consistent())
		})
	}
}
