package model

import "testing"

func TestCountdownState_IsRunning(t *testing.T) {
	tests := []struct {
		state    CountdownState
		expected bool
	}{
		{CountdownIdle, false},
		{CountdownRunning, true},
	}

	for _, test := range tests {
		result := test.state.IsRunning()
		if result != test.expected {
			t.Errorf("CountdownState(%s).IsRunning() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestCountdownState_String(t *testing.T) {
	if CountdownRunning.String() != "Running" {
		t.Errorf("CountdownState.String() = %s, expected Running", CountdownRunning.String())
	}
}
