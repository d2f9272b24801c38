package narrator

import "testing"

// TestStateTypeString tests the String() method for StateType.
func TestStateTypeString(t *testing.T) {
	tests := []struct {
		state    StateType
		expected string
	}{
		{StateIdle, "idle"},
		{StateLoading, "loading"},
		{StatePlaying, "playing"},
		{StatePaused, "paused"},
		{StateDone, "done"},
		{StateError, "error"},
		{StateType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.state.String(); got != tt.expected {
				t.Errorf("StateType.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestStateTypeActive tests the Active() predicate.
func TestStateTypeActive(t *testing.T) {
	tests := []struct {
		state    StateType
		expected bool
	}{
		{StatePlaying, true},
		{StatePaused, true},
		{StateIdle, false},
		{StateLoading, false},
		{StateDone, false},
		{StateError, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.Active(); got != tt.expected {
				t.Errorf("%v.Active() = %v, want %v", tt.state, got, tt.expected)
			}
		})
	}
}

// TestStateTypeTerminal tests the Terminal() predicate.
func TestStateTypeTerminal(t *testing.T) {
	tests := []struct {
		state    StateType
		expected bool
	}{
		{StateDone, true},
		{StateError, true},
		{StateIdle, false},
		{StatePlaying, false},
		{StatePaused, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.Terminal(); got != tt.expected {
				t.Errorf("%v.Terminal() = %v, want %v", tt.state, got, tt.expected)
			}
		})
	}
}
