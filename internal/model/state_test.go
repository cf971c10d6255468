package model

import "testing"

func TestTransportState_IsActive(t *testing.T) {
	tests := []struct {
		state    TransportState
		expected bool
	}{
		{TransportStopped, false},
		{TransportPlaying, true},
		{TransportPaused, true},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("TransportState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestTransportState_String(t *testing.T) {
	state := TransportPlaying
	expected := "Playing"
	result := state.String()

	if result != expected {
		t.Errorf("TransportState.String() = %s, expected %s", result, expected)
	}
}

func TestParsePlaybackMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected PlaybackMode
	}{
		{
			name:     "shuffle round-trips",
			input:    ModeShuffle.String(),
			expected: ModeShuffle,
		},
		{
			name:     "repeat one round-trips",
			input:    ModeRepeatOne.String(),
			expected: ModeRepeatOne,
		},
		{
			name:     "repeat all round-trips",
			input:    ModeRepeatAll.String(),
			expected: ModeRepeatAll,
		},
		{
			name:     "sequential round-trips",
			input:    ModeSequential.String(),
			expected: ModeSequential,
		},
		{
			name:     "empty string falls back to sequential",
			input:    "",
			expected: ModeSequential,
		},
		{
			name:     "garbage falls back to sequential",
			input:    "Backwards",
			expected: ModeSequential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParsePlaybackMode(tt.input)
			if result != tt.expected {
				t.Errorf("ParsePlaybackMode(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}
