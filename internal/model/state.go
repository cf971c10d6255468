package model

// TransportState represents the state of the playback transport
type TransportState string

const (
	// TransportStopped means no track is loaded and no audio resource is held
	TransportStopped TransportState = "Stopped"

	// TransportPlaying means a track is loaded and audio is being produced
	TransportPlaying TransportState = "Playing"

	// TransportPaused means a track is loaded but audio output is suspended
	TransportPaused TransportState = "Paused"
)

// String returns the string representation of TransportState
func (ts TransportState) String() string {
	return string(ts)
}

// IsActive returns true if the transport holds an audio resource
func (ts TransportState) IsActive() bool {
	return ts == TransportPlaying || ts == TransportPaused
}

// PlaybackMode represents how the sequencer picks the next track
type PlaybackMode string

const (
	// ModeSequential plays tracks in playlist order and stops at the end
	ModeSequential PlaybackMode = "Sequential"

	// ModeShuffle plays tracks in a random order without replacement,
	// reshuffling once every track has been visited
	ModeShuffle PlaybackMode = "Shuffle"

	// ModeRepeatOne repeats the current track indefinitely
	ModeRepeatOne PlaybackMode = "RepeatOne"

	// ModeRepeatAll plays tracks in playlist order and wraps at the end
	ModeRepeatAll PlaybackMode = "RepeatAll"
)

// String returns the string representation of PlaybackMode
func (pm PlaybackMode) String() string {
	return string(pm)
}

// ParsePlaybackMode converts a stored string to a PlaybackMode, falling back
// to ModeSequential for anything unrecognised
func ParsePlaybackMode(s string) PlaybackMode {
	switch PlaybackMode(s) {
	case ModeShuffle:
		return ModeShuffle
	case ModeRepeatOne:
		return ModeRepeatOne
	case ModeRepeatAll:
		return ModeRepeatAll
	default:
		return ModeSequential
	}
}
