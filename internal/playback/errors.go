package playback

// Error kinds reported by the playback core. All of them are recoverable:
// they are surfaced through the error callback and leave the transport in
// the stopped state, never terminating the process.
const (
	// ErrDecode means a file could not be decoded (unsupported or corrupted)
	ErrDecode = Error("unsupported or corrupted audio file")

	// ErrEmptyPlaylist means a transport command arrived with no tracks queued
	ErrEmptyPlaylist = Error("nothing to play")

	// ErrInvalidIndex means a track index was outside the current queue
	ErrInvalidIndex = Error("track index out of range")
)

// Error represents a playback error.
type Error string

// Error returns the error as a string.
func (e Error) Error() string { return string(e) }
