package playback

import "time"

// Engine is the audio decode/output collaborator. Implementations hold at
// most one open decode pipeline at a time.
//
// Open only acquires: callers must Close the current pipeline before opening
// the next one. The transport service relies on this split to make a track
// switch an explicit release-then-acquire sequence.
type Engine interface {
	// Open acquires a decode/output pipeline for the given file. It fails
	// with an error wrapping ErrDecode for unsupported or corrupted input,
	// leaving no resource held.
	Open(path string) error

	// Play starts output for the open pipeline
	Play()

	// Pause suspends output, keeping the pipeline open
	Pause()

	// Resume continues output after Pause
	Resume()

	// Close releases the open pipeline. Closing with none open is a no-op.
	Close()

	// Seek moves the play position of the open pipeline
	Seek(pos time.Duration) error

	// Position reports the current play position, zero when nothing is open
	Position() time.Duration

	// Duration reports the open track's total length, zero when nothing is open
	Duration() time.Duration

	// SetVolume sets output volume in percent (0-100)
	SetVolume(percent int)

	// SetMuted toggles output muting independently of the volume level
	SetMuted(muted bool)

	// SetFinishedCallback registers the function invoked when the open track
	// plays to its natural end; the latest registration wins. The transport
	// re-registers before every Open. The callback may be invoked from an
	// audio goroutine.
	SetFinishedCallback(fn func())
}
