package audio

import (
	"log"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/radar-whisper/radar-whisper/internal/playback"
)

// Output configuration
const (
	// DefaultSampleRate is the fixed speaker rate; tracks with a different
	// rate are resampled on the fly
	DefaultSampleRate = 44100

	// ResampleQuality is the beep resampler quality setting
	ResampleQuality = 4

	// SpeakerBufferLength is the speaker buffer size as a fraction of a second
	SpeakerBufferLength = time.Second / 10
)

// Engine is the beep-backed implementation of playback.Engine. It holds at
// most one open decode pipeline; the speaker is initialised once and shared
// for the lifetime of the process.
type Engine struct {
	mu sync.Mutex

	sampleRate beep.SampleRate
	mixer      *beep.Mixer
	volume     *effects.Volume

	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	gen      int // increments on every Open/Close, guards stale end callbacks

	percent int  // last requested volume, kept so unmuting restores it
	muted   bool

	finished func()
}

var _ playback.Engine = &Engine{}

// NewEngine initialises the speaker and the shared mixer/volume chain
func NewEngine() (*Engine, error) {
	sr := beep.SampleRate(DefaultSampleRate)

	if err := speaker.Init(sr, sr.N(SpeakerBufferLength)); err != nil {
		return nil, err
	}

	mixer := &beep.Mixer{}
	volume := &effects.Volume{
		Streamer: mixer,
		Base:     2,
		Volume:   0,
		Silent:   false,
	}
	speaker.Play(volume)

	return &Engine{
		sampleRate: sr,
		mixer:      mixer,
		volume:     volume,
		percent:    50, // unity gain, matching the freshly built chain
	}, nil
}

// SetFinishedCallback registers the end-of-track notification
func (e *Engine) SetFinishedCallback(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.finished = fn
}

// Open decodes the file and stages it on the mixer, paused. Callers are
// expected to Close the previous pipeline first; a leftover one is released
// here so the single-pipeline invariant holds regardless.
func (e *Engine) Open(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.streamer != nil {
		log.Printf("audio: open with pipeline still held, releasing %T", e.streamer)
		e.closeLocked()
	}

	streamer, format, err := Decode(path)
	if err != nil {
		return err
	}

	var out beep.Streamer = streamer
	if format.SampleRate != e.sampleRate {
		out = beep.Resample(ResampleQuality, format.SampleRate, e.sampleRate, streamer)
	}

	e.streamer = streamer
	e.format = format
	e.gen++
	gen := e.gen

	e.ctrl = &beep.Ctrl{
		Streamer: out,
		Paused:   true,
	}

	seq := beep.Seq(e.ctrl, beep.Callback(func() {
		// Runs inside the speaker loop; hand off so the transport can call
		// back into the engine without deadlocking on the speaker lock.
		go e.notifyFinished(gen)
	}))

	speaker.Lock()
	e.mixer.Add(seq)
	speaker.Unlock()

	return nil
}

// Play starts output for the open pipeline
func (e *Engine) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setPausedLocked(false)
}

// Pause suspends output, keeping the pipeline open
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setPausedLocked(true)
}

// Resume continues output after Pause
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setPausedLocked(false)
}

func (e *Engine) setPausedLocked(paused bool) {
	if e.ctrl == nil {
		return
	}
	speaker.Lock()
	e.ctrl.Paused = paused
	speaker.Unlock()
}

// Close releases the open pipeline; a no-op when none is held
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closeLocked()
}

func (e *Engine) closeLocked() {
	if e.streamer == nil {
		return
	}

	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()

	if err := e.streamer.Close(); err != nil {
		log.Printf("audio: close streamer: %v", err)
	}

	e.streamer = nil
	e.ctrl = nil
	e.gen++
}

// Seek moves the play position of the open pipeline
func (e *Engine) Seek(pos time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.streamer == nil {
		return nil
	}

	n := e.format.SampleRate.N(pos)
	if n < 0 {
		n = 0
	}
	if max := e.streamer.Len() - 1; n > max && max >= 0 {
		n = max
	}

	speaker.Lock()
	defer speaker.Unlock()
	return e.streamer.Seek(n)
}

// Position reports the current play position
func (e *Engine) Position() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.streamer == nil {
		return 0
	}

	speaker.Lock()
	pos := e.streamer.Position()
	speaker.Unlock()

	return e.format.SampleRate.D(pos)
}

// Duration reports the open track's total length
func (e *Engine) Duration() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.streamer == nil {
		return 0
	}
	return e.format.SampleRate.D(e.streamer.Len())
}

// SetVolume sets output volume in percent (0-100)
func (e *Engine) SetVolume(percent int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.percent = percent
	e.applyVolumeLocked()
}

// SetMuted toggles output muting independently of the volume level
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = muted
	e.applyVolumeLocked()
}

// applyVolumeLocked recomputes the output chain from the stored percent and
// mute flag together, so unmuting restores the last requested level instead
// of whatever the chain happened to hold
func (e *Engine) applyVolumeLocked() {
	silent, vol := volumeLevel(e.percent)

	speaker.Lock()
	e.volume.Silent = silent || e.muted
	e.volume.Volume = vol
	speaker.Unlock()
}

// volumeLevel maps a 0-100 percentage onto the beep logarithmic volume
// scale: 50% is unity gain, 0% is silent.
func volumeLevel(percent int) (silent bool, vol float64) {
	if percent <= 0 {
		return true, 0
	}
	if percent > 100 {
		percent = 100
	}
	return false, float64(percent)/50.0 - 1
}

// notifyFinished forwards the end-of-track event when it belongs to the
// currently open pipeline
func (e *Engine) notifyFinished(gen int) {
	e.mu.Lock()
	if gen != e.gen || e.finished == nil {
		e.mu.Unlock()
		return
	}
	fn := e.finished
	e.mu.Unlock()

	fn()
}
