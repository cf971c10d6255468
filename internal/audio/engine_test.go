package audio

import (
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

// newTestEngine builds an engine around an output chain without touching the
// sound device.
func newTestEngine() *Engine {
	mixer := &beep.Mixer{}
	return &Engine{
		sampleRate: beep.SampleRate(DefaultSampleRate),
		mixer:      mixer,
		volume:     &effects.Volume{Streamer: mixer, Base: 2},
		percent:    50,
	}
}

func TestEngine_UnmuteKeepsRequestedVolume(t *testing.T) {
	e := newTestEngine()

	e.SetVolume(0)
	if !e.volume.Silent {
		t.Fatal("volume 0 should silence the output")
	}

	// Unmuting must not override the slider sitting at 0
	e.SetMuted(false)
	if !e.volume.Silent {
		t.Error("unmuting at volume 0 should leave the output silent")
	}

	e.SetVolume(25)
	e.SetMuted(true)
	if !e.volume.Silent {
		t.Fatal("muting should silence the output")
	}

	e.SetMuted(false)
	if e.volume.Silent {
		t.Error("unmuting should restore output")
	}
	if e.volume.Volume != -0.5 {
		t.Errorf("volume after unmute = %v, expected -0.5", e.volume.Volume)
	}
}

func TestEngine_MuteSurvivesVolumeChange(t *testing.T) {
	e := newTestEngine()

	e.SetMuted(true)
	e.SetVolume(75)
	if !e.volume.Silent {
		t.Error("changing volume while muted should keep the output silent")
	}

	e.SetMuted(false)
	if e.volume.Silent {
		t.Error("unmuting should restore output")
	}
	if e.volume.Volume != 0.5 {
		t.Errorf("volume after unmute = %v, expected 0.5", e.volume.Volume)
	}
}
