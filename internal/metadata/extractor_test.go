package metadata

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeTestWAV writes a minimal valid PCM WAV file (mono, 16-bit, 44100 Hz)
// containing the given number of silent samples.
func writeTestWAV(t *testing.T, path string, samples int) {
	t.Helper()

	const (
		channels      = 1
		sampleRate    = 44100
		bitsPerSample = 16
	)

	dataSize := samples * channels * bitsPerSample / 8
	buf := make([]byte, 0, 44+dataSize)

	u32 := func(v uint32) []byte {
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, v)
		return b
	}
	u16 := func(v uint16) []byte {
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, v)
		return b
	}

	buf = append(buf, []byte("RIFF")...)
	buf = append(buf, u32(uint32(36+dataSize))...)
	buf = append(buf, []byte("WAVE")...)
	buf = append(buf, []byte("fmt ")...)
	buf = append(buf, u32(16)...)
	buf = append(buf, u16(1)...) // PCM
	buf = append(buf, u16(channels)...)
	buf = append(buf, u32(sampleRate)...)
	buf = append(buf, u32(sampleRate*channels*bitsPerSample/8)...)
	buf = append(buf, u16(channels*bitsPerSample/8)...)
	buf = append(buf, u16(bitsPerSample)...)
	buf = append(buf, []byte("data")...)
	buf = append(buf, u32(uint32(dataSize))...)
	buf = append(buf, make([]byte, dataSize)...)

	if err := os.WriteFile(path, buf, 0644); err != nil {
		t.Fatalf("writing test WAV: %v", err)
	}
}

func TestExtract_UntaggedFileProbesStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "silence.wav")
	writeTestWAV(t, path, 44100) // one second

	md := NewFileExtractor().Extract(path)

	// WAV carries no tags: text fields default to empty
	if md.Title != "" || md.Artist != "" {
		t.Errorf("untagged file produced tags: title=%q artist=%q", md.Title, md.Artist)
	}

	if md.Duration != time.Second {
		t.Errorf("probed duration = %v, expected 1s", md.Duration)
	}
	if md.BitrateKbps <= 0 {
		t.Errorf("probed bitrate = %d, expected a positive value", md.BitrateKbps)
	}
}

func TestExtract_MissingFile(t *testing.T) {
	md := NewFileExtractor().Extract(filepath.Join(t.TempDir(), "missing.mp3"))

	// Extraction never fails; everything stays at its zero value
	if md.Title != "" || md.Duration != 0 || md.BitrateKbps != 0 {
		t.Errorf("missing file should produce zero metadata, got %+v", md)
	}
}

func TestExtract_SkipProbe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "silence.wav")
	writeTestWAV(t, path, 44100)

	md := (&FileExtractor{SkipProbe: true}).Extract(path)
	if md.Duration != 0 || md.BitrateKbps != 0 {
		t.Errorf("SkipProbe should leave stream fields unset, got duration=%v bitrate=%d",
			md.Duration, md.BitrateKbps)
	}
}
