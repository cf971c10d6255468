package metadata

import (
	"log"
	"os"
	"time"

	"github.com/dhowden/tag"

	"github.com/radar-whisper/radar-whisper/internal/audio"
	"github.com/radar-whisper/radar-whisper/internal/model"
)

// Extractor produces track metadata for a file path. Implementations never
// fail: when a file carries no usable tags they return defaults, so callers
// always get something to display.
type Extractor interface {
	Extract(path string) model.Metadata
}

// FileExtractor reads tags with dhowden/tag and probes the audio stream for
// duration and bitrate. The zero value is usable.
type FileExtractor struct {
	// SkipProbe disables the stream probe; duration and bitrate stay zero.
	// Useful when ingesting very large folders where decode probing per
	// file is too slow.
	SkipProbe bool
}

var _ Extractor = &FileExtractor{}

// NewFileExtractor creates an extractor with stream probing enabled
func NewFileExtractor() *FileExtractor {
	return &FileExtractor{}
}

// Extract reads tags and stream properties for the file. Missing or
// malformed tags degrade to zero values, never to an error.
func (e *FileExtractor) Extract(path string) model.Metadata {
	var md model.Metadata

	f, err := os.Open(path)
	if err != nil {
		log.Printf("metadata: open %s: %v", path, err)
		return md
	}

	m, err := tag.ReadFrom(f)
	if err == nil {
		md.Title = m.Title()
		md.Artist = m.Artist()
		md.Album = m.Album()
		md.Genre = m.Genre()
		md.Year = m.Year()
		md.TrackNumber, _ = m.Track()

		if pic := m.Picture(); pic != nil && len(pic.Data) > 0 {
			md.CoverArt = pic.Data
			md.CoverMIME = pic.MIMEType
		}
	}
	f.Close()

	if !e.SkipProbe {
		md.Duration, md.BitrateKbps = probeStream(path)
	}
	return md
}

// probeStream decodes the stream header to measure duration, then derives
// an average bitrate from the file size. Probe failures are not errors;
// both values simply stay unknown.
func probeStream(path string) (time.Duration, int) {
	streamer, format, err := audio.Decode(path)
	if err != nil {
		log.Printf("metadata: probe %s: %v", path, err)
		return 0, 0
	}
	defer streamer.Close()

	samples := streamer.Len()
	if samples <= 0 || format.SampleRate <= 0 {
		return 0, 0
	}
	duration := format.SampleRate.D(samples)

	info, err := os.Stat(path)
	if err != nil || duration <= 0 {
		return duration, 0
	}

	bits := float64(info.Size()) * 8
	kbps := int(bits / duration.Seconds() / 1000)
	return duration, kbps
}
