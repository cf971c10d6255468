package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"

	"github.com/radar-whisper/radar-whisper/internal/playback"
)

// SupportedExtensions lists the audio file extensions the engine can decode
var SupportedExtensions = []string{".mp3", ".wav", ".flac", ".ogg", ".oga"}

// IsSupported reports whether the file extension maps to a known decoder
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// Decode opens the file and picks a decoder by extension. Failures are
// reported as errors wrapping playback.ErrDecode so callers can classify
// them without knowing the decoder stack.
func Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open %s: %w", path, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	case ".ogg", ".oga":
		streamer, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("%s: %w", filepath.Ext(path), playback.ErrDecode)
	}

	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %v: %w", path, err, playback.ErrDecode)
	}
	return streamer, format, nil
}
