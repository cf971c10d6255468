package playlistfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/radar-whisper/radar-whisper/internal/model"
)

// Format identifies a playlist file format
type Format string

const (
	FormatJSON Format = "json"
	FormatM3U  Format = "m3u"
	FormatPLS  Format = "pls"
)

// DetectFormat picks the playlist format from the file extension
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".m3u", ".m3u8":
		return FormatM3U, nil
	case ".pls":
		return FormatPLS, nil
	default:
		return "", fmt.Errorf("unsupported playlist file extension: %s", filepath.Ext(path))
	}
}

// Load reads a playlist file, picking the format by extension. Entries whose
// audio files no longer exist are skipped and reported in the second return
// value; a playlist with no surviving entries is still returned.
func Load(path string) (*model.Playlist, []string, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, nil, err
	}

	switch format {
	case FormatJSON:
		return loadJSON(path)
	case FormatM3U:
		return loadM3U(path)
	default:
		return loadPLS(path)
	}
}

// Save writes the playlist to a file, picking the format by extension
func Save(p *model.Playlist, path string) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		return saveJSON(p, path)
	case FormatM3U:
		return saveM3U(p, path)
	default:
		return savePLS(p, path)
	}
}

// resolvePath turns a playlist entry into an absolute path, treating
// relative entries as relative to the playlist file's directory
func resolvePath(entry, playlistPath string) string {
	if filepath.IsAbs(entry) {
		return entry
	}
	return filepath.Join(filepath.Dir(playlistPath), entry)
}

// playlistName derives a playlist name from the file name
func playlistName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
