package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Placeholder values used when tags are missing or unreadable
const (
	UnknownArtist = "Unknown Artist"
	UnknownAlbum  = "Unknown Album"
)

// Metadata holds the tag and stream information extracted from an audio file
type Metadata struct {
	Title       string
	Artist      string
	Album       string
	Genre       string
	Year        int
	TrackNumber int
	Duration    time.Duration
	BitrateKbps int
	CoverArt    []byte // raw image bytes, nil when the file carries none
	CoverMIME   string // MIME type of CoverArt, e.g. "image/jpeg"
}

// Track represents a single playable audio item. A Track is immutable once
// loaded; re-scanning a file produces a replacement value.
type Track struct {
	ID       string
	Path     string
	Metadata Metadata
	AddedAt  time.Time
}

// NewTrack creates a track for the given file path with a fresh identifier
func NewTrack(path string, md Metadata) *Track {
	return &Track{
		ID:       uuid.NewString(),
		Path:     path,
		Metadata: md,
		AddedAt:  time.Now(),
	}
}

// DisplayTitle returns the tag title, or the file name without extension
func (t *Track) DisplayTitle() string {
	if title := strings.TrimSpace(t.Metadata.Title); title != "" {
		return title
	}

	name := filepath.Base(t.Path)
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}

// DisplayArtist returns the tag artist, or a placeholder
func (t *Track) DisplayArtist() string {
	if artist := strings.TrimSpace(t.Metadata.Artist); artist != "" {
		return artist
	}
	return UnknownArtist
}

// DisplayAlbum returns the tag album, or a placeholder
func (t *Track) DisplayAlbum() string {
	if album := strings.TrimSpace(t.Metadata.Album); album != "" {
		return album
	}
	return UnknownAlbum
}

// DurationString returns the track duration formatted as h:mm:ss or m:ss,
// or "—" when the duration is unknown
func (t *Track) DurationString() string {
	return FormatDuration(t.Metadata.Duration)
}

// BitrateString returns the bitrate as "NNN kbps", or "—" when unknown
func (t *Track) BitrateString() string {
	if t.Metadata.BitrateKbps <= 0 {
		return "—"
	}
	return fmt.Sprintf("%d kbps", t.Metadata.BitrateKbps)
}

// FormatDuration renders a duration as h:mm:ss for durations of an hour or
// more and m:ss otherwise. Unknown (non-positive) durations render as "—".
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "—"
	}

	total := int(d.Round(time.Second).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
