package model

import (
	"time"

	"github.com/google/uuid"
)

// Playlist represents a user-ordered sequence of tracks
type Playlist struct {
	ID          string
	Name        string
	Description string
	Tracks      []*Track
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPlaylist creates a new empty playlist with the given name
func NewPlaylist(name string) *Playlist {
	now := time.Now()
	return &Playlist{
		ID:        uuid.NewString(),
		Name:      name,
		Tracks:    make([]*Track, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddTrack appends a track to the playlist
func (p *Playlist) AddTrack(track *Track) {
	p.Tracks = append(p.Tracks, track)
	p.UpdatedAt = time.Now()
}

// RemoveTrack removes the track at index and returns it.
// Returns nil, false for an out-of-range index.
func (p *Playlist) RemoveTrack(index int) (*Track, bool) {
	if index < 0 || index >= len(p.Tracks) {
		return nil, false
	}

	track := p.Tracks[index]
	p.Tracks = append(p.Tracks[:index], p.Tracks[index+1:]...)
	p.UpdatedAt = time.Now()
	return track, true
}

// MoveTrack moves the track at from to position to, shifting the tracks in
// between. Returns false when either index is out of range.
func (p *Playlist) MoveTrack(from, to int) bool {
	if from < 0 || from >= len(p.Tracks) || to < 0 || to >= len(p.Tracks) {
		return false
	}
	if from == to {
		return true
	}

	track := p.Tracks[from]
	p.Tracks = append(p.Tracks[:from], p.Tracks[from+1:]...)

	rest := append(make([]*Track, 0, len(p.Tracks)+1), p.Tracks[:to]...)
	rest = append(rest, track)
	p.Tracks = append(rest, p.Tracks[to:]...)

	p.UpdatedAt = time.Now()
	return true
}

// Clear removes every track from the playlist
func (p *Playlist) Clear() {
	p.Tracks = p.Tracks[:0]
	p.UpdatedAt = time.Now()
}

// TrackCount returns the number of tracks in the playlist
func (p *Playlist) TrackCount() int {
	return len(p.Tracks)
}

// IndexOf returns the index of the track with the given ID, or -1
func (p *Playlist) IndexOf(trackID string) int {
	for i, track := range p.Tracks {
		if track.ID == trackID {
			return i
		}
	}
	return -1
}

// TotalDuration returns the summed duration of all tracks. Tracks with an
// unknown duration contribute nothing.
func (p *Playlist) TotalDuration() time.Duration {
	var total time.Duration
	for _, track := range p.Tracks {
		if track.Metadata.Duration > 0 {
			total += track.Metadata.Duration
		}
	}
	return total
}
