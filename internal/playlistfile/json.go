package playlistfile

import (
	"encoding/json"
	"os"
	"time"

	"github.com/radar-whisper/radar-whisper/internal/model"
)

// jsonPlaylist is the on-disk schema. Only the metadata worth restoring is
// stored per track; everything else is re-read from the audio file.
type jsonPlaylist struct {
	Name        string      `json:"name"`
	ID          string      `json:"id"`
	Description string      `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Tracks      []jsonTrack `json:"tracks"`
}

type jsonTrack struct {
	Path       string `json:"path"`
	ID         string `json:"id,omitempty"`
	Title      string `json:"title,omitempty"`
	Artist     string `json:"artist,omitempty"`
	Album      string `json:"album,omitempty"`
	DurationMS int64  `json:"duration_ms,omitempty"`
}

func saveJSON(p *model.Playlist, path string) error {
	out := jsonPlaylist{
		Name:        p.Name,
		ID:          p.ID,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Tracks:      make([]jsonTrack, 0, len(p.Tracks)),
	}

	for _, track := range p.Tracks {
		out.Tracks = append(out.Tracks, jsonTrack{
			Path:       track.Path,
			ID:         track.ID,
			Title:      track.Metadata.Title,
			Artist:     track.Metadata.Artist,
			Album:      track.Metadata.Album,
			DurationMS: track.Metadata.Duration.Milliseconds(),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func loadJSON(path string) (*model.Playlist, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var in jsonPlaylist
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, nil, err
	}

	p := model.NewPlaylist(in.Name)
	if in.Name == "" {
		p.Name = playlistName(path)
	}
	if in.ID != "" {
		p.ID = in.ID
	}
	p.Description = in.Description
	if !in.CreatedAt.IsZero() {
		p.CreatedAt = in.CreatedAt
	}

	var skipped []string
	for _, jt := range in.Tracks {
		full := resolvePath(jt.Path, path)
		if _, err := os.Stat(full); err != nil {
			skipped = append(skipped, full)
			continue
		}

		track := model.NewTrack(full, model.Metadata{
			Title:    jt.Title,
			Artist:   jt.Artist,
			Album:    jt.Album,
			Duration: time.Duration(jt.DurationMS) * time.Millisecond,
		})
		if jt.ID != "" {
			track.ID = jt.ID
		}
		p.Tracks = append(p.Tracks, track)
	}

	return p, skipped, nil
}
