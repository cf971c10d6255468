package playlistfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/radar-whisper/radar-whisper/internal/model"
)

// touchAudio creates an empty stand-in audio file and returns its path
func touchAudio(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte{}, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func samplePlaylist(t *testing.T, dir string) *model.Playlist {
	t.Helper()
	p := model.NewPlaylist("Road Trip")
	p.AddTrack(model.NewTrack(touchAudio(t, dir, "one.mp3"), model.Metadata{
		Title:    "One",
		Artist:   "Radar",
		Album:    "Whisper",
		Duration: 2 * time.Minute,
	}))
	p.AddTrack(model.NewTrack(touchAudio(t, dir, "two.flac"), model.Metadata{
		Title: "Two",
	}))
	return p
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path      string
		expected  Format
		expectErr bool
	}{
		{"list.json", FormatJSON, false},
		{"list.m3u", FormatM3U, false},
		{"list.M3U8", FormatM3U, false},
		{"list.pls", FormatPLS, false},
		{"list.txt", "", true},
		{"list", "", true},
	}

	for _, test := range tests {
		format, err := DetectFormat(test.path)
		if test.expectErr {
			if err == nil {
				t.Errorf("DetectFormat(%q) should fail", test.path)
			}
			continue
		}
		if err != nil {
			t.Errorf("DetectFormat(%q) failed: %v", test.path, err)
			continue
		}
		if format != test.expected {
			t.Errorf("DetectFormat(%q) = %v, expected %v", test.path, format, test.expected)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{name: "json", file: "list.json"},
		{name: "m3u", file: "list.m3u"},
		{name: "pls", file: "list.pls"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			original := samplePlaylist(t, dir)
			playlistPath := filepath.Join(dir, tt.file)

			if err := Save(original, playlistPath); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			loaded, skipped, err := Load(playlistPath)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if len(skipped) != 0 {
				t.Fatalf("unexpected skipped entries: %v", skipped)
			}

			if loaded.TrackCount() != original.TrackCount() {
				t.Fatalf("loaded %d tracks, expected %d", loaded.TrackCount(), original.TrackCount())
			}
			for i, track := range loaded.Tracks {
				if track.Path != original.Tracks[i].Path {
					t.Errorf("track %d path = %q, expected %q", i, track.Path, original.Tracks[i].Path)
				}
			}

			// Duration survives every format that can carry it
			if loaded.Tracks[0].Metadata.Duration != 2*time.Minute {
				t.Errorf("track 0 duration = %v, expected 2m", loaded.Tracks[0].Metadata.Duration)
			}
		})
	}
}

func TestLoadM3U_ParsesExtInf(t *testing.T) {
	dir := t.TempDir()
	audio := touchAudio(t, dir, "song.mp3")

	content := "#EXTM3U\n#EXTINF:185,Radar - Night Drive\n" + audio + "\n"
	playlistPath := filepath.Join(dir, "mix.m3u")
	if err := os.WriteFile(playlistPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	p, _, err := Load(playlistPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.TrackCount() != 1 {
		t.Fatalf("loaded %d tracks, expected 1", p.TrackCount())
	}

	track := p.Tracks[0]
	if track.Metadata.Title != "Night Drive" {
		t.Errorf("title = %q, expected Night Drive", track.Metadata.Title)
	}
	if track.Metadata.Artist != "Radar" {
		t.Errorf("artist = %q, expected Radar", track.Metadata.Artist)
	}
	if track.Metadata.Duration != 185*time.Second {
		t.Errorf("duration = %v, expected 3m5s", track.Metadata.Duration)
	}
}

func TestLoadM3U_RelativePaths(t *testing.T) {
	dir := t.TempDir()
	touchAudio(t, dir, "song.mp3")

	playlistPath := filepath.Join(dir, "mix.m3u")
	if err := os.WriteFile(playlistPath, []byte("#EXTM3U\nsong.mp3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	p, _, err := Load(playlistPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.TrackCount() != 1 {
		t.Fatalf("loaded %d tracks, expected 1", p.TrackCount())
	}
	if expected := filepath.Join(dir, "song.mp3"); p.Tracks[0].Path != expected {
		t.Errorf("path = %q, expected %q", p.Tracks[0].Path, expected)
	}
}

func TestLoad_SkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	audio := touchAudio(t, dir, "here.mp3")

	content := "#EXTM3U\n" + audio + "\n" + filepath.Join(dir, "gone.mp3") + "\n"
	playlistPath := filepath.Join(dir, "mix.m3u")
	if err := os.WriteFile(playlistPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	p, skipped, err := Load(playlistPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.TrackCount() != 1 {
		t.Errorf("loaded %d tracks, expected 1", p.TrackCount())
	}
	if len(skipped) != 1 {
		t.Errorf("skipped %v, expected one missing entry", skipped)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	if _, _, err := Load("playlist.txt"); err == nil {
		t.Error("Load of an unsupported extension should fail")
	}
}

func TestLoadJSON_PreservesIdentity(t *testing.T) {
	dir := t.TempDir()
	original := samplePlaylist(t, dir)
	playlistPath := filepath.Join(dir, "list.json")

	if err := Save(original, playlistPath); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, _, err := Load(playlistPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.ID != original.ID {
		t.Errorf("playlist ID = %q, expected %q", loaded.ID, original.ID)
	}
	if loaded.Name != "Road Trip" {
		t.Errorf("name = %q, expected Road Trip", loaded.Name)
	}
	if loaded.Tracks[0].ID != original.Tracks[0].ID {
		t.Errorf("track ID should survive the JSON round trip")
	}
}
