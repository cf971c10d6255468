package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/radar-whisper/radar-whisper/internal/metadata"
	"github.com/radar-whisper/radar-whisper/internal/model"
)

// stubExtractor derives metadata from the path alone, so tests do not need
// real tagged audio files. Extract may be called from multiple goroutines.
type stubExtractor struct{}

var _ metadata.Extractor = (*stubExtractor)(nil)

func (s *stubExtractor) Extract(path string) model.Metadata {
	name := filepath.Base(path)
	return model.Metadata{
		Title:  "Title of " + name,
		Artist: "Artist of " + name,
		Album:  "Album of " + name,
	}
}

func newTestManager() *Manager {
	return NewManager(&stubExtractor{}, DefaultScanWorkers)
}

// touchAudio creates an empty file and returns its path.
func touchAudio(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
	return path
}

func TestManager_CreatePlaylist(t *testing.T) {
	t.Run("should make the first playlist current", func(t *testing.T) {
		m := newTestManager()

		p := m.CreatePlaylist("Road Trip", "")
		if got := m.Current(); got != p {
			t.Errorf("expected Current() to return the new playlist, got %v", got)
		}
	})

	t.Run("should keep the selection when more playlists are added", func(t *testing.T) {
		m := newTestManager()

		first := m.CreatePlaylist("First", "")
		m.CreatePlaylist("Second", "")
		if got := m.Current(); got != first {
			t.Errorf("expected Current() to stay %q, got %q", first.Name, got.Name)
		}
	})

	t.Run("should substitute a default name for blank input", func(t *testing.T) {
		m := newTestManager()

		p := m.CreatePlaylist("   ", "")
		if p.Name != DefaultPlaylistName {
			t.Errorf("expected name %q, got %q", DefaultPlaylistName, p.Name)
		}
	})

	t.Run("should store the description", func(t *testing.T) {
		m := newTestManager()

		p := m.CreatePlaylist("Road Trip", "Songs for the long drive")
		if p.Description != "Songs for the long drive" {
			t.Errorf("expected description to be stored, got %q", p.Description)
		}
	})
}

func TestManager_DeletePlaylist(t *testing.T) {
	t.Run("should fall back to the oldest playlist when current is deleted", func(t *testing.T) {
		m := newTestManager()
		a := m.CreatePlaylist("A", "")
		b := m.CreatePlaylist("B", "")

		if err := m.SetCurrent(b.ID); err != nil {
			t.Fatalf("SetCurrent failed: %v", err)
		}
		if err := m.DeletePlaylist(b.ID); err != nil {
			t.Fatalf("DeletePlaylist failed: %v", err)
		}
		if got := m.Current(); got != a {
			t.Errorf("expected selection to fall back to %q, got %v", a.Name, got)
		}
	})

	t.Run("should leave no selection when the last playlist is deleted", func(t *testing.T) {
		m := newTestManager()
		a := m.CreatePlaylist("A", "")

		if err := m.DeletePlaylist(a.ID); err != nil {
			t.Fatalf("DeletePlaylist failed: %v", err)
		}
		if got := m.Current(); got != nil {
			t.Errorf("expected no current playlist, got %q", got.Name)
		}
	})

	t.Run("should report unknown playlists", func(t *testing.T) {
		m := newTestManager()

		if err := m.DeletePlaylist("missing"); !errors.Is(err, ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})
}

func TestManager_Playlists(t *testing.T) {
	t.Run("should list playlists in creation order", func(t *testing.T) {
		m := newTestManager()
		names := []string{"First", "Second", "Third"}
		for _, n := range names {
			m.CreatePlaylist(n, "")
		}

		got := m.Playlists()
		if len(got) != len(names) {
			t.Fatalf("expected %d playlists, got %d", len(names), len(got))
		}
		for i, p := range got {
			if p.Name != names[i] {
				t.Errorf("position %d: expected %q, got %q", i, names[i], p.Name)
			}
		}
	})
}

func TestManager_AddTracks(t *testing.T) {
	t.Run("should preserve input order despite parallel scanning", func(t *testing.T) {
		m := newTestManager()
		p := m.CreatePlaylist("Queue", "")

		var paths []string
		for i := 0; i < 20; i++ {
			paths = append(paths, fmt.Sprintf("/music/track-%02d.mp3", i))
		}

		tracks, err := m.AddTracks(p.ID, paths)
		if err != nil {
			t.Fatalf("AddTracks failed: %v", err)
		}
		if len(tracks) != len(paths) {
			t.Fatalf("expected %d tracks, got %d", len(paths), len(tracks))
		}
		for i, track := range p.Tracks {
			if track.Path != paths[i] {
				t.Errorf("position %d: expected path %q, got %q", i, paths[i], track.Path)
			}
			want := "Title of " + filepath.Base(paths[i])
			if track.Metadata.Title != want {
				t.Errorf("position %d: expected title %q, got %q", i, want, track.Metadata.Title)
			}
		}
	})

	t.Run("should reject unknown playlists", func(t *testing.T) {
		m := newTestManager()

		if _, err := m.AddTracks("missing", []string{"/music/a.mp3"}); !errors.Is(err, ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("should require a selection for AddTracksToCurrent", func(t *testing.T) {
		m := newTestManager()

		if _, err := m.AddTracksToCurrent([]string{"/music/a.mp3"}); !errors.Is(err, ErrNoCurrentPlaylist) {
			t.Errorf("expected ErrNoCurrentPlaylist, got %v", err)
		}
	})
}

func TestManager_RemoveAndMoveTrack(t *testing.T) {
	setup := func(t *testing.T) (*Manager, *model.Playlist) {
		t.Helper()
		m := newTestManager()
		p := m.CreatePlaylist("Queue", "")
		if _, err := m.AddTracks(p.ID, []string{"/music/a.mp3", "/music/b.mp3", "/music/c.mp3"}); err != nil {
			t.Fatalf("AddTracks failed: %v", err)
		}
		return m, p
	}

	t.Run("should remove a track by index", func(t *testing.T) {
		m, p := setup(t)

		removed, err := m.RemoveTrack(p.ID, 1)
		if err != nil {
			t.Fatalf("RemoveTrack failed: %v", err)
		}
		if removed.Path != "/music/b.mp3" {
			t.Errorf("expected to remove b.mp3, got %s", removed.Path)
		}
		if p.TrackCount() != 2 {
			t.Errorf("expected 2 tracks left, got %d", p.TrackCount())
		}
	})

	t.Run("should report out of range removals", func(t *testing.T) {
		m, p := setup(t)

		if _, err := m.RemoveTrack(p.ID, 5); err == nil {
			t.Error("expected an error for out of range index")
		}
	})

	t.Run("should reorder tracks", func(t *testing.T) {
		m, p := setup(t)

		if err := m.MoveTrack(p.ID, 0, 2); err != nil {
			t.Fatalf("MoveTrack failed: %v", err)
		}
		want := []string{"/music/b.mp3", "/music/c.mp3", "/music/a.mp3"}
		for i, track := range p.Tracks {
			if track.Path != want[i] {
				t.Errorf("position %d: expected %q, got %q", i, want[i], track.Path)
			}
		}
	})
}

func TestManager_Search(t *testing.T) {
	m := newTestManager()
	p := m.CreatePlaylist("Queue", "")
	if _, err := m.AddTracks(p.ID, []string{
		"/music/Night Drive.mp3",
		"/music/Morning Light.mp3",
		"/music/Drive Home.mp3",
	}); err != nil {
		t.Fatalf("AddTracks failed: %v", err)
	}

	t.Run("should match titles case-insensitively", func(t *testing.T) {
		got := m.Search("drive")
		want := []int{0, 2}
		if len(got) != len(want) {
			t.Fatalf("expected indices %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("expected indices %v, got %v", want, got)
			}
		}
	})

	t.Run("should match every track for an empty query", func(t *testing.T) {
		if got := m.Search("  "); len(got) != 3 {
			t.Errorf("expected 3 matches, got %v", got)
		}
	})

	t.Run("should return nothing without a current playlist", func(t *testing.T) {
		empty := newTestManager()
		if got := empty.Search("drive"); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

func TestManager_ImportExport(t *testing.T) {
	t.Run("should round-trip a playlist through an M3U file", func(t *testing.T) {
		dir := t.TempDir()
		a := touchAudio(t, dir, "a.mp3")
		b := touchAudio(t, dir, "b.mp3")

		m := newTestManager()
		p := m.CreatePlaylist("Mix", "")
		if _, err := m.AddTracks(p.ID, []string{a, b}); err != nil {
			t.Fatalf("AddTracks failed: %v", err)
		}

		out := filepath.Join(dir, "mix.m3u")
		if err := m.ExportPlaylist(p.ID, out); err != nil {
			t.Fatalf("ExportPlaylist failed: %v", err)
		}

		imported, err := m.ImportPlaylist(out)
		if err != nil {
			t.Fatalf("ImportPlaylist failed: %v", err)
		}
		if imported.TrackCount() != 2 {
			t.Fatalf("expected 2 imported tracks, got %d", imported.TrackCount())
		}
		if got := m.Current(); got != imported {
			t.Error("expected the imported playlist to become current")
		}
		// Metadata is re-read from the files, not trusted from the playlist.
		if want := "Title of a.mp3"; imported.Tracks[0].Metadata.Title != want {
			t.Errorf("expected title %q, got %q", want, imported.Tracks[0].Metadata.Title)
		}
	})

	t.Run("should report skipped entries through the error callback", func(t *testing.T) {
		dir := t.TempDir()
		a := touchAudio(t, dir, "a.mp3")

		m := newTestManager()
		p := m.CreatePlaylist("Mix", "")
		if _, err := m.AddTracks(p.ID, []string{a}); err != nil {
			t.Fatalf("AddTracks failed: %v", err)
		}
		out := filepath.Join(dir, "mix.m3u")
		if err := m.ExportPlaylist(p.ID, out); err != nil {
			t.Fatalf("ExportPlaylist failed: %v", err)
		}
		if err := os.Remove(a); err != nil {
			t.Fatalf("failed to remove track file: %v", err)
		}

		var reported []error
		m.SetErrorCallback(func(err error) { reported = append(reported, err) })

		imported, err := m.ImportPlaylist(out)
		if err != nil {
			t.Fatalf("ImportPlaylist failed: %v", err)
		}
		if imported.TrackCount() != 0 {
			t.Errorf("expected 0 tracks, got %d", imported.TrackCount())
		}
		if len(reported) != 1 {
			t.Errorf("expected 1 reported error, got %d", len(reported))
		}
	})

	t.Run("should report unknown playlists on export", func(t *testing.T) {
		m := newTestManager()
		if err := m.ExportPlaylist("missing", "out.m3u"); !errors.Is(err, ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})
}

func TestManager_ChangeCallback(t *testing.T) {
	t.Run("should fire after catalog mutations", func(t *testing.T) {
		m := newTestManager()
		var calls int
		m.SetChangeCallback(func() { calls++ })

		p := m.CreatePlaylist("Queue", "")
		if _, err := m.AddTracks(p.ID, []string{"/music/a.mp3"}); err != nil {
			t.Fatalf("AddTracks failed: %v", err)
		}
		if err := m.RenamePlaylist(p.ID, "Renamed"); err != nil {
			t.Fatalf("RenamePlaylist failed: %v", err)
		}

		if calls != 3 {
			t.Errorf("expected 3 callback invocations, got %d", calls)
		}
	})
}
