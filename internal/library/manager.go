package library

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/radar-whisper/radar-whisper/internal/metadata"
	"github.com/radar-whisper/radar-whisper/internal/model"
	"github.com/radar-whisper/radar-whisper/internal/playlistfile"
)

// Catalog errors returned by Manager operations.
var (
	ErrPlaylistNotFound  = errors.New("playlist not found")
	ErrNoCurrentPlaylist = errors.New("no playlist selected")
)

const (
	// DefaultScanWorkers is the number of goroutines used for parallel
	// metadata extraction during batch ingestion.
	DefaultScanWorkers = 4

	// DefaultPlaylistName is used when a playlist is created without a name.
	DefaultPlaylistName = "New Playlist"
)

// Manager owns every playlist in the catalog and tracks which one is current.
// All methods are safe for concurrent use.
type Manager struct {
	mu        sync.RWMutex
	playlists map[string]*model.Playlist
	order     []string // playlist IDs in creation order
	currentID string

	extractor   metadata.Extractor
	scanWorkers int

	onChange func()
	onError  func(error)
}

// NewManager creates an empty catalog. Tracks added through the manager have
// their metadata read by extractor; workers bounds how many files are scanned
// concurrently (values below 1 fall back to DefaultScanWorkers).
func NewManager(extractor metadata.Extractor, workers int) *Manager {
	if workers < 1 {
		workers = DefaultScanWorkers
	}
	return &Manager{
		playlists:   make(map[string]*model.Playlist),
		extractor:   extractor,
		scanWorkers: workers,
	}
}

// SetChangeCallback registers a function invoked after every catalog mutation.
// It is called without the manager lock held.
func (m *Manager) SetChangeCallback(fn func()) {
	m.mu.Lock()
	m.onChange = fn
	m.mu.Unlock()
}

// SetErrorCallback registers a function invoked for non-fatal ingestion
// problems, such as a playlist file referencing tracks that no longer exist.
func (m *Manager) SetErrorCallback(fn func(error)) {
	m.mu.Lock()
	m.onError = fn
	m.mu.Unlock()
}

// CreatePlaylist adds a new empty playlist to the catalog and makes it current
// if no playlist was selected before.
func (m *Manager) CreatePlaylist(name, description string) *model.Playlist {
	if strings.TrimSpace(name) == "" {
		name = DefaultPlaylistName
	}

	p := model.NewPlaylist(name)
	p.Description = description

	m.mu.Lock()
	m.registerLocked(p)
	m.mu.Unlock()

	m.notifyChange()
	return p
}

// registerLocked inserts p into the catalog. Caller must hold m.mu.
func (m *Manager) registerLocked(p *model.Playlist) {
	m.playlists[p.ID] = p
	m.order = append(m.order, p.ID)
	if m.currentID == "" {
		m.currentID = p.ID
	}
}

// RenamePlaylist changes the display name of a playlist.
func (m *Manager) RenamePlaylist(id, name string) error {
	if strings.TrimSpace(name) == "" {
		name = DefaultPlaylistName
	}

	m.mu.Lock()
	p, ok := m.playlists[id]
	if !ok {
		m.mu.Unlock()
		return ErrPlaylistNotFound
	}
	p.Name = name
	m.mu.Unlock()

	m.notifyChange()
	return nil
}

// DeletePlaylist removes a playlist from the catalog. When the current
// playlist is deleted the selection falls back to the oldest remaining one.
func (m *Manager) DeletePlaylist(id string) error {
	m.mu.Lock()
	if _, ok := m.playlists[id]; !ok {
		m.mu.Unlock()
		return ErrPlaylistNotFound
	}

	delete(m.playlists, id)
	for i, pid := range m.order {
		if pid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if m.currentID == id {
		m.currentID = ""
		if len(m.order) > 0 {
			m.currentID = m.order[0]
		}
	}
	m.mu.Unlock()

	m.notifyChange()
	return nil
}

// Playlists returns every playlist in creation order.
func (m *Manager) Playlists() []*model.Playlist {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*model.Playlist, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.playlists[id])
	}
	return out
}

// Playlist returns the playlist with the given ID.
func (m *Manager) Playlist(id string) (*model.Playlist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.playlists[id]
	if !ok {
		return nil, ErrPlaylistNotFound
	}
	return p, nil
}

// Current returns the currently selected playlist, or nil when the catalog
// is empty.
func (m *Manager) Current() *model.Playlist {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.playlists[m.currentID]
}

// SetCurrent switches the current playlist selection.
func (m *Manager) SetCurrent(id string) error {
	m.mu.Lock()
	if _, ok := m.playlists[id]; !ok {
		m.mu.Unlock()
		return ErrPlaylistNotFound
	}
	m.currentID = id
	m.mu.Unlock()

	m.notifyChange()
	return nil
}

// AddTracks reads metadata for every given file and appends the resulting
// tracks to the playlist, preserving the input order. Metadata extraction runs
// on scanWorkers goroutines; a file whose tags cannot be read is still added
// with fallback metadata, so the returned slice always matches paths in length.
func (m *Manager) AddTracks(playlistID string, paths []string) ([]*model.Track, error) {
	m.mu.RLock()
	_, ok := m.playlists[playlistID]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrPlaylistNotFound
	}
	if len(paths) == 0 {
		return nil, nil
	}

	tracks := m.scanTracks(paths)

	m.mu.Lock()
	p, ok := m.playlists[playlistID]
	if !ok {
		// Playlist deleted while scanning.
		m.mu.Unlock()
		return nil, ErrPlaylistNotFound
	}
	for _, t := range tracks {
		p.AddTrack(t)
	}
	m.mu.Unlock()

	m.notifyChange()
	return tracks, nil
}

// AddTracksToCurrent appends tracks to the current playlist.
func (m *Manager) AddTracksToCurrent(paths []string) ([]*model.Track, error) {
	m.mu.RLock()
	id := m.currentID
	m.mu.RUnlock()
	if id == "" {
		return nil, ErrNoCurrentPlaylist
	}
	return m.AddTracks(id, paths)
}

// scanTracks builds a track per path, extracting metadata in parallel while
// keeping the result in input order.
func (m *Manager) scanTracks(paths []string) []*model.Track {
	tracks := make([]*model.Track, len(paths))

	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := m.scanWorkers
	if workers > len(paths) {
		workers = len(paths)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				tracks[i] = model.NewTrack(paths[i], m.extractor.Extract(paths[i]))
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return tracks
}

// RemoveTrack deletes the track at index from a playlist and returns it.
func (m *Manager) RemoveTrack(playlistID string, index int) (*model.Track, error) {
	m.mu.Lock()
	p, ok := m.playlists[playlistID]
	if !ok {
		m.mu.Unlock()
		return nil, ErrPlaylistNotFound
	}
	t, ok := p.RemoveTrack(index)
	m.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("remove track %d from %q: index out of range", index, playlistID)
	}

	m.notifyChange()
	return t, nil
}

// MoveTrack reorders a track within a playlist.
func (m *Manager) MoveTrack(playlistID string, from, to int) error {
	m.mu.Lock()
	p, ok := m.playlists[playlistID]
	if !ok {
		m.mu.Unlock()
		return ErrPlaylistNotFound
	}
	moved := p.MoveTrack(from, to)
	m.mu.Unlock()

	if !moved {
		return fmt.Errorf("move track %d to %d in %q: index out of range", from, to, playlistID)
	}

	m.notifyChange()
	return nil
}

// ClearPlaylist removes every track from a playlist.
func (m *Manager) ClearPlaylist(id string) error {
	m.mu.Lock()
	p, ok := m.playlists[id]
	if !ok {
		m.mu.Unlock()
		return ErrPlaylistNotFound
	}
	p.Clear()
	m.mu.Unlock()

	m.notifyChange()
	return nil
}

// Search returns the indices of tracks in the current playlist whose title,
// artist or album contains query, case-insensitively. An empty query matches
// every track. The indices are sorted ascending so they can be used directly
// against the playlist's track slice.
func (m *Manager) Search(query string) []int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p := m.playlists[m.currentID]
	if p == nil {
		return nil
	}

	query = strings.ToLower(strings.TrimSpace(query))
	var matches []int
	for i, t := range p.Tracks {
		if query == "" || trackMatches(t, query) {
			matches = append(matches, i)
		}
	}
	sort.Ints(matches)
	return matches
}

func trackMatches(t *model.Track, query string) bool {
	return strings.Contains(strings.ToLower(t.DisplayTitle()), query) ||
		strings.Contains(strings.ToLower(t.Metadata.Artist), query) ||
		strings.Contains(strings.ToLower(t.Metadata.Album), query)
}

// ImportPlaylist loads a playlist file (M3U, PLS or JSON), re-scans metadata
// for every referenced track, registers the playlist in the catalog and makes
// it current. Entries pointing at missing files are skipped and reported via
// the error callback.
func (m *Manager) ImportPlaylist(path string) (*model.Playlist, error) {
	p, skipped, err := playlistfile.Load(path)
	if err != nil {
		return nil, fmt.Errorf("import playlist %s: %w", path, err)
	}
	for _, missing := range skipped {
		m.notifyError(fmt.Errorf("import playlist %s: skipping missing track %s", path, missing))
	}

	// The file carries titles and durations at best; read full tags from
	// the audio files themselves.
	paths := make([]string, len(p.Tracks))
	for i, t := range p.Tracks {
		paths[i] = t.Path
	}
	for i, t := range m.scanTracks(paths) {
		t.ID = p.Tracks[i].ID
		p.Tracks[i] = t
	}

	m.mu.Lock()
	m.registerLocked(p)
	m.currentID = p.ID
	m.mu.Unlock()

	m.notifyChange()
	return p, nil
}

// ExportPlaylist writes a playlist to disk in the format implied by the file
// extension.
func (m *Manager) ExportPlaylist(id, path string) error {
	m.mu.RLock()
	p, ok := m.playlists[id]
	m.mu.RUnlock()
	if !ok {
		return ErrPlaylistNotFound
	}

	if err := playlistfile.Save(p, path); err != nil {
		return fmt.Errorf("export playlist %q: %w", p.Name, err)
	}
	return nil
}

func (m *Manager) notifyChange() {
	m.mu.RLock()
	fn := m.onChange
	m.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

func (m *Manager) notifyError(err error) {
	m.mu.RLock()
	fn := m.onError
	m.mu.RUnlock()
	if fn != nil {
		fn(err)
	}
}
