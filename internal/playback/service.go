package playback

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/radar-whisper/radar-whisper/internal/model"
)

// Status is a snapshot of the transport reported to the UI after every
// state change.
type Status struct {
	State model.TransportState
	Mode  model.PlaybackMode
	Track *model.Track // nil when the cursor is undefined
	Index int          // -1 when the cursor is undefined
}

// Service is the transport state machine. It owns the playback queue, the
// cursor, and the single audio resource held through the Engine.
//
// Every command locks the service mutex, so no two transport commands are
// ever processed concurrently against the same queue/cursor pair. A track
// switch always releases the current engine pipeline before acquiring the
// next one, and both steps complete (or fail cleanly) before the new state
// is reported.
type Service struct {
	mu sync.Mutex

	engine Engine
	seq    *Sequencer

	tracks []*model.Track
	cursor int
	state  model.TransportState

	// playGen increments on every track switch. The end-of-track callback
	// carries the value current when its pipeline was opened, so an event
	// that raced a user-issued switch is recognised as stale and dropped.
	playGen int

	onChange func(Status)
	onError  func(error)
}

// NewService creates a stopped transport bound to the given engine
func NewService(engine Engine) *Service {
	return &Service{
		engine: engine,
		seq:    NewSequencer(model.ModeSequential),
		cursor: -1,
		state:  model.TransportStopped,
	}
}

// SetUpdateCallback sets the function invoked after every state change.
// The callback runs without the service lock held.
func (s *Service) SetUpdateCallback(fn func(Status)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// SetErrorCallback sets the function invoked when a command fails.
// The callback runs without the service lock held.
func (s *Service) SetErrorCallback(fn func(error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onError = fn
}

// LoadQueue replaces the playback queue. Any playing track is stopped and
// its resource released; the cursor becomes undefined.
func (s *Service) LoadQueue(tracks []*model.Track) {
	s.mu.Lock()
	if s.state.IsActive() {
		s.engine.Close()
	}
	s.tracks = append(make([]*model.Track, 0, len(tracks)), tracks...)
	s.cursor = -1
	s.state = model.TransportStopped
	s.seq.Reset(s.cursor, len(s.tracks))
	notify, status := s.snapshotLocked()
	s.mu.Unlock()

	emit(notify, status)
}

// AppendTracks adds tracks to the end of the queue without interrupting
// whatever is playing. The sequencer is re-anchored at the current track so
// the new tracks take part in the running cycle.
func (s *Service) AppendTracks(tracks []*model.Track) {
	s.mu.Lock()
	s.tracks = append(s.tracks, tracks...)
	s.seq.Reset(s.cursor, len(s.tracks))
	notify, status := s.snapshotLocked()
	s.mu.Unlock()

	emit(notify, status)
}

// Play starts playback. From paused it resumes; from stopped it starts the
// track under the cursor, or the first track the sequencer picks when the
// cursor is undefined. Fails with ErrEmptyPlaylist on an empty queue.
func (s *Service) Play() error {
	s.mu.Lock()

	switch s.state {
	case model.TransportPlaying:
		s.mu.Unlock()
		return nil

	case model.TransportPaused:
		s.engine.Resume()
		s.state = model.TransportPlaying
		notify, status := s.snapshotLocked()
		s.mu.Unlock()
		emit(notify, status)
		return nil
	}

	if len(s.tracks) == 0 {
		s.mu.Unlock()
		return s.report(ErrEmptyPlaylist)
	}

	start := s.cursor
	if start < 0 {
		next, ok := s.seq.Next(-1, len(s.tracks))
		if !ok {
			s.mu.Unlock()
			return s.report(ErrEmptyPlaylist)
		}
		start = next
	}

	return s.startAndUnlock(start)
}

// PlayIndex stops whatever is playing and starts the track at index
func (s *Service) PlayIndex(index int) error {
	s.mu.Lock()

	if len(s.tracks) == 0 {
		s.mu.Unlock()
		return s.report(ErrEmptyPlaylist)
	}
	if index < 0 || index >= len(s.tracks) {
		s.mu.Unlock()
		return s.report(fmt.Errorf("play index %d of %d: %w", index, len(s.tracks), ErrInvalidIndex))
	}

	return s.startAndUnlock(index)
}

// Pause suspends playback; a no-op unless playing
func (s *Service) Pause() {
	s.mu.Lock()
	if s.state != model.TransportPlaying {
		s.mu.Unlock()
		return
	}
	s.engine.Pause()
	s.state = model.TransportPaused
	notify, status := s.snapshotLocked()
	s.mu.Unlock()

	emit(notify, status)
}

// TogglePlayPause pauses when playing, otherwise plays
func (s *Service) TogglePlayPause() error {
	s.mu.Lock()
	playing := s.state == model.TransportPlaying
	s.mu.Unlock()

	if playing {
		s.Pause()
		return nil
	}
	return s.Play()
}

// Stop halts playback and releases the audio resource. The cursor keeps
// pointing at the last selected track.
func (s *Service) Stop() {
	s.mu.Lock()
	if s.state == model.TransportStopped {
		s.mu.Unlock()
		return
	}
	s.engine.Close()
	s.state = model.TransportStopped
	notify, status := s.snapshotLocked()
	s.mu.Unlock()

	emit(notify, status)
}

// Next advances to the sequencer's next track. At the end of the queue in
// sequential mode the transport stops.
func (s *Service) Next() error {
	s.mu.Lock()

	if len(s.tracks) == 0 {
		s.mu.Unlock()
		return s.report(ErrEmptyPlaylist)
	}

	next, ok := s.seq.Next(s.cursor, len(s.tracks))
	if !ok {
		s.stopLockedAndUnlock()
		return nil
	}
	return s.startAndUnlock(next)
}

// Previous steps back to the sequencer's previous track. When there is none
// the current track restarts from the beginning.
func (s *Service) Previous() error {
	s.mu.Lock()

	if len(s.tracks) == 0 {
		s.mu.Unlock()
		return s.report(ErrEmptyPlaylist)
	}

	prev, ok := s.seq.Previous(s.cursor, len(s.tracks))
	if !ok {
		if s.state.IsActive() {
			err := s.engine.Seek(0)
			s.mu.Unlock()
			if err != nil {
				return s.report(fmt.Errorf("restart track: %w", err))
			}
			return nil
		}
		s.mu.Unlock()
		return nil
	}
	return s.startAndUnlock(prev)
}

// SetMode switches the playback mode, rebuilding shuffle state as needed
func (s *Service) SetMode(mode model.PlaybackMode) {
	s.mu.Lock()
	s.seq.SetMode(mode, s.cursor, len(s.tracks))
	notify, status := s.snapshotLocked()
	s.mu.Unlock()

	emit(notify, status)
}

// Mode returns the active playback mode
func (s *Service) Mode() model.PlaybackMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.Mode()
}

// State returns the current transport state
func (s *Service) State() model.TransportState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns the track under the cursor and its index, or nil, -1
func (s *Service) Current() (*model.Track, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor < 0 || s.cursor >= len(s.tracks) {
		return nil, -1
	}
	return s.tracks[s.cursor], s.cursor
}

// QueueLength returns the number of queued tracks
func (s *Service) QueueLength() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tracks)
}

// Seek moves the play position within the current track
func (s *Service) Seek(pos time.Duration) error {
	s.mu.Lock()
	if !s.state.IsActive() {
		s.mu.Unlock()
		return nil
	}
	err := s.engine.Seek(pos)
	s.mu.Unlock()

	if err != nil {
		return s.report(fmt.Errorf("seek: %w", err))
	}
	return nil
}

// Position reports the play position of the current track
func (s *Service) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.IsActive() {
		return 0
	}
	return s.engine.Position()
}

// Duration reports the length of the current track
func (s *Service) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.IsActive() {
		return 0
	}
	return s.engine.Duration()
}

// SetVolume sets output volume in percent (0-100)
func (s *Service) SetVolume(percent int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SetVolume(percent)
}

// SetMuted toggles output muting
func (s *Service) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SetMuted(muted)
}

// RemoveTrack mirrors removal of a queue entry. Removing the playing track
// stops the transport and clears the cursor; removing a track before the
// cursor shifts the cursor so it keeps pointing at the same track.
func (s *Service) RemoveTrack(index int) error {
	s.mu.Lock()

	if index < 0 || index >= len(s.tracks) {
		s.mu.Unlock()
		return s.report(fmt.Errorf("remove index %d of %d: %w", index, len(s.tracks), ErrInvalidIndex))
	}

	s.tracks = append(s.tracks[:index], s.tracks[index+1:]...)

	switch {
	case index == s.cursor:
		if s.state.IsActive() {
			s.engine.Close()
		}
		s.state = model.TransportStopped
		s.cursor = -1
	case index < s.cursor:
		s.cursor--
	}

	s.seq.Reset(s.cursor, len(s.tracks))
	notify, status := s.snapshotLocked()
	s.mu.Unlock()

	emit(notify, status)
	return nil
}

// MoveTrack mirrors reordering of the queue; the cursor follows its track
func (s *Service) MoveTrack(from, to int) error {
	s.mu.Lock()

	if from < 0 || from >= len(s.tracks) || to < 0 || to >= len(s.tracks) {
		s.mu.Unlock()
		return s.report(fmt.Errorf("move %d to %d of %d: %w", from, to, len(s.tracks), ErrInvalidIndex))
	}
	if from == to {
		s.mu.Unlock()
		return nil
	}

	track := s.tracks[from]
	s.tracks = append(s.tracks[:from], s.tracks[from+1:]...)
	rest := append(make([]*model.Track, 0, len(s.tracks)+1), s.tracks[:to]...)
	rest = append(rest, track)
	s.tracks = append(rest, s.tracks[to:]...)

	switch {
	case s.cursor == from:
		s.cursor = to
	case from < s.cursor && to >= s.cursor:
		s.cursor--
	case from > s.cursor && to <= s.cursor:
		s.cursor++
	}

	s.seq.Reset(s.cursor, len(s.tracks))
	notify, status := s.snapshotLocked()
	s.mu.Unlock()

	emit(notify, status)
	return nil
}

// onTrackFinished advances playback when the engine reports the current
// track played to its natural end. gen identifies the pipeline the event
// belongs to; an event whose pipeline was switched away from in the window
// between the engine firing and this handler taking the lock is dropped.
func (s *Service) onTrackFinished(gen int) {
	s.mu.Lock()

	if gen != s.playGen || s.state != model.TransportPlaying {
		s.mu.Unlock()
		return
	}

	next, ok := s.seq.Next(s.cursor, len(s.tracks))
	if !ok {
		s.stopLockedAndUnlock()
		return
	}
	if err := s.startAndUnlock(next); err != nil {
		log.Printf("auto-advance failed: %v", err)
	}
}

// startAndUnlock performs the atomic track switch: release the current
// pipeline, acquire the new one, and only then report the new state. Called
// with the lock held; always unlocks.
func (s *Service) startAndUnlock(index int) error {
	track := s.tracks[index]

	// Release before acquire. Both complete before any state is reported.
	s.engine.Close()

	s.playGen++
	gen := s.playGen
	s.engine.SetFinishedCallback(func() { s.onTrackFinished(gen) })

	if err := s.engine.Open(track.Path); err != nil {
		s.state = model.TransportStopped
		notify, status := s.snapshotLocked()
		s.mu.Unlock()

		emit(notify, status)
		return s.report(fmt.Errorf("open %q: %w", track.DisplayTitle(), err))
	}

	s.engine.Play()
	s.cursor = index
	s.state = model.TransportPlaying
	notify, status := s.snapshotLocked()
	s.mu.Unlock()

	log.Printf("transport: playing %q (index %d)", track.DisplayTitle(), index)
	emit(notify, status)
	return nil
}

// stopLockedAndUnlock releases the pipeline and reports the stopped state.
// Called with the lock held; always unlocks.
func (s *Service) stopLockedAndUnlock() {
	s.engine.Close()
	s.state = model.TransportStopped
	notify, status := s.snapshotLocked()
	s.mu.Unlock()

	emit(notify, status)
}

// snapshotLocked builds a Status for the UI. Called with the lock held.
func (s *Service) snapshotLocked() (func(Status), Status) {
	status := Status{
		State: s.state,
		Mode:  s.seq.Mode(),
		Index: s.cursor,
	}
	if s.cursor >= 0 && s.cursor < len(s.tracks) {
		status.Track = s.tracks[s.cursor]
	}
	return s.onChange, status
}

// report forwards an error to the UI callback and returns it
func (s *Service) report(err error) error {
	s.mu.Lock()
	fn := s.onError
	s.mu.Unlock()

	log.Printf("transport: %v", err)
	if fn != nil {
		fn(err)
	}
	return err
}

func emit(fn func(Status), status Status) {
	if fn != nil {
		fn(status)
	}
}
