package playback

import (
	"math/rand"

	"github.com/radar-whisper/radar-whisper/internal/model"
)

// Sequencer computes the next and previous playback indices for a queue of a
// given length, according to the active playback mode. It keeps the shuffle
// visit order so that shuffle never repeats an index before every index has
// been visited once per cycle.
//
// Sequencer is not safe for concurrent use; the transport service serializes
// access to it.
type Sequencer struct {
	mode  model.PlaybackMode
	order []int // shuffle visit order, empty outside shuffle mode
	pos   int   // position in order, -1 before the first draw
}

// NewSequencer creates a sequencer in the given mode
func NewSequencer(mode model.PlaybackMode) *Sequencer {
	return &Sequencer{mode: mode, pos: -1}
}

// Mode returns the active playback mode
func (s *Sequencer) Mode() model.PlaybackMode {
	return s.mode
}

// SetMode switches the playback mode. Entering shuffle builds a fresh visit
// order starting at the current index so the playing track keeps its place.
func (s *Sequencer) SetMode(mode model.PlaybackMode, current, length int) {
	s.mode = mode
	if mode == model.ModeShuffle {
		s.reshuffle(current, length)
	} else {
		s.order = nil
		s.pos = -1
	}
}

// Reset rebuilds sequencer state after the queue contents changed
func (s *Sequencer) Reset(current, length int) {
	if s.mode == model.ModeShuffle {
		s.reshuffle(current, length)
	}
}

// Next returns the index to play after current. The second return value is
// false when there is nothing further to play: an empty queue, or the end of
// the queue in sequential mode.
func (s *Sequencer) Next(current, length int) (int, bool) {
	if length == 0 {
		return -1, false
	}

	switch s.mode {
	case model.ModeRepeatOne:
		if current < 0 {
			return 0, true
		}
		return current, true

	case model.ModeRepeatAll:
		if current < 0 {
			return 0, true
		}
		return (current + 1) % length, true

	case model.ModeShuffle:
		return s.nextShuffle(current, length), true

	default: // sequential
		next := current + 1
		if next >= length {
			return -1, false
		}
		return next, true
	}
}

// Previous returns the index to play before current. The second return value
// is false when there is no previous track: an empty queue, the start of the
// queue in sequential mode, or the start of the shuffle history.
func (s *Sequencer) Previous(current, length int) (int, bool) {
	if length == 0 {
		return -1, false
	}

	switch s.mode {
	case model.ModeRepeatOne:
		if current < 0 {
			return 0, true
		}
		return current, true

	case model.ModeRepeatAll:
		if current < 0 {
			return length - 1, true
		}
		return (current - 1 + length) % length, true

	case model.ModeShuffle:
		if len(s.order) != length {
			s.reshuffle(current, length)
		}
		if s.pos > 0 {
			s.pos--
			return s.order[s.pos], true
		}
		return -1, false

	default: // sequential
		prev := current - 1
		if prev < 0 {
			return -1, false
		}
		return prev, true
	}
}

// nextShuffle draws the next index from the shuffle order, reshuffling when
// every index has been visited. A reshuffle never hands back the index that
// was just played unless the queue has a single track.
func (s *Sequencer) nextShuffle(current, length int) int {
	if len(s.order) != length {
		s.reshuffle(current, length)
	}

	s.pos++
	if s.pos >= len(s.order) {
		s.reshuffle(-1, length)
		s.pos = 0
		if length > 1 && s.order[0] == current {
			s.order[0], s.order[length-1] = s.order[length-1], s.order[0]
		}
	}
	return s.order[s.pos]
}

// reshuffle rebuilds the shuffle visit order. When head is a valid index it
// is placed first with pos pointing at it, so the playing track anchors the
// new cycle; otherwise pos is left before the first element.
func (s *Sequencer) reshuffle(head, length int) {
	s.order = make([]int, 0, length)
	for i := 0; i < length; i++ {
		if i != head {
			s.order = append(s.order, i)
		}
	}

	rand.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})

	if head >= 0 && head < length {
		s.order = append([]int{head}, s.order...)
		s.pos = 0
	} else {
		s.pos = -1
	}
}
