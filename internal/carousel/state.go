package carousel

import (
	"errors"
	"fmt"
)

// MinItems is the smallest ring that can show a focused item with a
// neighbour on each side.
const MinItems = 3

var (
	// ErrOutOfRange is returned for an index outside [0, Len).
	ErrOutOfRange = errors.New("carousel: index out of range")
	// ErrTooFewItems is returned when a ring has fewer than MinItems items.
	ErrTooFewItems = errors.New("carousel: too few items")
)

// State is the mutable part of a carousel: the focused index and whether
// autoplay is on. It is not safe for concurrent use; the owning loop is the
// only writer.
type State struct {
	count    int
	focused  int
	autoplay bool
	// epoch counts false->true autoplay transitions
	epoch uint64
}

// NewState returns a state over count items focused on focused, with
// autoplay enabled.
func NewState(count, focused int) (*State, error) {
	if count < MinItems {
		return nil, fmt.Errorf("%w: have %d, need at least %d", ErrTooFewItems, count, MinItems)
	}
	if focused < 0 || focused >= count {
		return nil, fmt.Errorf("%w: focus %d not in [0, %d]", ErrOutOfRange, focused, count-1)
	}
	return &State{count: count, focused: focused, autoplay: true, epoch: 1}, nil
}

// Len returns the number of items in the ring.
func (s *State) Len() int { return s.count }

// Focused returns the focused index.
func (s *State) Focused() int { return s.focused }

// AutoplayEnabled reports whether the scheduler may advance focus.
func (s *State) AutoplayEnabled() bool { return s.autoplay }

// Advance moves focus one slot forward, wrapping past the last item.
func (s *State) Advance() {
	s.focused = (s.focused + 1) % s.count
}

// SelectItem focuses index and turns autoplay off. Re-selecting the focused
// item still turns autoplay off: any explicit pick means manual control.
func (s *State) SelectItem(index int) error {
	if index < 0 || index >= s.count {
		return fmt.Errorf("%w: select %d not in [0, %d]", ErrOutOfRange, index, s.count-1)
	}
	s.focused = index
	s.autoplay = false
	return nil
}

// ToggleAutoplay flips the autoplay flag.
func (s *State) ToggleAutoplay() {
	s.SetAutoplay(!s.autoplay)
}

// SetAutoplay sets the autoplay flag. Enabling an already enabled carousel
// does nothing.
func (s *State) SetAutoplay(on bool) {
	if on && !s.autoplay {
		s.epoch++
	}
	s.autoplay = on
}
