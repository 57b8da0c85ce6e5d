package carousel

import (
	"fmt"
	"sort"
	"time"
)

// Placement is one item of a Frame.
type Placement struct {
	ID         string
	Index      int
	Offset     int
	Descriptor Descriptor
}

// Frame is everything an adapter needs for one repaint. Items covers every
// item in collection order, hidden ones included, so adapters can animate
// them out.
type Frame struct {
	Items           []Placement
	Focused         int
	AutoplayEnabled bool
}

// FocusedID returns the id of the focused item.
func (f Frame) FocusedID() string {
	return f.Items[f.Focused].ID
}

// Visible returns the visible placements in collection order.
func (f Frame) Visible() []Placement {
	out := make([]Placement, 0, 3)
	for _, p := range f.Items {
		if p.Descriptor.Visible {
			out = append(out, p)
		}
	}
	return out
}

// Options configures New. The zero value focuses the first item, uses
// AutoplayInterval and DefaultPolicy.
type Options struct {
	Focused  int
	Interval time.Duration
	Policy   *Policy
}

// Carousel ties a State, its single Scheduler and a Policy together over a
// fixed list of item ids.
type Carousel struct {
	ids    []string
	state  *State
	sched  *Scheduler
	policy Policy
}

// New builds a carousel over ids. Ids must be unique.
func New(ids []string, opts Options) (*Carousel, error) {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("carousel: duplicate item id %q", id)
		}
		seen[id] = struct{}{}
	}

	state, err := NewState(len(ids), opts.Focused)
	if err != nil {
		return nil, err
	}

	policy := DefaultPolicy
	if opts.Policy != nil {
		policy = *opts.Policy
	}

	return &Carousel{
		ids:    append([]string(nil), ids...),
		state:  state,
		sched:  NewScheduler(state, opts.Interval),
		policy: policy,
	}, nil
}

// Len, Focused and AutoplayEnabled read through to the state; Interval is the
// scheduler's period.
func (c *Carousel) Len() int { return len(c.ids) }
func (c *Carousel) Focused() int { return c.state.Focused() }
func (c *Carousel) AutoplayEnabled() bool { return c.state.AutoplayEnabled() }
func (c *Carousel) Interval() time.Duration { return c.sched.Interval() }

// Frame derives the per-item descriptors for the current state.
func (c *Carousel) Frame() Frame {
	n := len(c.ids)
	focused := c.state.Focused()
	items := make([]Placement, n)
	for i, id := range c.ids {
		off := Offset(n, focused, i)
		items[i] = Placement{
			ID:         id,
			Index:      i,
			Offset:     off,
			Descriptor: c.policy.Describe(off),
		}
	}
	return Frame{
		Items:           items,
		Focused:         focused,
		AutoplayEnabled: c.state.AutoplayEnabled(),
	}
}

// OnItemActivated handles a click or tap on item index.
func (c *Carousel) OnItemActivated(index int) error {
	return c.state.SelectItem(index)
}

// OnAutoplayToggleRequested handles the autoplay toggle control.
func (c *Carousel) OnAutoplayToggleRequested() {
	c.state.ToggleAutoplay()
}

// Step selects the item delta slots away from the focused one, wrapping
// around the ring. It counts as a selection and stops autoplay.
func (c *Carousel) Step(delta int) error {
	n := len(c.ids)
	return c.state.SelectItem(((c.state.Focused()+delta)%n + n) % n)
}

func (c *Carousel) Start(now time.Time) { c.sched.Start(now) }
func (c *Carousel) Stop() { c.sched.Stop() }
func (c *Carousel) Running() bool { return c.sched.Running() }
func (c *Carousel) Tick(now time.Time) bool { return c.sched.Tick(now) }

// Remaining reports the time until the next automatic advance.
func (c *Carousel) Remaining(now time.Time) (time.Duration, bool) {
	return c.sched.Remaining(now)
}

// PaintOrder returns placements back to front: ascending stack, then by
// distance from the centre descending so nearer items land on top, then by
// index. Hit testing walks it in reverse.
func PaintOrder(items []Placement) []Placement {
	out := append([]Placement(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Descriptor.Stack != b.Descriptor.Stack {
			return a.Descriptor.Stack < b.Descriptor.Stack
		}
		if da, db := abs(a.Offset), abs(b.Offset); da != db {
			return da > db
		}
		return a.Index < b.Index
	})
	return out
}
