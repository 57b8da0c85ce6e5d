// Package tween interpolates carousel descriptors between focus changes.
//
// The carousel core only publishes target descriptors; an Animator keeps the
// transient per-item motion, keyed by item id, for the lifetime of one render
// surface.
package tween

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/sliding-scale/internal/carousel"
)

// Mode selects how an Animator moves between descriptors.
type Mode int

const (
	// Eased runs a fixed-duration transition along Ease.
	Eased Mode = iota
	// Spring follows a damped spring and settles in its own time.
	Spring
)

// ParseMode maps "ease" and "spring" to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "ease", "":
		return Eased, true
	case "spring":
		return Spring, true
	}
	return Eased, false
}

func (m Mode) String() string {
	if m == Spring {
		return "spring"
	}
	return "ease"
}

const (
	springFPS       = 60
	springFrequency = 7.0
	springDamping   = 0.85
	springEpsilon   = 1e-3
	// beyond this many pending spring steps the track snaps to its target
	maxCatchUp = 120
)

type track struct {
	from, to carousel.Descriptor
	start    time.Time

	// spring state: scale, lateral, opacity
	pos  [3]float64
	vel  [3]float64
	last time.Time
}

// Animator owns one track per item id. Not safe for concurrent use.
type Animator struct {
	mode     Mode
	duration time.Duration
	ease     func(float64) float64

	spring harmonica.Spring
	step   time.Duration

	tracks map[string]*track
}

// NewAnimator returns an animator. duration only applies to Eased; a
// non-positive value selects carousel.TransitionDuration.
func NewAnimator(mode Mode, duration time.Duration) *Animator {
	if duration <= 0 {
		duration = carousel.TransitionDuration
	}
	return &Animator{
		mode:     mode,
		duration: duration,
		ease:     Ease,
		spring:   harmonica.NewSpring(harmonica.FPS(springFPS), springFrequency, springDamping),
		step:     time.Second / springFPS,
		tracks:   make(map[string]*track),
	}
}

// Mode reports how the animator moves.
func (a *Animator) Mode() Mode { return a.mode }

// Reset drops every track; the next Retarget of each id snaps.
func (a *Animator) Reset() {
	a.tracks = make(map[string]*track)
}

// Retarget starts moving id toward target from wherever it is at now. The
// first target seen for an id is applied immediately.
func (a *Animator) Retarget(id string, target carousel.Descriptor, now time.Time) {
	t, ok := a.tracks[id]
	if !ok {
		a.tracks[id] = &track{
			from:  target,
			to:    target,
			start: now,
			pos:   [3]float64{target.Scale, target.Lateral, target.Opacity},
			last:  now,
		}
		return
	}
	if t.to == target {
		return
	}

	cur := a.sample(t, now)
	t.from = cur
	t.to = target
	t.start = now
	t.last = now
}

// Sync retargets every placement of a frame.
func (a *Animator) Sync(items []carousel.Placement, now time.Time) {
	for _, p := range items {
		a.Retarget(p.ID, p.Descriptor, now)
	}
}

// Sample returns the descriptor of id at now. ok is false for unknown ids.
func (a *Animator) Sample(id string, now time.Time) (d carousel.Descriptor, ok bool) {
	t, ok := a.tracks[id]
	if !ok {
		return carousel.Descriptor{}, false
	}
	return a.sample(t, now), true
}

// Settled reports whether every track has reached its target.
func (a *Animator) Settled(now time.Time) bool {
	for _, t := range a.tracks {
		if !a.settled(t, now) {
			return false
		}
	}
	return true
}

func (a *Animator) settled(t *track, now time.Time) bool {
	if a.mode == Spring {
		a.advanceSpring(t, now)
		target := [3]float64{t.to.Scale, t.to.Lateral, t.to.Opacity}
		for i := range t.pos {
			if math.Abs(t.pos[i]-target[i]) > springEpsilon || math.Abs(t.vel[i]) > springEpsilon {
				return false
			}
		}
		return true
	}
	return t.from == t.to || !now.Before(t.start.Add(a.duration))
}

func (a *Animator) sample(t *track, now time.Time) carousel.Descriptor {
	if a.settled(t, now) {
		return t.to
	}

	d := carousel.Descriptor{
		Stack:   t.to.Stack,
		Visible: t.from.Visible || t.to.Visible,
	}
	if a.mode == Spring {
		d.Scale, d.Lateral, d.Opacity = t.pos[0], t.pos[1], clamp01(t.pos[2])
		if d.Scale < 0 {
			d.Scale = 0
		}
		return d
	}

	p := a.ease(float64(now.Sub(t.start)) / float64(a.duration))
	d.Scale = lerp(t.from.Scale, t.to.Scale, p)
	d.Lateral = lerp(t.from.Lateral, t.to.Lateral, p)
	d.Opacity = clamp01(lerp(t.from.Opacity, t.to.Opacity, p))
	return d
}

func (a *Animator) advanceSpring(t *track, now time.Time) {
	target := [3]float64{t.to.Scale, t.to.Lateral, t.to.Opacity}
	steps := int(now.Sub(t.last) / a.step)
	if steps <= 0 {
		return
	}
	if steps > maxCatchUp {
		t.pos = target
		t.vel = [3]float64{}
		t.last = now
		return
	}
	for s := 0; s < steps; s++ {
		for i := range t.pos {
			t.pos[i], t.vel[i] = a.spring.Update(t.pos[i], t.vel[i], target[i])
		}
	}
	t.last = t.last.Add(time.Duration(steps) * a.step)
}
