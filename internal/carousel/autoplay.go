package carousel

import "time"

const (
	// AutoplayInterval is the reference cadence between automatic advances.
	AutoplayInterval = 1500 * time.Millisecond
	// TransitionDuration is how long adapters should take to tween from one
	// descriptor to the next.
	TransitionDuration = 800 * time.Millisecond
)

// Scheduler advances a State on a fixed interval while autoplay is enabled.
//
// It owns no goroutine or timer. The host loop calls Tick with the current
// time, typically once per frame, so all mutation happens on the host's
// goroutine in the order events were observed.
type Scheduler struct {
	state    *State
	interval time.Duration

	running bool
	armed   bool
	epoch   uint64
	next    time.Time
}

// NewScheduler returns a stopped scheduler for state. A non-positive
// interval selects AutoplayInterval.
func NewScheduler(state *State, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = AutoplayInterval
	}
	return &Scheduler{state: state, interval: interval}
}

func (s *Scheduler) Interval() time.Duration { return s.interval }
func (s *Scheduler) Running() bool { return s.running }

// Start activates the scheduler. The first interval is measured from now.
// Starting a running scheduler is a no-op.
func (s *Scheduler) Start(now time.Time) {
	if s.running {
		return
	}
	s.running = true
	s.armed = false
	if s.state.AutoplayEnabled() {
		s.arm(now)
	}
}

// Stop deactivates the scheduler; no advance happens until Start.
func (s *Scheduler) Stop() {
	s.running = false
	s.armed = false
}

// Tick advances the state when the current interval has elapsed and reports
// whether it did. Autoplay is checked first, so a selection handled before
// this call cancels the pending advance. A re-enable seen since the last call
// restarts the interval from now instead of resuming the old phase.
func (s *Scheduler) Tick(now time.Time) bool {
	if !s.running {
		return false
	}
	if !s.state.AutoplayEnabled() {
		s.armed = false
		return false
	}
	if !s.armed || s.epoch != s.state.epoch {
		s.arm(now)
		return false
	}
	if now.Before(s.next) {
		return false
	}

	s.state.Advance()
	s.next = s.next.Add(s.interval)
	if !now.Before(s.next) {
		// host stalled for more than an interval; re-anchor rather than burst
		s.next = now.Add(s.interval)
	}
	return true
}

// Remaining reports the time left before the next advance. ok is false when
// no advance is pending.
func (s *Scheduler) Remaining(now time.Time) (d time.Duration, ok bool) {
	if !s.running || !s.armed || !s.state.AutoplayEnabled() || s.epoch != s.state.epoch {
		return 0, false
	}
	d = s.next.Sub(now)
	if d < 0 {
		d = 0
	}
	return d, true
}

func (s *Scheduler) arm(now time.Time) {
	s.armed = true
	s.epoch = s.state.epoch
	s.next = now.Add(s.interval)
}
