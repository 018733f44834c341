package autoplay

import (
	"time"
)

// Timer schedules repeated auto-advance firings. It owns no goroutine and
// issues no callbacks itself: callers schedule one delayed tick per granted
// generation token and report the tick back through Fire. A token minted
// before the latest Pause, Stop or Reconfigure is stale and its tick is
// rejected, so after Stop no tick can fire.
//
// Pausing restarts the interval from zero on resume.
type Timer struct {
	interval time.Duration
	running  bool
	paused   bool
	gen      int
}

// NewTimer creates a timer for the given interval. A non-positive interval
// disables the timer entirely.
func NewTimer(interval time.Duration) *Timer {
	if interval < 0 {
		interval = 0
	}
	return &Timer{interval: interval}
}

// Enabled reports whether an interval is configured.
func (t *Timer) Enabled() bool { return t.interval > 0 }

// Interval returns the configured firing interval.
func (t *Timer) Interval() time.Duration { return t.interval }

// Running reports whether the timer is active (paused counts as running).
func (t *Timer) Running() bool { return t.running }

// Paused reports whether the timer is suspended by user interaction.
func (t *Timer) Paused() bool { return t.running && t.paused }

// Start activates the timer and mints a token for the first tick. It reports
// false when no interval is configured.
func (t *Timer) Start() (int, bool) {
	if !t.Enabled() {
		return 0, false
	}
	t.running = true
	t.paused = false
	t.gen++
	return t.gen, true
}

// Pause suspends firing without stopping the timer. The outstanding tick
// token is invalidated so a tick scheduled before the pause cannot fire.
func (t *Timer) Pause() {
	if !t.running {
		return
	}
	t.paused = true
	t.gen++
}

// Resume lifts a pause and mints a fresh token, restarting the interval from
// zero. It reports false when the timer is not in a paused state.
func (t *Timer) Resume() (int, bool) {
	if !t.running || !t.paused {
		return 0, false
	}
	t.paused = false
	t.gen++
	return t.gen, true
}

// Stop deactivates the timer. Any outstanding tick token becomes stale.
func (t *Timer) Stop() {
	t.running = false
	t.paused = false
	t.gen++
}

// Reconfigure swaps the interval. Clearing the interval stops the timer; a
// positive interval on a stopped timer starts it, and a changed interval on
// a running timer reschedules with a fresh token. A paused timer keeps its
// pause and picks up the new interval on resume.
func (t *Timer) Reconfigure(interval time.Duration) (int, bool) {
	if interval < 0 {
		interval = 0
	}
	t.interval = interval

	if !t.Enabled() {
		t.Stop()
		return 0, false
	}
	if t.paused {
		t.gen++
		return 0, false
	}
	t.running = true
	t.gen++
	return t.gen, true
}

// Fire validates an arriving tick. A valid tick grants the token for the
// next one; a stale or suppressed tick reports false and schedules nothing.
func (t *Timer) Fire(gen int) (int, bool) {
	if !t.running || t.paused || gen != t.gen {
		return 0, false
	}
	t.gen++
	return t.gen, true
}
