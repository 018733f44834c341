package slider

import (
	"github.com/carouselkit/carousel/internal/events"
	"github.com/carouselkit/carousel/internal/logger"
)

// Params shape the transitions of the index machine. They are re-derived
// whenever the resolved configuration or the slide collection changes.
type Params struct {
	Total    int
	PerView  int
	Step     int
	Infinite bool
}

func (p Params) sanitized() Params {
	if p.PerView < 1 {
		p.PerView = 1
	}
	if p.Step < 1 {
		p.Step = 1
	}
	if p.Total < 0 {
		p.Total = 0
	}
	return p
}

// Transition describes one accepted index change. Seq identifies the
// transition so a settle arriving after a supersede is recognised as stale.
type Transition struct {
	From int
	To   int
	Seq  int
	Auto bool
}

// Machine owns the current slide index and computes valid transitions for
// next/previous/set operations. It is a data-driven transition function, not
// a mode machine: the only state is the index pair plus the shaping Params.
//
// Overlapping transitions follow a supersede policy: a request arriving
// before the prior settle bumps the sequence, so the superseded transition
// never emits slide-complete.
type Machine struct {
	params    Params
	committed int
	logical   int
	seq       int
	inFlight  bool
	auto      bool
	publisher *events.Publisher
	log       *logger.Logger
}

// New constructs a machine positioned at start, clamped into the valid range.
func New(params Params, start int, publisher *events.Publisher, log *logger.Logger) *Machine {
	m := &Machine{
		params:    params.sanitized(),
		publisher: publisher,
		log:       log.Component("slider"),
	}
	m.committed = m.clamp(start)
	m.logical = m.committed
	return m
}

// MaxStart returns the last valid start index. Configurations where PerView
// meets or exceeds Total degrade to a single position at zero.
func (m *Machine) MaxStart() int {
	last := m.params.Total - m.params.PerView
	if last < 0 {
		return 0
	}
	return last
}

// Current returns the committed index, consistent with the last
// slide-complete event. It never reports a mid-transition value.
func (m *Machine) Current() int { return m.committed }

// Target returns the index the machine is heading toward. It equals Current
// when no transition is in flight.
func (m *Machine) Target() int { return m.logical }

// Total returns the slide count.
func (m *Machine) Total() int { return m.params.Total }

// Params returns the shaping parameters.
func (m *Machine) Params() Params { return m.params }

// InFlight reports whether a transition awaits its settle.
func (m *Machine) InFlight() bool { return m.inFlight }

// AtStart reports whether no backward movement is possible.
func (m *Machine) AtStart() bool {
	return !m.params.Infinite && m.logical <= 0
}

// AtEnd reports whether no forward movement is possible.
func (m *Machine) AtEnd() bool {
	return !m.params.Infinite && m.logical >= m.MaxStart()
}

// Next advances by Step, wrapping to zero past the end when infinite and
// clamping otherwise. A clamped no-op returns false and emits nothing.
func (m *Machine) Next() (Transition, bool) {
	return m.advance(m.params.Step, false)
}

// Previous moves back by Step, wrapping to the last start index when
// infinite and clamping to zero otherwise.
func (m *Machine) Previous() (Transition, bool) {
	return m.advance(-m.params.Step, false)
}

// AutoAdvance is Next triggered by the auto-advance timer; its settle emits
// an additional auto-slide-complete event.
func (m *Machine) AutoAdvance() (Transition, bool) {
	return m.advance(m.params.Step, true)
}

// Set jumps to an explicit index. Out-of-range input wraps modulo Total when
// infinite and clamps otherwise; it never fails.
func (m *Machine) Set(index int) (Transition, bool) {
	if m.params.Total == 0 {
		return Transition{}, false
	}
	return m.begin(m.normalize(index), false)
}

// Settle commits the transition identified by seq and emits slide-complete
// (and auto-slide-complete for timer-triggered transitions). A stale or
// unknown seq is ignored and the committed index is left untouched.
func (m *Machine) Settle(seq int) (int, bool) {
	if !m.inFlight || seq != m.seq {
		return m.committed, false
	}

	m.inFlight = false
	m.committed = m.logical
	m.publisher.Publish(events.SlideComplete{Index: m.committed})
	if m.auto {
		m.publisher.Publish(events.AutoSlideComplete{Index: m.committed})
	}
	return m.committed, true
}

// Reconfigure swaps the shaping parameters, clamping the index into the new
// valid range. Clamping here is a layout re-derivation, not a navigation:
// no lifecycle events fire.
func (m *Machine) Reconfigure(params Params) {
	m.params = params.sanitized()
	m.logical = m.clamp(m.logical)
	if !m.inFlight {
		m.committed = m.logical
	} else {
		m.committed = m.clamp(m.committed)
	}
}

func (m *Machine) advance(delta int, auto bool) (Transition, bool) {
	if m.params.Total == 0 {
		return Transition{}, false
	}

	target := m.logical + delta
	last := m.MaxStart()
	switch {
	case target > last:
		if m.params.Infinite {
			target = 0
		} else {
			target = last
		}
	case target < 0:
		if m.params.Infinite {
			target = last
		} else {
			target = 0
		}
	}

	return m.begin(target, auto)
}

func (m *Machine) begin(target int, auto bool) (Transition, bool) {
	if target == m.logical {
		return Transition{}, false
	}

	from := m.logical
	m.seq++
	m.inFlight = true
	m.auto = auto
	m.logical = target

	m.publisher.Publish(events.SlideSet{Target: target, From: from, Auto: auto})
	m.log.WithFields(map[string]any{"from": from, "to": target}).Debug("transition started")

	return Transition{From: from, To: target, Seq: m.seq, Auto: auto}, true
}

// normalize reduces an arbitrary index into the valid start range: floored
// modulo over Total when infinite, plain clamping otherwise.
func (m *Machine) normalize(index int) int {
	if m.params.Infinite && m.params.Total > 0 {
		index = ((index % m.params.Total) + m.params.Total) % m.params.Total
	}
	return m.clamp(index)
}

func (m *Machine) clamp(index int) int {
	if index < 0 {
		return 0
	}
	if last := m.MaxStart(); index > last {
		return last
	}
	return index
}
