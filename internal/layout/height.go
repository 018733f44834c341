package layout

import (
	"github.com/carouselkit/carousel/internal/logger"
)

// Unsubscribe stops an observation and releases its resources.
type Unsubscribe func()

// Observable is a content container that reports its rendered height. The
// coordinator depends only on this capability, not on how measurement
// happens. Hosts whose content resizes asynchronously (markdown renderers,
// image placeholders) implement it and hand the container to Attach; the
// built-in widget measures its slides synchronously and feeds Measure
// directly instead.
type Observable interface {
	Observe(callback func(height int)) Unsubscribe
}

// Coordinator keeps the track's rendered height in sync with the active
// slide's content height when flexible height is enabled. Heights written by
// the coordinator itself are suppressed on re-measurement, so observation
// never feeds back into itself.
type Coordinator struct {
	flexible bool
	height   int
	expected int
	hasEcho  bool
	write    func(height int)
	unsub    Unsubscribe
	log      *logger.Logger
}

// NewCoordinator constructs a coordinator that applies heights through
// write. With flexible disabled the coordinator observes nothing and writes
// nothing.
func NewCoordinator(flexible bool, write func(height int), log *logger.Logger) *Coordinator {
	return &Coordinator{
		flexible: flexible,
		write:    write,
		log:      log.Component("layout"),
	}
}

// Height returns the last applied track height.
func (c *Coordinator) Height() int { return c.height }

// Flexible reports whether height coordination is active.
func (c *Coordinator) Flexible() bool { return c.flexible }

// SetFlexible toggles coordination, e.g. after a responsive re-resolution.
// Disabling detaches any current observation.
func (c *Coordinator) SetFlexible(flexible bool) {
	c.flexible = flexible
	if !flexible {
		c.Detach()
	}
}

// Attach observes the given content container, replacing any previous
// observation. The active slide changing means attaching its container.
// Attach is for hosts with an async size source; content whose height is
// known at render time goes through Measure.
func (c *Coordinator) Attach(content Observable) {
	c.Detach()
	if !c.flexible || content == nil {
		return
	}
	c.unsub = content.Observe(c.onMeasure)
}

// Detach stops the current observation. After Detach no measurement callback
// reaches the coordinator.
func (c *Coordinator) Detach() {
	if c.unsub != nil {
		c.unsub()
		c.unsub = nil
	}
}

// Measure feeds a height reading directly, used when the active index
// changes and the new slide's height is already known.
func (c *Coordinator) Measure(height int) {
	c.onMeasure(height)
}

func (c *Coordinator) onMeasure(height int) {
	if !c.flexible || height < 0 {
		return
	}

	// A measurement echoing our own height write is swallowed once.
	if c.hasEcho && height == c.expected {
		c.hasEcho = false
		return
	}

	if height == c.height {
		return
	}

	c.height = height
	c.expected = height
	c.hasEcho = true
	c.log.WithFields(map[string]any{"height": height}).Debug("track height adjusted")
	if c.write != nil {
		c.write(height)
	}
}
