package gesture

// Point is a position in viewport cells.
type Point struct {
	X int
	Y int
}

// Direction is the navigation intent of a committed swipe.
type Direction int

const (
	DirectionNone Direction = iota
	// DirectionNext is a leftward drag: content pulled toward the viewer's left.
	DirectionNext
	// DirectionPrevious is a rightward drag.
	DirectionPrevious
)

// Decision is the outcome of a finished drag sequence.
type Decision struct {
	Commit    bool
	Direction Direction
	Delta     int
}

// Recognizer interprets a pointer drag sequence into a commit-or-cancel
// decision. Only horizontal displacement counts.
//
// The threshold is a MAXIMUM allowed distance: a drag commits only when its
// displacement stays within ThresholdPx. Longer drags are treated as a
// cancelled gesture and snap back with no index change.
type Recognizer struct {
	enabled   bool
	threshold int
	active    bool
	start     Point
	last      Point
}

// NewRecognizer constructs a recognizer. A disabled recognizer ignores every
// drag.
func NewRecognizer(enabled bool, thresholdPx int) *Recognizer {
	if thresholdPx < 0 {
		thresholdPx = 0
	}
	return &Recognizer{enabled: enabled, threshold: thresholdPx}
}

// Configure swaps the enabled flag and threshold, e.g. after a responsive
// re-resolution. An in-progress drag is abandoned.
func (r *Recognizer) Configure(enabled bool, thresholdPx int) {
	if thresholdPx < 0 {
		thresholdPx = 0
	}
	r.enabled = enabled
	r.threshold = thresholdPx
	r.active = false
}

// Start begins tracking a drag. It reports whether tracking actually began,
// which callers use to pause the auto-advance timer.
func (r *Recognizer) Start(p Point) bool {
	if !r.enabled {
		return false
	}
	r.active = true
	r.start = p
	r.last = p
	return true
}

// Move records an intermediate drag position.
func (r *Recognizer) Move(p Point) {
	if !r.active {
		return
	}
	r.last = p
}

// Active reports whether a drag is being tracked.
func (r *Recognizer) Active() bool { return r.active }

// Offset returns the current horizontal displacement of an active drag, for
// rendering the track mid-drag.
func (r *Recognizer) Offset() int {
	if !r.active {
		return 0
	}
	return r.last.X - r.start.X
}

// End finishes the drag and decides commit or cancel. A displacement of zero
// carries no direction and always cancels.
func (r *Recognizer) End(p Point) Decision {
	if !r.active {
		return Decision{}
	}
	r.active = false

	delta := p.X - r.start.X
	abs := delta
	if abs < 0 {
		abs = -abs
	}

	if delta == 0 || abs > r.threshold {
		return Decision{Delta: delta}
	}

	direction := DirectionPrevious
	if delta < 0 {
		direction = DirectionNext
	}
	return Decision{Commit: true, Direction: direction, Delta: delta}
}

// Cancel abandons an in-progress drag without a decision.
func (r *Recognizer) Cancel() {
	r.active = false
}
