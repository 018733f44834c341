package events

// Lifecycle event types emitted by the slider.
const (
	// EventSlideSet is emitted when a transition begins, before any visual
	// settling. Its payload carries the target index.
	EventSlideSet = "slide-set"
	// EventSlideComplete is emitted once a transition has settled. Its
	// payload carries the committed index.
	EventSlideComplete = "slide-complete"
	// EventAutoSlideComplete follows slide-complete when the transition was
	// triggered by the auto-advance timer.
	EventAutoSlideComplete = "auto-slide-complete"
)

// Event is a significant occurrence within the slider. Events carry
// structured payloads that subscribers can use for logging, navigation
// surfaces, or embedding programs.
type Event interface {
	EventType() string
	Payload() map[string]any
}

// SlideSet announces the start of a transition toward Target.
type SlideSet struct {
	Target int
	From   int
	Auto   bool
}

func (e SlideSet) EventType() string { return EventSlideSet }

func (e SlideSet) Payload() map[string]any {
	return map[string]any{"target": e.Target, "from": e.From, "auto": e.Auto}
}

// SlideComplete announces that a transition has settled on Index.
type SlideComplete struct {
	Index int
}

func (e SlideComplete) EventType() string { return EventSlideComplete }

func (e SlideComplete) Payload() map[string]any {
	return map[string]any{"index": e.Index}
}

// AutoSlideComplete trails SlideComplete for timer-triggered transitions.
type AutoSlideComplete struct {
	Index int
}

func (e AutoSlideComplete) EventType() string { return EventAutoSlideComplete }

func (e AutoSlideComplete) Payload() map[string]any {
	return map[string]any{"index": e.Index}
}
