package tui

import (
	"github.com/carouselkit/carousel/internal/config"
)

// Lifecycle Messages
//
// These bubble through the Bubble Tea program so embedding models can react
// to the slider. The same events reach non-tea subscribers through the
// events.Publisher, always in slide-set before slide-complete order.

// SlideSetMsg indicates a transition toward Target has begun.
type SlideSetMsg struct {
	Target int
	From   int
	Auto   bool
}

// SlideCompleteMsg indicates a transition has settled on Index.
type SlideCompleteMsg struct {
	Index int
}

// AutoSlideCompleteMsg follows SlideCompleteMsg for timer-triggered
// transitions.
type AutoSlideCompleteMsg struct {
	Index int
}

// Deck Messages

// DeckReloadedMsg carries a freshly parsed deck after the watched file
// changed.
type DeckReloadedMsg struct {
	Deck *config.Deck
}

// DeckWatchErrorMsg reports a watcher or re-parse failure. The running deck
// stays in place.
type DeckWatchErrorMsg struct {
	Err error
}

// internal messages

// settleMsg ends the visual transition gap for one transition generation.
type settleMsg struct {
	seq  int
	auto bool
}

// autoTickMsg is one auto-advance firing for a timer token.
type autoTickMsg struct {
	gen int
}
