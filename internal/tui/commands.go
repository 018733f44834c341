package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/carouselkit/carousel/internal/config"
	"github.com/carouselkit/carousel/internal/slider"
	"github.com/carouselkit/carousel/internal/watch"
)

// transitionDuration is the visual gap between slide-set and
// slide-complete.
const transitionDuration = 180 * time.Millisecond

// transitionCmds announces an accepted transition to the program and
// schedules its settle.
func transitionCmds(tr slider.Transition) tea.Cmd {
	return tea.Batch(
		emitCmd(SlideSetMsg{Target: tr.To, From: tr.From, Auto: tr.Auto}),
		settleCmd(tr),
	)
}

// settleCmd delivers the end of one transition's visual gap. The sequence
// number lets a superseded transition's settle arrive harmlessly.
func settleCmd(tr slider.Transition) tea.Cmd {
	return tea.Tick(transitionDuration, func(time.Time) tea.Msg {
		return settleMsg{seq: tr.Seq, auto: tr.Auto}
	})
}

// autoTickCmd schedules one auto-advance firing for the given timer token.
func autoTickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return autoTickMsg{gen: gen}
	})
}

// emitCmd surfaces a lifecycle message to the running program.
func emitCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// watchDeckCmd blocks until the watched deck file changes, then re-parses
// it. Watcher teardown produces no message.
func watchDeckCmd(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		if !w.Wait() {
			return nil
		}
		deck, err := config.ParseDeck(w.Path())
		if err != nil {
			return DeckWatchErrorMsg{Err: err}
		}
		return DeckReloadedMsg{Deck: deck}
	}
}
