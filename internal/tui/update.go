package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/carouselkit/carousel/internal/config"
	"github.com/carouselkit/carousel/internal/gesture"
	"github.com/carouselkit/carousel/internal/responsive"
	"github.com/carouselkit/carousel/internal/tui/components"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cfg := m.resolver.Resolve(m.base, m.width)
		if cfg != m.cfg {
			return m, m.applyConfig(cfg)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case settleMsg:
		index, ok := m.machine.Settle(msg.seq)
		if !ok {
			return m, nil
		}
		m.coordinator.Measure(m.activeContentHeight())
		cmds := []tea.Cmd{emitCmd(SlideCompleteMsg{Index: index})}
		if msg.auto {
			cmds = append(cmds, emitCmd(AutoSlideCompleteMsg{Index: index}))
		}
		return m, tea.Batch(cmds...)

	case autoTickMsg:
		next, ok := m.timer.Fire(msg.gen)
		if !ok {
			return m, nil
		}
		cmds := []tea.Cmd{autoTickCmd(next, m.timer.Interval())}
		if tr, moved := m.machine.AutoAdvance(); moved {
			cmds = append(cmds, transitionCmds(tr))
		}
		return m, tea.Batch(cmds...)

	case tea.FocusMsg:
		if gen, ok := m.timer.Resume(); ok {
			return m, autoTickCmd(gen, m.timer.Interval())
		}
		return m, nil

	case tea.BlurMsg:
		m.timer.Pause()
		return m, nil

	case DeckReloadedMsg:
		return m.handleReload(msg.Deck)

	case DeckWatchErrorMsg:
		m.watchNote = msg.Err.Error()
		m.log.Error(msg.Err, "deck reload failed, keeping current deck")
		return m, watchDeckCmd(m.watcher)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Previous):
		return m, m.Previous()

	case key.Matches(msg, m.keys.Next):
		return m, m.Next()

	case key.Matches(msg, m.keys.First):
		return m, m.SetCurrentSlide(0)

	case key.Matches(msg, m.keys.Last):
		return m, m.SetCurrentSlide(m.machine.MaxStart())

	case key.Matches(msg, m.keys.Pause):
		if gen, ok := m.timer.Resume(); ok {
			return m, autoTickCmd(gen, m.timer.Interval())
		}
		m.timer.Pause()
		return m, nil
	}

	// Digits jump straight to the matching nav item.
	if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 {
		positions := components.Positions(len(m.slides), m.cfg.PerView, m.cfg.Step)
		if n <= len(positions) {
			return m, m.SetCurrentSlide(positions[n-1])
		}
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	point := gesture.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if msg.Y == m.navRow() {
			return m, m.navClick(msg.X)
		}
		if m.recognizer.Start(point) {
			m.timer.Pause()
		}
		return m, nil

	case tea.MouseActionMotion:
		m.recognizer.Move(point)
		return m, nil

	case tea.MouseActionRelease:
		if !m.recognizer.Active() {
			return m, nil
		}
		decision := m.recognizer.End(point)

		var cmds []tea.Cmd
		switch {
		case decision.Commit && decision.Direction == gesture.DirectionNext:
			cmds = append(cmds, m.Next())
		case decision.Commit && decision.Direction == gesture.DirectionPrevious:
			cmds = append(cmds, m.Previous())
		}

		// The gesture is resolved either way; autoplay picks back up.
		if gen, ok := m.timer.Resume(); ok {
			cmds = append(cmds, autoTickCmd(gen, m.timer.Interval()))
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// navClick maps a click on the navigation row to its surface: previous
// arrow, a nav item, or the next arrow.
func (m *Model) navClick(x int) tea.Cmd {
	positions := components.Positions(len(m.slides), m.cfg.PerView, m.cfg.Step)
	if len(positions) == 0 {
		return nil
	}
	dotsWidth := 2*len(positions) - 1

	switch {
	case x == 0:
		return m.Previous()
	case x == dotsWidth+3:
		return m.Next()
	case x >= 2 && x < 2+dotsWidth:
		if index, ok := m.dots.IndexAt(positions, x-2); ok {
			return m.SetCurrentSlide(index)
		}
	}
	return nil
}

func (m Model) handleReload(deck *config.Deck) (tea.Model, tea.Cmd) {
	m.name = deck.Name
	m.slides = append([]config.Slide(nil), deck.Slides...)
	m.watchNote = ""

	m.base = config.ParseAttributes(deck.Attributes, m.log)
	rules, _ := config.ParseResponsive(deck.Attributes[config.AttrResponsive], m.log)
	m.resolver = responsive.NewResolver(rules, m.log)

	m.log.WithFields(map[string]any{"deck": m.name, "slides": len(m.slides)}).Info("deck reloaded")

	var cmds []tea.Cmd
	if m.watcher != nil {
		cmds = append(cmds, watchDeckCmd(m.watcher))
	}
	if cmd := m.applyConfig(m.resolver.Resolve(m.base, m.width)); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}
