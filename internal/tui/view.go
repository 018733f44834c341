package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/carouselkit/carousel/internal/config"
	"github.com/carouselkit/carousel/internal/tui/components"
)

// View renders the widget: title, track, navigation surfaces, indicator,
// position bar and the help line.
func (m Model) View() string {
	if m.finished {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.name))
	b.WriteString("\n\n")

	track := m.trackView()
	b.WriteString(track)
	b.WriteString("\n")

	b.WriteString(m.navLine())
	b.WriteString("\n")

	if total := len(m.slides); total > 0 {
		b.WriteString(m.counter.ViewCentered(m.machine.Current(), total, m.navWidth()))
		b.WriteString("\n")
		b.WriteString(m.position.View(m.machine.Current(), m.machine.MaxStart()))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) trackView() string {
	if len(m.slides) == 0 {
		return helpStyle.Render("deck has no slides")
	}

	indices := m.visibleIndices()
	cells := make([]string, 0, len(indices))
	cellWidth := m.cellWidth(len(indices))
	cellHeight := m.trackHeight()

	for i, idx := range indices {
		style := slideStyle
		switch {
		case m.cfg.Behaviour == config.BehaviourFade && m.machine.InFlight():
			// Fading in: the incoming view renders dimmed until settle.
			style = fadedSlideStyle
		case m.recognizer.Active():
			// Mid-drag the track dims; a cancelled gesture snaps back.
			style = fadedSlideStyle
		case i == 0:
			style = activeSlideStyle
		}

		slide := m.slides[idx]
		content := slideTitleStyle.Render(slide.Title)
		if slide.Body != "" {
			content += "\n" + slide.Body
		}
		cells = append(cells, style.Width(cellWidth).Height(cellHeight).Render(content))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// trackHeight is the content height of a slide cell. With flexible height
// the coordinator follows the active slide; otherwise the track is sized
// once for the tallest slide.
func (m Model) trackHeight() int {
	if m.cfg.FlexibleHeight {
		if h := m.coordinator.Height(); h > 0 {
			return h
		}
	}

	tallest := 1
	for _, slide := range m.slides {
		h := lipgloss.Height(slide.Body) + 1
		if h > tallest {
			tallest = h
		}
	}
	return tallest
}

func (m Model) cellWidth(visible int) int {
	if visible < 1 {
		visible = 1
	}
	// Borders and padding consume four columns per cell.
	w := m.width/visible - 4
	if w < 8 {
		w = 8
	}
	return w
}

func (m Model) navLine() string {
	positions := components.Positions(len(m.slides), m.cfg.PerView, m.cfg.Step)
	if len(positions) == 0 {
		return ""
	}

	return m.arrows.ViewPrev(m.machine.AtStart()) +
		" " + m.dots.View(positions, m.machine.Target()) +
		" " + m.arrows.ViewNext(m.machine.AtEnd())
}

// navRow is the terminal row of the navigation line, used for click hit
// testing.
func (m Model) navRow() int {
	return 2 + lipgloss.Height(m.trackView())
}

func (m Model) navWidth() int {
	positions := components.Positions(len(m.slides), m.cfg.PerView, m.cfg.Step)
	if len(positions) == 0 {
		return 0
	}
	return 2*len(positions) - 1 + 4
}

func (m Model) statusLine() string {
	parts := make([]string, 0, 3)
	if m.timer.Paused() {
		parts = append(parts, pausedStyle.Render("paused"))
	}
	if m.watchNote != "" {
		parts = append(parts, errorStyle.Render(m.watchNote))
	}
	parts = append(parts, helpStyle.Render("←/→ navigate • 1-9 jump • space pause • q quit"))
	return strings.Join(parts, "  ")
}
