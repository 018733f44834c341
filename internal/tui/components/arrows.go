package components

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	arrowPrev = "‹"
	arrowNext = "›"
)

// Arrows renders the previous/next arrow pair. Arrows dim when no further
// movement is possible in their direction; with infinite wraparound that
// never happens.
type Arrows struct {
	enabledStyle  lipgloss.Style
	disabledStyle lipgloss.Style
}

// NewArrows creates the arrow pair.
func NewArrows() Arrows {
	return Arrows{
		enabledStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		disabledStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

// ViewPrev renders the previous arrow.
func (a Arrows) ViewPrev(disabled bool) string {
	if disabled {
		return a.disabledStyle.Render(arrowPrev)
	}
	return a.enabledStyle.Render(arrowPrev)
}

// ViewNext renders the next arrow.
func (a Arrows) ViewNext(disabled bool) string {
	if disabled {
		return a.disabledStyle.Render(arrowNext)
	}
	return a.enabledStyle.Render(arrowNext)
}
