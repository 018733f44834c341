package components

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"
)

// Position renders how far through the deck the slider is, as a bar.
type Position struct {
	bar progress.Model
}

// NewPosition creates a position component.
func NewPosition(width int) Position {
	bar := progress.New(progress.WithDefaultGradient())
	if width > 0 {
		bar.Width = width
	}
	return Position{bar: bar}
}

// View renders the bar for the committed index over the last start index.
func (p Position) View(index, maxStart int) string {
	ratio := 1.0
	if maxStart > 0 {
		ratio = math.Min(1.0, float64(index)/float64(maxStart))
	}
	return p.bar.ViewAs(ratio)
}
