package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	dotActive   = "●"
	dotInactive = "○"
	dotGap      = " "
)

// Positions returns the distinct start indices the slider can rest on for
// the given collection shape: every step-th index up to the last valid start.
// Each position maps to one nav item.
func Positions(total, perView, step int) []int {
	if total <= 0 {
		return nil
	}
	if perView < 1 {
		perView = 1
	}
	if step < 1 {
		step = 1
	}

	last := total - perView
	if last < 0 {
		last = 0
	}

	positions := make([]int, 0, last/step+1)
	for i := 0; ; i += step {
		if i >= last {
			positions = append(positions, last)
			break
		}
		positions = append(positions, i)
	}
	return positions
}

// ActiveDot returns the nav item covering the given index: the last position
// at or below it.
func ActiveDot(positions []int, index int) int {
	active := 0
	for i, pos := range positions {
		if pos > index {
			break
		}
		active = i
	}
	return active
}

// Dots renders the nav item rail and resolves clicks back to slide indices.
type Dots struct {
	activeStyle   lipgloss.Style
	inactiveStyle lipgloss.Style
}

// NewDots creates the nav item rail.
func NewDots() Dots {
	return Dots{
		activeStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		inactiveStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// View renders one dot per position, marking the active one. An empty
// position list renders nothing: missing nav items silently disable the rail.
func (d Dots) View(positions []int, index int) string {
	if len(positions) == 0 {
		return ""
	}

	active := ActiveDot(positions, index)
	parts := make([]string, len(positions))
	for i := range positions {
		if i == active {
			parts[i] = d.activeStyle.Render(dotActive)
		} else {
			parts[i] = d.inactiveStyle.Render(dotInactive)
		}
	}
	return strings.Join(parts, dotGap)
}

// IndexAt maps a horizontal cell offset within the rendered rail to the
// slide index bound to the dot at that offset.
func (d Dots) IndexAt(positions []int, offsetX int) (int, bool) {
	if offsetX < 0 {
		return 0, false
	}
	// Each dot occupies one cell followed by a one-cell gap.
	slot := offsetX / 2
	if offsetX%2 == 1 {
		return 0, false // the gap between dots
	}
	if slot >= len(positions) {
		return 0, false
	}
	return positions[slot], true
}
