package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Counter renders the textual count indicator. The format string substitutes
// $current (1-based) and $total.
type Counter struct {
	format string
	style  lipgloss.Style
}

// NewCounter creates a counter for the given format string.
func NewCounter(format string) Counter {
	return Counter{
		format: format,
		style:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// View renders the indicator for the committed index.
func (c Counter) View(current, total int) string {
	text := strings.ReplaceAll(c.format, "$current", strconv.Itoa(current+1))
	text = strings.ReplaceAll(text, "$total", strconv.Itoa(total))
	return c.style.Render(text)
}

// ViewCentered renders the indicator centered within width display cells,
// truncating with an ellipsis when it does not fit.
func (c Counter) ViewCentered(current, total, width int) string {
	text := strings.ReplaceAll(c.format, "$current", strconv.Itoa(current+1))
	text = strings.ReplaceAll(text, "$total", strconv.Itoa(total))

	if width <= 0 {
		return c.style.Render(text)
	}
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, "…")
	}

	pad := (width - runewidth.StringWidth(text)) / 2
	if pad > 0 {
		text = strings.Repeat(" ", pad) + text
	}
	return c.style.Render(text)
}
