package components

import (
	"strings"

	"bevctl/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// TitleBar is the first line of the catalog view.
type TitleBar struct {
	Name    string
	Tagline string
	// Busy is the spinner frame drawn while a request is in flight.
	Busy string
	// Backend is right-aligned and omitted when it does not fit.
	Backend string
}

// Render draws the bar at the given width.
func (t TitleBar) Render(width int) string {
	left := t.Name
	if t.Busy != "" {
		left = t.Busy + " " + left
	}
	if t.Tagline != "" {
		left += " " + design.TextSecondaryStyle.Render(t.Tagline)
	}

	line := left
	if t.Backend != "" {
		inner := width - design.HeaderStyle.GetHorizontalFrameSize()
		if gap := inner - lipgloss.Width(left) - lipgloss.Width(t.Backend); gap >= 2 {
			line = left + strings.Repeat(" ", gap) + t.Backend
		}
	}
	return design.HeaderStyle.Copy().Width(width).MaxWidth(width).Render(line)
}
