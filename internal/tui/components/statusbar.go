package components

import (
	"fmt"
	"strings"

	"bevctl/internal/tui/design"
	"bevctl/internal/tui/model"
	"bevctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar is the last line of the catalog view. A non-empty Flash takes
// the whole line, otherwise Counts sits left and Hints right.
type StatusBar struct {
	Counts    string
	Hints     string
	Flash     string
	FlashKind model.MessageType
}

// Render draws the bar at the given width.
func (s StatusBar) Render(width int) string {
	style := s.style()
	inner := width - style.GetHorizontalFrameSize()

	line := s.Hints
	switch {
	case s.Flash != "":
		line = utils.TruncateString(s.Flash, inner)
	case s.Counts != "":
		gap := inner - lipgloss.Width(s.Counts) - lipgloss.Width(s.Hints)
		if s.Hints == "" || gap <= 0 {
			line = utils.TruncateString(s.Counts, inner)
		} else {
			line = s.Counts + strings.Repeat(" ", gap) + s.Hints
		}
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

var flashStyles = map[model.MessageType]*lipgloss.Style{
	model.StatusBarInfo:    &design.StatusBarInfoStyle,
	model.StatusBarSuccess: &design.StatusBarSuccessStyle,
	model.StatusBarError:   &design.StatusBarErrorStyle,
	model.StatusBarWarning: &design.StatusBarWarningStyle,
}

func (s StatusBar) style() lipgloss.Style {
	if s.Flash != "" {
		if st, ok := flashStyles[s.FlashKind]; ok {
			return *st
		}
	}
	return design.StatusBarStyle
}

// FormatCatalogCounts summarizes the loaded catalog for the status bar.
func FormatCatalogCounts(bottles, crates int) string {
	return fmt.Sprintf("%d bottles • %d crates", bottles, crates)
}
