package view

import (
	"strings"

	"bevctl/internal/tui/design"
	"bevctl/internal/tui/model"
	"bevctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

func renderHelpOverlay(m *model.Model, width, height int) string {
	title := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")
	helpModel := m.Help
	helpModel.ShowAll = true
	content := lipgloss.JoinVertical(lipgloss.Left, title, helpModel.View(m.Keys))
	box := design.OverlayStyle.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func renderLogOverlay(m *model.Model, width, height int) string {
	title := design.LogPanelTitleStyle.Render(SafeIcon(IconScroll) + "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	return design.OverlayStyle.Copy().
		Width(max(0, width-design.OverlayStyle.GetHorizontalBorderSize())).
		Height(max(0, height-design.OverlayStyle.GetVerticalBorderSize())).
		Render(content)
}

// PrepareLogContent colors each activity log line by its level marker and
// cuts it at maxWidth cells. A maxWidth of 0 keeps lines whole.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if maxWidth > 0 {
			line = utils.TruncateString(line, maxWidth)
		}
		out[i] = styleLogLine(line)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
