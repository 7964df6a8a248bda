package view

import (
	"strings"

	"bevctl/internal/tui/components"
	"bevctl/internal/tui/design"
	"bevctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// Size used before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Render renders the UI according to the current model state. It reads the
// model and never changes it.
func Render(m *model.Model) string {
	width, height := m.Width, m.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	switch m.Overlay {
	case model.OverlayHelp:
		return renderHelpOverlay(m, width, height)
	case model.OverlayLog:
		return renderLogOverlay(m, width, height)
	}

	top := []string{renderHeader(m, width)}
	if m.ErrorMessage != "" {
		top = append(top, renderErrorRegion(m.ErrorMessage, width))
	}

	var bottom []string
	if m.View.Mode != model.ModeClosed && m.View.Current != nil {
		bottom = append(bottom, renderDetailPanel(m, width))
	}
	if m.AddFormVisible {
		bottom = append(bottom, renderAddForm(m, width))
	}

	statusBar := renderStatusBar(m, width)

	used := lipgloss.Height(statusBar)
	for _, s := range top {
		used += lipgloss.Height(s)
	}
	for _, s := range bottom {
		used += lipgloss.Height(s)
	}

	sections := append(top, renderLists(m, width, height-used))
	sections = append(sections, bottom...)
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if gap := height - lipgloss.Height(body) - lipgloss.Height(statusBar); gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, statusBar)
}

func renderHeader(m *model.Model, width int) string {
	bar := components.TitleBar{
		Name:    "bevctl",
		Tagline: "beverage catalog",
		Backend: m.BaseURL,
	}
	if m.IsLoading {
		bar.Busy = m.Spinner.View()
	}
	return bar.Render(width)
}

// renderErrorRegion shows the load or add failure text as is.
func renderErrorRegion(message string, width int) string {
	return design.ErrorRegionStyle.Copy().
		Width(width).
		MaxWidth(width).
		Render(message)
}

func renderStatusBar(m *model.Model, width int) string {
	return components.StatusBar{
		Counts:    components.FormatCatalogCounts(len(m.Bottles), len(m.Crates)),
		Hints:     m.Help.ShortHelpView(m.Keys.ShortHelp()),
		Flash:     m.StatusBarMessage,
		FlashKind: m.StatusBarMessageType,
	}.Render(width)
}

type action struct {
	key   string
	label string
	style lipgloss.Style
}

func renderActions(actions ...action) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = a.style.Render(a.key) + " " + a.label
	}
	return strings.Join(parts, "  ")
}

func renderLabel(label string, width int, focused bool) string {
	style := design.InputLabelStyle
	if focused {
		style = design.InputLabelFocusedStyle
	}
	return style.Render(padLabel(label, width))
}
