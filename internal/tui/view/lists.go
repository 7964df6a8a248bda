package view

import (
	"fmt"

	"bevctl/internal/catalog"
	"bevctl/internal/tui/components"
	"bevctl/internal/tui/design"
	"bevctl/internal/tui/model"
	"bevctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Below this width the two lists are stacked instead of side by side.
const minSideBySideWidth = 2 * 36

// listChrome is the panel border plus the title line.
const listChrome = 3

func renderLists(m *model.Model, width, height int) string {
	formActive := m.View.Mode == model.ModeEditing || m.AddFormVisible
	bottlesFocused := !formActive && m.Focus == model.FocusBottles
	cratesFocused := !formActive && m.Focus == model.FocusCrates

	if width >= minSideBySideWidth {
		rows := max(1, height-listChrome)
		left := width / 2
		return lipgloss.JoinHorizontal(lipgloss.Top,
			renderListPanel(IconText(IconBottle, "Bottles"), m.Bottles, m.BottleCursor, bottlesFocused, left, rows),
			renderListPanel(IconText(IconCrate, "Crates"), m.Crates, m.CrateCursor, cratesFocused, width-left, rows),
		)
	}

	rows := max(1, (height-2*listChrome)/2)
	return lipgloss.JoinVertical(lipgloss.Left,
		renderListPanel(IconText(IconBottle, "Bottles"), m.Bottles, m.BottleCursor, bottlesFocused, width, rows),
		renderListPanel(IconText(IconCrate, "Crates"), m.Crates, m.CrateCursor, cratesFocused, width, rows),
	)
}

// renderListPanel draws one list, scrolled so the cursor row stays visible.
func renderListPanel(title string, items []*catalog.Item, cursor int, focused bool, width, rows int) string {
	panel := components.NewPanel(fmt.Sprintf("%s (%d)", title, len(items))).
		WithDimensions(width, 0).
		SetFocused(focused)
	inner := panel.InnerWidth()

	lines := make([]string, 0, rows)
	if len(items) == 0 {
		lines = append(lines, design.CenterHorizontal(inner, design.DimStyle.Render("No beverages")))
	}

	start := 0
	if cursor >= rows {
		start = cursor - rows + 1
	}
	end := min(len(items), start+rows)
	for i := start; i < end; i++ {
		prefix := "  "
		if i == cursor && focused {
			prefix = design.ListItemSelectedStyle.Render(IconCursor) + " "
		}
		lines = append(lines, prefix+RenderSummary(catalog.Summarize(items[i]), inner-2))
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return panel.WithLines(lines...).Render()
}

// RenderSummary styles each summary segment and cuts the line at maxWidth
// cells.
func RenderSummary(s catalog.Summary, maxWidth int) string {
	out := ""
	remaining := maxWidth
	for _, seg := range s {
		if remaining <= 0 {
			break
		}
		text := seg.Text
		if runewidth.StringWidth(text) > remaining {
			text = utils.TruncateString(text, remaining)
		}
		remaining -= runewidth.StringWidth(text)
		out += segmentStyle(seg.Style).Render(text)
	}
	return out
}

func segmentStyle(style catalog.SegmentStyle) lipgloss.Style {
	switch style {
	case catalog.StyleBold:
		return design.SummaryBoldStyle
	case catalog.StyleMuted:
		return design.SummaryMutedStyle
	case catalog.StyleAlcoholic:
		return design.SummaryAlcoholicStyle
	case catalog.StyleNonAlcoholic:
		return design.SummaryNonAlcoholicStyle
	case catalog.StylePrice:
		return design.SummaryPriceStyle
	case catalog.StyleRaw:
		return design.SummaryRawStyle
	default:
		return design.SummaryPlainStyle
	}
}
