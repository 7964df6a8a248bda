package view

import (
	"bevctl/internal/catalog"
	"bevctl/internal/tui/components"
	"bevctl/internal/tui/design"
	"bevctl/internal/tui/model"
	"bevctl/internal/tui/utils"

	"github.com/mattn/go-runewidth"
)

// Detail labels are padded to the widest key, capped at this width.
const maxLabelWidth = 18

func padLabel(label string, width int) string {
	return utils.PadRight(utils.TruncateString(label, width), width)
}

func labelWidth(keys []string) int {
	w := 0
	for _, k := range keys {
		w = max(w, runewidth.StringWidth(k)+1)
	}
	return min(w, maxLabelWidth)
}

func renderDetailPanel(m *model.Model, width int) string {
	if m.View.Mode == model.ModeEditing {
		return renderEditForm(m, width)
	}

	it := m.View.Current
	panel := components.NewPanel("Beverage " + it.IDString()).
		WithDimensions(width, 0).
		SetFocused(!m.AddFormVisible)
	inner := panel.InnerWidth()

	rows := catalog.DetailRows(it)
	keyWidth := labelWidth(it.Keys())
	valueWidth := max(1, inner-keyWidth-1)

	lines := make([]string, 0, len(rows)+2)
	for _, row := range rows {
		valueStyle := design.DetailValueStyle
		if row.Nested {
			valueStyle = design.DimStyle
		}
		lines = append(lines, design.DetailKeyStyle.Render(padLabel(row.Key+":", keyWidth))+" "+
			valueStyle.Render(utils.TruncateString(row.Value, valueWidth)))
	}
	lines = append(lines, "", renderActions(
		action{key: "e", label: "Edit", style: design.ButtonStyle},
		action{key: "d", label: "Delete", style: design.ButtonDangerStyle},
		action{key: "c", label: "Close", style: design.ButtonSecondaryStyle},
	))
	return panel.WithLines(lines...).Render()
}

// renderEditForm shows one input per editable field; id and nested values
// stay read-only.
func renderEditForm(m *model.Model, width int) string {
	it := m.View.Current
	panel := components.NewPanel(IconText(IconPencil, "Edit beverage "+it.IDString())).
		WithDimensions(width, 0).
		SetFocused(true)
	inner := panel.InnerWidth()

	keyWidth := labelWidth(it.Keys())
	valueWidth := max(1, inner-keyWidth-1)
	focused := m.FocusedEditInput()

	lines := make([]string, 0, len(m.EditInputs)+2)
	for i, in := range m.EditInputs {
		label := renderLabel(in.Field.Key+":", keyWidth, i == focused)
		if !in.Field.Editable {
			lines = append(lines, label+" "+design.DimStyle.Render(utils.TruncateString(in.Field.Value, valueWidth)))
			continue
		}
		input := in.Input
		input.Width = max(1, valueWidth-1)
		lines = append(lines, label+" "+input.View())
	}
	lines = append(lines, "", renderActions(
		action{key: "enter", label: "Save", style: design.ButtonStyle},
		action{key: "esc", label: "Cancel", style: design.ButtonSecondaryStyle},
		action{key: "tab", label: "Next field", style: design.ButtonSecondaryStyle},
	))
	return panel.WithLines(lines...).Render()
}
