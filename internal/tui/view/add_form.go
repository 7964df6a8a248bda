package view

import (
	"bevctl/internal/tui/components"
	"bevctl/internal/tui/design"
	"bevctl/internal/tui/model"
)

const addFormLabelWidth = 10

func renderAddForm(m *model.Model, width int) string {
	panel := components.NewPanel(IconText(IconPlus, "Add beverage")).
		WithDimensions(width, 0).
		SetFocused(m.View.Mode != model.ModeEditing)
	inner := panel.InnerWidth()

	f := m.AddForm
	lines := make([]string, 0, f.FieldCount()+2)
	for i := 0; i < f.FieldCount(); i++ {
		focused := f.Focus == i
		var value string
		switch i {
		case model.AddFieldType:
			value = "‹ " + f.Type() + " ›"
			if focused {
				value = design.ListItemSelectedStyle.Render(value)
			}
		case model.AddFieldAlcoholic:
			value = IconUnchecked
			if f.IsAlcoholic {
				value = IconChecked
			}
			if focused {
				value = design.ListItemSelectedStyle.Render(value)
			}
		default:
			input := f.Inputs[i]
			input.Width = max(1, inner-addFormLabelWidth-2)
			value = input.View()
		}
		lines = append(lines, renderLabel(model.AddFormLabels[i], addFormLabelWidth, focused)+" "+value)
	}
	lines = append(lines, "", renderActions(
		action{key: "enter", label: "Add", style: design.ButtonStyle},
		action{key: "esc", label: "Cancel", style: design.ButtonSecondaryStyle},
		action{key: "space", label: "Toggle", style: design.ButtonSecondaryStyle},
	))
	return panel.WithLines(lines...).Render()
}
