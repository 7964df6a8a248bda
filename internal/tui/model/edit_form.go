package model

import (
	"bevctl/internal/catalog"

	"github.com/charmbracelet/bubbles/textinput"
)

// EditInput is one line of the edit form. Read-only lines (id and nested
// values) carry no usable input.
type EditInput struct {
	Field catalog.EditField
	Input textinput.Model
}

// NewEditInputs builds the edit form lines for it, pre-filling every editable
// input with the current text of its field.
func NewEditInputs(it *catalog.Item) []EditInput {
	fields := catalog.EditFields(it)
	out := make([]EditInput, len(fields))
	for i, f := range fields {
		out[i] = EditInput{Field: f}
		if !f.Editable {
			continue
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 0
		ti.Width = 40
		ti.SetValue(f.Value)
		out[i].Input = ti
	}
	return out
}

// EditSnapshot returns the id and current content of every editable input, in
// form order.
func EditSnapshot(inputs []EditInput) []catalog.Input {
	var out []catalog.Input
	for _, in := range inputs {
		if !in.Field.Editable {
			continue
		}
		out = append(out, catalog.Input{ID: in.Field.InputID(), Value: in.Input.Value()})
	}
	return out
}

func editableIndexes(inputs []EditInput) []int {
	var idx []int
	for i, in := range inputs {
		if in.Field.Editable {
			idx = append(idx, i)
		}
	}
	return idx
}
