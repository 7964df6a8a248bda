package model

import (
	"bevctl/internal/catalog"

	"github.com/charmbracelet/bubbles/textinput"
)

// Add form positions. The text inputs come first, then the type selector and
// the alcoholic checkbox.
const (
	AddFieldName = iota
	AddFieldPrice
	AddFieldVolume
	AddFieldSupplier
	AddFieldVolumePercent
	AddFieldInStock
	AddFieldType
	AddFieldAlcoholic

	addFieldCount
	addTextInputs = AddFieldType
)

// AddFormLabels are the labels shown next to each add form position.
var AddFormLabels = [addFieldCount]string{
	"Name", "Price", "Volume", "Supplier", "Volume %", "In stock", "Type", "Alcoholic",
}

// TypeOptions are the choices of the type selector.
var TypeOptions = []string{catalog.TypeBottle, catalog.TypeCrate}

// AddFormModel is the state of the add form.
type AddFormModel struct {
	Inputs      [addTextInputs]textinput.Model
	TypeIndex   int
	IsAlcoholic bool
	Focus       int
}

// NewAddForm returns an empty add form with the type set to bottle.
func NewAddForm() AddFormModel {
	var f AddFormModel
	placeholders := [addTextInputs]string{"Cola", "2.5", "0.5", "ACME", "4.9", "10"}
	for i := range f.Inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.Width = 30
		f.Inputs[i] = ti
	}
	return f
}

// FieldCount returns the number of focusable positions.
func (f *AddFormModel) FieldCount() int { return addFieldCount }

// FocusField moves focus to position i.
func (f *AddFormModel) FocusField(i int) {
	f.Focus = (i + addFieldCount) % addFieldCount
	for j := range f.Inputs {
		if j == f.Focus {
			f.Inputs[j].Focus()
		} else {
			f.Inputs[j].Blur()
		}
	}
}

// MoveFocus cycles the focus by delta.
func (f *AddFormModel) MoveFocus(delta int) {
	f.FocusField(f.Focus + delta)
}

// BlurAll removes focus from every input.
func (f *AddFormModel) BlurAll() {
	for j := range f.Inputs {
		f.Inputs[j].Blur()
	}
}

// FocusedInput returns the focused text input, if the focus is on one.
func (f *AddFormModel) FocusedInput() (*textinput.Model, bool) {
	if f.Focus < 0 || f.Focus >= addTextInputs {
		return nil, false
	}
	return &f.Inputs[f.Focus], true
}

// CycleType moves the type selector by delta.
func (f *AddFormModel) CycleType(delta int) {
	n := len(TypeOptions)
	f.TypeIndex = ((f.TypeIndex+delta)%n + n) % n
}

// Type returns the selected type.
func (f *AddFormModel) Type() string {
	return TypeOptions[f.TypeIndex]
}

// Values returns the raw form content.
func (f *AddFormModel) Values() catalog.AddForm {
	return catalog.AddForm{
		Name:          f.Inputs[AddFieldName].Value(),
		Price:         f.Inputs[AddFieldPrice].Value(),
		Volume:        f.Inputs[AddFieldVolume].Value(),
		Supplier:      f.Inputs[AddFieldSupplier].Value(),
		VolumePercent: f.Inputs[AddFieldVolumePercent].Value(),
		InStock:       f.Inputs[AddFieldInStock].Value(),
		Type:          f.Type(),
		IsAlcoholic:   f.IsAlcoholic,
	}
}
