package catalog

import (
	"fmt"
	"strings"
)

// InputIDPrefix prefixes the identifier of every edit input.
const InputIDPrefix = "input-"

// DetailRow is one label/value line of the read-only detail view.
type DetailRow struct {
	Key   string
	Value string
	// Nested is set for object, array and null values, shown as raw JSON.
	Nested bool
}

// DetailRows lists every field of the item in order.
func DetailRows(it *Item) []DetailRow {
	rows := make([]DetailRow, 0, it.Len())
	for _, f := range it.Fields() {
		if isNestedValue(f.Value) {
			rows = append(rows, DetailRow{Key: f.Key, Value: RawJSON(f.Value), Nested: true})
			continue
		}
		rows = append(rows, DetailRow{Key: f.Key, Value: JSText(f.Value, true)})
	}
	return rows
}

// EditField is one line of the edit form.
type EditField struct {
	Key   string
	Value string
	// Editable fields get an input; id and nested values stay read-only.
	Editable bool
	Nested   bool
}

// InputID returns the identifier of the input editing this field.
func (f EditField) InputID() string {
	return InputID(f.Key)
}

// EditFields lists every field of the item for the edit form. Every scalar
// except id is editable and pre-filled with its current text.
func EditFields(it *Item) []EditField {
	fields := make([]EditField, 0, it.Len())
	for _, f := range it.Fields() {
		switch {
		case isNestedValue(f.Value):
			fields = append(fields, EditField{Key: f.Key, Value: RawJSON(f.Value), Nested: true})
		case f.Key == "id":
			fields = append(fields, EditField{Key: f.Key, Value: JSText(f.Value, true)})
		default:
			fields = append(fields, EditField{Key: f.Key, Value: JSText(f.Value, true), Editable: true})
		}
	}
	return fields
}

// InputID returns the edit input identifier for a field name.
func InputID(key string) string {
	return InputIDPrefix + key
}

// FieldFromInputID strips the first "input-" from an input identifier.
func FieldFromInputID(id string) string {
	return strings.Replace(id, InputIDPrefix, "", 1)
}

// null reports as an object to the detail view, like nested values.
func isNestedValue(v any) bool {
	return v == nil || IsObject(v)
}

// OverrideInputs returns one input per editable field of it, pre-filled with
// the current text and replaced by overrides where given. Unknown or
// read-only keys are rejected.
func OverrideInputs(it *Item, overrides map[string]string) ([]Input, error) {
	fields := EditFields(it)
	editable := make(map[string]bool, len(fields))
	inputs := make([]Input, 0, len(fields))
	for _, f := range fields {
		if !f.Editable {
			continue
		}
		editable[f.Key] = true
		value := f.Value
		if v, ok := overrides[f.Key]; ok {
			value = v
		}
		inputs = append(inputs, Input{ID: f.InputID(), Value: value})
	}
	for key := range overrides {
		if !editable[key] {
			return nil, fmt.Errorf("field %q is not editable", key)
		}
	}
	return inputs, nil
}
