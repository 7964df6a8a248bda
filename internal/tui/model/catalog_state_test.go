package model

import (
	"testing"

	"bevctl/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyLoad_PartitionsAndClearsError(t *testing.T) {
	m := newTestModel()
	m.ErrorMessage = catalog.LoadErrorMessage

	m.ApplyLoad(loadItems(t))

	require.Len(t, m.Bottles, 2)
	require.Len(t, m.Crates, 1)
	assert.Equal(t, "1", m.Bottles[0].IDString())
	assert.Equal(t, "3", m.Bottles[1].IDString())
	assert.Equal(t, "2", m.Crates[0].IDString())
	assert.Empty(t, m.ErrorMessage)
}

func TestApplyLoadFailure_EmptiesLists(t *testing.T) {
	m := newTestModel()
	m.ApplyLoad(loadItems(t))
	m.BottleCursor = 1

	m.ApplyLoadFailure()

	assert.Empty(t, m.Bottles)
	assert.Empty(t, m.Crates)
	assert.Equal(t, "Error loading beverages", m.ErrorMessage)
	assert.Equal(t, 0, m.BottleCursor)
}

func TestApplyLoad_ClampsCursor(t *testing.T) {
	m := newTestModel()
	m.ApplyLoad(loadItems(t))
	m.BottleCursor = 1

	items, err := catalog.DecodeCollection([]byte(`[{"id":1,"type":"bottle","name":"Cola","price":2}]`))
	require.NoError(t, err)
	m.ApplyLoad(items)

	assert.Equal(t, 0, m.BottleCursor)
}

func TestCursorAndFocus(t *testing.T) {
	m := newTestModel()
	m.ApplyLoad(loadItems(t))

	it, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "1", it.IDString())

	m.MoveCursor(1)
	m.MoveCursor(1)
	it, _ = m.Selected()
	assert.Equal(t, "3", it.IDString(), "cursor stays on the last bottle")

	m.ToggleFocus()
	assert.Equal(t, FocusCrates, m.Focus)
	it, _ = m.Selected()
	assert.Equal(t, "2", it.IDString())

	m.MoveCursor(-1)
	assert.Equal(t, 0, m.CrateCursor)

	m.ToggleFocus()
	assert.Equal(t, FocusBottles, m.Focus)
}

func TestSelected_EmptyList(t *testing.T) {
	m := newTestModel()
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestViewStateTransitions(t *testing.T) {
	m := newTestModel()
	m.ApplyLoad(loadItems(t))
	cola := m.Bottles[0]

	m.ShowDetails(cola)
	assert.Equal(t, ViewState{Mode: ModeViewing, Current: cola}, m.View)
	assert.Equal(t, "1", m.CurrentID())

	m.StartEdit(cola)
	assert.Equal(t, ModeEditing, m.View.Mode)
	require.Len(t, m.EditInputs, 4)

	m.CloseView()
	assert.Equal(t, ViewState{Mode: ModeClosed}, m.View)
	assert.Nil(t, m.EditInputs)
	assert.Empty(t, m.CurrentID())
}

func TestStartEdit_InputsFollowFields(t *testing.T) {
	m := newTestModel()
	m.ApplyLoad(loadItems(t))
	crate := m.Crates[0]

	m.StartEdit(crate)

	var keys []string
	for _, in := range m.EditInputs {
		keys = append(keys, in.Field.Key)
	}
	assert.Equal(t, []string{"id", "type", "bottle", "noOfBottles", "price"}, keys)

	assert.False(t, m.EditInputs[0].Field.Editable, "id is read-only")
	assert.True(t, m.EditInputs[2].Field.Nested, "nested bottle is read-only")
	assert.False(t, m.EditInputs[2].Field.Editable)
	assert.Equal(t, "12", m.EditInputs[3].Input.Value())
	assert.Equal(t, "20", m.EditInputs[4].Input.Value())

	// The first editable field has focus.
	assert.Equal(t, 1, m.FocusedEditInput())
	assert.True(t, m.EditInputs[1].Input.Focused())

	m.MoveEditFocus(1)
	assert.Equal(t, 3, m.FocusedEditInput())
	m.MoveEditFocus(1)
	assert.Equal(t, 4, m.FocusedEditInput())
	m.MoveEditFocus(1)
	assert.Equal(t, 1, m.FocusedEditInput(), "focus wraps around")
	m.MoveEditFocus(-1)
	assert.Equal(t, 4, m.FocusedEditInput())
	assert.False(t, m.EditInputs[1].Input.Focused())
}

func TestEditSnapshot(t *testing.T) {
	m := newTestModel()
	m.ApplyLoad(loadItems(t))
	m.StartEdit(m.Bottles[0])
	m.EditInputs[3].Input.SetValue("42")

	assert.Equal(t, []catalog.Input{
		{ID: "input-type", Value: "bottle"},
		{ID: "input-name", Value: "Cola"},
		{ID: "input-price", Value: "42"},
	}, EditSnapshot(m.EditInputs))
}

func TestAddForm(t *testing.T) {
	m := newTestModel()
	m.OpenAddForm()
	require.True(t, m.AddFormVisible)
	assert.Equal(t, AddFieldName, m.AddForm.Focus)
	assert.True(t, m.AddForm.Inputs[AddFieldName].Focused())

	m.AddForm.Inputs[AddFieldName].SetValue("Cola")
	m.AddForm.Inputs[AddFieldPrice].SetValue("2.5")
	m.AddForm.Inputs[AddFieldInStock].SetValue("10")
	m.AddForm.CycleType(1)
	m.AddForm.IsAlcoholic = true

	assert.Equal(t, catalog.AddForm{
		Name:        "Cola",
		Price:       "2.5",
		InStock:     "10",
		Type:        "crate",
		IsAlcoholic: true,
	}, m.AddForm.Values())

	m.AddForm.CycleType(-1)
	assert.Equal(t, "bottle", m.AddForm.Type())
	m.AddForm.CycleType(-1)
	assert.Equal(t, "crate", m.AddForm.Type())

	m.AddForm.MoveFocus(-1)
	assert.Equal(t, AddFieldAlcoholic, m.AddForm.Focus)
	_, ok := m.AddForm.FocusedInput()
	assert.False(t, ok)

	m.CancelAddForm()
	assert.False(t, m.AddFormVisible)
	assert.Equal(t, "Cola", m.AddForm.Inputs[AddFieldName].Value(), "values survive closing the form")
}
