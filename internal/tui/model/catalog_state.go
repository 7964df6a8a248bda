package model

import (
	"bevctl/internal/catalog"
)

// ApplyLoad replaces both lists with a freshly fetched catalog and clears the
// error region.
func (m *Model) ApplyLoad(items []*catalog.Item) {
	p := catalog.PartitionItems(items)
	m.Bottles = p.Bottles
	m.Crates = p.Crates
	m.ErrorMessage = ""
	m.clampCursors()
}

// ApplyLoadFailure empties both lists and shows the load error.
func (m *Model) ApplyLoadFailure() {
	m.Bottles = nil
	m.Crates = nil
	m.ErrorMessage = catalog.LoadErrorMessage
	m.clampCursors()
}

func (m *Model) clampCursors() {
	m.BottleCursor = clamp(m.BottleCursor, len(m.Bottles))
	m.CrateCursor = clamp(m.CrateCursor, len(m.Crates))
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// FocusedList returns the list the cursor is in.
func (m *Model) FocusedList() []*catalog.Item {
	if m.Focus == FocusCrates {
		return m.Crates
	}
	return m.Bottles
}

// Selected returns the item under the cursor of the focused list.
func (m *Model) Selected() (*catalog.Item, bool) {
	list := m.FocusedList()
	cursor := m.BottleCursor
	if m.Focus == FocusCrates {
		cursor = m.CrateCursor
	}
	if cursor < 0 || cursor >= len(list) {
		return nil, false
	}
	return list[cursor], true
}

// MoveCursor moves the cursor of the focused list by delta, staying in range.
func (m *Model) MoveCursor(delta int) {
	if m.Focus == FocusCrates {
		m.CrateCursor = clamp(m.CrateCursor+delta, len(m.Crates))
		return
	}
	m.BottleCursor = clamp(m.BottleCursor+delta, len(m.Bottles))
}

// ToggleFocus switches between the bottle and crate lists.
func (m *Model) ToggleFocus() {
	if m.Focus == FocusBottles {
		m.Focus = FocusCrates
	} else {
		m.Focus = FocusBottles
	}
}

// ShowDetails opens the read-only detail panel for it.
func (m *Model) ShowDetails(it *catalog.Item) {
	m.View = ViewState{Mode: ModeViewing, Current: it}
	m.EditInputs = nil
	m.EditFocus = 0
}

// StartEdit switches the detail panel into the edit form for it.
func (m *Model) StartEdit(it *catalog.Item) {
	m.View = ViewState{Mode: ModeEditing, Current: it}
	m.EditInputs = NewEditInputs(it)
	m.EditFocus = 0
	m.focusEditInput()
}

// CloseView hides the detail panel.
func (m *Model) CloseView() {
	m.View = ViewState{Mode: ModeClosed}
	m.EditInputs = nil
	m.EditFocus = 0
}

// MoveEditFocus cycles the focused edit input by delta.
func (m *Model) MoveEditFocus(delta int) {
	editable := editableIndexes(m.EditInputs)
	if len(editable) == 0 {
		return
	}
	m.EditFocus = (m.EditFocus + delta + len(editable)) % len(editable)
	m.focusEditInput()
}

func (m *Model) focusEditInput() {
	editable := editableIndexes(m.EditInputs)
	for i, idx := range editable {
		if i == m.EditFocus {
			m.EditInputs[idx].Input.Focus()
		} else {
			m.EditInputs[idx].Input.Blur()
		}
	}
}

// FocusedEditInput returns the index into EditInputs of the focused input,
// or -1 when no field is editable.
func (m *Model) FocusedEditInput() int {
	editable := editableIndexes(m.EditInputs)
	if m.EditFocus < 0 || m.EditFocus >= len(editable) {
		return -1
	}
	return editable[m.EditFocus]
}

// OpenAddForm shows the add form. Values typed earlier are kept.
func (m *Model) OpenAddForm() {
	m.AddFormVisible = true
	m.AddForm.FocusField(0)
}

// CancelAddForm hides the add form without contacting the backend.
func (m *Model) CancelAddForm() {
	m.AddFormVisible = false
	m.AddForm.BlurAll()
}

// CurrentID returns the id of the item in the detail panel as used in URLs.
func (m *Model) CurrentID() string {
	if m.View.Current == nil {
		return ""
	}
	return m.View.Current.IDString()
}
