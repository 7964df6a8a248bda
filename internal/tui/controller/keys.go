package controller

import (
	"strings"

	"bevctl/internal/catalog"
	"bevctl/internal/tui/model"
	"bevctl/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const keySubsystem = "KeyHandler"

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

// handleKeyMsg routes a key press to the topmost surface: overlays first,
// then the edit form, the add form, the detail panel and finally the lists.
func handleKeyMsg(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case m.Overlay == model.OverlayHelp:
		return handleHelpOverlayKey(m, msg)
	case m.Overlay == model.OverlayLog:
		return handleLogOverlayKey(m, msg)
	case m.View.Mode == model.ModeEditing:
		return handleEditKey(m, msg)
	case m.AddFormVisible:
		return handleAddFormKey(m, msg)
	case m.View.Mode == model.ModeViewing:
		if next, cmd, handled := handleDetailKey(m, msg); handled {
			return next, cmd
		}
	}
	return handleListKey(m, msg)
}

func handleHelpOverlayKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Help), key.Matches(msg, m.Keys.Esc):
		m.Overlay = model.OverlayNone
	case msg.String() == "q":
		return quit(m)
	}
	return m, nil
}

func handleLogOverlayKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch msg.String() {
	case "L", "esc":
		m.Overlay = model.OverlayNone
		return m, nil
	case "y":
		if err := clipboardWriteAll(strings.Join(m.ActivityLog, "\n")); err != nil {
			logging.Error(keySubsystem, err, "Failed to copy logs")
			return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, model.StatusMessageTTL)
		}
		return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, model.StatusMessageTTL)
	case "k", "up", "j", "down", "pgup", "pgdown", "home", "end":
		var vpCmd tea.Cmd
		m.LogViewport, vpCmd = m.LogViewport.Update(msg)
		return m, vpCmd
	}
	return m, nil
}

func handleListKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return quit(m)
	case key.Matches(msg, m.Keys.Help):
		m.Overlay = model.OverlayHelp
	case key.Matches(msg, m.Keys.ToggleLog):
		m.Overlay = model.OverlayLog
		m.LogViewport.GotoBottom()
	case key.Matches(msg, m.Keys.Up):
		m.MoveCursor(-1)
	case key.Matches(msg, m.Keys.Down):
		m.MoveCursor(1)
	case key.Matches(msg, m.Keys.Tab), key.Matches(msg, m.Keys.ShiftTab):
		m.ToggleFocus()
	case key.Matches(msg, m.Keys.Enter):
		if it, ok := m.Selected(); ok {
			debugf(m, keySubsystem, "Showing beverage %s", it.IDString())
			m.ShowDetails(it)
		}
	case key.Matches(msg, m.Keys.Add):
		m.OpenAddForm()
	case key.Matches(msg, m.Keys.Reload):
		return m, reload(m)
	case key.Matches(msg, m.Keys.CopyItem):
		return copySelected(m)
	}
	return m, nil
}

// handleDetailKey handles the actions of the read-only detail panel. Keys it
// does not own fall through to the lists.
func handleDetailKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd, bool) {
	current := m.View.Current
	switch {
	case key.Matches(msg, m.Keys.Edit):
		m.StartEdit(current)
		return m, nil, true
	case key.Matches(msg, m.Keys.Delete):
		id := m.CurrentID()
		logging.Info(keySubsystem, "Deleting beverage %s", id)
		return m, model.DeleteBeverageCmd(m.API, id), true
	case key.Matches(msg, m.Keys.Close), key.Matches(msg, m.Keys.Esc):
		next, cmd := closeView(m)
		return next, cmd, true
	}
	return m, nil, false
}

// closeView hides the detail panel and, unless disabled, reloads.
func closeView(m *model.Model) (*model.Model, tea.Cmd) {
	m.CloseView()
	if !m.ReloadOnClose {
		return m, nil
	}
	return m, reload(m)
}

func handleEditKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return closeView(m)
	case "enter", "ctrl+s":
		return saveBeverage(m)
	case "tab", "down":
		m.MoveEditFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.MoveEditFocus(-1)
		return m, nil
	}
	idx := m.FocusedEditInput()
	if idx < 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.EditInputs[idx].Input, cmd = m.EditInputs[idx].Input.Update(msg)
	return m, cmd
}

// saveBeverage coerces the edit inputs and sends the update. A value rejected
// by a strict field kind keeps the form open.
func saveBeverage(m *model.Model) (*model.Model, tea.Cmd) {
	current := m.View.Current
	id, _ := current.ID()
	body, err := m.Policy.BuildUpdate(id, model.EditSnapshot(m.EditInputs))
	if err != nil {
		logging.Error(keySubsystem, err, "Rejected edit of beverage %s", current.IDString())
		return m, m.SetStatusMessage("Error updating beverage: "+err.Error(), model.StatusBarError, model.StatusMessageTTL)
	}
	logging.Info(keySubsystem, "Saving beverage %s", current.IDString())
	return m, model.SaveBeverageCmd(m.API, current.IDString(), body)
}

func handleAddFormKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	form := &m.AddForm
	switch msg.String() {
	case "esc":
		m.CancelAddForm()
		return m, nil
	case "enter", "ctrl+s":
		return addBeverage(m)
	case "tab", "down":
		form.MoveFocus(1)
		return m, nil
	case "shift+tab", "up":
		form.MoveFocus(-1)
		return m, nil
	}

	switch form.Focus {
	case model.AddFieldType:
		switch msg.String() {
		case " ", "right", "l":
			form.CycleType(1)
		case "left", "h":
			form.CycleType(-1)
		}
		return m, nil
	case model.AddFieldAlcoholic:
		if msg.String() == " " || msg.String() == "x" {
			form.IsAlcoholic = !form.IsAlcoholic
		}
		return m, nil
	}

	input, ok := form.FocusedInput()
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return m, cmd
}

func addBeverage(m *model.Model) (*model.Model, tea.Cmd) {
	body := m.AddForm.Values().Build()
	logging.Info(keySubsystem, "Adding beverage %s", body.String())
	return m, model.AddBeverageCmd(m.API, body)
}

// copySelected puts the JSON of the open or selected beverage on the clipboard.
func copySelected(m *model.Model) (*model.Model, tea.Cmd) {
	it := m.View.Current
	if it == nil {
		var ok bool
		if it, ok = m.Selected(); !ok {
			return m, m.SetStatusMessage("Nothing to copy", model.StatusBarWarning, model.StatusMessageTTL)
		}
	}
	if err := clipboardWriteAll(it.String()); err != nil {
		logging.Error(keySubsystem, err, "Failed to copy beverage %s", it.IDString())
		return m, m.SetStatusMessage("Copy failed", model.StatusBarError, model.StatusMessageTTL)
	}
	return m, m.SetStatusMessage("Copied "+describe(it), model.StatusBarSuccess, model.StatusMessageTTL)
}

func describe(it *catalog.Item) string {
	return "beverage " + it.IDString()
}
