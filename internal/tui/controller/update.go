package controller

import (
	"bevctl/internal/catalog"
	"bevctl/internal/tui/model"
	"bevctl/internal/tui/view"
	"bevctl/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	controllerDispatchSubsystem = "ControllerDispatch"
	tuiSubsystem                = "TUI"
)

// debugf logs only when the view was started with --debug.
func debugf(m *model.Model, subsystem string, format string, a ...interface{}) {
	if m != nil && m.DebugMode {
		logging.Debug(subsystem, format, a...)
	}
}

// Update is the Bubble Tea update function of the catalog view.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	return mainControllerDispatch(m, msg)
}

// mainControllerDispatch routes every message to its handler and refreshes
// the log viewport afterwards.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg:
	default:
		debugf(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return quit(m)
		}
		m, cmd = handleKeyMsg(m, msg)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m, cmd = handleWindowSizeMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.BeveragesLoadedMsg:
		m = handleBeveragesLoadedMsg(m, msg)

	case model.BeverageSavedMsg:
		m, cmd = handleBeverageSavedMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.BeverageDeletedMsg:
		m, cmd = handleBeverageDeletedMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.BeverageAddedMsg:
		m, cmd = handleBeverageAddedMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage()

	case tea.MouseMsg:
		if m.Overlay == model.OverlayLog {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			cmds = append(cmds, cmd)
		}

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
		cmds = append(cmds, cmd)

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))
	}

	refreshLogViewport(m)
	return m, tea.Batch(cmds...)
}

func refreshLogViewport(m *model.Model) {
	widthChanged := m.LogViewportLastWidth != m.LogViewport.Width
	if !m.ActivityLogDirty && !widthChanged {
		return
	}
	atBottom := m.LogViewport.AtBottom()
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
	if atBottom {
		m.LogViewport.GotoBottom()
	}
	m.LogViewportLastWidth = m.LogViewport.Width
	m.ActivityLogDirty = false
}

// reload marks the view busy and fetches the catalog again.
func reload(m *model.Model) tea.Cmd {
	m.IsLoading = true
	return model.LoadBeveragesCmd(m.API)
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.QuitApp = true
	return m, tea.Quit
}

func handleBeveragesLoadedMsg(m *model.Model, msg model.BeveragesLoadedMsg) *model.Model {
	m.IsLoading = false
	if msg.Err != nil {
		logging.Error(tuiSubsystem, msg.Err, "%s", catalog.LoadErrorMessage)
		m.ApplyLoadFailure()
		return m
	}
	m.ApplyLoad(msg.Items)
	debugf(m, tuiSubsystem, "Loaded %d bottles and %d crates", len(m.Bottles), len(m.Crates))
	return m
}

func handleBeverageSavedMsg(m *model.Model, msg model.BeverageSavedMsg) (*model.Model, tea.Cmd) {
	var status tea.Cmd
	if msg.Result.OK() {
		logging.Info(tuiSubsystem, "Beverage %s updated", msg.ID)
		status = m.SetStatusMessage("Beverage "+msg.ID+" updated", model.StatusBarSuccess, model.StatusMessageTTL)
	} else {
		logging.Error(tuiSubsystem, msg.Result.AsError(), "Error updating beverage %s", msg.ID)
		status = m.SetStatusMessage("Error updating beverage: "+msg.Result.Message(), model.StatusBarError, model.StatusMessageTTL)
	}
	m.CloseView()
	return m, tea.Batch(status, reload(m))
}

func handleBeverageDeletedMsg(m *model.Model, msg model.BeverageDeletedMsg) (*model.Model, tea.Cmd) {
	var status tea.Cmd
	if msg.Result.OK() {
		logging.Info(tuiSubsystem, "Beverage %s deleted", msg.ID)
		status = m.SetStatusMessage("Beverage "+msg.ID+" deleted", model.StatusBarSuccess, model.StatusMessageTTL)
	} else {
		logging.Error(tuiSubsystem, msg.Result.AsError(), "Error deleting beverage %s", msg.ID)
		status = m.SetStatusMessage("Error deleting beverage: "+msg.Result.Message(), model.StatusBarError, model.StatusMessageTTL)
	}
	m.CloseView()
	return m, tea.Batch(status, reload(m))
}

func handleBeverageAddedMsg(m *model.Model, msg model.BeverageAddedMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		logging.Error(tuiSubsystem, msg.Err, "Error adding beverage %q", msg.Name)
		m.ErrorMessage = catalog.AddErrorMessage(msg.Err)
		return m, nil
	}
	logging.Info(tuiSubsystem, "Added beverage %q", msg.Name)
	m.CancelAddForm()
	status := m.SetStatusMessage("Added beverage "+msg.Name, model.StatusBarSuccess, model.StatusMessageTTL)
	return m, tea.Batch(status, reload(m))
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	model.AddRawLineToActivityLog(m, msg.Entry.String())
	return m
}
