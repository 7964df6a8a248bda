package model

import (
	"time"

	"bevctl/internal/catalog"
	"bevctl/internal/client"
	"bevctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DetailMode is the state of the detail panel.
type DetailMode int

const (
	ModeClosed DetailMode = iota
	ModeViewing
	ModeEditing
)

// String provides a human-readable representation of the DetailMode.
func (m DetailMode) String() string {
	switch m {
	case ModeClosed:
		return "Closed"
	case ModeViewing:
		return "Viewing"
	case ModeEditing:
		return "Editing"
	default:
		return "Unknown"
	}
}

// ViewState is what the detail panel shows. Current is nil when Mode is
// ModeClosed.
type ViewState struct {
	Mode    DetailMode
	Current *catalog.Item
}

// ListFocus selects the list the cursor keys act on.
type ListFocus int

const (
	FocusBottles ListFocus = iota
	FocusCrates
)

// Overlay is a full-screen panel drawn over the catalog.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayHelp
	OverlayLog
)

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// MaxActivityLogLines caps the activity log.
const MaxActivityLogLines = 1000

// StatusMessageTTL is how long a status bar message stays up.
var StatusMessageTTL = 4 * time.Second

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Tab       key.Binding
	ShiftTab  key.Binding
	Enter     key.Binding
	Esc       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Close     key.Binding
	Add       key.Binding
	Toggle    key.Binding
	Save      key.Binding
	Reload    key.Binding
	CopyItem  key.Binding
	ToggleLog key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// FullHelp returns the bindings shown in the help overlay, one column each.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab, k.Enter},
		{k.Edit, k.Delete, k.Close, k.Add, k.Save, k.Toggle},
		{k.Reload, k.CopyItem, k.ToggleLog, k.Help, k.Quit},
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// Model is the state of the catalog view.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	QuitApp   bool
	IsLoading bool
	Overlay   Overlay
	DebugMode bool

	// Backend
	API           client.CatalogAPI
	BaseURL       string
	Policy        catalog.CoercionPolicy
	ReloadOnClose bool

	// Catalog lists, replaced wholesale by every load.
	Bottles      []*catalog.Item
	Crates       []*catalog.Item
	Focus        ListFocus
	BottleCursor int
	CrateCursor  int

	// ErrorMessage is the error region; empty hides it.
	ErrorMessage string

	View       ViewState
	EditInputs []EditInput
	EditFocus  int

	AddFormVisible bool
	AddForm        AddFormModel

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	LogViewportLastWidth int
	Spinner              spinner.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry
}

// Init starts the first load, the spinner and the log listener.
func (m *Model) Init() tea.Cmd {
	m.IsLoading = true
	cmds := []tea.Cmd{LoadBeveragesCmd(m.API), m.Spinner.Tick}
	if m.LogChannel != nil {
		cmds = append(cmds, ListenForLogEntriesCmd(m.LogChannel))
	}
	return tea.Batch(cmds...)
}

// SetStatusMessage updates the status bar message and schedules its removal.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ClearStatusMessage removes the status bar message.
func (m *Model) ClearStatusMessage() {
	m.StatusBarMessage = ""
	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
		m.StatusBarClearCancel = nil
	}
}

// AddRawLineToActivityLog appends a formatted log line, keeping at most
// MaxActivityLogLines.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}
