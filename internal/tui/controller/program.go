package controller

import (
	"fmt"

	"bevctl/internal/client"
	"bevctl/internal/config"
	"bevctl/internal/tui/design"
	"bevctl/internal/tui/model"
	"bevctl/internal/tui/view"
	"bevctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// CatalogApp adapts the pointer-based model to tea.Model.
type CatalogApp struct {
	state *model.Model
}

// NewCatalogApp binds the update and render functions to m.
func NewCatalogApp(m *model.Model) CatalogApp {
	return CatalogApp{state: m}
}

func (c CatalogApp) Init() tea.Cmd { return c.state.Init() }

func (c CatalogApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := Update(msg, c.state)
	return CatalogApp{state: next}, cmd
}

func (c CatalogApp) View() string { return view.Render(c.state) }

// State returns the model behind the app.
func (c CatalogApp) State() *model.Model { return c.state }

// NewProgram builds the full-screen catalog program from cfg. It fails when
// the configured field kinds cannot be turned into a coercion policy.
func NewProgram(
	cfg config.BevctlConfig,
	api client.CatalogAPI,
	debugMode bool,
	logChannel <-chan logging.LogEntry,
) (*tea.Program, error) {
	policy, err := cfg.CoercionPolicy()
	if err != nil {
		return nil, fmt.Errorf("invalid field configuration: %w", err)
	}
	design.Initialize(cfg.UI.IsDarkMode())

	app := NewCatalogApp(model.InitialModel(model.Options{
		API:           api,
		BaseURL:       cfg.API.BaseURL,
		Policy:        policy,
		ReloadOnClose: cfg.UI.ShouldReloadOnClose(),
		DebugMode:     debugMode,
		LogChannel:    logChannel,
	}))
	return tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion()), nil
}
