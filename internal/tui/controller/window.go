package controller

import (
	"bevctl/internal/tui/design"
	"bevctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// logOverlayChrome is the title line plus its bottom margin.
const logOverlayChrome = 2

// handleWindowSizeMsg stores the terminal dimensions and resizes the log
// overlay viewport to match.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	m.LogViewport.Width = max(0, msg.Width-design.OverlayStyle.GetHorizontalFrameSize())
	m.LogViewport.Height = max(0, msg.Height-design.OverlayStyle.GetVerticalFrameSize()-logOverlayChrome)
	return m, nil
}
