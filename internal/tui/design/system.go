// Package design holds the palette and lipgloss styles of the catalog view.
package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Panel minimums used by the list layout.
const (
	MinPanelHeight = 5
	MinPanelWidth  = 24
)

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Palette. Every color has a light and a dark variant.
var (
	ColorPrimary = adaptive("#7A3E9D", "#B07CD8")
	ColorSuccess = adaptive("#1F7A4D", "#3CCB7F")
	ColorError   = adaptive("#B3261E", "#F2685F")
	ColorWarning = adaptive("#A15C00", "#F0A53A")
	ColorInfo    = adaptive("#1D5FA8", "#5EA2EF")

	// Tag colors of alcoholic and non-alcoholic bottles.
	colorAlcoholic    = adaptive("#0074D9", "#4DA3FF")
	colorNonAlcoholic = adaptive("#2ECC40", "#5EE06B")

	colorInk      = adaptive("#1B1B1F", "#ECEAF1")
	colorInkSoft  = adaptive("#5D5A66", "#A7A3B2")
	colorInkFaint = adaptive("#8F8B99", "#6E6A78")
	colorPaper    = adaptive("#FFFFFF", "#121014")
	colorShelf    = adaptive("#F4F1F8", "#1E1B22")
	colorShelfAlt = adaptive("#E9E4F0", "#2A2630")
	colorRule     = adaptive("#D6D0DE", "#45404D")
)

func fg(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// Text.
var (
	TextSecondaryStyle = fg(colorInkSoft)
	DimStyle           = fg(colorInkFaint)
	TitleStyle         = fg(colorInk).Bold(true)
)

// Summary segments of the bottle and crate lists.
var (
	SummaryPlainStyle        = fg(colorInk)
	SummaryBoldStyle         = fg(colorInk).Bold(true)
	SummaryMutedStyle        = fg(colorInkSoft)
	SummaryAlcoholicStyle    = fg(colorAlcoholic)
	SummaryNonAlcoholicStyle = fg(colorNonAlcoholic)
	SummaryPriceStyle        = fg(ColorPrimary).Bold(true)
	SummaryRawStyle          = fg(colorInkFaint).Italic(true)
)

// Panels, detail view and forms.
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorRule).
			Padding(0, 1)
	PanelFocusedStyle = PanelStyle.Copy().
				Border(lipgloss.ThickBorder()).
				BorderForeground(ColorPrimary)
	PanelTitleStyle       = fg(ColorPrimary).Bold(true)
	ListItemSelectedStyle = fg(ColorPrimary).Bold(true)

	HeaderStyle = fg(colorInk).
			Background(colorShelf).
			Bold(true).
			Padding(0, 2)
	ErrorRegionStyle = fg(ColorError).Bold(true).Padding(0, 2)

	DetailKeyStyle         = fg(colorInkSoft).Bold(true)
	DetailValueStyle       = fg(colorInk)
	InputLabelStyle        = fg(colorInkSoft)
	InputLabelFocusedStyle = fg(ColorPrimary).Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Background(ColorPrimary).
			Foreground(colorPaper).
			Bold(true).
			Padding(0, 1)
	ButtonSecondaryStyle = ButtonStyle.Copy().
				Background(colorShelfAlt).
				Foreground(colorInk).
				Bold(false)
	ButtonDangerStyle = ButtonStyle.Copy().Background(ColorError)
)

// Status bar, one style per message kind.
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(colorShelfAlt).
			Foreground(colorInk).
			Padding(0, 2).
			Height(1)
	StatusBarSuccessStyle = flash(ColorSuccess)
	StatusBarErrorStyle   = flash(ColorError)
	StatusBarWarningStyle = flash(ColorWarning)
	StatusBarInfoStyle    = flash(ColorInfo)
)

func flash(bg lipgloss.TerminalColor) lipgloss.Style {
	return StatusBarStyle.Copy().Background(bg).Foreground(colorPaper)
}

// Help and log overlays.
var (
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorRule).
			Background(colorShelf).
			Foreground(colorInk).
			Padding(1, 2)
	HelpTitleStyle     = fg(colorInk).Bold(true).Align(lipgloss.Center).MarginBottom(1)
	LogPanelTitleStyle = fg(colorInk).Bold(true).Padding(0, 1).MarginBottom(1)

	LogInfoStyle  = fg(colorInk)
	LogWarnStyle  = fg(ColorWarning)
	LogErrorStyle = fg(ColorError)
	LogDebugStyle = fg(colorInkFaint).Italic(true)
)

// CenterHorizontal pads content so it sits in the middle of width.
func CenterHorizontal(width int, content string) string {
	w := lipgloss.Width(content)
	if w >= width {
		return content
	}
	return lipgloss.NewStyle().PaddingLeft((width - w) / 2).Width(width).Render(content)
}

// Initialize tells lipgloss which variant of the palette to use.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
