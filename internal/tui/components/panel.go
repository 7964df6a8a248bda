package components

import (
	"strings"

	"bevctl/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// PanelType defines the border color of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeSuccess
	PanelTypeError
	PanelTypeInfo
)

// Panel is a bordered box with a title line. Content lines are expected to
// fit the inner width already; wider lines are clipped.
type Panel struct {
	Title   string
	Lines   []string
	Width   int
	Height  int // 0 sizes the panel to its content
	Focused bool
	Type    PanelType
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title: title,
		Width: design.MinPanelWidth,
		Type:  PanelTypeDefault,
	}
}

// WithLines sets the panel content
func (p *Panel) WithLines(lines ...string) *Panel {
	p.Lines = lines
	return p
}

// WithDimensions sets the panel dimensions
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// InnerWidth returns the width available to a content line.
func (p *Panel) InnerWidth() int {
	return max(1, p.width()-p.style().GetHorizontalFrameSize())
}

func (p *Panel) width() int {
	return max(p.Width, design.MinPanelWidth)
}

// Render returns the styled panel
func (p *Panel) Render() string {
	style := p.style()
	innerWidth := p.InnerWidth()

	lines := make([]string, 0, len(p.Lines)+1)
	if p.Title != "" {
		titleStyle := design.TitleStyle
		if p.Focused {
			titleStyle = design.PanelTitleStyle
		}
		lines = append(lines, titleStyle.MaxWidth(innerWidth).Render(p.Title))
	}
	lines = append(lines, p.Lines...)

	if p.Height > 0 {
		innerHeight := max(1, max(p.Height, design.MinPanelHeight)-style.GetVerticalFrameSize())
		if len(lines) > innerHeight {
			lines = lines[:innerHeight]
		}
		for len(lines) < innerHeight {
			lines = append(lines, "")
		}
	}

	content := lipgloss.NewStyle().MaxWidth(innerWidth).Render(strings.Join(lines, "\n"))
	// Width in lipgloss excludes the border.
	return style.
		Width(p.width() - style.GetHorizontalBorderSize()).
		Render(content)
}

func (p *Panel) style() lipgloss.Style {
	base := design.PanelStyle
	if p.Focused {
		base = design.PanelFocusedStyle
	}
	switch p.Type {
	case PanelTypeSuccess:
		return base.Copy().BorderForeground(design.ColorSuccess)
	case PanelTypeError:
		return base.Copy().BorderForeground(design.ColorError)
	case PanelTypeInfo:
		return base.Copy().BorderForeground(design.ColorInfo)
	default:
		return base
	}
}
