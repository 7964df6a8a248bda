package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconBottle    = "🍾"
	IconCrate     = "📦"
	IconCross     = "❌"
	IconPencil    = "✎"
	IconPlus      = "+"
	IconScroll    = "📜"
	IconCursor    = "›"
	IconChecked   = "[x]"
	IconUnchecked = "[ ]"
)

// SafeIcon wraps an icon with trailing spaces so it does not swallow the next
// character: one space for single-cell icons, two for wide ones.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}

// IconText formats an icon with text, handling spacing properly
func IconText(icon string, text string) string {
	return SafeIcon(icon) + text
}
