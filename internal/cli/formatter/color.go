package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shamsu/conops/internal/contract"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DisableStyles resets every package style to an unstyled one. Called once
// at startup for non-terminal output or when the user asked for plain
// text; not safe to call concurrently with rendering.
func DisableStyles() {
	plain := lipgloss.NewStyle()
	StyleGreen = plain
	StyleYellow = plain
	StyleRed = plain
	StyleBlue = plain
	StylePurple = plain
	StyleDim = plain
	StyleFg = plain
	StyleHeader = plain
	StyleBold = plain
}

// ViolationStyle returns the style for a placement violation code.
// Structural problems render red, window geometry yellow, and
// requirement-rule gating purple.
func ViolationStyle(code contract.ViolationCode) lipgloss.Style {
	switch code {
	case contract.ViolationStartsBeforeTimeline, contract.ViolationNonpositiveDuration:
		return StyleRed
	case contract.ViolationOutsideAllowed, contract.ViolationDenyOverlap:
		return StyleYellow
	case contract.ViolationRequiresContact, contract.ViolationContactOrBlackout, contract.ViolationDuringEclipse:
		return StylePurple
	default:
		return StyleDim
	}
}

// VerdictIndicator returns a colored placement verdict such as "● OK".
func VerdictIndicator(ok bool) string {
	if ok {
		return StyleGreen.Render("● OK")
	}
	return StyleRed.Render("● VIOLATION")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
