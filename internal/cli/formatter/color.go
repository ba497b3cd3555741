package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/trackline/internal/domain"
)

// Catppuccin-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#a6e3a1")
	ColorYellow = lipgloss.Color("#f9e2af")
	ColorRed    = lipgloss.Color("#f38ba8")
	ColorBlue   = lipgloss.Color("#89b4fa")
	ColorPeach  = lipgloss.Color("#fab387")
	ColorDim    = lipgloss.Color("#6c7086")
	ColorFg     = lipgloss.Color("#cdd6f4")
	ColorHeader = lipgloss.Color("#cba6f7")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePeach  = lipgloss.NewStyle().Foreground(ColorPeach)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityStyle returns the lipgloss style for a tracker priority.
func PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityCritical:
		return StyleRed
	case domain.PriorityHigh:
		return StylePeach
	case domain.PriorityLow:
		return StyleGreen
	default:
		return StyleBlue
	}
}

// PriorityIndicator returns a colored indicator string such as "● critical".
func PriorityIndicator(p domain.Priority) string {
	return PriorityStyle(p).Render("● " + string(p))
}

// TypeBadge returns a colored single-letter badge for a tracker type.
func TypeBadge(t domain.TrackerType) string {
	switch t {
	case domain.TrackerProject:
		return StyleHeader.Render("[P]")
	case domain.TrackerBug:
		return StyleRed.Render("[B]")
	default:
		return StyleBlue.Render("[F]")
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
