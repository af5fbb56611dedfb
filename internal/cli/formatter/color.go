package formatter

import (
	"fmt"
	"strings"

	"github.com/TheIllusionist93/DOCTOR/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Colors follow the wallpaper: pink accent on dark grey.
var (
	ColorPink   = lipgloss.Color("#ec4899")
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorDim    = lipgloss.Color("#6b7280")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StylePink   = lipgloss.NewStyle().Foreground(ColorPink)
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PhaseIndicator returns a colored label for where today sits in the schedule.
func PhaseIndicator(phase domain.ProgressPhase) string {
	switch phase {
	case domain.PhaseWorkingDay:
		return StylePink.Render("● SHOOTING DAY")
	case domain.PhaseBetween:
		return StyleYellow.Render("○ DAY OFF")
	case domain.PhaseBeforeStart:
		return StyleDim.Render("○ NOT STARTED")
	case domain.PhaseComplete:
		return StyleGreen.Render("✔ WRAPPED")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
