package formatter

import (
	"fmt"
	"strings"

	"github.com/TheIllusionist93/DOCTOR/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDay describes d relative to today in calendar days.
func RelativeDay(d, today domain.Date) string {
	days := today.DaysUntil(d)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// HumanDate formats d like "Mon, Nov 17 2025".
func HumanDate(d domain.Date) string {
	return d.Time().Format("Mon, Jan 2 2006")
}

// PlacementArrow points from a milestone anchor toward its label.
func PlacementArrow(p domain.Placement) string {
	switch p {
	case domain.PlacementTop:
		return "↑"
	case domain.PlacementBottom:
		return "↓"
	case domain.PlacementLeft:
		return "←"
	case domain.PlacementRight:
		return "→"
	case domain.PlacementTopLeft:
		return "↖"
	case domain.PlacementTopRight:
		return "↗"
	case domain.PlacementBottomLeft:
		return "↙"
	case domain.PlacementBottomRight:
		return "↘"
	default:
		return "·"
	}
}
