package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const logo = "cvbuilder"

// renderHeader draws the title on the left and right-aligned badges
func renderHeader(width int, title string, badges ...string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")). // Pink/magenta color
		Bold(true)
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite)).
		Bold(true)

	left := logoStyle.Render(logo)
	if title != "" {
		left = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", titleStyle.Render(title))
	}
	right := lipgloss.JoinHorizontal(lipgloss.Top, badges...)

	contentWidth := width - 2 // -2 for left and right padding
	gap := contentWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right))
}
