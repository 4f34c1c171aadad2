package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
)

// globe palette
var inkStyles = map[ink]lipgloss.Style{
	inkLimb:           lipgloss.NewStyle().Foreground(lipgloss.Color("#4B5563")),
	inkOutline:        lipgloss.NewStyle().Foreground(lipgloss.Color("#D4D4D4")),
	inkFill:           lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")),
	inkVisitedOutline: lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A")),
	inkHoverFill:      lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A")),
	inkHoverOutline:   lipgloss.NewStyle().Foreground(lipgloss.Color("#15803D")),
	inkOverlay:        lipgloss.NewStyle().Foreground(accentFg),
}
