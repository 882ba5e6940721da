package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette
const (
	// Background colors
	ColorDarkBg    = lipgloss.Color("#0A0A0F") // Deep void
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	// Semantic colors - neon style
	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF") // Pure white
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	// Accent colors
	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple

	// Graph color
	ColorGraph = lipgloss.Color("#00FFFF") // Neon cyan
)

// Latency thresholds (milliseconds) for color coding.
const (
	LatencyWarning  = 100.0
	LatencyCritical = 300.0
)

// Success rate thresholds (percent) for color coding.
const (
	RateHealthy = 99.0
	RateWarning = 90.0
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1).
			MarginBottom(1)

	CardSelectedStyle = CardStyle.
				BorderForeground(ColorAccent)

	TargetNameStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	StatusUpStyle = lipgloss.NewStyle().
			Foreground(ColorHealthy)

	StatusDegradedStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	StatusDownStyle = lipgloss.NewStyle().
			Foreground(ColorCritical)

	StatusWaitingStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)
)

// Status indicator characters
const (
	StatusUpGlyph       = "◉" // Filled target
	StatusDegradedGlyph = "◔" // Partially filled
	StatusDownGlyph     = "◌" // Dashed circle
	StatusWaitingGlyph  = "◐" // Half-filled
)

// LatencyColor returns the color for a latency value in milliseconds.
func LatencyColor(ms float64) lipgloss.Color {
	switch {
	case ms >= LatencyCritical:
		return ColorCritical
	case ms >= LatencyWarning:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// LatencyStyle returns a style colored for the latency value.
func LatencyStyle(ms float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(LatencyColor(ms))
}

// RateColor returns the color for a success rate percentage.
func RateColor(percent float64) lipgloss.Color {
	switch {
	case percent >= RateHealthy:
		return ColorHealthy
	case percent >= RateWarning:
		return ColorWarning
	default:
		return ColorCritical
	}
}

// RateStyle returns a style colored for the success rate.
func RateStyle(percent float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(RateColor(percent))
}

// ProgressBar renders a success-rate bar with the given width.
func ProgressBar(width int, percent float64) string {
	if width < 1 {
		width = 1
	}

	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}

	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "▰"
		} else {
			bar += "▱"
		}
	}

	return lipgloss.NewStyle().Foreground(RateColor(percent)).Render(bar)
}

// SectionHeader renders a section header with the title on the left and
// value on the right.
// Format: ╭─ Title ────────────────────────────────────── Value ╮
func SectionHeader(title, value string, width int) string {
	if width < 10 {
		width = 10
	}

	leftWidth := 3 + lipgloss.Width(title) + 1
	rightWidth := 1 + lipgloss.Width(value) + 2

	fillWidth := width - leftWidth - rightWidth
	if fillWidth < 1 {
		fillWidth = 1
	}

	middle := strings.Repeat("─", fillWidth)

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	titleStyle := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(ColorGraph).Bold(true)

	return borderStyle.Render("╭─ ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+middle+" ") +
		valueStyle.Render(value) +
		borderStyle.Render(" ╮")
}

// SectionFooter renders the bottom border of a section.
func SectionFooter(width int) string {
	if width < 2 {
		width = 2
	}

	middle := strings.Repeat("─", width-2)
	return lipgloss.NewStyle().Foreground(ColorBorder).Render("╰" + middle + "╯")
}

// SectionContentLine renders a content line with left and right borders,
// padded to width.
func SectionContentLine(content string, width int) string {
	if width < 4 {
		width = 4
	}

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)

	contentWidth := lipgloss.Width(content)
	innerWidth := width - 4

	padding := innerWidth - contentWidth
	if padding < 0 {
		padding = 0
	}

	return borderStyle.Render("│") + " " + content + strings.Repeat(" ", padding) + " " + borderStyle.Render("│")
}
