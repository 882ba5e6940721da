package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pingdeck/pingdeck/internal/target"
)

// cardDividerStyle creates a subtle divider line with matching background
var cardDividerStyle = lipgloss.NewStyle().
	Foreground(ColorBorder).
	Background(ColorSurfaceBg)

// renderCardDivider creates a subtle thin divider line
func renderCardDivider(width int) string {
	divider := strings.Repeat("─", width)
	return cardDividerStyle.Render(divider)
}

// renderCardLine renders a text line with proper background fill.
func renderCardLine(content string, width int) string {
	contentWidth := lipgloss.Width(content)
	padding := ""
	if width > contentWidth {
		padding = strings.Repeat(" ", width-contentWidth)
	}
	lineStyle := lipgloss.NewStyle().Background(ColorSurfaceBg)
	return lineStyle.Render(content + padding)
}

// truncateWithEllipsis truncates a string to maxLen, adding ellipsis if
// needed.
func truncateWithEllipsis(s string, maxLen int) string {
	if maxLen <= 3 {
		return s
	}
	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}

// formatMillis formats a millisecond value compactly: sub-ms values keep
// two decimals, everything else one.
func formatMillis(ms float64) string {
	if ms < 1 {
		return fmt.Sprintf("%.2fms", ms)
	}
	if ms < 100 {
		return fmt.Sprintf("%.1fms", ms)
	}
	return fmt.Sprintf("%.0fms", ms)
}

// renderCard renders a single target card.
func (m Model) renderCard(v target.View, width int, selected bool) string {
	style := CardStyle.Width(width)
	if selected {
		style = CardSelectedStyle.Width(width)
	}

	// Inner width for content (account for card padding)
	innerWidth := width - 4

	var lines []string

	lines = append(lines, renderCardLine(m.renderTargetLine(v), innerWidth))
	lines = append(lines, renderCardDivider(innerWidth))

	if len(v.Ping) == 0 {
		lines = append(lines, renderCardLine(StatusWaitingStyle.Render("  waiting for first probe..."), innerWidth))
		return style.Render(strings.Join(lines, "\n"))
	}

	// Latency sparkline over the successful samples in the window
	latencies := v.PingLatencies()
	if len(latencies) > 0 {
		spark := RenderLatencySparkline(latencies, innerWidth)
		lines = append(lines, renderCardLine(spark, innerWidth))
	} else {
		lines = append(lines, renderCardLine(StatusDownStyle.Render("  no replies in window"), innerWidth))
	}

	lines = append(lines, m.renderPingStatLines(v, innerWidth)...)

	if v.Target.SSHEnabled() {
		lines = append(lines, renderCardDivider(innerWidth))
		lines = append(lines, m.renderSSHStatLines(v, innerWidth)...)
	}

	if fail := lastFailureLine(v, innerWidth-2); fail != "" {
		lines = append(lines, renderCardDivider(innerWidth))
		lines = append(lines, renderCardLine(MutedStyle.Render(fail), innerWidth))
	}

	return style.Render(strings.Join(lines, "\n"))
}

// renderTargetLine renders the target name with its status glyph.
func (m Model) renderTargetLine(v target.View) string {
	status := Status(v)

	var glyph string
	switch status {
	case StatusUp:
		glyph = StatusUpStyle.Render(StatusUpGlyph)
	case StatusDegraded:
		glyph = StatusDegradedStyle.Render(StatusDegradedGlyph)
	case StatusDown:
		glyph = StatusDownStyle.Render(StatusDownGlyph)
	default:
		glyph = StatusWaitingStyle.Render(StatusWaitingGlyph)
	}

	name := TargetNameStyle.Render(v.Target.Label())
	suffix := MutedStyle.Render(" - " + status.String())

	// Show the address when a display name hides it
	if v.Target.Name != "" {
		suffix += MutedStyle.Render(" (" + v.Target.Addr + ")")
	}

	return glyph + " " + name + suffix
}

// renderPingStatLines renders the ping statistics rows of a card.
func (m Model) renderPingStatLines(v target.View, innerWidth int) []string {
	var lines []string

	s := v.PingStats
	if s == nil {
		return lines
	}

	if last, ok := v.LastPing(); ok && last.Success {
		ms := float64(last.Latency.Microseconds()) / 1000
		lines = append(lines, renderCardLine(
			LabelStyle.Render("ping ")+LatencyStyle(ms).Render(formatMillis(ms))+
				LabelStyle.Render("  avg ")+ValueStyle.Render(formatMillis(s.Mean))+
				LabelStyle.Render("  p95 ")+ValueStyle.Render(formatMillis(s.P95)),
			innerWidth))
	} else {
		lines = append(lines, renderCardLine(
			LabelStyle.Render("ping ")+StatusDownStyle.Render("timeout")+
				LabelStyle.Render("  avg ")+ValueStyle.Render(formatMillis(s.Mean)),
			innerWidth))
	}

	barWidth := innerWidth - 12
	if barWidth < 5 {
		barWidth = 5
	}
	lines = append(lines, renderCardLine(
		LabelStyle.Render("rate ")+ProgressBar(barWidth, s.SuccessRate)+
			" "+RateStyle(s.SuccessRate).Render(fmt.Sprintf("%.0f%%", s.SuccessRate)),
		innerWidth))

	return lines
}

// renderSSHStatLines renders the SSH statistics rows of a card.
func (m Model) renderSSHStatLines(v target.View, innerWidth int) []string {
	s := v.SSHStats
	if s == nil {
		return []string{renderCardLine(
			LabelStyle.Render("ssh  ")+StatusWaitingStyle.Render("waiting..."),
			innerWidth)}
	}

	var line string
	if last, ok := v.LastSSH(); ok && last.Success {
		ms := float64(last.ConnectTime.Microseconds()) / 1000
		line = LabelStyle.Render("ssh  ") + ValueStyle.Render(formatMillis(ms)) +
			LabelStyle.Render("  avg ") + ValueStyle.Render(formatMillis(s.Mean)) +
			LabelStyle.Render("  ") + RateStyle(s.SuccessRate).Render(fmt.Sprintf("%.0f%%", s.SuccessRate))
	} else {
		line = LabelStyle.Render("ssh  ") + StatusDownStyle.Render("unreachable") +
			LabelStyle.Render("  ") + RateStyle(s.SuccessRate).Render(fmt.Sprintf("%.0f%%", s.SuccessRate))
	}

	return []string{renderCardLine(line, innerWidth)}
}

// lastFailureLine formats the most recent failure log entry, or "" when the
// log is empty.
func lastFailureLine(v target.View, maxLen int) string {
	if len(v.Failures) == 0 {
		return ""
	}
	f := v.Failures[len(v.Failures)-1]
	line := fmt.Sprintf("%s %s %s", f.Timestamp.Format("15:04:05"), f.Probe, f.Kind)
	return truncateWithEllipsis(line, maxLen)
}
