package monitor

import (
	"fmt"
	"strings"

	"github.com/pingdeck/pingdeck/internal/stats"
	"github.com/pingdeck/pingdeck/internal/target"
)

// renderDetail renders the expanded view for the selected target, with the
// statistics tables and failure log inside a scrollable viewport.
func (m Model) renderDetail() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.viewportReady {
		b.WriteString(m.detailViewport.View())
	} else {
		b.WriteString(m.detailContent())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter("↑↓ switch target | pgup/pgdown scroll | esc back | q quit"))

	return b.String()
}

// updateDetailViewportContent refreshes the viewport with the selected
// target's detail content.
func (m *Model) updateDetailViewportContent() {
	if m.viewportReady {
		m.detailViewport.SetContent(m.detailContent())
	}
}

// detailContent builds the full detail text for the selected target.
func (m Model) detailContent() string {
	v, ok := m.SelectedTarget()
	if !ok {
		return LabelStyle.Render("No target selected")
	}

	width := m.width - 2
	if width < 40 {
		width = 40
	}
	if width > 90 {
		width = 90
	}

	var b strings.Builder

	title := v.Target.Label()
	if v.Target.Name != "" {
		title += "  " + v.Target.Addr
	}
	status := Status(v)
	b.WriteString(SectionHeader(title, status.String(), width))
	b.WriteString("\n")

	// Wide latency sparkline across the full window
	if latencies := v.PingLatencies(); len(latencies) > 0 {
		b.WriteString(SectionContentLine(RenderLatencySparkline(latencies, width-4), width))
		b.WriteString("\n")
	}

	b.WriteString(statTable("ping", v.PingStats, width))

	if v.Target.SSHEnabled() {
		b.WriteString(SectionContentLine("", width))
		b.WriteString("\n")
		label := "ssh " + v.Target.Endpoint()
		if user := v.Target.SSH.User; user != "" {
			label = fmt.Sprintf("ssh %s@%s", user, v.Target.Endpoint())
		}
		b.WriteString(statTable(label, v.SSHStats, width))
	}

	b.WriteString(SectionFooter(width))
	b.WriteString("\n\n")

	b.WriteString(failureLog(v, width))

	return b.String()
}

// statTable renders one probe kind's statistics rows.
func statTable(label string, s *stats.Statistics, width int) string {
	var b strings.Builder

	if s == nil {
		b.WriteString(SectionContentLine(
			LabelStyle.Render(label+": ")+StatusWaitingStyle.Render("no samples yet"), width))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(SectionContentLine(
		LabelStyle.Render(label+": ")+
			RateStyle(s.SuccessRate).Render(fmt.Sprintf("%.1f%% of %d probes", s.SuccessRate, s.TotalCount)),
		width))
	b.WriteString("\n")

	rows := []struct {
		name  string
		value float64
	}{
		{"mean", s.Mean},
		{"median", s.Median},
		{"min", s.Min},
		{"max", s.Max},
		{"p25", s.P25},
		{"p75", s.P75},
		{"p90", s.P90},
		{"p95", s.P95},
		{"p99", s.P99},
	}

	for i := 0; i < len(rows); i += 3 {
		var cells []string
		for j := i; j < i+3 && j < len(rows); j++ {
			cells = append(cells,
				LabelStyle.Render(fmt.Sprintf("%-7s", rows[j].name))+
					ValueStyle.Render(fmt.Sprintf("%9s", formatMillis(rows[j].value))))
		}
		b.WriteString(SectionContentLine(strings.Join(cells, "   "), width))
		b.WriteString("\n")
	}

	return b.String()
}

// failureLog renders the target's failure log, newest first.
func failureLog(v target.View, width int) string {
	var b strings.Builder

	b.WriteString(SectionHeader("Failure log", fmt.Sprintf("%d", len(v.Failures)), width))
	b.WriteString("\n")

	if len(v.Failures) == 0 {
		b.WriteString(SectionContentLine(MutedStyle.Render("no failures in window"), width))
		b.WriteString("\n")
	} else {
		for i := len(v.Failures) - 1; i >= 0; i-- {
			f := v.Failures[i]
			line := MutedStyle.Render(f.Timestamp.Format("15:04:05")) + " " +
				LabelStyle.Render(fmt.Sprintf("%-4s", f.Probe)) + " " +
				StatusDownStyle.Render(string(f.Kind)) + " " +
				MutedStyle.Render(truncateWithEllipsis(f.Reason, width-40))
			b.WriteString(SectionContentLine(line, width))
			b.WriteString("\n")
		}
	}

	b.WriteString(SectionFooter(width))
	return b.String()
}
