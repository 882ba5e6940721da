package monitor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pingdeck/pingdeck/internal/probe"
	"github.com/pingdeck/pingdeck/internal/target"
)

// failureEntry pairs a failure with the target it belongs to, for the
// cross-target failure view.
type failureEntry struct {
	target  string
	failure target.Failure
}

// renderFailures renders the aggregated failure view: counts per failure
// kind across all targets, then the most recent failures.
func (m Model) renderFailures() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	width := m.width - 2
	if width < 40 {
		width = 40
	}
	if width > 90 {
		width = 90
	}

	counts, entries := collectFailures(m.snapshot.Targets)

	b.WriteString(SectionHeader("Failures by reason", fmt.Sprintf("%d total", len(entries)), width))
	b.WriteString("\n")

	if len(counts) == 0 {
		b.WriteString(SectionContentLine(MutedStyle.Render("no failures in any window"), width))
		b.WriteString("\n")
	} else {
		kinds := make([]probe.FailureKind, 0, len(counts))
		for k := range counts {
			kinds = append(kinds, k)
		}
		sort.Slice(kinds, func(i, j int) bool {
			if counts[kinds[i]] != counts[kinds[j]] {
				return counts[kinds[i]] > counts[kinds[j]]
			}
			return kinds[i] < kinds[j]
		})

		maxCount := counts[kinds[0]]
		for _, k := range kinds {
			barWidth := width - 40
			if barWidth < 10 {
				barWidth = 10
			}
			bar := ProgressBar(barWidth, float64(counts[k])/float64(maxCount)*100)
			line := LabelStyle.Render(fmt.Sprintf("%-22s", k)) +
				ValueStyle.Render(fmt.Sprintf("%4d ", counts[k])) + bar
			b.WriteString(SectionContentLine(line, width))
			b.WriteString("\n")
		}
	}

	b.WriteString(SectionFooter(width))
	b.WriteString("\n\n")

	b.WriteString(SectionHeader("Recent failures", "", width))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(SectionContentLine(MutedStyle.Render("nothing to show"), width))
		b.WriteString("\n")
	} else {
		shown := entries
		if len(shown) > 15 {
			shown = shown[:15]
		}
		for _, e := range shown {
			line := MutedStyle.Render(e.failure.Timestamp.Format("15:04:05")) + " " +
				TargetNameStyle.Render(fmt.Sprintf("%-16s", truncateWithEllipsis(e.target, 16))) + " " +
				LabelStyle.Render(fmt.Sprintf("%-4s", e.failure.Probe)) + " " +
				StatusDownStyle.Render(string(e.failure.Kind))
			b.WriteString(SectionContentLine(line, width))
			b.WriteString("\n")
		}
	}

	b.WriteString(SectionFooter(width))
	b.WriteString("\n")
	b.WriteString(m.renderFooter("f or esc back | q quit"))

	return b.String()
}

// collectFailures aggregates the failure logs of every target: counts by
// kind plus a newest-first entry list.
func collectFailures(views []target.View) (map[probe.FailureKind]int, []failureEntry) {
	counts := make(map[probe.FailureKind]int)
	var entries []failureEntry

	for _, v := range views {
		for _, f := range v.Failures {
			counts[f.Kind]++
			entries = append(entries, failureEntry{target: v.Target.Label(), failure: f})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].failure.Timestamp.After(entries[j].failure.Timestamp)
	})

	return counts, entries
}
