package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// render renders the complete dashboard for the current view mode.
func (m Model) render() string {
	if m.showHelp {
		return m.renderHelp()
	}

	switch m.viewMode {
	case ViewDetail:
		return m.renderDetail()
	case ViewFailures:
		return m.renderFailures()
	default:
		return m.renderList()
	}
}

// renderList renders the card grid view.
func (m Model) renderList() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderCards())
	b.WriteString("\n")
	b.WriteString(m.renderFooter("↑↓ select | enter detail | f failures | ? help | q quit"))

	return b.String()
}

// renderHeader renders the dashboard header with summary stats.
func (m Model) renderHeader() string {
	total := len(m.snapshot.Targets)
	up := m.UpCount()
	lastUpdate := m.SecondsSinceUpdate()

	var updateText string
	switch lastUpdate {
	case 0:
		updateText = "just now"
	case 1:
		updateText = "1s ago"
	default:
		updateText = fmt.Sprintf("%ds ago", lastUpdate)
	}

	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("pingdeck")

	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(fmt.Sprintf(" | %d targets | %d up | cycle %d | updated %s",
			total, up, m.snapshot.Version, updateText))

	return HeaderStyle.Render(title + stats)
}

// renderCards renders the grid of target cards.
func (m Model) renderCards() string {
	if len(m.snapshot.Targets) == 0 {
		return LabelStyle.Render("Waiting for first probe cycle...")
	}

	cardWidth := m.calculateCardWidth()

	var cards []string
	for i, v := range m.snapshot.Targets {
		cards = append(cards, m.renderCard(v, cardWidth, i == m.selected))
	}

	return m.layoutCards(cards, cardWidth)
}

// calculateCardWidth determines the card width based on terminal width.
func (m Model) calculateCardWidth() int {
	if m.width == 0 {
		return 40
	}

	if m.width >= BreakpointCompact {
		return 38
	}
	return m.width - 4
}

// layoutCards arranges cards in rows based on terminal width.
func (m Model) layoutCards(cards []string, cardWidth int) string {
	if len(cards) == 0 {
		return ""
	}

	cardsPerRow := 1
	if m.width > 0 {
		// Account for card margins and borders
		effectiveCardWidth := cardWidth + 3
		cardsPerRow = m.width / effectiveCardWidth
		if cardsPerRow < 1 {
			cardsPerRow = 1
		}
	}

	var rows []string
	for i := 0; i < len(cards); i += cardsPerRow {
		end := i + cardsPerRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFooter renders the keyboard hint footer.
func (m Model) renderFooter(hints string) string {
	return FooterStyle.Render(hints)
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	width := 50
	b.WriteString(SectionHeader("Keyboard shortcuts", "", width))
	b.WriteString("\n")

	shortcuts := []struct{ key, desc string }{
		{"q / ctrl+c", "quit"},
		{"up / k", "select previous target"},
		{"down / j", "select next target"},
		{"home / end", "jump to first / last target"},
		{"enter", "expand selected target details"},
		{"f", "toggle failure log view"},
		{"pgup / pgdown", "scroll detail view"},
		{"esc", "collapse / go back"},
		{"?", "toggle this help"},
	}

	for _, s := range shortcuts {
		line := ValueStyle.Render(fmt.Sprintf("%-14s", s.key)) + LabelStyle.Render(s.desc)
		b.WriteString(SectionContentLine(line, width))
		b.WriteString("\n")
	}

	b.WriteString(SectionFooter(width))
	b.WriteString("\n")
	b.WriteString(m.renderFooter("? or esc to close"))

	return b.String()
}
