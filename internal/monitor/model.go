// Package monitor renders the live dashboard. The model never touches the
// probe engine directly; it polls the snapshot board on every tick and
// renders whatever generation it finds there.
package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pingdeck/pingdeck/internal/engine"
	"github.com/pingdeck/pingdeck/internal/target"
)

// TargetStatus represents the probe state of a target.
type TargetStatus int

const (
	StatusWaiting TargetStatus = iota // no results yet
	StatusUp                          // last ping succeeded, window healthy
	StatusDegraded                    // last ping succeeded, failures in window
	StatusDown                        // last ping failed
)

// String returns a human-readable status string.
func (s TargetStatus) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusUp:
		return "up"
	case StatusDegraded:
		return "degraded"
	case StatusDown:
		return "down"
	default:
		return "unknown"
	}
}

// ViewMode defines the current display mode of the dashboard.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
	ViewFailures
)

// Width breakpoints for the card grid
const (
	BreakpointCompact  = 80
	BreakpointStandard = 120
)

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	board    *engine.Board
	snapshot engine.Snapshot

	selected   int
	width      int
	height     int
	interval   time.Duration
	lastUpdate time.Time
	quitting   bool
	viewMode   ViewMode
	showHelp   bool

	detailViewport viewport.Model
	viewportReady  bool
}

// tickMsg signals a periodic snapshot poll.
type tickMsg time.Time

// NewModel creates a dashboard model reading from the given board. interval
// should match the engine's ping interval so the display refreshes once per
// cycle.
func NewModel(board *engine.Board, interval time.Duration) Model {
	if interval <= 0 {
		interval = engine.DefaultPingInterval
	}
	return Model{
		board:    board,
		interval: interval,
	}
}

// Init starts the tick timer and pulls the first snapshot.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.handleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.viewportReady {
			m.detailViewport = viewport.New(m.width, viewportHeight)
			m.detailViewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.detailViewport.Width = m.width
			m.detailViewport.Height = viewportHeight
		}

		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case tickMsg:
		snap := m.board.Latest()
		if snap.Version != m.snapshot.Version {
			m.snapshot = snap
			m.lastUpdate = snap.Taken
			m.clampSelection()
			if m.viewMode == ViewDetail {
				m.updateDetailViewportContent()
			}
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// clampSelection keeps the selection inside the target list.
func (m *Model) clampSelection() {
	if n := len(m.snapshot.Targets); m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// SelectedTarget returns the currently selected target view, or false when
// the snapshot is empty.
func (m Model) SelectedTarget() (target.View, bool) {
	if m.selected < 0 || m.selected >= len(m.snapshot.Targets) {
		return target.View{}, false
	}
	return m.snapshot.Targets[m.selected], true
}

// Status derives the display status of a target from its ping window.
func Status(v target.View) TargetStatus {
	last, ok := v.LastPing()
	if !ok {
		return StatusWaiting
	}
	if !last.Success {
		return StatusDown
	}
	if v.PingStats != nil && v.PingStats.SuccessRate < 100 {
		return StatusDegraded
	}
	return StatusUp
}

// UpCount returns the number of targets whose latest ping succeeded.
func (m Model) UpCount() int {
	count := 0
	for _, v := range m.snapshot.Targets {
		if s := Status(v); s == StatusUp || s == StatusDegraded {
			count++
		}
	}
	return count
}

// SecondsSinceUpdate returns how many seconds have passed since the last
// snapshot change.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}
