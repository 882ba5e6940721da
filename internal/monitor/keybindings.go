package monitor

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit         = "q"
	KeyQuitAlt      = "ctrl+c"
	KeySelectPrev   = "up"
	KeySelectPrevK  = "k"
	KeySelectNext   = "down"
	KeySelectNextJ  = "j"
	KeySelectFirst  = "home"
	KeySelectLast   = "end"
	KeyExpand       = "enter"
	KeyCollapse     = "esc"
	KeyFailures     = "f"
	KeyToggleHelp   = "?"
	KeyScrollUp     = "pgup"
	KeyScrollDown   = "pgdown"
)

// handleKeyMsg processes keyboard input. Returns true if the key was
// handled.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key == KeyCollapse {
		m.showHelp = false
		return true, nil
	}

	// Detail and failures views: Esc returns to list
	if m.viewMode != ViewList && key == KeyCollapse {
		m.viewMode = ViewList
		return true, nil
	}

	// Scroll the detail viewport
	if m.viewMode == ViewDetail && m.viewportReady {
		switch key {
		case KeyScrollUp:
			m.detailViewport.HalfViewUp()
			return true, nil
		case KeyScrollDown:
			m.detailViewport.HalfViewDown()
			return true, nil
		}
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeySelectPrev, KeySelectPrevK:
		if m.selected > 0 {
			m.selected--
			if m.viewMode == ViewDetail {
				m.updateDetailViewportContent()
			}
		}
		return true, nil

	case KeySelectNext, KeySelectNextJ:
		if m.selected < len(m.snapshot.Targets)-1 {
			m.selected++
			if m.viewMode == ViewDetail {
				m.updateDetailViewportContent()
			}
		}
		return true, nil

	case KeySelectFirst:
		m.selected = 0
		return true, nil

	case KeySelectLast:
		if n := len(m.snapshot.Targets); n > 0 {
			m.selected = n - 1
		}
		return true, nil

	case KeyExpand:
		if m.viewMode == ViewList && len(m.snapshot.Targets) > 0 {
			m.viewMode = ViewDetail
			m.updateDetailViewportContent()
		}
		return true, nil

	case KeyFailures:
		if m.viewMode == ViewFailures {
			m.viewMode = ViewList
		} else {
			m.viewMode = ViewFailures
		}
		return true, nil

	case KeyCollapse:
		m.viewMode = ViewList
		return true, nil
	}

	return false, nil
}
