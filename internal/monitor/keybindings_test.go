package monitor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pingdeck/pingdeck/internal/engine"
	"github.com/pingdeck/pingdeck/internal/target"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func modelWithTargets(n int) Model {
	views := make([]target.View, n)
	for i := range views {
		views[i] = target.NewState(target.Target{Addr: string(rune('a' + i))}, 10).View()
	}
	return Model{snapshot: engine.Snapshot{Targets: views}}
}

func TestKeyNavigation(t *testing.T) {
	m := modelWithTargets(3)

	handled, _ := m.handleKeyMsg(keyMsg("down"))
	assert.True(t, handled)
	assert.Equal(t, 1, m.selected)

	m.handleKeyMsg(keyMsg("j"))
	assert.Equal(t, 2, m.selected)

	// At the bottom, down is a no-op
	m.handleKeyMsg(keyMsg("down"))
	assert.Equal(t, 2, m.selected)

	m.handleKeyMsg(keyMsg("up"))
	assert.Equal(t, 1, m.selected)

	m.handleKeyMsg(keyMsg("k"))
	assert.Equal(t, 0, m.selected)

	m.handleKeyMsg(keyMsg("up"))
	assert.Equal(t, 0, m.selected)
}

func TestKeyHomeEnd(t *testing.T) {
	m := modelWithTargets(4)
	m.selected = 2

	m.handleKeyMsg(keyMsg("home"))
	assert.Equal(t, 0, m.selected)

	m.handleKeyMsg(keyMsg("end"))
	assert.Equal(t, 3, m.selected)
}

func TestKeyQuit(t *testing.T) {
	m := modelWithTargets(1)
	handled, cmd := m.handleKeyMsg(keyMsg("q"))
	assert.True(t, handled)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)

	m = modelWithTargets(1)
	_, cmd = m.handleKeyMsg(keyMsg("ctrl+c"))
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
}

func TestKeyExpandAndCollapse(t *testing.T) {
	m := modelWithTargets(2)

	m.handleKeyMsg(keyMsg("enter"))
	assert.Equal(t, ViewDetail, m.viewMode)

	m.handleKeyMsg(keyMsg("esc"))
	assert.Equal(t, ViewList, m.viewMode)
}

func TestKeyExpandWithNoTargets(t *testing.T) {
	m := modelWithTargets(0)
	m.handleKeyMsg(keyMsg("enter"))
	assert.Equal(t, ViewList, m.viewMode)
}

func TestKeyFailuresToggle(t *testing.T) {
	m := modelWithTargets(1)

	m.handleKeyMsg(keyMsg("f"))
	assert.Equal(t, ViewFailures, m.viewMode)

	m.handleKeyMsg(keyMsg("f"))
	assert.Equal(t, ViewList, m.viewMode)
}

func TestKeyHelpToggle(t *testing.T) {
	m := modelWithTargets(1)

	m.handleKeyMsg(keyMsg("?"))
	assert.True(t, m.showHelp)

	// Esc closes help without leaving the current view
	m.viewMode = ViewDetail
	m.handleKeyMsg(keyMsg("esc"))
	assert.False(t, m.showHelp)
	assert.Equal(t, ViewDetail, m.viewMode)
}

func TestUnhandledKey(t *testing.T) {
	m := modelWithTargets(1)
	handled, cmd := m.handleKeyMsg(keyMsg("x"))
	assert.False(t, handled)
	assert.Nil(t, cmd)
}
