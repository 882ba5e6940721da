package monitor

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pingdeck/pingdeck/internal/engine"
	"github.com/pingdeck/pingdeck/internal/probe"
	"github.com/pingdeck/pingdeck/internal/stats"
	"github.com/pingdeck/pingdeck/internal/target"
)

func TestStatTableNilStats(t *testing.T) {
	out := statTable("ping", nil, 60)
	assert.Contains(t, out, "no samples yet")
}

func TestStatTableRows(t *testing.T) {
	s := stats.Calculate([]float64{10, 20, 30, 40}, 4)
	out := statTable("ping", &s, 80)

	assert.Contains(t, out, "100.0% of 4 probes")
	assert.Contains(t, out, "mean")
	assert.Contains(t, out, "median")
	assert.Contains(t, out, "p99")
	assert.Contains(t, out, "25.0ms")
}

func TestDetailContentPingOnly(t *testing.T) {
	m := Model{
		width: 80,
		snapshot: engine.Snapshot{Targets: []target.View{
			viewWithPings(target.Target{Addr: "1.1.1.1", Name: "cloudflare-dns"},
				okPing(5), okPing(7)),
		}},
	}

	out := m.detailContent()
	assert.Contains(t, out, "cloudflare-dns")
	assert.Contains(t, out, "1.1.1.1")
	assert.Contains(t, out, "ping")
	assert.NotContains(t, out, "ssh ")
	assert.Contains(t, out, "Failure log")
	assert.Contains(t, out, "no failures in window")
}

func TestDetailContentWithSSH(t *testing.T) {
	st := target.NewState(target.Target{
		Addr: "10.0.0.5",
		SSH:  &target.SSHSpec{Port: 2222, User: "deploy"},
	}, 10)
	st.RecordPing(okPing(8))
	st.RecordSSH(probe.SSHResult{
		Timestamp: time.Now(),
		Success:   false,
		Kind:      probe.FailSSHRefused,
		Reason:    "connection refused",
	})

	m := Model{
		width:    80,
		snapshot: engine.Snapshot{Targets: []target.View{st.View()}},
	}

	out := m.detailContent()
	assert.Contains(t, out, "ssh deploy@10.0.0.5:2222")
	assert.Contains(t, out, "ssh-refused")
}

func TestDetailContentNoSelection(t *testing.T) {
	m := Model{}
	assert.Contains(t, m.detailContent(), "No target selected")
}

func TestFailureLogNewestFirst(t *testing.T) {
	st := target.NewState(target.Target{Addr: "a"}, 10)
	older := probe.PingResult{Timestamp: time.Now().Add(-time.Minute), Kind: probe.FailPingTimeout, Reason: "first"}
	newer := probe.PingResult{Timestamp: time.Now(), Kind: probe.FailPingUnreachable, Reason: "second"}
	st.RecordPing(older)
	st.RecordPing(newer)

	out := failureLog(st.View(), 80)
	require.Contains(t, out, "first")
	require.Contains(t, out, "second")
	assert.Less(t, strings.Index(out, "second"), strings.Index(out, "first"))
}
