// Package target holds the per-target monitoring state: bounded probe
// histories, the failure log, and the statistics derived from them. State is
// not synchronized; the engine owns all states and serializes access, handing
// the presentation layer deep copies via View.
package target

import (
	"fmt"
	"time"

	"github.com/pingdeck/pingdeck/internal/probe"
	"github.com/pingdeck/pingdeck/internal/stats"
)

// DefaultSSHPort is used when an SSH target does not specify a port.
const DefaultSSHPort = 22

// SSHSpec configures SSH probing for a target. A nil SSHSpec on a Target
// means the target is ping-only.
type SSHSpec struct {
	Port int
	User string
}

// Target identifies one monitored endpoint.
type Target struct {
	Addr string
	Name string
	SSH  *SSHSpec
}

// SSHEnabled reports whether the target participates in SSH cycles.
func (t Target) SSHEnabled() bool {
	return t.SSH != nil
}

// Label returns the display name for the target, falling back to the address.
func (t Target) Label() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Addr
}

// Endpoint returns the host:port the SSH probe dials. Only meaningful when
// SSHEnabled.
func (t Target) Endpoint() string {
	port := DefaultSSHPort
	if t.SSH != nil && t.SSH.Port != 0 {
		port = t.SSH.Port
	}
	return fmt.Sprintf("%s:%d", t.Addr, port)
}

// Failure is one entry in a target's failure log.
type Failure struct {
	Timestamp time.Time
	Probe     string // "ping" or "ssh"
	Kind      probe.FailureKind
	Reason    string
}

// State accumulates probe outcomes for a single target. Every insert updates
// the derived statistics, so reads never trigger recomputation.
type State struct {
	Target Target

	ping     *ring[probe.PingResult]
	ssh      *ring[probe.SSHResult]
	failures *ring[Failure]

	pingStats *stats.Statistics
	sshStats  *stats.Statistics
}

// NewState creates the state for one target. historySize bounds the ping
// history, the SSH history, and the failure log independently.
func NewState(t Target, historySize int) *State {
	return &State{
		Target:   t,
		ping:     newRing[probe.PingResult](historySize),
		ssh:      newRing[probe.SSHResult](historySize),
		failures: newRing[Failure](historySize),
	}
}

// RecordPing appends a ping outcome, logs it on failure, and refreshes the
// ping statistics.
func (s *State) RecordPing(r probe.PingResult) {
	s.ping.push(r)
	if !r.Success {
		s.failures.push(Failure{
			Timestamp: r.Timestamp,
			Probe:     "ping",
			Kind:      r.Kind,
			Reason:    r.Reason,
		})
	}
	s.pingStats = recomputePing(s.ping)
}

// RecordSSH appends an SSH outcome, logs it on failure, and refreshes the
// SSH statistics.
func (s *State) RecordSSH(r probe.SSHResult) {
	s.ssh.push(r)
	if !r.Success {
		s.failures.push(Failure{
			Timestamp: r.Timestamp,
			Probe:     "ssh",
			Kind:      r.Kind,
			Reason:    r.Reason,
		})
	}
	s.sshStats = recomputeSSH(s.ssh)
}

// recomputePing derives statistics from the current ping window. Returns nil
// while the window is empty.
func recomputePing(r *ring[probe.PingResult]) *stats.Statistics {
	window := r.all()
	if len(window) == 0 {
		return nil
	}

	samples := make([]float64, 0, len(window))
	for _, p := range window {
		if p.Success {
			samples = append(samples, float64(p.Latency)/float64(time.Millisecond))
		}
	}

	s := stats.Calculate(samples, len(window))
	return &s
}

// recomputeSSH derives statistics from the current SSH window. Returns nil
// while the window is empty.
func recomputeSSH(r *ring[probe.SSHResult]) *stats.Statistics {
	window := r.all()
	if len(window) == 0 {
		return nil
	}

	samples := make([]float64, 0, len(window))
	for _, p := range window {
		if p.Success {
			samples = append(samples, float64(p.ConnectTime)/float64(time.Millisecond))
		}
	}

	s := stats.Calculate(samples, len(window))
	return &s
}

// View is an immutable deep copy of a State, safe to hand across goroutines.
type View struct {
	Target Target

	Ping     []probe.PingResult
	SSH      []probe.SSHResult
	Failures []Failure

	PingStats *stats.Statistics
	SSHStats  *stats.Statistics
}

// View snapshots the state. Histories are returned oldest first.
func (s *State) View() View {
	v := View{
		Target:   s.Target,
		Ping:     s.ping.all(),
		SSH:      s.ssh.all(),
		Failures: s.failures.all(),
	}
	if s.pingStats != nil {
		cp := *s.pingStats
		v.PingStats = &cp
	}
	if s.sshStats != nil {
		cp := *s.sshStats
		v.SSHStats = &cp
	}
	return v
}

// PingLatencies returns the successful ping latencies of a view window in
// milliseconds, oldest first. Used by the dashboard for sparkline rendering.
func (v View) PingLatencies() []float64 {
	var out []float64
	for _, p := range v.Ping {
		if p.Success {
			out = append(out, float64(p.Latency)/float64(time.Millisecond))
		}
	}
	return out
}

// LastPing returns the most recent ping result, or false when the history is
// empty.
func (v View) LastPing() (probe.PingResult, bool) {
	if len(v.Ping) == 0 {
		return probe.PingResult{}, false
	}
	return v.Ping[len(v.Ping)-1], true
}

// LastSSH returns the most recent SSH result, or false when the history is
// empty.
func (v View) LastSSH() (probe.SSHResult, bool) {
	if len(v.SSH) == 0 {
		return probe.SSHResult{}, false
	}
	return v.SSH[len(v.SSH)-1], true
}
