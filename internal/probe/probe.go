// Package probe defines the atomic probe operations and their result
// contract. A probe never returns an error: every transport, parse, or
// timeout problem is folded into a result with Success=false and a
// categorized failure kind, so one bad target can never abort a cycle.
package probe

import (
	"context"
	"strings"
	"time"
)

// FailureKind is a stable tag identifying why a probe failed. The tags are
// part of the snapshot contract consumed by the presentation layer.
type FailureKind string

const (
	FailNone            FailureKind = ""
	FailPingParse       FailureKind = "ping-parse-error"
	FailPingUnreachable FailureKind = "ping-unreachable"
	FailPingTimeout     FailureKind = "ping-timeout"
	FailSSHTimeout      FailureKind = "ssh-timeout"
	FailSSHRefused      FailureKind = "ssh-refused"
	FailSSHUnreachable  FailureKind = "ssh-unreachable"
	FailSSHHandshake    FailureKind = "ssh-handshake-failed"
)

// String returns the stable tag.
func (k FailureKind) String() string {
	return string(k)
}

// PingResult is the outcome of one ICMP echo probe. Latency is only
// meaningful when Success is true; Kind and Reason are only set on failure.
type PingResult struct {
	Timestamp time.Time
	Latency   time.Duration
	Success   bool
	Kind      FailureKind
	Reason    string
}

// SSHResult is the outcome of one SSH handshake probe. ConnectTime spans
// connection attempt start to handshake completion.
type SSHResult struct {
	Timestamp   time.Time
	ConnectTime time.Duration
	Success     bool
	Kind        FailureKind
	Reason      string
}

// SSHTarget identifies one SSH endpoint to probe.
type SSHTarget struct {
	Addr string
	Port int
	User string
}

// Pinger performs one ICMP reachability probe against an IP address.
type Pinger interface {
	Ping(ctx context.Context, addr string) PingResult
}

// SSHProber performs one SSH transport+handshake probe (no authentication).
type SSHProber interface {
	Probe(ctx context.Context, target SSHTarget) SSHResult
}

// classifyDialError maps a TCP dial error onto the SSH failure taxonomy.
// Classification is by error text; the net package does not expose typed
// errors for these conditions.
func classifyDialError(err error) FailureKind {
	if err == nil {
		return FailNone
	}

	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "i/o timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return FailSSHTimeout
	}
	if strings.Contains(errStr, "connection refused") {
		return FailSSHRefused
	}
	if strings.Contains(errStr, "no route to host") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "host is down") {
		return FailSSHUnreachable
	}

	return FailSSHHandshake
}

// isAuthRejection reports whether an SSH connection error happened after the
// handshake completed, at the authentication step. The probe never
// authenticates, so an auth rejection means the transport and key exchange
// both succeeded.
func isAuthRejection(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "unable to authenticate") ||
		strings.Contains(errStr, "no supported methods remain")
}
