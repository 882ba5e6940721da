package probe

import (
	"context"
	"net"
	"strconv"
	"time"

	"golang.org/x/crypto/ssh"
)

// DefaultSSHTimeout bounds the TCP connect plus SSH handshake when no
// timeout is configured.
const DefaultSSHTimeout = 5 * time.Second

const defaultProbeUser = "pingdeck"

// SSHHandshaker probes SSH availability by completing the transport
// handshake and key exchange, then disconnecting. It offers no credentials;
// the server rejecting authentication still proves the SSH service is up and
// negotiating.
type SSHHandshaker struct {
	timeout time.Duration
}

// NewSSHHandshaker creates a prober with the given per-probe timeout
// covering connect and handshake together.
func NewSSHHandshaker(timeout time.Duration) *SSHHandshaker {
	if timeout <= 0 {
		timeout = DefaultSSHTimeout
	}
	return &SSHHandshaker{timeout: timeout}
}

// Probe dials the target and runs the SSH handshake. ConnectTime spans dial
// start to handshake completion.
func (h *SSHHandshaker) Probe(ctx context.Context, target SSHTarget) SSHResult {
	start := time.Now()

	port := target.Port
	if port == 0 {
		port = 22
	}
	addr := net.JoinHostPort(target.Addr, strconv.Itoa(port))

	dialer := net.Dialer{Timeout: h.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return SSHResult{
			Timestamp: start,
			Kind:      classifyDialError(err),
			Reason:    err.Error(),
		}
	}
	defer conn.Close()

	// Bound the handshake too; ClientConfig.Timeout only covers dialing.
	deadline := start.Add(h.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return SSHResult{
			Timestamp: start,
			Kind:      FailSSHHandshake,
			Reason:    err.Error(),
		}
	}

	user := target.User
	if user == "" {
		user = defaultProbeUser
	}

	cfg := &ssh.ClientConfig{
		User:            user,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         h.timeout,
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, cfg)
	if err != nil {
		// No credentials are offered, so a healthy server answers with an
		// auth rejection after the handshake succeeded.
		if isAuthRejection(err) {
			return SSHResult{
				Timestamp:   start,
				ConnectTime: time.Since(start),
				Success:     true,
			}
		}
		return SSHResult{
			Timestamp: start,
			Kind:      classifyHandshakeError(err),
			Reason:    err.Error(),
		}
	}

	// Some servers accept "none" auth outright.
	go ssh.DiscardRequests(reqs)
	go func() {
		for ch := range chans {
			ch.Reject(ssh.Prohibited, "probe only")
		}
	}()
	sshConn.Close()

	return SSHResult{
		Timestamp:   start,
		ConnectTime: time.Since(start),
		Success:     true,
	}
}

// classifyHandshakeError maps a post-connect handshake error onto the
// failure taxonomy.
func classifyHandshakeError(err error) FailureKind {
	kind := classifyDialError(err)
	if kind == FailSSHRefused || kind == FailSSHUnreachable {
		// The TCP connection was already up; a reset mid-handshake is a
		// handshake failure, not a connect failure.
		return FailSSHHandshake
	}
	return kind
}
