package probe

import (
	"context"
	"net"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// DefaultPingTimeout bounds one echo round trip when no timeout is
// configured.
const DefaultPingTimeout = 1 * time.Second

// ICMPPinger probes reachability with a single ICMP echo per call.
type ICMPPinger struct {
	timeout    time.Duration
	privileged bool
}

// NewICMPPinger creates a pinger with the given per-probe timeout.
// privileged selects raw ICMP sockets; leave it false to use unprivileged
// UDP ping, which works without root on Linux and macOS.
func NewICMPPinger(timeout time.Duration, privileged bool) *ICMPPinger {
	if timeout <= 0 {
		timeout = DefaultPingTimeout
	}
	return &ICMPPinger{timeout: timeout, privileged: privileged}
}

// Ping sends one echo request and waits up to the configured timeout for the
// reply. The result is always populated; failures carry a categorized kind.
func (p *ICMPPinger) Ping(ctx context.Context, addr string) PingResult {
	now := time.Now()

	if net.ParseIP(addr) == nil {
		return PingResult{
			Timestamp: now,
			Kind:      FailPingParse,
			Reason:    "invalid IP address: " + addr,
		}
	}

	pinger := probing.New(addr)
	pinger.Count = 1
	pinger.Timeout = p.timeout
	pinger.SetPrivileged(p.privileged)

	if err := pinger.Resolve(); err != nil {
		return PingResult{
			Timestamp: now,
			Kind:      FailPingParse,
			Reason:    err.Error(),
		}
	}

	if err := pinger.RunWithContext(ctx); err != nil {
		return PingResult{
			Timestamp: now,
			Kind:      FailPingUnreachable,
			Reason:    err.Error(),
		}
	}

	st := pinger.Statistics()
	if st.PacketsRecv == 0 {
		return PingResult{
			Timestamp: now,
			Kind:      FailPingTimeout,
			Reason:    "no reply within " + p.timeout.String(),
		}
	}

	return PingResult{
		Timestamp: now,
		Latency:   st.AvgRtt,
		Success:   true,
	}
}
