package probe

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyDialError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureKind
	}{
		{"nil", nil, FailNone},
		{"io timeout", errors.New("dial tcp 10.0.0.5:22: i/o timeout"), FailSSHTimeout},
		{"deadline", context.DeadlineExceeded, FailSSHTimeout},
		{"refused", errors.New("dial tcp 127.0.0.1:22: connect: connection refused"), FailSSHRefused},
		{"no route", errors.New("dial tcp 10.9.9.9:22: connect: no route to host"), FailSSHUnreachable},
		{"net unreachable", errors.New("dial tcp 240.0.0.1:22: connect: network is unreachable"), FailSSHUnreachable},
		{"host down", errors.New("dial tcp 10.0.0.5:22: connect: host is down"), FailSSHUnreachable},
		{"other", errors.New("ssh: handshake failed: EOF"), FailSSHHandshake},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyDialError(tt.err))
		})
	}
}

func TestClassifyHandshakeError(t *testing.T) {
	// Connection-level resets after connect count as handshake failures
	assert.Equal(t, FailSSHHandshake,
		classifyHandshakeError(errors.New("read tcp: connection refused")))
	assert.Equal(t, FailSSHHandshake,
		classifyHandshakeError(errors.New("write tcp: no route to host")))
	assert.Equal(t, FailSSHTimeout,
		classifyHandshakeError(errors.New("read tcp: i/o timeout")))
}

func TestIsAuthRejection(t *testing.T) {
	assert.True(t, isAuthRejection(errors.New(
		"ssh: handshake failed: ssh: unable to authenticate, attempted methods [none], no supported methods remain")))
	assert.False(t, isAuthRejection(errors.New("ssh: handshake failed: EOF")))
	assert.False(t, isAuthRejection(nil))
}

func TestICMPPingerRejectsUnparsableAddress(t *testing.T) {
	p := NewICMPPinger(100*time.Millisecond, false)

	tests := []string{"not-an-ip", "999.1.1.1", "", "8.8.8.8.8"}
	for _, addr := range tests {
		t.Run(addr, func(t *testing.T) {
			r := p.Ping(context.Background(), addr)
			assert.False(t, r.Success)
			assert.Equal(t, FailPingParse, r.Kind)
			assert.NotEmpty(t, r.Reason)
			assert.False(t, r.Timestamp.IsZero())
		})
	}
}

func TestICMPPingerDefaultTimeout(t *testing.T) {
	p := NewICMPPinger(0, false)
	assert.Equal(t, DefaultPingTimeout, p.timeout)
}

func TestSSHHandshakerRefusedPort(t *testing.T) {
	// Reserve a port, then close the listener so the dial is refused.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	h := NewSSHHandshaker(2 * time.Second)
	r := h.Probe(context.Background(), SSHTarget{Addr: "127.0.0.1", Port: port})

	assert.False(t, r.Success)
	assert.Equal(t, FailSSHRefused, r.Kind)
	assert.NotEmpty(t, r.Reason)
}

func TestSSHHandshakerNonSSHServer(t *testing.T) {
	// A listener that immediately closes accepted connections can never
	// complete an SSH handshake.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	h := NewSSHHandshaker(2 * time.Second)
	port := ln.Addr().(*net.TCPAddr).Port
	r := h.Probe(context.Background(), SSHTarget{Addr: "127.0.0.1", Port: port})

	assert.False(t, r.Success)
	assert.Equal(t, FailSSHHandshake, r.Kind)
}

func TestSSHHandshakerTimeout(t *testing.T) {
	// A listener that accepts but never speaks forces a handshake timeout.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		select {}
	}()

	h := NewSSHHandshaker(200 * time.Millisecond)
	port := ln.Addr().(*net.TCPAddr).Port

	start := time.Now()
	r := h.Probe(context.Background(), SSHTarget{Addr: "127.0.0.1", Port: port})

	assert.False(t, r.Success)
	assert.Equal(t, FailSSHTimeout, r.Kind)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestFailureKindString(t *testing.T) {
	assert.Equal(t, "ping-timeout", FailPingTimeout.String())
	assert.Equal(t, "ssh-handshake-failed", FailSSHHandshake.String())
}
