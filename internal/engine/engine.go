// Package engine schedules probe cycles and folds their results into
// per-target state. Two cycle kinds run on one loop: ping cycles at the
// configured interval and SSH cycles at five times that interval. Cycles
// never overlap; within a cycle all targets are probed concurrently.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/pingdeck/pingdeck/internal/logger"
	"github.com/pingdeck/pingdeck/internal/probe"
	"github.com/pingdeck/pingdeck/internal/target"
)

// SSHCycleFactor is the ratio of SSH cycle period to ping cycle period.
const SSHCycleFactor = 5

// DefaultPingInterval paces ping cycles when no interval is configured.
const DefaultPingInterval = 1 * time.Second

// DefaultHistorySize bounds each probe history when no size is configured.
const DefaultHistorySize = 100

// Options tunes the engine. Zero values fall back to defaults.
type Options struct {
	PingInterval time.Duration
	HistorySize  int
	Logger       logger.Logger
}

// Engine owns the target states and the scheduling loop. All state mutation
// happens on the Run goroutine; the presentation layer only ever sees
// published snapshots.
type Engine struct {
	states []*target.State
	pinger probe.Pinger
	ssh    probe.SSHProber
	board  *Board

	pingInterval time.Duration
	log          logger.Logger
}

// New creates an engine monitoring the given targets.
func New(targets []target.Target, pinger probe.Pinger, ssh probe.SSHProber, opts Options) *Engine {
	if opts.PingInterval <= 0 {
		opts.PingInterval = DefaultPingInterval
	}
	if opts.HistorySize <= 0 {
		opts.HistorySize = DefaultHistorySize
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}

	states := make([]*target.State, len(targets))
	for i, t := range targets {
		states[i] = target.NewState(t, opts.HistorySize)
	}

	return &Engine{
		states:       states,
		pinger:       pinger,
		ssh:          ssh,
		board:        NewBoard(),
		pingInterval: opts.PingInterval,
		log:          opts.Logger,
	}
}

// Board returns the snapshot hand-off point for the presentation layer.
func (e *Engine) Board() *Board {
	return e.board
}

// Run executes probe cycles until the context is cancelled. Both cycle kinds
// fire immediately on startup so the dashboard has data on its first frame.
func (e *Engine) Run(ctx context.Context) error {
	pingTicker := time.NewTicker(e.pingInterval)
	defer pingTicker.Stop()
	sshTicker := time.NewTicker(e.pingInterval * SSHCycleFactor)
	defer sshTicker.Stop()

	e.runPingCycle(ctx)
	e.runSSHCycle(ctx)
	e.publish()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-pingTicker.C:
			e.runPingCycle(ctx)
			e.publish()
		case <-sshTicker.C:
			e.runSSHCycle(ctx)
			e.publish()
		}
	}
}

// runPingCycle probes every target concurrently and folds the results in
// target order. A slow or failing target delays only the cycle end, never
// the other targets' probes.
func (e *Engine) runPingCycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	start := time.Now()
	results := make([]probe.PingResult, len(e.states))

	var wg sync.WaitGroup
	for i, s := range e.states {
		wg.Add(1)
		go func(i int, addr string) {
			defer wg.Done()
			results[i] = e.pinger.Ping(ctx, addr)
		}(i, s.Target.Addr)
	}
	wg.Wait()

	for i, r := range results {
		if !r.Success {
			e.log.Debug("ping %s failed: %s (%s)", e.states[i].Target.Addr, r.Kind, r.Reason)
		}
		e.states[i].RecordPing(r)
	}

	e.log.Debug("ping cycle: %d targets in %s", len(e.states), time.Since(start))
}

// runSSHCycle probes every SSH-enabled target concurrently. Ping-only
// targets are skipped without recording anything.
func (e *Engine) runSSHCycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	var enabled []*target.State
	for _, s := range e.states {
		if s.Target.SSHEnabled() {
			enabled = append(enabled, s)
		}
	}
	if len(enabled) == 0 {
		return
	}

	start := time.Now()
	results := make([]probe.SSHResult, len(enabled))

	var wg sync.WaitGroup
	for i, s := range enabled {
		wg.Add(1)
		go func(i int, t target.Target) {
			defer wg.Done()
			spec := t.SSH
			results[i] = e.ssh.Probe(ctx, probe.SSHTarget{
				Addr: t.Addr,
				Port: spec.Port,
				User: spec.User,
			})
		}(i, s.Target)
	}
	wg.Wait()

	for i, r := range results {
		if !r.Success {
			e.log.Debug("ssh %s failed: %s (%s)", enabled[i].Target.Endpoint(), r.Kind, r.Reason)
		}
		enabled[i].RecordSSH(r)
	}

	e.log.Debug("ssh cycle: %d targets in %s", len(enabled), time.Since(start))
}

// publish snapshots every state and swaps the board in one step.
func (e *Engine) publish() {
	views := make([]target.View, len(e.states))
	for i, s := range e.states {
		views[i] = s.View()
	}
	e.board.Publish(views)
}
