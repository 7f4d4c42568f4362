// Package monitor detects when the same session store is claimed by
// another running instance.
//
// The protocol is best-effort: on start the monitor writes a fresh
// random token to a shared key, then polls it on a fixed interval. If
// the stored value no longer matches, a newer instance has claimed
// the store; the monitor signals takeover exactly once and stops
// polling for good. Nothing is prevented, only noticed.
package monitor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultInterval is how often the shared key is polled.
const DefaultInterval = time.Second

// keyTab is the shared liveness key. Independent of game identity.
const keyTab = "tab"

// Store is the key-value substrate shared between instances.
type Store interface {
	Set(key, value string) error
	Get(key string) (string, bool, error)
}

// Monitor polls the shared liveness key.
type Monitor struct {
	store    Store
	log      zerolog.Logger
	interval time.Duration
	token    string

	cancel   context.CancelFunc
	takeover chan struct{}
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithInterval overrides the polling interval. Tests use this to poll
// fast.
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) { m.interval = d }
}

// New creates a monitor with a fresh random token.
func New(s Store, log zerolog.Logger, opts ...Option) *Monitor {
	m := &Monitor{
		store:    s,
		log:      log,
		interval: DefaultInterval,
		token:    uuid.NewString(),
		takeover: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Token returns this instance's liveness token.
func (m *Monitor) Token() string { return m.token }

// Takeover is closed exactly once, when another instance overwrites
// the shared key. It never re-fires.
func (m *Monitor) Takeover() <-chan struct{} { return m.takeover }

// Start claims the shared key and begins polling. The task stops when
// ctx is done, Stop is called, or a takeover is detected.
func (m *Monitor) Start(ctx context.Context) error {
	if err := m.store.Set(keyTab, m.token); err != nil {
		return err
	}
	ctx, m.cancel = context.WithCancel(ctx)
	go m.poll(ctx)
	return nil
}

// Stop cancels the polling task. Safe to call more than once.
func (m *Monitor) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
}

func (m *Monitor) poll(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current, ok, err := m.store.Get(keyTab)
			if err != nil {
				m.log.Warn().Err(err).Msg("liveness poll failed")
				continue
			}
			if ok && current == m.token {
				continue
			}
			// Another instance claimed the store. One-shot: signal
			// and stop polling permanently.
			m.log.Warn().Msg("session taken over by another instance")
			close(m.takeover)
			return
		}
	}
}
