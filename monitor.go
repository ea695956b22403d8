package unitwatch

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Mode selects between a single read and continuous monitoring
type Mode int

const (
	// ModeStreaming keeps printing on every distinct state change
	ModeStreaming Mode = iota
	// ModeOneshot prints the current state once and returns
	ModeOneshot
)

// String returns the string representation of a Mode
func (m Mode) String() string {
	if m == ModeOneshot {
		return "oneshot"
	}
	return "streaming"
}

// Config describes what a Monitor watches and prints
type Config struct {
	// Unit is the systemd unit name, e.g. "nginx.service"
	Unit string

	// Output maps ActiveState to text
	Output OutputConfig

	// Streaming prints a blank line after every emission. It is independent
	// of Oneshot: a oneshot run with Streaming set still prints the blank line.
	Streaming bool

	// Oneshot prints the current state once without subscribing
	Oneshot bool
}

// Mode returns the emit mode implied by the config
func (c Config) Mode() Mode {
	if c.Oneshot {
		return ModeOneshot
	}
	return ModeStreaming
}

// Validate checks the config before any bus call is made
func (c Config) Validate() error {
	return ValidateUnitName(c.Unit)
}

// Monitor reads a unit's state and emits mapped output
type Monitor struct {
	config  Config
	connect ConnectFunc
	out     io.Writer
	log     zerolog.Logger

	stateFile string
}

// Option configures a Monitor
type Option func(*Monitor)

// WithOutput sets the sink emissions are written to (default os.Stdout)
func WithOutput(w io.Writer) Option {
	return func(m *Monitor) {
		m.out = w
	}
}

// WithLogger sets the diagnostic logger (default disabled)
func WithLogger(l zerolog.Logger) Option {
	return func(m *Monitor) {
		m.log = l
	}
}

// WithStateFile mirrors every emission into path using an atomic rename
func WithStateFile(path string) Option {
	return func(m *Monitor) {
		m.stateFile = path
	}
}

// NewMonitor creates a Monitor for cfg that obtains its manager from connect
func NewMonitor(cfg Config, connect ConnectFunc, opts ...Option) *Monitor {
	m := &Monitor{
		config:  cfg,
		connect: connect,
		out:     os.Stdout,
		log:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Run validates the unit name, connects, emits the initial state and, in
// streaming mode, follows change notifications until the stream ends.
// Every failure before the first emission is returned. Afterwards only
// emission failures and context cancellation end the run early.
func (m *Monitor) Run(ctx context.Context) error {
	if err := m.config.Validate(); err != nil {
		return err
	}

	mgr, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = mgr.Close() }()

	unit, err := mgr.LoadUnit(ctx, m.config.Unit)
	if err != nil {
		return err
	}

	state, err := mgr.ActiveState(ctx, unit)
	if err != nil {
		return err
	}

	emitter := NewEmitter(m.out, m.config.Streaming)
	emitter.StateFile = m.stateFile

	logger := m.log.With().Str("unit", m.config.Unit).Logger()
	logger.Debug().Str("state", state).Str("mode", m.config.Mode().String()).Msg("initial state")

	last, err := emitter.Offer(LastEmitted{}, m.config.Output.Map(state))
	if err != nil {
		return err
	}

	if m.config.Mode() == ModeOneshot {
		return nil
	}

	events, cleanup, err := mgr.Subscribe(ctx, unit)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				logger.Debug().Msg("change stream closed")
				return nil
			}

			last, err = m.handle(logger, emitter, last, ev)
			if err != nil {
				return err
			}
		}
	}
}

// handle processes one notification. Decode failures are logged and the
// event is dropped; only emission errors are returned.
func (m *Monitor) handle(logger zerolog.Logger, emitter *Emitter, last LastEmitted, ev ChangeEvent) (LastEmitted, error) {
	state, ok, err := DecodeActiveState(ev)
	if err != nil {
		logger.Warn().Err(err).Msg("discarding change notification")
		return last, nil
	}
	if !ok {
		return last, nil
	}

	logger.Debug().Str("state", state).Msg("state changed")
	return emitter.Offer(last, m.config.Output.Map(state))
}
