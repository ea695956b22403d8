//go:build linux

package unitwatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
	"vawter.tech/stopper"
)

// errAlreadySubscribed is returned by the manager when this connection has
// already called Subscribe
const errAlreadySubscribed = "org.freedesktop.systemd1.AlreadySubscribed"

// ClientDBus talks to the systemd manager over a single D-Bus connection.
// It implements UnitManager.
type ClientDBus struct {
	// Bus is the bus the connection was opened on
	Bus Bus

	// EventBuffer is the capacity of channels returned by Subscribe
	EventBuffer int

	// StopGrace is how long a subscription cleanup waits before cancelling
	StopGrace time.Duration

	conn *dbus.Conn
}

// Connect opens a connection to the requested bus. There is no retry; the
// caller owns the returned client and must Close it.
func Connect(ctx context.Context, bus Bus) (*ClientDBus, error) {
	var (
		conn *dbus.Conn
		err  error
	)

	switch bus {
	case BusSystem:
		conn, err = dbus.ConnectSystemBus(dbus.WithContext(ctx))
	default:
		conn, err = dbus.ConnectSessionBus(dbus.WithContext(ctx))
	}
	if err != nil {
		return nil, opError(OpConnect, "", ErrConnect, fmt.Errorf("%s bus: %w", bus, err))
	}

	return NewClientDBus(conn, bus), nil
}

// NewClientDBus wraps an already established connection
func NewClientDBus(conn *dbus.Conn, bus Bus) *ClientDBus {
	return &ClientDBus{
		Bus:         bus,
		EventBuffer: DefaultEventBuffer,
		StopGrace:   DefaultStopGrace,
		conn:        conn,
	}
}

// Close closes the connection. Open subscriptions end and every UnitHandle
// obtained from this client becomes meaningless.
func (c *ClientDBus) Close() error {
	return c.conn.Close()
}

func (c *ClientDBus) manager() dbus.BusObject {
	return c.conn.Object(SystemdDestination, SystemdManagerPath)
}

// LoadUnit asks the manager to load name and returns its object path
func (c *ClientDBus) LoadUnit(ctx context.Context, name string) (UnitHandle, error) {
	var path dbus.ObjectPath
	if err := c.manager().CallWithContext(ctx, ManagerInterface+".LoadUnit", 0, name).Store(&path); err != nil {
		return "", opError(OpLoad, name, ErrResolve, err)
	}
	return UnitHandle(path), nil
}

// ActiveState reads the unit's ActiveState property
func (c *ClientDBus) ActiveState(ctx context.Context, unit UnitHandle) (string, error) {
	var v dbus.Variant
	obj := c.conn.Object(SystemdDestination, dbus.ObjectPath(unit))
	if err := obj.CallWithContext(ctx, PropertiesInterface+".Get", 0, UnitInterface, ActiveStateProperty).Store(&v); err != nil {
		return "", opError(OpReadState, unit.String(), ErrReadState, err)
	}

	state, ok := v.Value().(string)
	if !ok {
		return "", opError(OpReadState, unit.String(), ErrDecode,
			fmt.Errorf("%s is %s, want string", ActiveStateProperty, v.Signature()))
	}
	return state, nil
}

// Subscribe installs a PropertiesChanged match for the unit and forwards the
// matching signals as ChangeEvents. The channel closes once the connection
// closes or cleanup is called.
func (c *ClientDBus) Subscribe(ctx context.Context, unit UnitHandle) (<-chan ChangeEvent, WatchCleanupFunc, error) {
	path := dbus.ObjectPath(unit)

	// Without a subscriber the manager may not broadcast unit changes.
	if err := c.manager().CallWithContext(ctx, ManagerInterface+".Subscribe", 0).Err; err != nil && !isDBusError(err, errAlreadySubscribed) {
		return nil, nil, opError(OpSubscribe, unit.String(), ErrSubscribe, err)
	}

	match := []dbus.MatchOption{
		dbus.WithMatchObjectPath(path),
		dbus.WithMatchInterface(PropertiesInterface),
		dbus.WithMatchMember(PropertiesChangedMember),
	}
	if err := c.conn.AddMatchSignalContext(ctx, match...); err != nil {
		return nil, nil, opError(OpSubscribe, unit.String(), ErrSubscribe, err)
	}

	signals := make(chan *dbus.Signal, c.EventBuffer)
	c.conn.Signal(signals)

	events := make(chan ChangeEvent, c.EventBuffer)

	sctx := stopper.WithContext(ctx)

	sctx.Defer(func() {
		c.conn.RemoveSignal(signals)
		_ = c.conn.RemoveMatchSignal(match...)
	})

	cleanup := func() error {
		sctx.Stop(c.StopGrace)
		return sctx.Wait()
	}

	sctx.Go(func(sctx *stopper.Context) error {
		defer close(events)

		for !sctx.IsStopping() {
			select {
			case <-sctx.Stopping():
				return nil

			case sig, ok := <-signals:
				if !ok {
					// The bus closes signal channels when the connection ends.
					return nil
				}

				ev, relevant := changeEventFromSignal(path, sig)
				if !relevant {
					continue
				}

				select {
				case events <- ev:
				case <-sctx.Stopping():
					return nil
				}
			}
		}
		return nil
	})

	return events, cleanup, nil
}

func isDBusError(err error, name string) bool {
	var e dbus.Error
	if errors.As(err, &e) {
		return e.Name == name
	}
	var pe *dbus.Error
	if errors.As(err, &pe) {
		return pe.Name == name
	}
	return false
}

// Ensure ClientDBus implements UnitManager
var _ UnitManager = (*ClientDBus)(nil)
