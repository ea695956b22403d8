//go:build !linux

package unitwatch

import (
	"context"
	"errors"
	"time"
)

var errUnsupported = errors.New("systemd unit monitoring is only supported on Linux")

// ClientDBus talks to the systemd manager over D-Bus (Linux only)
type ClientDBus struct {
	Bus         Bus
	EventBuffer int
	StopGrace   time.Duration
}

// Connect always fails on this platform
func Connect(_ context.Context, bus Bus) (*ClientDBus, error) {
	return nil, opError(OpConnect, "", ErrConnect, errUnsupported)
}

// Close is a no-op (stub - systemd is only supported on Linux)
func (c *ClientDBus) Close() error {
	return nil
}

// LoadUnit resolves a unit (stub - systemd is only supported on Linux)
func (c *ClientDBus) LoadUnit(_ context.Context, name string) (UnitHandle, error) {
	return "", opError(OpLoad, name, ErrResolve, errUnsupported)
}

// ActiveState reads the unit state (stub - systemd is only supported on Linux)
func (c *ClientDBus) ActiveState(_ context.Context, unit UnitHandle) (string, error) {
	return "", opError(OpReadState, unit.String(), ErrReadState, errUnsupported)
}

// Subscribe watches for changes (stub - systemd is only supported on Linux)
func (c *ClientDBus) Subscribe(_ context.Context, unit UnitHandle) (<-chan ChangeEvent, WatchCleanupFunc, error) {
	return nil, nil, opError(OpSubscribe, unit.String(), ErrSubscribe, errUnsupported)
}

// Ensure ClientDBus implements UnitManager
var _ UnitManager = (*ClientDBus)(nil)
