package unitwatch

import (
	"context"
)

// UnitLoader resolves a unit name to a handle
type UnitLoader interface {
	LoadUnit(ctx context.Context, name string) (UnitHandle, error)
}

// StateReader reads the current ActiveState of a loaded unit
type StateReader interface {
	ActiveState(ctx context.Context, unit UnitHandle) (string, error)
}

// ChangeSubscriber opens a stream of property change notifications for a
// loaded unit. The channel is closed when the underlying connection goes away;
// it cannot be restarted. The cleanup func releases the subscription and is
// safe to call after the channel has closed.
type ChangeSubscriber interface {
	Subscribe(ctx context.Context, unit UnitHandle) (<-chan ChangeEvent, WatchCleanupFunc, error)
}

// UnitManager is everything a Monitor needs from the service manager.
// Close releases the connection and invalidates every handle it produced.
type UnitManager interface {
	UnitLoader
	StateReader
	ChangeSubscriber
	Close() error
}

// ConnectFunc opens a UnitManager. ConnectSession and ConnectSystem are the
// D-Bus implementations.
type ConnectFunc func(ctx context.Context) (UnitManager, error)
