package unitwatch

import (
	"context"
)

// Dialer returns a ConnectFunc that opens a D-Bus client on bus
func Dialer(bus Bus) ConnectFunc {
	return func(ctx context.Context) (UnitManager, error) {
		client, err := Connect(ctx, bus)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

// ConnectSession opens a client on the session bus (systemd --user)
func ConnectSession(ctx context.Context) (UnitManager, error) {
	return Dialer(BusSession)(ctx)
}

// ConnectSystem opens a client on the system bus
func ConnectSystem(ctx context.Context) (UnitManager, error) {
	return Dialer(BusSystem)(ctx)
}
