package unitwatch

import (
	"context"
	"errors"

	"github.com/godbus/dbus/v5"
)

// fakeManager is a scripted UnitManager. Subscribe hands out the scripted
// events once, on a channel that is closed after the last one unless hold is
// set.
type fakeManager struct {
	units map[string]UnitHandle
	state string

	events []ChangeEvent
	hold   bool

	loadErr      error
	readErr      error
	subscribeErr error

	loads      int
	reads      int
	subscribes int
	cleanups   int
	closed     bool
}

func newFakeManager(unit, state string, events ...ChangeEvent) *fakeManager {
	return &fakeManager{
		units:  map[string]UnitHandle{unit: UnitHandle("/org/freedesktop/systemd1/unit/" + dbusEscape(unit))},
		state:  state,
		events: events,
	}
}

func (f *fakeManager) connect() ConnectFunc {
	return func(context.Context) (UnitManager, error) {
		return f, nil
	}
}

func (f *fakeManager) LoadUnit(_ context.Context, name string) (UnitHandle, error) {
	f.loads++
	if f.loadErr != nil {
		return "", f.loadErr
	}
	h, ok := f.units[name]
	if !ok {
		return "", opError(OpLoad, name, ErrResolve, errors.New("org.freedesktop.systemd1.NoSuchUnit"))
	}
	return h, nil
}

func (f *fakeManager) ActiveState(_ context.Context, _ UnitHandle) (string, error) {
	f.reads++
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.state, nil
}

func (f *fakeManager) Subscribe(_ context.Context, _ UnitHandle) (<-chan ChangeEvent, WatchCleanupFunc, error) {
	if f.subscribeErr != nil {
		return nil, nil, f.subscribeErr
	}
	f.subscribes++
	if f.subscribes > 1 {
		return nil, nil, errors.New("fake subscription is not restartable")
	}

	ch := make(chan ChangeEvent, len(f.events))
	for _, ev := range f.events {
		ch <- ev
	}
	if !f.hold {
		close(ch)
	}

	return ch, func() error {
		f.cleanups++
		return nil
	}, nil
}

func (f *fakeManager) Close() error {
	f.closed = true
	return nil
}

// stateEvent builds a notification carrying a new ActiveState
func stateEvent(state string) ChangeEvent {
	return ChangeEvent{Changed: map[string]dbus.Variant{
		ActiveStateProperty: dbus.MakeVariant(state),
	}}
}

// dbusEscape mimics the manager's object path escaping closely enough for tests
func dbusEscape(name string) string {
	out := make([]byte, 0, len(name)*3)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			out = append(out, c)
			continue
		}
		out = append(out, '_', "0123456789abcdef"[c>>4], "0123456789abcdef"[c&0xf])
	}
	return string(out)
}

var _ UnitManager = (*fakeManager)(nil)
