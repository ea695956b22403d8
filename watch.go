package unitwatch

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// ChangeEvent is one PropertiesChanged notification for a watched unit.
// Changed maps property names to their new encoded values. Err is set when
// the notification itself could not be decoded; such events carry no
// properties and must be skipped.
type ChangeEvent struct {
	Changed map[string]dbus.Variant
	Err     error
}

// WatchCleanupFunc stops a subscription and releases its resources
type WatchCleanupFunc func() error

// DecodeActiveState extracts ActiveState from a change event.
// ok is false when the event does not mention ActiveState. A non-nil error
// means the value was present but not a string.
func DecodeActiveState(ev ChangeEvent) (state string, ok bool, err error) {
	if ev.Err != nil {
		return "", false, ev.Err
	}

	v, present := ev.Changed[ActiveStateProperty]
	if !present {
		return "", false, nil
	}

	state, isString := v.Value().(string)
	if !isString {
		return "", false, &OpError{
			Op:  OpDecode,
			Err: fmt.Errorf("%w: %s is %s, want string", ErrDecode, ActiveStateProperty, v.Signature()),
		}
	}
	return state, true, nil
}

// changeEventFromSignal converts a raw bus signal into a ChangeEvent.
// relevant is false for signals that are not PropertiesChanged on path.
// A PropertiesChanged signal with an unexpected body yields an event whose
// Err wraps ErrDecode.
func changeEventFromSignal(path dbus.ObjectPath, sig *dbus.Signal) (ev ChangeEvent, relevant bool) {
	if sig == nil || sig.Path != path || sig.Name != PropertiesInterface+"."+PropertiesChangedMember {
		return ChangeEvent{}, false
	}

	// Body is (interface_name s, changed_properties a{sv}, invalidated_properties as)
	if len(sig.Body) < 2 {
		return ChangeEvent{Err: &OpError{
			Op:   OpDecode,
			Unit: string(path),
			Err:  fmt.Errorf("%w: %s body has %d fields", ErrDecode, PropertiesChangedMember, len(sig.Body)),
		}}, true
	}

	changed, ok := sig.Body[1].(map[string]dbus.Variant)
	if !ok {
		return ChangeEvent{Err: &OpError{
			Op:   OpDecode,
			Unit: string(path),
			Err:  fmt.Errorf("%w: changed properties are %T", ErrDecode, sig.Body[1]),
		}}, true
	}

	return ChangeEvent{Changed: changed}, true
}
