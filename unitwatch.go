package unitwatch

import (
	"fmt"
	"time"
)

// systemd D-Bus names
const (
	// SystemdDestination is the well-known bus name of the service manager
	SystemdDestination = "org.freedesktop.systemd1"

	// SystemdManagerPath is the object path of the manager object
	SystemdManagerPath = "/org/freedesktop/systemd1"

	// ManagerInterface is the interface implemented by the manager object
	ManagerInterface = "org.freedesktop.systemd1.Manager"

	// UnitInterface is the interface carrying the ActiveState property
	UnitInterface = "org.freedesktop.systemd1.Unit"

	// PropertiesInterface is the standard D-Bus properties interface
	PropertiesInterface = "org.freedesktop.DBus.Properties"

	// PropertiesChangedMember is the signal emitted when unit properties change
	PropertiesChangedMember = "PropertiesChanged"

	// ActiveStateProperty is the property name watched by this package
	ActiveStateProperty = "ActiveState"

	// StateActive is the only ActiveState value mapped to the active output
	StateActive = "active"
)

const (
	// DefaultEventBuffer is the capacity of the change event channel
	DefaultEventBuffer = 10

	// DefaultStopGrace is how long Subscribe's cleanup waits for the
	// forwarding goroutine before cancelling it
	DefaultStopGrace = 100 * time.Millisecond

	// StateFileMode is the mode used for the optional state file
	StateFileMode = 0o644
)

// Operation identifies the step of the pipeline that produced an error
type Operation int

const (
	// OpUnknown represents an unknown operation
	OpUnknown Operation = iota
	// OpValidate checks the unit name
	OpValidate
	// OpConnect establishes the bus connection
	OpConnect
	// OpLoad resolves the unit name to an object path
	OpLoad
	// OpReadState reads the unit's ActiveState
	OpReadState
	// OpSubscribe installs the PropertiesChanged subscription
	OpSubscribe
	// OpDecode decodes a change notification
	OpDecode
	// OpEmit writes an output line
	OpEmit
)

// Operation string constants
const (
	opUnknownStr   = "unknown"
	opValidateStr  = "validate"
	opConnectStr   = "connect"
	opLoadStr      = "load"
	opReadStateStr = "read-state"
	opSubscribeStr = "subscribe"
	opDecodeStr    = "decode"
	opEmitStr      = "emit"
)

// String returns the string representation of an Operation
func (op Operation) String() string {
	switch op {
	case OpValidate:
		return opValidateStr
	case OpConnect:
		return opConnectStr
	case OpLoad:
		return opLoadStr
	case OpReadState:
		return opReadStateStr
	case OpSubscribe:
		return opSubscribeStr
	case OpDecode:
		return opDecodeStr
	case OpEmit:
		return opEmitStr
	default:
		return opUnknownStr
	}
}

// Bus selects which message bus to connect to
type Bus int

const (
	// BusSession is the per-user session bus (systemd --user)
	BusSession Bus = iota
	// BusSystem is the system-wide bus (PID 1)
	BusSystem
)

const (
	busSessionStr = "session"
	busSystemStr  = "system"
)

// String returns the flag spelling of the bus
func (b Bus) String() string {
	switch b {
	case BusSystem:
		return busSystemStr
	default:
		return busSessionStr
	}
}

// ParseBus parses "session" or "system"
func ParseBus(s string) (Bus, error) {
	switch s {
	case busSessionStr, "":
		return BusSession, nil
	case busSystemStr:
		return BusSystem, nil
	default:
		return BusSession, fmt.Errorf("unknown bus %q (want %s or %s)", s, busSessionStr, busSystemStr)
	}
}
