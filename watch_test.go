package unitwatch

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUnitPath = dbus.ObjectPath("/org/freedesktop/systemd1/unit/foo_2eservice")

func propertiesChanged(path dbus.ObjectPath, body ...interface{}) *dbus.Signal {
	return &dbus.Signal{
		Sender: ":1.1",
		Path:   path,
		Name:   PropertiesInterface + "." + PropertiesChangedMember,
		Body:   body,
	}
}

func TestDecodeActiveState(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		state, ok, err := DecodeActiveState(stateEvent("active"))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "active", state)
	})

	t.Run("absent", func(t *testing.T) {
		ev := ChangeEvent{Changed: map[string]dbus.Variant{
			"SubState": dbus.MakeVariant("running"),
		}}
		_, ok, err := DecodeActiveState(ev)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok, err := DecodeActiveState(ChangeEvent{})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("wrong type", func(t *testing.T) {
		ev := ChangeEvent{Changed: map[string]dbus.Variant{
			ActiveStateProperty: dbus.MakeVariant(uint32(1)),
		}}
		_, ok, err := DecodeActiveState(ev)
		require.Error(t, err)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrDecode)
		assert.Contains(t, err.Error(), "want string")
	})

	t.Run("event error", func(t *testing.T) {
		cause := errors.New("bad body")
		_, ok, err := DecodeActiveState(ChangeEvent{Err: cause})
		assert.ErrorIs(t, err, cause)
		assert.False(t, ok)
	})
}

func TestChangeEventFromSignal(t *testing.T) {
	t.Run("properties changed", func(t *testing.T) {
		sig := propertiesChanged(testUnitPath,
			UnitInterface,
			map[string]dbus.Variant{ActiveStateProperty: dbus.MakeVariant("deactivating")},
			[]string{},
		)

		ev, relevant := changeEventFromSignal(testUnitPath, sig)
		require.True(t, relevant)
		require.NoError(t, ev.Err)

		state, ok, err := DecodeActiveState(ev)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "deactivating", state)
	})

	t.Run("other interface still forwarded", func(t *testing.T) {
		sig := propertiesChanged(testUnitPath,
			"org.freedesktop.systemd1.Service",
			map[string]dbus.Variant{"MainPID": dbus.MakeVariant(uint32(42))},
			[]string{},
		)

		ev, relevant := changeEventFromSignal(testUnitPath, sig)
		require.True(t, relevant)
		_, ok, err := DecodeActiveState(ev)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("other path", func(t *testing.T) {
		sig := propertiesChanged("/org/freedesktop/systemd1/unit/bar_2eservice",
			UnitInterface, map[string]dbus.Variant{}, []string{})
		_, relevant := changeEventFromSignal(testUnitPath, sig)
		assert.False(t, relevant)
	})

	t.Run("other signal", func(t *testing.T) {
		sig := &dbus.Signal{
			Path: testUnitPath,
			Name: ManagerInterface + ".UnitNew",
			Body: []interface{}{"foo.service", testUnitPath},
		}
		_, relevant := changeEventFromSignal(testUnitPath, sig)
		assert.False(t, relevant)
	})

	t.Run("nil", func(t *testing.T) {
		_, relevant := changeEventFromSignal(testUnitPath, nil)
		assert.False(t, relevant)
	})

	t.Run("short body", func(t *testing.T) {
		ev, relevant := changeEventFromSignal(testUnitPath, propertiesChanged(testUnitPath, UnitInterface))
		require.True(t, relevant)
		assert.ErrorIs(t, ev.Err, ErrDecode)
	})

	t.Run("wrong body type", func(t *testing.T) {
		ev, relevant := changeEventFromSignal(testUnitPath,
			propertiesChanged(testUnitPath, UnitInterface, []string{"ActiveState"}, []string{}))
		require.True(t, relevant)
		assert.ErrorIs(t, ev.Err, ErrDecode)
		assert.Contains(t, ev.Err.Error(), "[]string")
	})
}
