package unitwatch

import "strings"

// ValidUnitSuffixes lists the unit types that can be watched
var ValidUnitSuffixes = [...]string{
	".service",
	".socket",
	".device",
}

// UnitHandle is the object path the manager returned for a loaded unit.
// It is only meaningful on the connection that produced it.
type UnitHandle string

// String returns the object path
func (h UnitHandle) String() string {
	return string(h)
}

// ValidUnitName reports whether name ends with a recognized unit type suffix
func ValidUnitName(name string) bool {
	for _, suffix := range ValidUnitSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// ValidateUnitName returns an *OpError wrapping ErrInvalidUnit when name is
// not a watchable unit
func ValidateUnitName(name string) error {
	if !ValidUnitName(name) {
		return &OpError{Op: OpValidate, Unit: name, Err: ErrInvalidUnit}
	}
	return nil
}
