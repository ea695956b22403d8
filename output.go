package unitwatch

// OutputConfig holds the two strings printed for a unit
type OutputConfig struct {
	// Active is printed while ActiveState is "active"
	Active string
	// Inactive is printed for every other ActiveState
	Inactive string
}

// Map returns Active iff state is exactly "active", Inactive otherwise
func (c OutputConfig) Map(state string) string {
	if state == StateActive {
		return c.Active
	}
	return c.Inactive
}
