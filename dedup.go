package unitwatch

// LastEmitted is the most recently emitted output. The zero value means
// nothing has been emitted yet.
type LastEmitted struct {
	value string
	set   bool
}

// Next returns the state after offering text, and whether text must be
// emitted. The first offer always emits; later offers emit only when text
// differs from the previous emission.
func (l LastEmitted) Next(text string) (LastEmitted, bool) {
	if l.set && l.value == text {
		return l, false
	}
	return LastEmitted{value: text, set: true}, true
}

// Value returns the last emitted text and whether anything was emitted
func (l LastEmitted) Value() (string, bool) {
	return l.value, l.set
}
