package unitwatch

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/renameio/v2"
)

// Emitter writes mapped output lines to a sink, flushing after every line.
// When Separator is set a blank line follows each emission.
type Emitter struct {
	w *bufio.Writer

	// Separator appends an empty line after each emission
	Separator bool

	// StateFile, when set, is atomically replaced with the emitted text
	// after every emission
	StateFile string
}

// NewEmitter creates an Emitter writing to out
func NewEmitter(out io.Writer, separator bool) *Emitter {
	return &Emitter{
		w:         bufio.NewWriter(out),
		Separator: separator,
	}
}

// Offer emits text unless it equals the last emission and returns the
// advanced state. Nothing is written when the state does not change.
func (e *Emitter) Offer(last LastEmitted, text string) (LastEmitted, error) {
	next, emit := last.Next(text)
	if !emit {
		return last, nil
	}
	if err := e.Emit(text); err != nil {
		return last, err
	}
	return next, nil
}

// Emit writes text as one line, unconditionally
func (e *Emitter) Emit(text string) error {
	if _, err := e.w.WriteString(text); err != nil {
		return &OpError{Op: OpEmit, Err: err}
	}
	if err := e.w.WriteByte('\n'); err != nil {
		return &OpError{Op: OpEmit, Err: err}
	}
	if e.Separator {
		if err := e.w.WriteByte('\n'); err != nil {
			return &OpError{Op: OpEmit, Err: err}
		}
	}
	if err := e.w.Flush(); err != nil {
		return &OpError{Op: OpEmit, Err: err}
	}

	if e.StateFile != "" {
		if err := renameio.WriteFile(e.StateFile, []byte(text+"\n"), StateFileMode); err != nil {
			return &OpError{Op: OpEmit, Err: fmt.Errorf("writing state file %s: %w", e.StateFile, err)}
		}
	}
	return nil
}
