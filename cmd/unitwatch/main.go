// Package main is the unitwatch command: it prints one of two strings
// depending on whether a systemd unit is active.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/axondata/go-unitwatch"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCommand(os.Stdout, unitwatch.Dialer)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		return 1
	}
	return 0
}

// errorMessage renders err for the diagnostic channel
func errorMessage(err error) string {
	var opErr *unitwatch.OpError
	if errors.Is(err, unitwatch.ErrInvalidUnit) && errors.As(err, &opErr) {
		return fmt.Sprintf("Error: The unit '%s' is not a valid systemd unit.", opErr.Unit)
	}
	return fmt.Sprintf("Error: %v", err)
}
