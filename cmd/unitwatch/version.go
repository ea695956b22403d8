package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/axondata/go-unitwatch"
)

func newVersionCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of unitwatch",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			info := unitwatch.GetVersion()
			fmt.Fprintf(stdout, "unitwatch version %s (%s)\n", info.Version, info.Protocol)
		},
	}
}
