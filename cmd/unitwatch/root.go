package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/axondata/go-unitwatch"
)

// rootOptions holds the flags of the root command
type rootOptions struct {
	unit           string
	activeOutput   string
	inactiveOutput string
	streaming      bool
	oneshot        bool
	bus            string
	stateFile      string
	logLevel       string
}

// newRootCommand builds the unitwatch command. Emissions go to stdout;
// dial selects the ConnectFunc for the requested bus.
func newRootCommand(stdout io.Writer, dial func(unitwatch.Bus) unitwatch.ConnectFunc) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "unitwatch",
		Short: "Print a systemd unit's state as one of two strings",
		Long: `unitwatch prints --active-output while a systemd unit is active and
--inactive-output otherwise. By default it keeps running and prints a new
line whenever the output changes; --oneshot prints the current state once.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bus, err := unitwatch.ParseBus(opts.bus)
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}

			cfg := unitwatch.Config{
				Unit: opts.unit,
				Output: unitwatch.OutputConfig{
					Active:   opts.activeOutput,
					Inactive: opts.inactiveOutput,
				},
				Streaming: opts.streaming,
				Oneshot:   opts.oneshot,
			}

			mon := unitwatch.NewMonitor(cfg, dial(bus),
				unitwatch.WithOutput(stdout),
				unitwatch.WithLogger(logger),
				unitwatch.WithStateFile(opts.stateFile),
			)
			return mon.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.unit, "unit", "u", "", "systemd unit name")
	flags.StringVar(&opts.activeOutput, "active-output", "", "output to display when the unit is active")
	flags.StringVar(&opts.inactiveOutput, "inactive-output", "", "output to display when the unit is inactive")
	flags.BoolVar(&opts.streaming, "streaming", true, "print a blank line after every output")
	flags.BoolVar(&opts.oneshot, "oneshot", false, "print the current state once and exit")
	flags.StringVar(&opts.bus, "bus", unitwatch.BusSession.String(), "message bus to connect to (session|system)")
	flags.StringVar(&opts.stateFile, "state-file", "", "also write the current output to this file")
	flags.StringVar(&opts.logLevel, "log-level", zerolog.WarnLevel.String(), "diagnostic log level")

	_ = cmd.MarkFlagRequired("unit")
	_ = cmd.MarkFlagRequired("active-output")
	_ = cmd.MarkFlagRequired("inactive-output")

	cmd.AddCommand(newVersionCommand(stdout))

	return cmd
}

// newLogger creates the diagnostic logger writing to w
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    w != os.Stderr,
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
