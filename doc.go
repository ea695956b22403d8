// Package unitwatch reports the state of a single systemd unit as one of two
// operator-supplied strings, either once or as a stream that is updated every
// time the unit's ActiveState changes.
//
// The library talks to the service manager over D-Bus through ClientDBus and
// drives it with a Monitor:
//
//	cfg := unitwatch.Config{
//	    Unit:      "nginx.service",
//	    Output:    unitwatch.OutputConfig{Active: "UP", Inactive: "DOWN"},
//	    Streaming: true,
//	}
//
//	mon := unitwatch.NewMonitor(cfg, unitwatch.ConnectSession, unitwatch.WithOutput(os.Stdout))
//	if err := mon.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// # State mapping
//
// Only the literal ActiveState "active" is distinguished. Every other value,
// including "failed", "activating", "deactivating" and values this package
// has never seen, maps to the inactive string.
//
// # Streaming
//
// In streaming mode the Monitor subscribes to PropertiesChanged signals on
// the unit's object path and prints a line whenever the mapped output differs
// from the previous one. Consecutive duplicates are suppressed. A blank line
// follows each emission while Config.Streaming is set, and the output is
// flushed after every write so status bars observe changes immediately.
//
// A notification whose ActiveState cannot be decoded is logged and dropped;
// the subscription keeps running. The stream ends, and Run returns nil, when
// the bus connection closes. There is no reconnection.
//
// # Testing
//
// Everything the Monitor needs from the bus is expressed by the UnitManager
// interface, so tests can replace the D-Bus client with a scripted fake.
package unitwatch
