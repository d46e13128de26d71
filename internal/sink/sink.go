// Package sink implements the output encoder (C7): it takes translator
// commands and serializes them for one of the two supported sink
// flavors, a virtual uinput gamepad device or a text command pipe.
package sink

import "hako/internal/command"

// Sink accepts encoded commands and forwards them to whatever consumes
// gamepad input downstream. Per §5, the sink is a single handle
// acquired at startup and held for the process lifetime; Emit is
// always called from the single event-loop goroutine, never
// concurrently.
type Sink interface {
	Emit(cmd command.Command) error
	Close() error
}
