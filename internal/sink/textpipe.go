package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/valyala/bytebufferpool"

	"hako/internal/command"
)

// TextPipe is the text-pipe sink of §6/§4.7: newline-terminated ASCII
// commands written to an append-opened filesystem path (typically a
// named pipe feeding a console emulator).
type TextPipe struct {
	w      io.WriteCloser
	closeW bool
}

// OpenTextPipe opens path for append writes, per §6's "a filesystem
// path is opened for append writes" clause.
func OpenTextPipe(path string) (*TextPipe, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("sink: open text pipe %q: %w", path, err)
	}
	return &TextPipe{w: f, closeW: true}, nil
}

// NewTextPipe wraps an already-open writer (used by tests to assert
// against an in-memory buffer without touching the filesystem).
func NewTextPipe(w io.WriteCloser) *TextPipe {
	return &TextPipe{w: w}
}

func (t *TextPipe) Close() error {
	if !t.closeW {
		return nil
	}
	return t.w.Close()
}

// Emit encodes cmd per §4.7 and writes the resulting line(s). Each
// Command is one "line unit"; composites are expressed by the
// translator as multiple Commands emitted in the required order, so
// Emit never needs to reorder anything itself.
func (t *TextPipe) Emit(cmd command.Command) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	switch cmd.Kind {
	case command.KindPress:
		fmt.Fprintf(buf, "PRESS %s\n", cmd.Button)
	case command.KindRelease:
		fmt.Fprintf(buf, "RELEASE %s\n", cmd.Button)
	case command.KindSetStick:
		name := "MAIN"
		if cmd.Stick == command.C {
			name = "C"
		}
		fmt.Fprintf(buf, "SET %s %s %s\n", name, formatAxis(cmd.Coord.X.Int()), formatAxis(cmd.Coord.Y.Int()))
	case command.KindSetTrigger:
		fmt.Fprintf(buf, "SET L %s\n", formatTrigger(cmd.Trigger.Int()))
	}

	_, err := t.w.Write(buf.Bytes())
	if err != nil {
		return fmt.Errorf("sink: write text pipe: %w", err)
	}
	return nil
}

// formatAxis maps a signed [-80,80] coordinate to the unit-interval
// float the text protocol carries, per §4.7:
// f = 0.5 + 0.5*(a/128) if a < 0, else 0.5 + 0.5*(a/127).
func formatAxis(a int) string {
	var f float64
	if a < 0 {
		f = 0.5 + 0.5*(float64(a)/128)
	} else {
		f = 0.5 + 0.5*(float64(a)/127)
	}
	return fmt.Sprintf("%.6f", f)
}

// formatTrigger maps a [0,140] trigger value to ft = t/128, per §4.7.
func formatTrigger(t int) string {
	return fmt.Sprintf("%.6f", float64(t)/128)
}
