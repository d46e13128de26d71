// Package keysource reads raw key events from a Linux evdev device
// node and republishes them as the upstream event stream §6 describes:
// a sequence of (time, code, pressed) records with auto-repeat
// (value == 2) filtered out before anything downstream ever sees it.
//
// The background-goroutine-plus-channel shape is adapted from the
// teacher's hardware/expander Watch(), which polls an interrupt
// register on a ticker and republishes diffs on a channel; an evdev
// device node blocks on read instead of needing a ticker, so the
// polling loop becomes a blocking read loop, but the emit-on-channel,
// quit-on-close shape is unchanged.
package keysource

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"
	"unsafe"

	"hako/internal/evdev"
)

// KeyEvent is one filtered physical key transition.
type KeyEvent struct {
	Time    time.Time
	Code    uint16
	Pressed bool
}

// Source streams KeyEvents from an open evdev device.
type Source struct {
	f      *os.File
	events chan KeyEvent
	errs   chan error
	quit   chan struct{}
}

// Open opens devPath (conventionally /dev/input/eventN) and starts the
// background read loop.
func Open(devPath string) (*Source, error) {
	f, err := os.Open(devPath)
	if err != nil {
		return nil, fmt.Errorf("keysource: open %s: %w", devPath, err)
	}
	s := &Source{
		f:      f,
		events: make(chan KeyEvent),
		errs:   make(chan error, 1),
		quit:   make(chan struct{}),
	}
	go s.read()
	return s, nil
}

// Events returns the channel of filtered key transitions. It is closed
// when the source's read loop exits, whether via Close or a read error.
func (s *Source) Events() <-chan KeyEvent { return s.events }

// Errs carries at most one fatal read error, per §7's "Stream errors...
// Fatal" clause; the caller should treat a value here as terminal.
func (s *Source) Errs() <-chan error { return s.errs }

// Close stops the read loop and releases the device node.
func (s *Source) Close() error {
	close(s.quit)
	return s.f.Close()
}

const eventSize = int(unsafe.Sizeof(evdev.Event{}))

func (s *Source) read() {
	defer close(s.events)

	buf := make([]byte, eventSize)
	for {
		select {
		case <-s.quit:
			return
		default:
		}

		if _, err := readFull(s.f, buf); err != nil {
			select {
			case s.errs <- err:
			default:
			}
			return
		}

		ev := decode(buf)
		if ev.Type != evdev.EvKey {
			continue
		}
		if ev.Value == evdev.KeyRepeat {
			continue // auto-repeat filtered at the source, never reaches the translator (§6).
		}

		select {
		case s.events <- KeyEvent{Time: time.Now(), Code: ev.Code, Pressed: ev.Value == evdev.KeyPress}:
		case <-s.quit:
			return
		}
	}
}

func readFull(f *os.File, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := f.Read(buf[total:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func decode(buf []byte) evdev.Event {
	return evdev.Event{
		Sec:   int64(binary.LittleEndian.Uint64(buf[0:8])),
		Usec:  int64(binary.LittleEndian.Uint64(buf[8:16])),
		Type:  binary.LittleEndian.Uint16(buf[16:18]),
		Code:  binary.LittleEndian.Uint16(buf[18:20]),
		Value: int32(binary.LittleEndian.Uint32(buf[20:24])),
	}
}
