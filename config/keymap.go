package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"github.com/sigurn/crc16"
	"github.com/sirupsen/logrus"

	"hako/internal/keymap"
)

// keymapFile is the on-disk TOML shape (§4.1: "the mapping is part of
// configuration"). Each key is a decimal evdev key code; each value is
// one of the logical input names below. jump_input/jump_delay_ms are
// folded in here too since they're config, not translator state.
type keymapFile struct {
	Keys map[string]string `toml:"keys"`

	JumpInput           string `toml:"jump_input"`
	JumpDelayMs         uint64 `toml:"jump_delay_ms"`
	CrouchWalkOptionSel bool   `toml:"crouch_walk_option_select"`
}

var inputNames = map[string]keymap.Input{
	"A": keymap.InputA, "X": keymap.InputX, "Y": keymap.InputY, "Z": keymap.InputZ, "Start": keymap.InputStart,
	"B": keymap.InputB, "L": keymap.InputL, "R": keymap.InputR,
	"LightShield": keymap.InputLightShield, "MediumShield": keymap.InputMediumShield,
	"ModX": keymap.InputModX, "ModY": keymap.InputModY,
	"AXPos": keymap.InputAXPos, "AXNeg": keymap.InputAXNeg,
	"AYPos": keymap.InputAYPos, "AYNeg": keymap.InputAYNeg,
	"CXPos": keymap.InputCXPos, "CXNeg": keymap.InputCXNeg,
	"CYPos": keymap.InputCYPos, "CYNeg": keymap.InputCYNeg,
}

// crc16Table is the CCITT table the teacher's transitive crc16
// dependency ships; used here to fingerprint the loaded keymap so two
// operators can confirm over chat they're running the same mapping.
var crc16Table = crc16.MakeTable(crc16.CRC16_CCITT_FALSE)

// LoadedKeymap bundles the parsed map with the metadata worth logging
// at startup and on every hot-reload.
type LoadedKeymap struct {
	Map         *keymap.Map
	Fingerprint uint16
	JumpInput   keymap.Input
	JumpDelay   time.Duration
	CrouchWalk  bool
}

// LoadKeymap parses path and validates the result.
func LoadKeymap(path string) (*LoadedKeymap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read keymap %q: %w", path, err)
	}

	var kf keymapFile
	if _, err := toml.Decode(string(raw), &kf); err != nil {
		return nil, fmt.Errorf("config: parse keymap %q: %w", path, err)
	}

	codes := make(map[uint16]keymap.Input, len(kf.Keys))
	for codeStr, name := range kf.Keys {
		var code uint16
		if _, err := fmt.Sscanf(codeStr, "%d", &code); err != nil {
			return nil, fmt.Errorf("config: keymap %q: bad key code %q: %w", path, codeStr, err)
		}
		in, ok := inputNames[name]
		if !ok {
			return nil, fmt.Errorf("config: keymap %q: unknown logical input %q", path, name)
		}
		codes[code] = in
	}

	m := keymap.New(codes)
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("config: keymap %q: %w", path, err)
	}

	jumpInput := keymap.InputNone
	if kf.JumpInput != "" {
		in, ok := inputNames[kf.JumpInput]
		if !ok {
			return nil, fmt.Errorf("config: keymap %q: unknown jump_input %q", path, kf.JumpInput)
		}
		jumpInput = in
	}

	return &LoadedKeymap{
		Map:         m,
		Fingerprint: crc16.Checksum(raw, crc16Table),
		JumpInput:   jumpInput,
		JumpDelay:   time.Duration(kf.JumpDelayMs) * time.Millisecond,
		CrouchWalk:  kf.CrouchWalkOptionSel,
	}, nil
}

// WatchKeymap re-parses path on every fsnotify write/create event and
// sends the result on the returned channel; parse errors are logged
// and skipped rather than sent, so a transient half-written file from
// an editor doesn't tear down the translator's keymap. Successive
// events within debounce of each other collapse into a single reload,
// since editors often emit several fsnotify events for one save. Close
// stop to stop watching.
func WatchKeymap(path string, debounce time.Duration, logger *logrus.Entry) (<-chan *LoadedKeymap, func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("config: fsnotify watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, nil, fmt.Errorf("config: watch %q: %w", path, err)
	}

	out := make(chan *LoadedKeymap)
	go func() {
		defer close(out)

		var pending <-chan time.Time
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if debounce <= 0 {
					reload(path, logger, out)
					continue
				}
				pending = time.After(debounce)
			case <-pending:
				pending = nil
				reload(path, logger, out)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.WithError(err).Warn("config: keymap watcher error")
			}
		}
	}()

	return out, watcher.Close, nil
}

func reload(path string, logger *logrus.Entry, out chan<- *LoadedKeymap) {
	lk, err := LoadKeymap(path)
	if err != nil {
		logger.WithError(err).Warn("config: keymap hot-reload failed, keeping previous mapping")
		return
	}
	logger.WithField("fingerprint", fmt.Sprintf("%04x", lk.Fingerprint)).Info("config: keymap reloaded")
	out <- lk
}
