// Package config loads the process's deployment configuration: device
// paths and sink selection, layered env-vars-over-defaults the way the
// teacher's config.go does, plus the keymap file (see keymap.go in
// this package) that §4.1 requires to be "part of configuration".
package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the process's deployment configuration: the device/sink
// plumbing that §6's CLI surface does not cover. The CLI flags
// themselves are parsed in main, not here. This
// does not contradict §6's "Environment / persisted state: None" for
// the translator core — that clause scopes the translator's own
// state, not the process's bootstrap configuration.
type Config struct {
	// Sink selects the output flavor: "uinput" or "textpipe".
	Sink string `envconfig:"HAKO_SINK" default:"uinput"`

	// UinputDevice is the uinput device node for the virtual-device sink.
	UinputDevice string `envconfig:"HAKO_UINPUT_DEVICE" default:"/dev/uinput"`

	// TextPipePath is the filesystem path opened for append writes when
	// Sink is "textpipe".
	TextPipePath string `envconfig:"HAKO_TEXTPIPE_PATH" default:"/tmp/hako.pipe"`

	// KeyboardDevice is the evdev device node the keyboard event source
	// reads from.
	KeyboardDevice string `envconfig:"HAKO_KEYBOARD_DEVICE" default:"/dev/input/event0"`

	// KeymapPath is the TOML keymap file (keymap.go in this package).
	KeymapPath string `envconfig:"HAKO_KEYMAP_PATH" default:"/etc/hako/keymap.toml"`

	// DiagnosticsAddr, if non-empty, starts the optional read-only
	// websocket diagnostics broadcaster on this address.
	DiagnosticsAddr string `envconfig:"HAKO_DIAGNOSTICS_ADDR"`

	// KeymapReloadDebounce bounds how often a hot-reload is applied
	// after the keymap file changes, in case an editor writes it in
	// several small fsnotify-visible steps.
	KeymapReloadDebounce time.Duration `envconfig:"HAKO_KEYMAP_RELOAD_DEBOUNCE" default:"100ms"`
}

// Load reads a .env file (if present) then populates Config from
// environment variables. A missing .env is reported with one log line
// and otherwise ignored; malformed values are fatal, matching the
// teacher's Load(). Both go through the standard library logger, so
// they do not carry the logrus session field.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment and defaults")
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		log.Fatal("config: ", err)
	}
	return cfg
}
