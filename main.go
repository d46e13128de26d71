// Command hako runs the input-translation core: it reads keyboard
// events from an evdev device, drives the translator, and writes
// gamepad output to the configured sink.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"hako/config"
	"hako/internal/buildinfo"
	"hako/internal/command"
	"hako/internal/diagnostics"
	"hako/internal/keymap"
	"hako/internal/keysource"
	"hako/internal/sink"
	"hako/internal/translator"
)

func main() {
	logLevel := flag.String("log-level", "info", "trace|debug|info|warn|error")
	jumpDelayMs := flag.Uint64("jump-delay-ms", 0, "defer the configured jump input's press by this many milliseconds (0 disables)")
	crouchWalk := flag.Bool("crouch-walk-option-select", false, "select the alternate neutral-diagonal A-stick magnitude row")
	flag.Parse()

	// Every subsequent log call in this file, including the Fatals
	// below, goes through this entry so the session id is attached to
	// all of them. config.Load logs through the standard library
	// logger instead and does not carry it.
	log := newLogger(*logLevel).WithField("session", buildinfo.SessionID)
	log.Info("hako starting")

	cfg := config.Load()

	lk, err := config.LoadKeymap(cfg.KeymapPath)
	if err != nil {
		log.WithError(err).Fatal("load keymap")
	}
	log.WithField("fingerprint", fmt.Sprintf("%04x", lk.Fingerprint)).Info("keymap loaded")

	km := lk.Map

	jumpDelay := time.Duration(*jumpDelayMs) * time.Millisecond
	jumpInput := lk.JumpInput
	if jumpDelay == 0 {
		jumpDelay = lk.JumpDelay
	}
	cwOpt := *crouchWalk || lk.CrouchWalk

	src, err := keysource.Open(cfg.KeyboardDevice)
	if err != nil {
		log.WithError(err).Fatal("open keyboard device")
	}
	defer src.Close()

	out, err := openSink(cfg)
	if err != nil {
		log.WithError(err).Fatal("open sink")
	}
	defer out.Close()

	var hub *diagnostics.Hub
	if cfg.DiagnosticsAddr != "" {
		hub = diagnostics.NewHub(log)
		srv := &http.Server{Addr: cfg.DiagnosticsAddr, Handler: hub.Handler()}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.WithError(err).Warn("diagnostics server stopped")
			}
		}()
		log.WithField("addr", cfg.DiagnosticsAddr).Info("diagnostics broadcaster listening")
	}

	tr := translator.New(translator.Config{
		JumpDelay:              jumpDelay,
		JumpInput:              jumpInput,
		CrouchWalkOptionSelect: cwOpt,
	})

	reload, stopWatch, err := config.WatchKeymap(cfg.KeymapPath, cfg.KeymapReloadDebounce, log)
	if err != nil {
		log.WithError(err).Warn("keymap hot-reload disabled")
	} else {
		defer stopWatch()
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	log.Info("hako ready")
	runLoop(log, tr, km, src, out, hub, reload, sig)
}

// runLoop is the single-threaded cooperative event loop of §5: a fair
// select between the next key event and the optional jump-delay timer,
// each handled to completion before the next selection.
func runLoop(
	log *logrus.Entry,
	tr *translator.Translator,
	km *keymap.Map,
	src *keysource.Source,
	out sink.Sink,
	hub *diagnostics.Hub,
	reload <-chan *config.LoadedKeymap,
	sig <-chan os.Signal,
) {
	for {
		deadline, armed := tr.TimerDeadline()

		var timerC <-chan time.Time
		if armed {
			d := time.Until(deadline)
			if d < 0 {
				d = 0
			}
			timer := time.NewTimer(d)
			defer timer.Stop()
			timerC = timer.C
		}

		select {
		case <-sig:
			log.Info("hako shutting down")
			return

		case lk, ok := <-reload:
			if !ok {
				reload = nil
				continue
			}
			km = lk.Map

		case err, ok := <-src.Errs():
			if ok {
				log.WithError(err).Fatal("keyboard event stream error")
			}

		case ev, ok := <-src.Events():
			if !ok {
				log.Fatal("keyboard event stream ended")
			}
			in, known := km.Lookup(ev.Code)
			if !known {
				continue
			}
			log.WithFields(logrus.Fields{"input": in, "pressed": ev.Pressed}).Trace("raw event")
			cmds := tr.HandleEvent(in, ev.Pressed, ev.Time)
			traceState(log, tr)
			emit(log, cmds, out, hub)

		case <-timerC:
			cmds := tr.FireTimer()
			traceState(log, tr)
			emit(log, cmds, out, hub)
		}
	}
}

// traceState dumps the translator's full internal state with go-spew
// rather than hand-rolled %+v formatting (matching the teacher's
// preference for a real pretty-printer once output gets this
// detailed, see hub.go's per-field JSON message types). Sdump itself
// runs unconditionally, so this stays behind a level check to skip
// the reflection walk when trace logging is off.
func traceState(log *logrus.Entry, tr *translator.Translator) {
	if !log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		return
	}
	log.Trace(spew.Sdump(tr))
}

func emit(log *logrus.Entry, cmds []command.Command, out sink.Sink, hub *diagnostics.Hub) {
	for _, cmd := range cmds {
		log.WithField("cmd", cmd).Debug("emit")
		if err := out.Emit(cmd); err != nil {
			log.WithError(err).Fatal("sink write failed")
		}
		if hub != nil {
			hub.Publish(cmd)
		}
	}
}

func openSink(cfg *config.Config) (sink.Sink, error) {
	switch cfg.Sink {
	case "textpipe":
		return sink.OpenTextPipe(cfg.TextPipePath)
	default:
		return sink.OpenVirtualDevice(cfg.UinputDevice)
	}
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:   isatty.IsTerminal(os.Stderr.Fd()),
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}
