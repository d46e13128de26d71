// Package translator implements the top-level state holder (C6): it
// receives each logical event, mutates the SOCD/shield/modifier state,
// asks the stick resolvers for fresh coordinates, and emits the
// minimal ordered diff of output commands described by §4.6.
package translator

import (
	"time"

	"hako/internal/analog"
	"hako/internal/axis"
	"hako/internal/command"
	"hako/internal/keymap"
	"hako/internal/shield"
	"hako/internal/stick"
)

// Config holds the translator's start-up options (§6 CLI surface).
type Config struct {
	// JumpDelay defers JumpInput's press by this duration; zero disables
	// deferral entirely.
	JumpDelay time.Duration
	// JumpInput is the logical input the jump-delay timer watches. The
	// zero value (keymap.InputNone) disables the feature regardless of
	// JumpDelay.
	JumpInput keymap.Input
	// CrouchWalkOptionSelect selects the alternate neutral-diagonal
	// magnitude row in the A-stick table (§4.4).
	CrouchWalkOptionSelect bool
}

type flags struct {
	B, L, R, ModX, ModY bool
}

// pendingEdge is the deferred button press/release a B/L/R event
// produces; it is only turned into output once phase 3 knows whether
// the A-stick coordinate moved, per §4.6's ordering invariants.
type pendingEdge struct {
	btn     command.Button
	pressed bool
}

// Translator is the Translator state holder of §3/§6. The zero value
// is not usable; construct with New.
type Translator struct {
	cfg Config

	flags flags
	ax, ay axis.State
	cx, cy axis.State
	shield shield.State

	lastA, lastC analog.Coord2

	dpad *stick.DPadLatch
	// latchedFrom remembers which C-direction inputs are currently
	// suppressed from axis state by the D-pad latch, keyed by the
	// logical input that caused the suppression, so the matching
	// release (and only that release) skips the SOCD transition even
	// if a modifier was released in between (§4.5, scenario S5).
	latchedFrom map[keymap.Input]bool

	jumpArmed          bool
	jumpDeadline        time.Time
	jumpPendingRelease bool
}

// New constructs a Translator in its initial state.
func New(cfg Config) *Translator {
	return &Translator{
		cfg:         cfg,
		ax:          axis.New(),
		ay:          axis.New(),
		cx:          axis.New(),
		cy:          axis.New(),
		shield:      shield.New(),
		dpad:        stick.NewDPadLatch(),
		latchedFrom: make(map[keymap.Input]bool),
	}
}

// TimerDeadline reports the armed jump-delay deadline, if any. The
// caller's event loop selects on this alongside the next key event
// (§5); when it elapses it calls FireTimer.
func (t *Translator) TimerDeadline() (time.Time, bool) {
	return t.jumpDeadline, t.jumpArmed
}

// FireTimer fires the armed jump-delay timer: it emits the deferred
// press, followed by the deferred release if one arrived while the
// timer was armed (§4.6).
func (t *Translator) FireTimer() []command.Command {
	if !t.jumpArmed {
		return nil
	}
	btn := pureButtonFor(t.cfg.JumpInput)
	out := []command.Command{command.Press(btn)}
	if t.jumpPendingRelease {
		out = append(out, command.Release(btn))
	}
	t.jumpArmed = false
	t.jumpPendingRelease = false
	return out
}

// HandleEvent processes one (logicalInput, pressed) event and returns
// the ordered list of output commands it produces, per the three
// phases of §4.6. now is only consulted to arm the jump-delay timer.
func (t *Translator) HandleEvent(in keymap.Input, pressed bool, now time.Time) []command.Command {
	var out []command.Command
	var pending *pendingEdge
	skipCDiff := false

	switch {
	case isPureButton(in):
		if t.cfg.JumpDelay > 0 && in == t.cfg.JumpInput {
			if pressed {
				t.jumpArmed = true
				t.jumpDeadline = now.Add(t.cfg.JumpDelay)
				t.jumpPendingRelease = false
			} else if t.jumpArmed {
				t.jumpPendingRelease = true
			} else {
				out = append(out, command.Release(pureButtonFor(in)))
			}
			return out
		}
		btn := pureButtonFor(in)
		if pressed {
			out = append(out, command.Press(btn))
		} else {
			out = append(out, command.Release(btn))
		}
		return out

	case in == keymap.InputLightShield || in == keymap.InputMediumShield:
		pedal := shield.Light
		if in == keymap.InputMediumShield {
			pedal = shield.Medium
		}
		newShield, em := t.shield.Apply(pedal, pressed)
		t.shield = newShield
		if em.Present {
			if em.Release {
				out = append(out, command.SetTrigger(0))
			} else {
				out = append(out, command.SetTrigger(em.Value))
			}
		}
		return out

	case in == keymap.InputB || in == keymap.InputL || in == keymap.InputR:
		btn := impureButtonFor(in)
		t.setFlag(in, pressed)
		pending = &pendingEdge{btn: btn, pressed: pressed}

	case in == keymap.InputModX || in == keymap.InputModY:
		t.setFlag(in, pressed)

	case in == keymap.InputAXPos || in == keymap.InputAXNeg:
		t.ax = t.ax.Apply(dirOf(in), pressed)

	case in == keymap.InputAYPos || in == keymap.InputAYNeg:
		t.ay = t.ay.Apply(dirOf(in), pressed)

	case isCDirectional(in):
		axisX := in == keymap.InputCXPos || in == keymap.InputCXNeg
		dir := dirOf(in)
		bothMods := t.flags.ModX && t.flags.ModY

		switch {
		case pressed && bothMods:
			btn := stick.ButtonFor(axisX, stickDir(dir))
			t.latchedFrom[in] = true
			if t.dpad.Press(btn) {
				out = append(out, command.Press(dpadButtonFor(btn)))
				skipCDiff = true
			}
		case pressed:
			t.setCAxis(axisX, t.cAxis(axisX).Apply(dir, true))
		case !pressed && t.latchedFrom[in]:
			delete(t.latchedFrom, in)
			btn := stick.ButtonFor(axisX, stickDir(dir))
			if t.dpad.Release(btn) {
				out = append(out, command.Release(dpadButtonFor(btn)))
				skipCDiff = true
			}
		default:
			t.setCAxis(axisX, t.cAxis(axisX).Apply(dir, false))
		}
	}

	// Phase 2: resolve fresh coordinates from the now-current state.
	newA := stick.AResolve(t.aInputs())
	newC := stick.CResolve(t.cInputs())

	aChanged := !newA.Equal(t.lastA)
	cChanged := !skipCDiff && !newC.Equal(t.lastC)

	// Phase 3: diff & emit.
	switch {
	case pending != nil && aChanged && pending.pressed:
		if cChanged {
			out = append(out, command.SetStick(command.C, newC))
			t.lastC = newC
		}
		out = append(out, command.SetStick(command.Main, newA))
		t.lastA = newA
		out = append(out, command.Press(pending.btn))

	case pending != nil && aChanged && !pending.pressed:
		out = append(out, command.Release(pending.btn))
		if cChanged {
			out = append(out, command.SetStick(command.C, newC))
			t.lastC = newC
		}
		out = append(out, command.SetStick(command.Main, newA))
		t.lastA = newA

	case pending != nil:
		if pending.pressed {
			out = append(out, command.Press(pending.btn))
		} else {
			out = append(out, command.Release(pending.btn))
		}
		if cChanged {
			out = append(out, command.SetStick(command.C, newC))
			t.lastC = newC
		}

	case aChanged && cChanged:
		out = append(out, command.SetStick(command.C, newC))
		out = append(out, command.SetStick(command.Main, newA))
		t.lastC = newC
		t.lastA = newA

	case aChanged:
		out = append(out, command.SetStick(command.Main, newA))
		t.lastA = newA

	case cChanged:
		out = append(out, command.SetStick(command.C, newC))
		t.lastC = newC
	}

	return out
}

func (t *Translator) setFlag(in keymap.Input, v bool) {
	switch in {
	case keymap.InputB:
		t.flags.B = v
	case keymap.InputL:
		t.flags.L = v
	case keymap.InputR:
		t.flags.R = v
	case keymap.InputModX:
		t.flags.ModX = v
	case keymap.InputModY:
		t.flags.ModY = v
	}
}

func (t *Translator) cAxis(axisX bool) axis.State {
	if axisX {
		return t.cx
	}
	return t.cy
}

func (t *Translator) setCAxis(axisX bool, s axis.State) {
	if axisX {
		t.cx = s
	} else {
		t.cy = s
	}
}

func (t *Translator) aInputs() stick.AInputs {
	return stick.AInputs{
		ModX:                   t.flags.ModX,
		ModY:                   t.flags.ModY,
		BHeld:                  t.flags.B,
		LRHeld:                 t.flags.L || t.flags.R,
		AX:                     snapshotOf(t.ax),
		AY:                     snapshotOf(t.ay),
		CCard:                  t.cCard(),
		CrouchWalkOptionSelect: t.cfg.CrouchWalkOptionSelect,
	}
}

func (t *Translator) cInputs() stick.CInputs {
	_, axActive := t.ax.Active()
	ayDir, ayActive := t.ay.Active()
	return stick.CInputs{
		ModX:     t.flags.ModX,
		ModY:     t.flags.ModY,
		CX:       snapshotOf(t.cx),
		CY:       snapshotOf(t.cy),
		AXActive: axActive,
		AYActive: ayActive,
		AYDir:    stickDir(ayDir),
	}
}

func (t *Translator) cCard() stick.CCard {
	cxDir, cxOK := t.cx.ActiveUnique()
	cyDir, cyOK := t.cy.ActiveUnique()
	switch {
	case cxOK && !cyOK:
		return stick.CCard{Present: true, Axis: stick.AxisX, Dir: stickDir(cxDir)}
	case cyOK && !cxOK:
		return stick.CCard{Present: true, Axis: stick.AxisY, Dir: stickDir(cyDir)}
	default:
		return stick.CCard{}
	}
}

func snapshotOf(s axis.State) stick.AxisSnapshot {
	dir, opposing, ok := s.ActiveOpposing()
	return stick.AxisSnapshot{Active: ok, Dir: stickDir(dir), OpposingHeld: opposing}
}

func stickDir(d axis.Direction) stick.Direction {
	if d == axis.Positive {
		return stick.Positive
	}
	return stick.Negative
}

func dirOf(in keymap.Input) axis.Direction {
	switch in {
	case keymap.InputAXPos, keymap.InputAYPos, keymap.InputCXPos, keymap.InputCYPos:
		return axis.Positive
	default:
		return axis.Negative
	}
}

func isPureButton(in keymap.Input) bool {
	switch in {
	case keymap.InputA, keymap.InputX, keymap.InputY, keymap.InputZ, keymap.InputStart:
		return true
	default:
		return false
	}
}

func isCDirectional(in keymap.Input) bool {
	switch in {
	case keymap.InputCXPos, keymap.InputCXNeg, keymap.InputCYPos, keymap.InputCYNeg:
		return true
	default:
		return false
	}
}

func pureButtonFor(in keymap.Input) command.Button {
	switch in {
	case keymap.InputA:
		return command.A
	case keymap.InputX:
		return command.X
	case keymap.InputY:
		return command.Y
	case keymap.InputZ:
		return command.Z
	case keymap.InputStart:
		return command.Start
	default:
		return command.A
	}
}

func impureButtonFor(in keymap.Input) command.Button {
	switch in {
	case keymap.InputB:
		return command.B
	case keymap.InputL:
		return command.L
	case keymap.InputR:
		return command.R
	default:
		return command.B
	}
}

func dpadButtonFor(b stick.DPadButton) command.Button {
	switch b {
	case stick.DPadUp:
		return command.DPadUp
	case stick.DPadDown:
		return command.DPadDown
	case stick.DPadLeft:
		return command.DPadLeft
	default:
		return command.DPadRight
	}
}
