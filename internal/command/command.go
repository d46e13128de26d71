// Package command defines the output vocabulary the translator emits
// and the encoder (C7) consumes: stick sets, trigger sets, and button
// edges. Composites are ordered sequences of these commands built by
// the translator.
package command

import "hako/internal/analog"

// Button names a digital output, matching the text-pipe protocol's
// button-name vocabulary (§4.7) one-to-one.
type Button int

const (
	A Button = iota
	B
	X
	Y
	Z
	L
	R
	Start
	DPadUp
	DPadDown
	DPadLeft
	DPadRight
)

func (b Button) String() string {
	switch b {
	case A:
		return "A"
	case B:
		return "B"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	case L:
		return "L"
	case R:
		return "R"
	case Start:
		return "START"
	case DPadUp:
		return "D_UP"
	case DPadDown:
		return "D_DOWN"
	case DPadLeft:
		return "D_LEFT"
	case DPadRight:
		return "D_RIGHT"
	default:
		return "?"
	}
}

// Stick names which analog stick a Set targets.
type Stick int

const (
	Main Stick = iota // the A-stick, "MAIN" on the wire per §4.7
	C
)

// Kind discriminates the Command variants.
type Kind int

const (
	KindPress Kind = iota
	KindRelease
	KindSetStick
	KindSetTrigger
)

// Command is one output unit. Only the fields relevant to Kind are
// populated; this mirrors the original's small tagged-union shape
// more than it mirrors a wide C-style struct, at the cost of a few
// unused fields per variant — acceptable given Command values are
// short-lived and never stored in bulk.
type Command struct {
	Kind    Kind
	Button  Button
	Stick   Stick
	Coord   analog.Coord2
	Trigger analog.Trigger
}

func Press(b Button) Command   { return Command{Kind: KindPress, Button: b} }
func Release(b Button) Command { return Command{Kind: KindRelease, Button: b} }

func SetStick(s Stick, c analog.Coord2) Command {
	return Command{Kind: KindSetStick, Stick: s, Coord: c}
}

func SetTrigger(v analog.Trigger) Command {
	return Command{Kind: KindSetTrigger, Trigger: v}
}
