package stick

import "hako/internal/analog"

// DPadButton names one of the four D-pad buttons the C-stick latch
// (§4.5) can drive.
type DPadButton int

const (
	DPadUp DPadButton = iota
	DPadDown
	DPadLeft
	DPadRight
)

// CInputs bundles the flags and axis states the C-stick resolver
// reads in its normal (non-latched) mode (§4.5).
type CInputs struct {
	ModX, ModY bool
	CX, CY     AxisSnapshot
	// AXActive/AYActive/AYDir describe the A-stick's own axis state,
	// needed by the "tilt-into-smash" ModX helper row.
	AXActive bool
	AYActive bool
	AYDir    Direction
}

// CResolve computes the C-stick coordinate per §4.5's normal-mode
// table. It does not consider the D-pad latch; the caller keeps
// latched C-directions (see ButtonFor and DPadLatch) out of the
// C-stick axis states, so they never reach CResolve.
func CResolve(in CInputs) analog.Coord2 {
	switch {
	case !in.CX.Active && !in.CY.Active:
		return analog.Coord2{}
	case in.CX.Active && !in.CY.Active:
		if ResolveMods(in.ModX, in.ModY) == ModsX && in.AYActive && !in.AXActive {
			// The "tilt-into-smash" helper (§4.5): x follows the
			// C.X direction, y follows the A-stick's own Y direction.
			return analog.Coord2{
				X: analog.Signed(sign(in.CX.Dir), p8125),
				Y: analog.Signed(sign(in.AYDir), p2875),
			}
		}
		return analog.Coord2{X: analog.Signed(sign(in.CX.Dir), p10000)}
	case !in.CX.Active && in.CY.Active:
		return analog.Coord2{Y: analog.Signed(sign(in.CY.Dir), p10000)}
	default:
		return analog.Coord2{
			X: analog.Signed(sign(in.CX.Dir), p5250),
			Y: analog.Signed(sign(in.CY.Dir), p8500),
		}
	}
}

// DPadLatch tracks which D-pad buttons are currently latched. A button
// stays pressed until its originating C-direction key releases,
// independent of whether a modifier has since been released (§4.5,
// tested by scenario S5). The latch itself does not record which key
// caused each button; the translator keeps that in its latchedFrom set.
type DPadLatch struct {
	held map[DPadButton]bool
}

// NewDPadLatch returns an empty latch set.
func NewDPadLatch() *DPadLatch {
	return &DPadLatch{held: make(map[DPadButton]bool, 4)}
}

// ButtonFor maps a C-direction to the D-pad button §4.5 assigns it.
func ButtonFor(axisX bool, dir Direction) DPadButton {
	switch {
	case axisX && dir == Positive:
		return DPadRight
	case axisX && dir == Negative:
		return DPadLeft
	case !axisX && dir == Positive:
		return DPadUp
	default:
		return DPadDown
	}
}

// Press latches the D-pad button for a C-direction press while both
// modifiers are held. Returns true if this is a new press (the caller
// should emit a D-pad press command).
func (l *DPadLatch) Press(btn DPadButton) bool {
	if l.held[btn] {
		return false
	}
	l.held[btn] = true
	return true
}

// Release un-latches a D-pad button on the originating key's release.
// Returns true if it was held (the caller should emit a D-pad release).
func (l *DPadLatch) Release(btn DPadButton) bool {
	if !l.held[btn] {
		return false
	}
	delete(l.held, btn)
	return true
}

func (l *DPadLatch) IsHeld(btn DPadButton) bool {
	return l.held[btn]
}
