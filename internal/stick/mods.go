// Package stick implements the A-stick and C-stick coordinate
// resolvers (C4, C5) and the D-pad latch overlay: pure functions from
// translator state to analog coordinates, driven by the magnitude
// tables of §4.4/§4.5.
package stick

// Mods is the effective modifier reading used by the magnitude tables.
// Per §9, this is modeled as a tagged variant rather than a bitmask:
// holding both ModX and ModY simultaneously behaves as None.
type Mods int

const (
	ModsNone Mods = iota
	ModsX
	ModsY
)

// ResolveMods collapses the raw ModX/ModY flag bits into the
// three-way Mods variant the magnitude tables key off of.
func ResolveMods(modX, modY bool) Mods {
	switch {
	case modX && modY:
		return ModsNone
	case modX:
		return ModsX
	case modY:
		return ModsY
	default:
		return ModsNone
	}
}

// Axis names one of the two stick axes, used by CCard to report which
// C-stick axis is uniquely active.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)
