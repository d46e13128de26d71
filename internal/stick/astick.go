package stick

import "hako/internal/analog"

// CCard is the C-stick's unique-cardinal reading used by the A-stick
// diagonal table (§4.4): the (axis, direction) pair when exactly one
// C-axis is ActiveUnique and the other is not, else the zero value
// with Present=false.
type CCard struct {
	Present bool
	Axis    Axis
	Dir     Direction
}

// Direction mirrors axis.Direction so this package does not force
// every caller to import axis just to build a CCard; AResolve/CResolve
// read AxisSnapshot values, not axis.State.
type Direction int

const (
	Positive Direction = iota
	Negative
)

func sign(d Direction) int {
	if d == Positive {
		return 1
	}
	return -1
}

// DirFromAxis converts a positive/negative flag into this package's
// Direction. Kept as a tiny adapter rather than a type alias so
// stick's public API reads standalone.
func DirFromAxis(positive bool) Direction {
	if positive {
		return Positive
	}
	return Negative
}

// AInputs bundles the flags and axis states the A-stick resolver
// reads (§4.4). It holds no translator-owned mutable state; it is a
// snapshot handed to AResolve.
type AInputs struct {
	ModX, ModY             bool
	BHeld                  bool
	LRHeld                 bool
	AX, AY                 AxisSnapshot
	CCard                  CCard
	CrouchWalkOptionSelect bool
}

// AxisSnapshot is the minimal read of an axis.State a resolver needs:
// whether a direction is active, which one, and whether its opposing
// key is suppressed beneath it.
type AxisSnapshot struct {
	Active       bool
	Dir          Direction
	OpposingHeld bool
}

// AResolve computes the A-stick coordinate per §4.4: the product of a
// magnitude table and the sign pair (sign(A.X.active), sign(A.Y.active)).
func AResolve(in AInputs) analog.Coord2 {
	mods := ResolveMods(in.ModX, in.ModY)

	switch {
	case !in.AX.Active && !in.AY.Active:
		return analog.Coord2{}
	case in.AX.Active && !in.AY.Active:
		return analog.Coord2{X: analog.Signed(sign(in.AX.Dir), aXOnlyMagnitude(mods, in.BHeld, in.AX.OpposingHeld))}
	case !in.AX.Active && in.AY.Active:
		return analog.Coord2{Y: analog.Signed(sign(in.AY.Dir), aYOnlyMagnitude(mods))}
	default:
		x, y := aDiagonalMagnitude(mods, in.LRHeld, in.CCard, in.AY.Dir, in.CrouchWalkOptionSelect)
		return analog.Coord2{
			X: analog.Signed(sign(in.AX.Dir), x),
			Y: analog.Signed(sign(in.AY.Dir), y),
		}
	}
}

func aXOnlyMagnitude(mods Mods, bHeld, opposingHeld bool) analog.Coord {
	if opposingHeld {
		return p10000
	}
	switch mods {
	case ModsNone:
		return p10000
	case ModsX:
		return p6625
	case ModsY:
		if bHeld {
			return p6625
		}
		return p3375
	default:
		return p10000
	}
}

func aYOnlyMagnitude(mods Mods) analog.Coord {
	switch mods {
	case ModsNone:
		return p10000
	case ModsX:
		return p5375
	case ModsY:
		return p7375
	default:
		return p10000
	}
}

func aDiagonalMagnitude(mods Mods, lrHeld bool, cCard CCard, ayDir Direction, crouchWalkOptionSelect bool) (analog.Coord, analog.Coord) {
	switch mods {
	case ModsX:
		if lrHeld {
			return p6375, p3750
		}
		if cCard.Present {
			switch {
			case cCard.Axis == AxisY && cCard.Dir == Negative:
				return p7000, p3625
			case cCard.Axis == AxisX && cCard.Dir == Negative:
				return p7875, p4875
			case cCard.Axis == AxisY && cCard.Dir == Positive:
				return p7000, p5125
			case cCard.Axis == AxisX && cCard.Dir == Positive:
				return p6125, p5250
			}
		}
		return p7375, p3125
	case ModsY:
		if lrHeld {
			if ayDir == Positive {
				return p4750, p8750
			}
			return p5000, p8500
		}
		if cCard.Present {
			switch {
			case cCard.Axis == AxisX && cCard.Dir == Positive:
				return p6375, p7625
			case cCard.Axis == AxisY && cCard.Dir == Positive:
				return p5125, p7000
			case cCard.Axis == AxisX && cCard.Dir == Negative:
				return p4875, p7875
			case cCard.Axis == AxisY && cCard.Dir == Negative:
				return p3625, p7000
			}
		}
		return p3125, p7375
	default:
		if crouchWalkOptionSelect && ayDir == Negative {
			return p7125, p6875
		}
		return p7000, p7000
	}
}
