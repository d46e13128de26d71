// Package analog implements the bounded numeric types of the translation
// core: signed stick coordinates in [-80, 80] and unsigned trigger
// magnitudes in [0, 140]. Both are thin newtypes. NewCoord and
// NewTrigger panic on an out-of-range value; plain conversions and
// arithmetic on the types are not range-checked.
package analog

import "fmt"

// Coord is a single stick axis coordinate, always in [-80, 80].
type Coord int16

// MaxRadius is the maximum magnitude of a stick axis, matching the
// original implementation's P10000 (100% of travel).
const MaxRadius Coord = 80

// NewCoord checks v and converts it into a Coord, panicking if v falls
// outside [-80, 80]; it does not clamp. The magnitude tables declare
// their values as Coord constants and do not go through NewCoord.
func NewCoord(v int) Coord {
	if v < int(-MaxRadius) || v > int(MaxRadius) {
		panic(fmt.Sprintf("analog: coordinate %d out of range [-%d, %d]", v, MaxRadius, MaxRadius))
	}
	return Coord(v)
}

// Negate returns -c. This is the only binary-ish operation §9 calls out
// as required on the analog type.
func (c Coord) Negate() Coord {
	return -c
}

// Signed returns magnitude negated if sign is negative, zero if sign is
// zero, or magnitude unchanged if sign is positive. This is the
// "sign(active) · magnitude" construction used throughout C4/C5.
func Signed(sign int, magnitude Coord) Coord {
	switch {
	case sign < 0:
		return magnitude.Negate()
	case sign > 0:
		return magnitude
	default:
		return 0
	}
}

func (c Coord) Int() int { return int(c) }

// Trigger is an unsigned trigger magnitude in [0, 140].
type Trigger uint8

// MaxTrigger is the ceiling for any trigger value (§3).
const MaxTrigger Trigger = 140

// Named shield pressure constants (§3).
const (
	LS Trigger = 49 // light shield
	MS Trigger = 94 // medium shield
)

// NewTrigger validates v is in [0, 140], panicking otherwise.
func NewTrigger(v int) Trigger {
	if v < 0 || v > int(MaxTrigger) {
		panic(fmt.Sprintf("analog: trigger %d out of range [0, %d]", v, MaxTrigger))
	}
	return Trigger(v)
}

func (t Trigger) Int() int { return int(t) }

// Coord2 is a stick coordinate pair, compared by value.
type Coord2 struct {
	X, Y Coord
}

func (c Coord2) Equal(o Coord2) bool { return c.X == o.X && c.Y == o.Y }
