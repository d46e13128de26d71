// Package keymap implements the pure physical-key -> logical-input
// mapping (spec §4.1, component C1). It holds no translator state; it
// is a total function loaded once from configuration and consulted on
// every raw key event.
package keymap

// Input is a logical input produced by a physical key press.
type Input int

const (
	InputNone Input = iota

	// Pure buttons.
	InputA
	InputX
	InputY
	InputZ
	InputStart

	// Impure buttons.
	InputB
	InputL
	InputR

	// Shield pedals.
	InputLightShield
	InputMediumShield

	// Modifier pedals.
	InputModX
	InputModY

	// Directional pedals: eight in total, stick x axis x direction.
	InputAXPos
	InputAXNeg
	InputAYPos
	InputAYNeg
	InputCXPos
	InputCXNeg
	InputCYPos
	InputCYNeg
)

func (i Input) String() string {
	switch i {
	case InputNone:
		return "None"
	case InputA:
		return "A"
	case InputX:
		return "X"
	case InputY:
		return "Y"
	case InputZ:
		return "Z"
	case InputStart:
		return "Start"
	case InputB:
		return "B"
	case InputL:
		return "L"
	case InputR:
		return "R"
	case InputLightShield:
		return "LightShield"
	case InputMediumShield:
		return "MediumShield"
	case InputModX:
		return "ModX"
	case InputModY:
		return "ModY"
	case InputAXPos:
		return "A.X+"
	case InputAXNeg:
		return "A.X-"
	case InputAYPos:
		return "A.Y+"
	case InputAYNeg:
		return "A.Y-"
	case InputCXPos:
		return "C.X+"
	case InputCXNeg:
		return "C.X-"
	case InputCYPos:
		return "C.Y+"
	case InputCYNeg:
		return "C.Y-"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether i is one of the eight directional pedals.
func (i Input) IsDirectional() bool {
	return i >= InputAXPos && i <= InputCYNeg
}

// Map is a total function from physical key code to Input. Keys absent
// from codes produce InputNone and are dropped by the caller. Start may
// alias two physical keys onto InputStart; no other logical input may
// have more than one physical key mapped to it (enforced by Validate,
// not by the Map type itself, since a bad config should fail loudly at
// load time rather than silently misbehave at runtime).
type Map struct {
	codes map[uint16]Input
}

// New builds a Map from a physical-key-code -> Input table.
func New(codes map[uint16]Input) *Map {
	cp := make(map[uint16]Input, len(codes))
	for k, v := range codes {
		cp[k] = v
	}
	return &Map{codes: cp}
}

// Lookup returns the logical input for a physical key code, or
// (InputNone, false) if the code is unmapped.
func (m *Map) Lookup(code uint16) (Input, bool) {
	in, ok := m.codes[code]
	if !ok || in == InputNone {
		return InputNone, false
	}
	return in, true
}

// Validate checks that every logical input other than InputStart has at
// most one physical key mapped to it. Returns the first duplicate found.
func (m *Map) Validate() error {
	seen := make(map[Input]uint16, len(m.codes))
	for code, in := range m.codes {
		if in == InputNone || in == InputStart {
			continue
		}
		if other, ok := seen[in]; ok {
			return &DuplicateError{Input: in, First: other, Second: code}
		}
		seen[in] = code
	}
	return nil
}

// DuplicateError reports that two physical keys map to the same
// non-aliasable logical input.
type DuplicateError struct {
	Input       Input
	First       uint16
	Second      uint16
}

func (e *DuplicateError) Error() string {
	return "keymap: logical input " + e.Input.String() + " is bound to more than one key"
}
