// Package shield implements the light/medium shield-pressure layering
// state machine (C3): two pedals stack into one of five named states,
// each transition optionally emitting a trigger magnitude for the left
// trigger axis.
package shield

import "hako/internal/analog"

// Pedal identifies which of the two shield pedals an event concerns.
type Pedal int

const (
	Light Pedal = iota
	Medium
)

type kind int

const (
	kindNull kind = iota
	kindM
	kindL
	kindML
	kindLM
)

// State is the shield layering state (§3). The zero value is the
// documented initial state, Null.
type State struct {
	k             kind
	mediumPressed bool // only meaningful when k == kindM
}

// New returns a fresh State in Null.
func New() State {
	return State{}
}

// Emission is an optional trigger output produced by a transition.
// Release is the "Z" sentinel of §3: release the trigger (value 0).
type Emission struct {
	Present bool
	Release bool
	Value   analog.Trigger
}

func none() Emission                  { return Emission{} }
func value(v analog.Trigger) Emission { return Emission{Present: true, Value: v} }
func release() Emission                { return Emission{Present: true, Release: true} }

// Apply feeds a (pedal, pressed) event through the §3 transition table
// and returns the new state plus whatever trigger output the
// transition emits. Inputs outside the table are no-ops that emit
// nothing (§4.3, §7's "semantic no-ops" clause).
func (s State) Apply(p Pedal, pressed bool) (State, Emission) {
	if pressed {
		return s.press(p)
	}
	return s.release(p)
}

func (s State) press(p Pedal) (State, Emission) {
	switch s.k {
	case kindNull:
		if p == Light {
			return State{k: kindL}, value(analog.LS)
		}
		return State{k: kindM, mediumPressed: true}, value(analog.MS)
	case kindM:
		if p == Light {
			return State{k: kindML}, value(analog.LS)
		}
		return s, none() // Medium already pressed in M(_): redundant.
	case kindL:
		if p == Medium {
			return State{k: kindLM}, value(analog.MS)
		}
		return s, none() // Light already pressed in L: redundant.
	case kindML, kindLM:
		return s, none() // both pedals already layered.
	}
	return s, none()
}

func (s State) release(p Pedal) (State, Emission) {
	switch s.k {
	case kindML:
		if p == Light {
			return State{k: kindM, mediumPressed: false}, release()
		}
		if p == Medium {
			return State{k: kindL}, none()
		}
	case kindLM:
		if p == Light {
			return State{k: kindM, mediumPressed: true}, none()
		}
		if p == Medium {
			return State{k: kindL}, value(analog.LS)
		}
	case kindM:
		if p == Medium {
			if s.mediumPressed {
				return State{}, release()
			}
			return State{}, none()
		}
	case kindL:
		if p == Light {
			return State{}, release()
		}
	case kindNull:
		return s, none()
	}
	return s, none()
}
