package memoize

import "strconv"

type stateKind uint8

const (
	kindAbsent stateKind = iota
	kindString
	kindNumber
	kindBool
)

// State is a caller-supplied validity token attached to a cached entry.
// On every call the current state is compared to the stored one with strict
// equality; a mismatch invalidates the entry and triggers recomputation.
//
// The value domain is deliberately small (string, number, boolean or
// absent) so that equality stays cheap and unambiguous. The zero value is
// NoState (absent).
type State struct {
	kind stateKind
	str  string
	num  float64
	flag bool
}

// NoState is the absent state. Two absent states compare equal, so entries
// whose state function always returns NoState are invalidated only by
// eviction or failure.
var NoState State

// StringState returns a State carrying a string value.
func StringState(v string) State { return State{kind: kindString, str: v} }

// NumberState returns a State carrying a numeric value.
func NumberState(v float64) State { return State{kind: kindNumber, num: v} }

// BoolState returns a State carrying a boolean value.
func BoolState(v bool) State { return State{kind: kindBool, flag: v} }

// IsAbsent reports whether s is the absent state.
func (s State) IsAbsent() bool { return s.kind == kindAbsent }

// String renders the state for logs and diagnostics.
func (s State) String() string {
	switch s.kind {
	case kindString:
		return strconv.Quote(s.str)
	case kindNumber:
		return strconv.FormatFloat(s.num, 'g', -1, 64)
	case kindBool:
		return strconv.FormatBool(s.flag)
	default:
		return "absent"
	}
}
