package phys

import "fmt"

// Transition is a directional pair of subshells: the electron drops from
// the source subshell into the destination subshell vacancy. Two
// transitions are equal iff all six quantum numbers are equal, regardless
// of how they were constructed.
type Transition struct {
	source      AtomicSubshell
	destination AtomicSubshell
}

// NewTransition builds a transition between two validated subshells.
func NewTransition(source, destination AtomicSubshell) Transition {
	return Transition{source: source, destination: destination}
}

// NewTransitionFromQuantumNumbers builds a transition from the raw
// sextuple (source n, l, 2j, destination n, l, 2j), validating both ends.
func NewTransitionFromQuantumNumbers(srcN, srcL, srcJN, dstN, dstL, dstJN int) (Transition, error) {
	source, err := NewAtomicSubshell(srcN, srcL, srcJN)
	if err != nil {
		return Transition{}, err
	}
	destination, err := NewAtomicSubshell(dstN, dstL, dstJN)
	if err != nil {
		return Transition{}, err
	}
	return Transition{source: source, destination: destination}, nil
}

// Source returns the subshell the electron transitions from.
func (t Transition) Source() AtomicSubshell { return t.source }

// Destination returns the subshell holding the initial vacancy.
func (t Transition) Destination() AtomicSubshell { return t.destination }

// IsRadiative reports whether this transition is radiatively permitted.
func (t Transition) IsRadiative() bool {
	return IsRadiative(t.source, t.destination)
}

// IsCosterKronig reports whether both subshells share a principal quantum
// number.
func (t Transition) IsCosterKronig() bool {
	return t.source.N() == t.destination.N()
}

// Compare orders transitions by source then destination quantum numbers.
// The order has no physical meaning; it exists so collections of
// transitions have a canonical form.
func (t Transition) Compare(other Transition) int {
	if c := t.source.Compare(other.source); c != 0 {
		return c
	}
	return t.destination.Compare(other.destination)
}

func (t Transition) String() string {
	return fmt.Sprintf("Transition([n=%d, l=%d, j=%.1f] -> [n=%d, l=%d, j=%.1f])",
		t.source.N(), t.source.L(), t.source.J(),
		t.destination.N(), t.destination.L(), t.destination.J())
}
