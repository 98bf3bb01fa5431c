package phys

import (
	"fmt"
	"sort"
)

// Line is a measured X-ray emission line of one element: the transitions
// it aggregates, its labels in the two common naming systems, and its
// energy. Lines order by element then energy.
type Line struct {
	element     Element
	transitions []Transition
	iupac       string
	siegbahn    string
	energyEV    float64
}

// NewLine builds a line from its element, member transitions, labels, and
// energy in electronvolts.
func NewLine(element Element, transitions []Transition, iupac, siegbahn string, energyEV float64) Line {
	members := make([]Transition, len(transitions))
	copy(members, transitions)
	sort.Slice(members, func(i, j int) bool {
		return members[i].Compare(members[j]) < 0
	})
	return Line{
		element:     element,
		transitions: members,
		iupac:       iupac,
		siegbahn:    siegbahn,
		energyEV:    energyEV,
	}
}

// Element returns the emitting element.
func (l Line) Element() Element { return l.element }

// Transitions returns the member transitions in canonical order.
func (l Line) Transitions() []Transition {
	out := make([]Transition, len(l.transitions))
	copy(out, l.transitions)
	return out
}

// IUPAC returns the IUPAC label.
func (l Line) IUPAC() string { return l.iupac }

// Siegbahn returns the Siegbahn label.
func (l Line) Siegbahn() string { return l.siegbahn }

// EnergyEV returns the line energy in electronvolts.
func (l Line) EnergyEV() float64 { return l.energyEV }

// Less orders lines by element then energy.
func (l Line) Less(other Line) bool {
	if c := l.element.Compare(other.element); c != 0 {
		return c < 0
	}
	return l.energyEV < other.energyEV
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%s)", l.iupac)
}
