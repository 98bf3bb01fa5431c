// Package phys defines the immutable value objects of atomic X-ray
// spectroscopy: elements, shells, subshells, radiative transitions and
// their aggregates, plus the naming-system and bibliographic descriptors.
//
// All types are plain comparable values. Constructors validate every
// invariant and return a *errors.ValidationError on violation; a
// zero-effort comparison with == is always representation-independent.
package phys

import (
	"fmt"

	"github.com/xraykit/xraykit/errors"
)

// MaxAtomicNumber is the highest element known to the periodic table.
const MaxAtomicNumber = 118

// Element identifies a chemical element by its atomic number.
type Element struct {
	atomicNumber int
}

// NewElement validates z and returns the element with that atomic number.
func NewElement(z int) (Element, error) {
	if z < 1 || z > MaxAtomicNumber {
		return Element{}, errors.Validationf("atomic number", fmt.Sprintf("between [1, %d]", MaxAtomicNumber), z)
	}
	return Element{atomicNumber: z}, nil
}

// AtomicNumber returns Z.
func (e Element) AtomicNumber() int { return e.atomicNumber }

// Z returns the atomic number.
func (e Element) Z() int { return e.atomicNumber }

// Compare orders elements by atomic number.
func (e Element) Compare(other Element) int {
	switch {
	case e.atomicNumber < other.atomicNumber:
		return -1
	case e.atomicNumber > other.atomicNumber:
		return 1
	default:
		return 0
	}
}

func (e Element) String() string {
	return fmt.Sprintf("Element(z=%d)", e.atomicNumber)
}
