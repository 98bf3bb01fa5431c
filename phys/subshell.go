package phys

import (
	"fmt"

	"github.com/xraykit/xraykit/errors"
)

// AtomicSubshell identifies an electron subshell by its principal quantum
// number n, azimuthal quantum number l, and total angular momentum j. The
// half-integer j is stored as its doubled numerator (2j) so subshells stay
// exactly comparable without floating point.
type AtomicSubshell struct {
	principal int
	azimuthal int
	jNumer    int
}

// NewAtomicSubshell validates (n, l, 2j) and returns the subshell.
// l must satisfy 0 <= l <= n-1 and 2j must lie in {2l-1, 2l+1} clipped to
// be non-negative.
func NewAtomicSubshell(n, l, jn int) (AtomicSubshell, error) {
	if _, err := NewAtomicShell(n); err != nil {
		return AtomicSubshell{}, err
	}

	lmax := n - 1
	if l < 0 || l > lmax {
		return AtomicSubshell{}, errors.Validationf("azimuthal quantum number", fmt.Sprintf("between [0, %d]", lmax), l)
	}

	jnMin := 2*l - 1
	if jnMin < 0 {
		jnMin = -jnMin
	}
	jnMax := 2*l + 1
	if jn < jnMin || jn > jnMax {
		return AtomicSubshell{}, errors.Validationf("total angular momentum", fmt.Sprintf("between [%d, %d]", jnMin, jnMax), jn)
	}

	return AtomicSubshell{principal: n, azimuthal: l, jNumer: jn}, nil
}

// NewAtomicSubshellInShell builds a subshell owned by the given shell.
func NewAtomicSubshellInShell(shell AtomicShell, l, jn int) (AtomicSubshell, error) {
	return NewAtomicSubshell(shell.N(), l, jn)
}

// N returns the principal quantum number.
func (s AtomicSubshell) N() int { return s.principal }

// L returns the azimuthal quantum number.
func (s AtomicSubshell) L() int { return s.azimuthal }

// JNumerator returns the doubled total angular momentum (2j).
func (s AtomicSubshell) JNumerator() int { return s.jNumer }

// J returns the total angular momentum as a float.
func (s AtomicSubshell) J() float64 { return float64(s.jNumer) / 2 }

// Shell returns the owning atomic shell.
func (s AtomicSubshell) Shell() AtomicShell {
	return AtomicShell{principal: s.principal}
}

// Compare orders subshells by (n, l, 2j).
func (s AtomicSubshell) Compare(other AtomicSubshell) int {
	if s.principal != other.principal {
		if s.principal < other.principal {
			return -1
		}
		return 1
	}
	if s.azimuthal != other.azimuthal {
		if s.azimuthal < other.azimuthal {
			return -1
		}
		return 1
	}
	if s.jNumer != other.jNumer {
		if s.jNumer < other.jNumer {
			return -1
		}
		return 1
	}
	return 0
}

func (s AtomicSubshell) String() string {
	return fmt.Sprintf("AtomicSubshell(n=%d, l=%d, j=%.1f)", s.principal, s.azimuthal, s.J())
}
