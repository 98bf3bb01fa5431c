package phys

import (
	"fmt"

	"github.com/xraykit/xraykit/errors"
)

// AtomicShell identifies an electron shell by its principal quantum number.
type AtomicShell struct {
	principal int
}

// NewAtomicShell validates n and returns the shell.
func NewAtomicShell(n int) (AtomicShell, error) {
	if n < 1 {
		return AtomicShell{}, errors.Validationf("principal quantum number", "at least 1", n)
	}
	return AtomicShell{principal: n}, nil
}

// N returns the principal quantum number.
func (s AtomicShell) N() int { return s.principal }

// Compare orders shells by principal quantum number.
func (s AtomicShell) Compare(other AtomicShell) int {
	switch {
	case s.principal < other.principal:
		return -1
	case s.principal > other.principal:
		return 1
	default:
		return 0
	}
}

func (s AtomicShell) String() string {
	return fmt.Sprintf("AtomicShell(n=%d)", s.principal)
}
