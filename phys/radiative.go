package phys

// IsRadiative reports whether a transition from source to destination is
// radiatively permitted. Same-shell (Coster-Kronig type) transitions are
// never radiative; otherwise the transition must satisfy either the
// electric dipole or the electric quadrupole selection rule.
//
// Inspired from the NIST EPQ library by Nicholas Ritchie.
func IsRadiative(source, destination AtomicSubshell) bool {
	if source.N() == destination.N() {
		return false
	}
	return electricDipolePermitted(source, destination) ||
		electricQuadrupolePermitted(source, destination)
}

func electricDipolePermitted(source, destination AtomicSubshell) bool {
	deltaJN := abs(destination.JNumerator() - source.JNumerator())
	if deltaJN > 2 {
		return false
	}
	return abs(destination.L()-source.L()) == 1
}

func electricQuadrupolePermitted(source, destination AtomicSubshell) bool {
	deltaJN := abs(destination.JNumerator() - source.JNumerator())
	if deltaJN > 4 {
		return false
	}
	// The j=1/2 -> j=1/2 quadrupole transition is forbidden.
	if source.JNumerator() == 1 && destination.JNumerator() == 1 {
		return false
	}
	deltaL := abs(destination.L() - source.L())
	return deltaL == 0 || deltaL == 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
