package phys

// Well-known subshells in IUPAC labelling. Within a shell, subshells are
// ordered by ascending l then ascending 2j (L1 = 2s1/2, L2 = 2p1/2,
// L3 = 2p3/2, ...).
var (
	K = mustSubshell(1, 0, 1)

	L1 = mustSubshell(2, 0, 1)
	L2 = mustSubshell(2, 1, 1)
	L3 = mustSubshell(2, 1, 3)

	M1 = mustSubshell(3, 0, 1)
	M2 = mustSubshell(3, 1, 1)
	M3 = mustSubshell(3, 1, 3)
	M4 = mustSubshell(3, 2, 3)
	M5 = mustSubshell(3, 2, 5)

	N1 = mustSubshell(4, 0, 1)
	N2 = mustSubshell(4, 1, 1)
	N3 = mustSubshell(4, 1, 3)
	N4 = mustSubshell(4, 2, 3)
	N5 = mustSubshell(4, 2, 5)
	N6 = mustSubshell(4, 3, 5)
	N7 = mustSubshell(4, 3, 7)
)

func mustSubshell(n, l, jn int) AtomicSubshell {
	s, err := NewAtomicSubshell(n, l, jn)
	if err != nil {
		panic(err)
	}
	return s
}

// SubshellsInShell enumerates the subshells of shell n in IUPAC order.
func SubshellsInShell(n int) []AtomicSubshell {
	var out []AtomicSubshell
	for l := 0; l < n; l++ {
		if l == 0 {
			out = append(out, AtomicSubshell{principal: n, azimuthal: 0, jNumer: 1})
			continue
		}
		out = append(out,
			AtomicSubshell{principal: n, azimuthal: l, jNumer: 2*l - 1},
			AtomicSubshell{principal: n, azimuthal: l, jNumer: 2*l + 1},
		)
	}
	return out
}
