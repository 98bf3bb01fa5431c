package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraykit/xraykit/phys"
)

func TestEnumerateSubshells(t *testing.T) {
	subshells := enumerateSubshells(maxPrincipal)

	// A shell with principal quantum number n holds 2n-1 subshells.
	perShell := make(map[int]int)
	for _, e := range subshells {
		perShell[e.subshell.N()]++
	}
	for n := 1; n <= maxPrincipal; n++ {
		assert.Equal(t, 2*n-1, perShell[n], "shell %d", n)
	}
	assert.Len(t, subshells, 49)

	// Positions count up from 1 in order of increasing l then j.
	assert.Equal(t, 1, subshells[0].i)
	l := subshells[1] // 2s1/2
	assert.Equal(t, 2, l.subshell.N())
	assert.Equal(t, 0, l.subshell.L())
	assert.Equal(t, 1, l.i)
	l3 := subshells[3] // 2p3/2
	assert.Equal(t, 1, l3.subshell.L())
	assert.Equal(t, 3, l3.subshell.JNumerator())
	assert.Equal(t, 3, l3.i)
}

func TestEnumerateTransitions(t *testing.T) {
	transitions := enumerateTransitions(maxPrincipal)

	// Cross-shell pairs plus same-shell pairs with a higher source
	// position: (49^2 - sum of squares)/2 + sum of C(2n-1, 2).
	assert.Len(t, transitions, 1176)

	for _, tr := range transitions {
		src, dst := tr.transition.Source(), tr.transition.Destination()
		if src.N() == dst.N() {
			assert.Greater(t, tr.src.i, tr.dst.i)
		} else {
			assert.Greater(t, src.N(), dst.N())
		}
	}
}

func TestBuiltinLabels(t *testing.T) {
	subshells := enumerateSubshells(maxPrincipal)

	k := subshells[0]
	assert.Equal(t, "K", subshellIUPAC(k).ASCII)
	assert.Equal(t, "K", subshellSiegbahn(k).ASCII)
	assert.Equal(t, "1s1/2", subshellOrbital(k).ASCII)

	l3 := subshells[3]
	assert.Equal(t, "L3", subshellIUPAC(l3).ASCII)
	assert.Equal(t, "L<sub>3</sub>", subshellIUPAC(l3).HTML)
	assert.Equal(t, "L$_{3}$", subshellIUPAC(l3).LaTeX)
	assert.Equal(t, "LIII", subshellSiegbahn(l3).ASCII)
	assert.Equal(t, "2p3/2", subshellOrbital(l3).ASCII)
	assert.Equal(t, "2p<sub>3/2</sub>", subshellOrbital(l3).HTML)

	ka1 := transitionIndex{
		transition: phys.NewTransition(l3.subshell, k.subshell),
		src:        l3,
		dst:        k,
	}
	r := transitionIUPAC(ka1)
	assert.Equal(t, "K-L3", r.ASCII)
	assert.Equal(t, "K–L3", r.UTF16)
	assert.Equal(t, "K&ndash;L<sub>3</sub>", r.HTML)
	assert.Equal(t, "K--L$_{3}$", r.LaTeX)
}

func TestWriteBuiltin(t *testing.T) {
	w, conn := newTestWriter(t)

	require.NoError(t, WriteBuiltin(w))

	assert.Equal(t, phys.MaxAtomicNumber, countRows(t, conn, "element"))
	assert.Equal(t, phys.MaxAtomicNumber, countRows(t, conn, "element_symbol"))
	assert.Equal(t, phys.MaxAtomicNumber, countRows(t, conn, "element_name"))

	assert.Equal(t, maxPrincipal, countRows(t, conn, "atomic_shell"))
	assert.Equal(t, 3*maxPrincipal, countRows(t, conn, "atomic_shell_notation"))

	assert.Equal(t, 49, countRows(t, conn, "atomic_subshell"))
	assert.Equal(t, 3*49, countRows(t, conn, "atomic_subshell_notation"))

	assert.Equal(t, 1176, countRows(t, conn, "xray_transition"))
	assert.Equal(t, 1176, countRows(t, conn, "xray_transition_notation"))

	// 7 series plus one family per subshell that actually receives
	// transitions, minus the K family which duplicates the K series.
	assert.Equal(t, 54, countRows(t, conn, "xray_transitionset"))
	assert.Equal(t, 2*54, countRows(t, conn, "xray_transitionset_notation"))

	var symbol string
	require.NoError(t, conn.QueryRow(`
		SELECT es.symbol FROM element_symbol es
		JOIN element e ON es.element_id = e.id
		WHERE e.atomic_number = 26`).Scan(&symbol))
	assert.Equal(t, "Fe", symbol)

	var name string
	require.NoError(t, conn.QueryRow(`
		SELECT en.name FROM element_name en
		JOIN element e ON en.element_id = e.id
		WHERE e.atomic_number = 79`).Scan(&name))
	assert.Equal(t, "Gold", name)

	// The K-L3 transition carries its IUPAC notation.
	var utf16 string
	require.NoError(t, conn.QueryRow(`
		SELECT tn.utf16 FROM xray_transition_notation tn
		WHERE tn.ascii = 'K-L3'`).Scan(&utf16))
	assert.Equal(t, "K–L3", utf16)

	// The K series holds every transition into the K shell.
	var kCount int
	require.NoError(t, conn.QueryRow(`
		SELECT ts.count FROM xray_transitionset ts
		JOIN xray_transitionset_notation tsn ON tsn.xray_transitionset_id = ts.id
		JOIN notation n ON tsn.notation_id = n.id
		WHERE tsn.ascii = 'K' AND n.name = 'iupac'`).Scan(&kCount))
	assert.Equal(t, 48, kCount)
}

func TestWriteBuiltinIsIdempotentForDescriptors(t *testing.T) {
	w, conn := newTestWriter(t)
	require.NoError(t, WriteBuiltin(w))

	// Re-adding descriptors reuses existing rows.
	iron, err := phys.NewElement(26)
	require.NoError(t, err)
	_, err = w.AddElement(iron)
	require.NoError(t, err)
	assert.Equal(t, phys.MaxAtomicNumber, countRows(t, conn, "element"))

	ka1, err := phys.NewTransitionFromQuantumNumbers(2, 1, 3, 1, 0, 1)
	require.NoError(t, err)
	_, err = w.AddTransition(ka1)
	require.NoError(t, err)
	assert.Equal(t, 1176, countRows(t, conn, "xray_transition"))
}
