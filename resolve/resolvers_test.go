package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraykit/xraykit/phys"
	"github.com/xraykit/xraykit/query"
)

func TestElementByAtomicNumber(t *testing.T) {
	b := query.NewSelectBuilder()
	b.AddSelect("element_symbol", "symbol")
	b.AddFrom("element_symbol")

	id, err := AsElement(26)
	require.NoError(t, err)
	require.NoError(t, Element(b, "element_symbol", "element_id", id))

	sql, args, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT element_symbol.symbol FROM element_symbol"+
			" JOIN element ON element.id = element_symbol.element_id"+
			" WHERE element.atomic_number = ?",
		sql)
	assert.Equal(t, []any{26}, args)
}

func TestElementByNameOrSymbol(t *testing.T) {
	b := query.NewSelectBuilder()
	b.AddSelect("element_atomic_weight", "value")
	b.AddFrom("element_atomic_weight")

	id, err := AsElement("Fe")
	require.NoError(t, err)
	require.NoError(t, Element(b, "element_atomic_weight", "element_id", id))

	sql, args, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT element_atomic_weight.value FROM element_atomic_weight"+
			" JOIN element_name ON element_name.element_id = element_atomic_weight.element_id"+
			" JOIN element_symbol ON element_symbol.element_id = element_atomic_weight.element_id"+
			" WHERE (element_name.name = ? OR element_symbol.symbol = ?)",
		sql)
	assert.Equal(t, []any{"Fe", "Fe"}, args)
}

func TestAtomicShellByNotation(t *testing.T) {
	b := query.NewSelectBuilder()
	b.AddSelect("atomic_shell", "id")
	b.AddFrom("atomic_shell")

	id, err := AsAtomicShell("K")
	require.NoError(t, err)
	require.NoError(t, AtomicShell(b, "atomic_shell", "id", id))

	sql, args, err := b.Build()
	require.NoError(t, err)
	assert.Contains(t, sql, "JOIN atomic_shell_notation ON atomic_shell_notation.atomic_shell_id = atomic_shell.id")
	assert.Contains(t, sql, "(atomic_shell_notation.ascii = ? OR atomic_shell_notation.utf16 = ?)")
	assert.Equal(t, []any{"K", "K"}, args)
}

func TestAtomicSubshellNumericPath(t *testing.T) {
	b := query.NewSelectBuilder()
	b.AddSelect("atomic_subshell_occupancy", "value")
	b.AddFrom("atomic_subshell_occupancy")

	id, err := AsAtomicSubshell(phys.L3)
	require.NoError(t, err)
	require.NoError(t, AtomicSubshell(b, "atomic_subshell_occupancy", "atomic_subshell_id", id))

	sql, args, err := b.Build()
	require.NoError(t, err)
	assert.Contains(t, sql, "JOIN atomic_subshell ON atomic_subshell.id = atomic_subshell_occupancy.atomic_subshell_id")
	assert.Contains(t, sql, "JOIN atomic_shell ON atomic_shell.id = atomic_subshell.atomic_shell_id")
	assert.Contains(t, sql, "atomic_shell.principal_quantum_number = ?")
	assert.Contains(t, sql, "atomic_subshell.azimuthal_quantum_number = ?")
	assert.Contains(t, sql, "atomic_subshell.total_angular_momentum_nominator = ?")
	assert.NotContains(t, sql, "atomic_subshell_notation")
	assert.Equal(t, []any{2, 1, 3}, args)
}

func TestAtomicSubshellNotationPath(t *testing.T) {
	b := query.NewSelectBuilder()
	b.AddSelect("atomic_subshell_occupancy", "value")
	b.AddFrom("atomic_subshell_occupancy")

	id, err := AsAtomicSubshell("L3")
	require.NoError(t, err)
	require.NoError(t, AtomicSubshell(b, "atomic_subshell_occupancy", "atomic_subshell_id", id))

	sql, args, err := b.Build()
	require.NoError(t, err)
	assert.Contains(t, sql, "JOIN atomic_subshell_notation ON atomic_subshell_notation.atomic_subshell_id = atomic_subshell_occupancy.atomic_subshell_id")
	assert.Contains(t, sql, "(atomic_subshell_notation.ascii = ? OR atomic_subshell_notation.utf16 = ?)")
	assert.NotContains(t, sql, "azimuthal_quantum_number = ?")
	assert.Equal(t, []any{"L3", "L3"}, args)
}

func TestTransitionNumericPathAliasesBothEnds(t *testing.T) {
	b := query.NewSelectBuilder()
	b.AddSelect("xray_transition_energy", "value")
	b.AddFrom("xray_transition_energy")

	id, err := AsTransition(phys.NewTransition(phys.L3, phys.K))
	require.NoError(t, err)
	require.NoError(t, Transition(b, "xray_transition_energy", "xray_transition_id", id))

	sql, args, err := b.Build()
	require.NoError(t, err)
	assert.Contains(t, sql, "JOIN atomic_subshell AS srcsubshell ON srcsubshell.id = xray_transition.source_subshell_id")
	assert.Contains(t, sql, "JOIN atomic_subshell AS dstsubshell ON dstsubshell.id = xray_transition.destination_subshell_id")
	assert.Contains(t, sql, "JOIN atomic_shell AS srcshell ON srcshell.id = srcsubshell.atomic_shell_id")
	assert.Contains(t, sql, "JOIN atomic_shell AS dstshell ON dstshell.id = dstsubshell.atomic_shell_id")
	assert.Equal(t, []any{2, 1, 3, 1, 0, 1}, args)
}

func TestTransitionNotationPath(t *testing.T) {
	b := query.NewSelectBuilder()
	b.AddSelect("xray_transition_energy", "value")
	b.AddFrom("xray_transition_energy")

	id, err := AsTransition("Ka1")
	require.NoError(t, err)
	require.NoError(t, Transition(b, "xray_transition_energy", "xray_transition_id", id))

	sql, args, err := b.Build()
	require.NoError(t, err)
	assert.Contains(t, sql, "JOIN xray_transition_notation ON xray_transition_notation.xray_transition_id = xray_transition_energy.xray_transition_id")
	assert.Equal(t, []any{"Ka1", "Ka1"}, args)
}

func TestCompoundElementAndTransitionFilters(t *testing.T) {
	// Element by string and transition by quantum numbers compose into
	// one statement; element by integer composes the same way.
	for _, element := range []any{"Fe", 26} {
		b := query.NewSelectBuilder()
		b.AddSelect("xray_transition_energy", "value")
		b.AddFrom("xray_transition_energy")

		eid, err := AsElement(element)
		require.NoError(t, err)
		require.NoError(t, Element(b, "xray_transition_energy", "element_id", eid))

		tid, err := AsTransition(phys.NewTransition(phys.L3, phys.K))
		require.NoError(t, err)
		require.NoError(t, Transition(b, "xray_transition_energy", "xray_transition_id", tid))

		sql, args, err := b.Build()
		require.NoError(t, err)
		assert.Contains(t, sql, "xray_transition")
		switch element.(type) {
		case string:
			assert.Contains(t, sql, "element_symbol.symbol = ?")
			assert.Len(t, args, 8)
		case int:
			assert.Contains(t, sql, "element.atomic_number = ?")
			assert.Len(t, args, 7)
		}
	}
}

func TestNotationLanguageReferenceFilters(t *testing.T) {
	b := query.NewSelectBuilder()
	b.AddSelect("element_name", "name")
	b.AddFrom("element_name")

	nid, err := AsNotation("iupac")
	require.NoError(t, err)
	require.NoError(t, Notation(b, "element_name", nid))

	lid, err := AsLanguage("en")
	require.NoError(t, err)
	require.NoError(t, Language(b, "element_name", lid))

	rid, err := AsReference("doe2016")
	require.NoError(t, err)
	require.NoError(t, Reference(b, "element_name", rid))

	sql, args, err := b.Build()
	require.NoError(t, err)
	assert.Contains(t, sql, "JOIN notation ON notation.id = element_name.notation_id")
	assert.Contains(t, sql, "JOIN language ON language.id = element_name.language_id")
	assert.Contains(t, sql, "JOIN ref ON ref.id = element_name.reference_id")
	assert.Equal(t, []any{"iupac", "en", "doe2016"}, args)
}

func TestUnspecifiedReferenceOrdersInsteadOfFiltering(t *testing.T) {
	b := query.NewSelectBuilder()
	b.AddSelect("element_symbol", "symbol")
	b.AddFrom("element_symbol")

	rid, err := AsReference(nil)
	require.NoError(t, err)
	require.NoError(t, Reference(b, "element_symbol", rid))

	sql, args, err := b.Build()
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Contains(t, sql, "ORDER BY element_symbol.reference_id")
	assert.NotContains(t, sql, "JOIN ref")
}

func TestResolveDispatch(t *testing.T) {
	b := query.NewSelectBuilder()
	b.AddSelect("element_symbol", "symbol")
	b.AddFrom("element_symbol")

	require.NoError(t, Resolve(KindElement, 26, b, "element_symbol", "element_id"))
	require.Error(t, Resolve(KindTransitionSet, "Ka", b, "t", "c"))

	err := Resolve(KindElement, 3.14, b, "element_symbol", "element_id")
	require.Error(t, err)
}
