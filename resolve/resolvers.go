package resolve

import (
	"context"

	"github.com/xraykit/xraykit/errors"
	"github.com/xraykit/xraykit/query"
)

// Table and column names of the storage schema contract (see the db
// package migrations).
const (
	TableElement            = "element"
	TableElementSymbol      = "element_symbol"
	TableElementName        = "element_name"
	TableAtomicShell        = "atomic_shell"
	TableAtomicSubshell     = "atomic_subshell"
	TableTransition         = "xray_transition"
	TableTransitionSet      = "xray_transitionset"
	TableTransitionSetAssoc = "xray_transitionset_association"
	TableNotation           = "notation"
	TableLanguage           = "language"
	TableReference          = "ref"
)

func notationTable(entity string) string { return entity + "_notation" }

// Element emits joins and filters matching an element identifier against
// table.column (a foreign key to element.id). A string matches on either
// the stored name or the symbol; an atomic number matches directly.
func Element(b *query.SelectBuilder, table, column string, id ElementID) error {
	switch id.kind {
	case kindText:
		if err := b.AddJoin(TableElementName, "element_id", table, column); err != nil {
			return err
		}
		if err := b.AddJoin(TableElementSymbol, "element_id", table, column); err != nil {
			return err
		}
		return b.AddWhere(
			query.Eq(TableElementName, "name", id.text),
			query.Eq(TableElementSymbol, "symbol", id.text),
		)
	case kindNumeric:
		if err := b.AddJoin(TableElement, "id", table, column); err != nil {
			return err
		}
		return b.AddWhere(query.Eq(TableElement, "atomic_number", id.z))
	default:
		return errors.NotFoundf("element", id)
	}
}

// AtomicShell emits joins and filters matching a shell identifier against
// table.column (a foreign key to atomic_shell.id).
func AtomicShell(b *query.SelectBuilder, table, column string, id ShellID) error {
	switch id.kind {
	case kindText:
		if err := b.AddJoin(notationTable(TableAtomicShell), "atomic_shell_id", table, column); err != nil {
			return err
		}
		return b.AddWhere(
			query.Eq(notationTable(TableAtomicShell), "ascii", id.text),
			query.Eq(notationTable(TableAtomicShell), "utf16", id.text),
		)
	case kindNumeric:
		if err := b.AddJoin(TableAtomicShell, "id", table, column); err != nil {
			return err
		}
		return b.AddWhere(query.Eq(TableAtomicShell, "principal_quantum_number", id.n))
	default:
		return errors.NotFoundf("atomic shell", id)
	}
}

// AtomicSubshell emits joins and filters matching a subshell identifier
// against table.column (a foreign key to atomic_subshell.id). Exactly one
// path executes: notation-table match for a string, exact quantum-number
// equality otherwise.
func AtomicSubshell(b *query.SelectBuilder, table, column string, id SubshellID) error {
	if err := b.AddJoin(TableAtomicSubshell, "id", table, column); err != nil {
		return err
	}
	if err := b.AddJoin(TableAtomicShell, "id", TableAtomicSubshell, "atomic_shell_id"); err != nil {
		return err
	}

	switch id.kind {
	case kindText:
		if err := b.AddJoin(notationTable(TableAtomicSubshell), "atomic_subshell_id", table, column); err != nil {
			return err
		}
		return b.AddWhere(
			query.Eq(notationTable(TableAtomicSubshell), "ascii", id.text),
			query.Eq(notationTable(TableAtomicSubshell), "utf16", id.text),
		)
	case kindNumeric:
		if err := b.AddWhere(query.Eq(TableAtomicShell, "principal_quantum_number", id.n)); err != nil {
			return err
		}
		if err := b.AddWhere(query.Eq(TableAtomicSubshell, "azimuthal_quantum_number", id.l)); err != nil {
			return err
		}
		return b.AddWhere(query.Eq(TableAtomicSubshell, "total_angular_momentum_nominator", id.jn))
	default:
		return errors.NotFoundf("atomic subshell", id)
	}
}

// Transition emits joins and filters matching a transition identifier
// against table.column (a foreign key to xray_transition.id). The source
// and destination subshell tables are aliased separately so both ends can
// be filtered in one statement.
func Transition(b *query.SelectBuilder, table, column string, id TransitionID) error {
	if err := b.AddJoin(TableTransition, "id", table, column); err != nil {
		return err
	}
	if err := b.AddJoin(TableAtomicSubshell, "id", TableTransition, "source_subshell_id", "srcsubshell"); err != nil {
		return err
	}
	if err := b.AddJoin(TableAtomicSubshell, "id", TableTransition, "destination_subshell_id", "dstsubshell"); err != nil {
		return err
	}
	if err := b.AddJoin(TableAtomicShell, "id", "srcsubshell", "atomic_shell_id", "srcshell"); err != nil {
		return err
	}
	if err := b.AddJoin(TableAtomicShell, "id", "dstsubshell", "atomic_shell_id", "dstshell"); err != nil {
		return err
	}

	switch id.kind {
	case kindText:
		if err := b.AddJoin(notationTable(TableTransition), "xray_transition_id", table, column); err != nil {
			return err
		}
		return b.AddWhere(
			query.Eq(notationTable(TableTransition), "ascii", id.text),
			query.Eq(notationTable(TableTransition), "utf16", id.text),
		)
	case kindNumeric:
		for _, cond := range []query.Cond{
			query.Eq("srcshell", "principal_quantum_number", id.src.n),
			query.Eq("srcsubshell", "azimuthal_quantum_number", id.src.l),
			query.Eq("srcsubshell", "total_angular_momentum_nominator", id.src.jn),
			query.Eq("dstshell", "principal_quantum_number", id.dst.n),
			query.Eq("dstsubshell", "azimuthal_quantum_number", id.dst.l),
			query.Eq("dstsubshell", "total_angular_momentum_nominator", id.dst.jn),
		} {
			if err := b.AddWhere(cond); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.NotFoundf("transition", id)
	}
}

// TransitionSet emits joins and filters matching a transition-set
// identifier against table.column (a foreign key to xray_transitionset.id).
// A string matches the set-notation table directly; a collection of
// transitions is resolved to the unique exactly-equal stored set through
// MatchTransitionSet, executing sub-queries on exec.
func TransitionSet(ctx context.Context, exec Executor, b *query.SelectBuilder, table, column string, id TransitionSetID) error {
	switch id.kind {
	case kindText:
		if err := b.AddJoin(notationTable(TableTransitionSet), "xray_transitionset_id", table, column); err != nil {
			return err
		}
		return b.AddWhere(
			query.Eq(notationTable(TableTransitionSet), "ascii", id.text),
			query.Eq(notationTable(TableTransitionSet), "utf16", id.text),
		)
	case kindNumeric:
		key, err := MatchTransitionSet(ctx, exec, id.members)
		if err != nil {
			return err
		}
		if err := b.AddJoin(TableTransitionSet, "id", table, column); err != nil {
			return err
		}
		return b.AddWhere(query.Eq(TableTransitionSet, "id", key))
	default:
		return errors.NotFoundf("transition set", id)
	}
}

// Notation emits the join and filter matching a naming system against
// table.notation_id.
func Notation(b *query.SelectBuilder, table string, id NotationID) error {
	if err := b.AddJoin(TableNotation, "id", table, "notation_id"); err != nil {
		return err
	}
	return b.AddWhere(query.Eq(TableNotation, "name", id.name))
}

// Language emits the join and filter matching a language against
// table.language_id.
func Language(b *query.SelectBuilder, table string, id LanguageID) error {
	if err := b.AddJoin(TableLanguage, "id", table, "language_id"); err != nil {
		return err
	}
	return b.AddWhere(query.Eq(TableLanguage, "code", id.code))
}

// Reference emits the join and filter matching a bibliographic reference
// against table.reference_id. An unspecified reference adds an order-by
// on the reference key instead, so the caller selects the first stored
// reference deterministically.
func Reference(b *query.SelectBuilder, table string, id ReferenceID) error {
	if id.Unspecified() {
		b.AddOrderBy(table, "reference_id")
		return nil
	}
	if err := b.AddJoin(TableReference, "id", table, "reference_id"); err != nil {
		return err
	}
	return b.AddWhere(query.Eq(TableReference, "bibtexkey", id.key))
}
