package resolve

import (
	"context"

	"github.com/xraykit/xraykit/errors"
	"github.com/xraykit/xraykit/query"
)

// Kind enumerates the closed set of resolvable entity kinds.
type Kind int

const (
	KindElement Kind = iota
	KindAtomicShell
	KindAtomicSubshell
	KindTransition
	KindTransitionSet
	KindNotation
	KindLanguage
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindAtomicShell:
		return "atomic shell"
	case KindAtomicSubshell:
		return "atomic subshell"
	case KindTransition:
		return "transition"
	case KindTransitionSet:
		return "transition set"
	case KindNotation:
		return "notation"
	case KindLanguage:
		return "language"
	case KindReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Resolve normalizes raw for the given kind and emits its joins and
// filters against table.column into b. KindTransitionSet is not handled
// here because resolving a transition collection requires query
// execution; use TransitionSet or MatchTransitionSet directly.
//
// For KindNotation, KindLanguage, and KindReference the column argument
// is ignored: those kinds always join through their conventional foreign
// key column on table.
func Resolve(kind Kind, raw any, b *query.SelectBuilder, table, column string) error {
	switch kind {
	case KindElement:
		id, err := AsElement(raw)
		if err != nil {
			return err
		}
		return Element(b, table, column, id)
	case KindAtomicShell:
		id, err := AsAtomicShell(raw)
		if err != nil {
			return err
		}
		return AtomicShell(b, table, column, id)
	case KindAtomicSubshell:
		id, err := AsAtomicSubshell(raw)
		if err != nil {
			return err
		}
		return AtomicSubshell(b, table, column, id)
	case KindTransition:
		id, err := AsTransition(raw)
		if err != nil {
			return err
		}
		return Transition(b, table, column, id)
	case KindNotation:
		id, err := AsNotation(raw)
		if err != nil {
			return err
		}
		return Notation(b, table, id)
	case KindLanguage:
		id, err := AsLanguage(raw)
		if err != nil {
			return err
		}
		return Language(b, table, id)
	case KindReference:
		id, err := AsReference(raw)
		if err != nil {
			return err
		}
		return Reference(b, table, id)
	case KindTransitionSet:
		return errors.New("transition set resolution requires an executor, use resolve.TransitionSet")
	default:
		return errors.Unresolvedf(kind.String(), raw)
	}
}

// ResolveTransitionSet normalizes raw as a transition-set identifier and
// resolves it into b, executing matcher sub-queries on exec when the
// identifier is a transition collection.
func ResolveTransitionSet(ctx context.Context, exec Executor, raw any, b *query.SelectBuilder, table, column string) error {
	id, err := AsTransitionSet(raw)
	if err != nil {
		return err
	}
	return TransitionSet(ctx, exec, b, table, column, id)
}
