// Package resolve translates heterogeneous identifier representations —
// typed value objects, raw quantum-number tuples, notation strings — into
// join-and-filter fragments on a query.SelectBuilder, against the
// relational schema defined by the db package migrations.
//
// Every accepted representation is first normalized into a closed tagged
// variant (ElementID, SubshellID, ...). Normalization never guesses: an
// input that fits no accepted shape fails with an
// errors.UnresolvedIdentifierError, and numeric shapes are validated
// through the phys constructors so invariant violations surface as the
// original errors.ValidationError.
package resolve

import (
	"github.com/xraykit/xraykit/errors"
	"github.com/xraykit/xraykit/phys"
)

type idKind int

const (
	kindNone idKind = iota
	kindNumeric
	kindText
)

// ElementID is a normalized element identifier: an atomic number or a
// name/symbol string to be resolved by lookup.
type ElementID struct {
	kind idKind
	z    int
	text string
}

// AsElement normalizes an element identifier. Accepted shapes:
// phys.Element, a bare atomic number (int), or a string holding an
// element symbol or name in any stored language.
func AsElement(v any) (ElementID, error) {
	switch e := v.(type) {
	case phys.Element:
		return ElementID{kind: kindNumeric, z: e.AtomicNumber()}, nil
	case int:
		return ElementID{kind: kindNumeric, z: e}, nil
	case string:
		return ElementID{kind: kindText, text: e}, nil
	default:
		return ElementID{}, errors.Unresolvedf("element", v)
	}
}

// ShellID is a normalized atomic-shell identifier.
type ShellID struct {
	kind idKind
	n    int
	text string
}

// AsAtomicShell normalizes a shell identifier. Accepted shapes:
// phys.AtomicShell, a bare principal quantum number (int), or a notation
// string.
func AsAtomicShell(v any) (ShellID, error) {
	switch s := v.(type) {
	case phys.AtomicShell:
		return ShellID{kind: kindNumeric, n: s.N()}, nil
	case int:
		return ShellID{kind: kindNumeric, n: s}, nil
	case string:
		return ShellID{kind: kindText, text: s}, nil
	default:
		return ShellID{}, errors.Unresolvedf("atomic shell", v)
	}
}

// SubshellID is a normalized subshell identifier: a validated (n, l, 2j)
// triple or a notation string.
type SubshellID struct {
	kind idKind
	n    int
	l    int
	jn   int
	text string
}

// AsAtomicSubshell normalizes a subshell identifier. Accepted shapes:
// phys.AtomicSubshell, a 3-element (n, l, 2j) sequence ([3]int or []int),
// or a notation string. Numeric shapes are validated through
// phys.NewAtomicSubshell.
func AsAtomicSubshell(v any) (SubshellID, error) {
	switch s := v.(type) {
	case phys.AtomicSubshell:
		return SubshellID{kind: kindNumeric, n: s.N(), l: s.L(), jn: s.JNumerator()}, nil
	case [3]int:
		return subshellFromTriple(s[0], s[1], s[2])
	case []int:
		if len(s) != 3 {
			return SubshellID{}, errors.Unresolvedf("atomic subshell", v)
		}
		return subshellFromTriple(s[0], s[1], s[2])
	case string:
		return SubshellID{kind: kindText, text: s}, nil
	default:
		return SubshellID{}, errors.Unresolvedf("atomic subshell", v)
	}
}

func subshellFromTriple(n, l, jn int) (SubshellID, error) {
	if _, err := phys.NewAtomicSubshell(n, l, jn); err != nil {
		return SubshellID{}, err
	}
	return SubshellID{kind: kindNumeric, n: n, l: l, jn: jn}, nil
}

// TransitionID is a normalized transition identifier: two validated
// subshell triples or a notation string.
type TransitionID struct {
	kind idKind
	src  SubshellID
	dst  SubshellID
	text string
}

// AsTransition normalizes a transition identifier. Accepted shapes:
// phys.Transition, a 2-element sequence of subshell-like inputs (each
// normalized per AsAtomicSubshell), or a notation string.
func AsTransition(v any) (TransitionID, error) {
	switch t := v.(type) {
	case phys.Transition:
		src, _ := AsAtomicSubshell(t.Source())
		dst, _ := AsAtomicSubshell(t.Destination())
		return TransitionID{kind: kindNumeric, src: src, dst: dst}, nil
	case [2]any:
		return transitionFromPair(t[0], t[1])
	case []any:
		if len(t) != 2 {
			return TransitionID{}, errors.Unresolvedf("transition", v)
		}
		return transitionFromPair(t[0], t[1])
	case string:
		return TransitionID{kind: kindText, text: t}, nil
	default:
		return TransitionID{}, errors.Unresolvedf("transition", v)
	}
}

func transitionFromPair(src, dst any) (TransitionID, error) {
	srcID, err := AsAtomicSubshell(src)
	if err != nil {
		return TransitionID{}, err
	}
	if srcID.kind != kindNumeric {
		return TransitionID{}, errors.Unresolvedf("transition", src)
	}
	dstID, err := AsAtomicSubshell(dst)
	if err != nil {
		return TransitionID{}, err
	}
	if dstID.kind != kindNumeric {
		return TransitionID{}, errors.Unresolvedf("transition", dst)
	}
	return TransitionID{kind: kindNumeric, src: srcID, dst: dstID}, nil
}

// transition rebuilds the validated phys value. Only valid for numeric
// identifiers.
func (t TransitionID) transition() phys.Transition {
	src, _ := phys.NewAtomicSubshell(t.src.n, t.src.l, t.src.jn)
	dst, _ := phys.NewAtomicSubshell(t.dst.n, t.dst.l, t.dst.jn)
	return phys.NewTransition(src, dst)
}

// TransitionSetID is a normalized transition-set identifier: a
// deduplicated collection of transitions or a notation string.
type TransitionSetID struct {
	kind    idKind
	members []phys.Transition
	text    string
}

// AsTransitionSet normalizes a transition-set identifier. Accepted
// shapes: phys.TransitionSet, a sequence of transition-like inputs
// (normalized per AsTransition, then deduplicated), or a notation string.
func AsTransitionSet(v any) (TransitionSetID, error) {
	switch ts := v.(type) {
	case phys.TransitionSet:
		return TransitionSetID{kind: kindNumeric, members: ts.Transitions()}, nil
	case []phys.Transition:
		set, err := phys.NewTransitionSet(ts)
		if err != nil {
			return TransitionSetID{}, err
		}
		return TransitionSetID{kind: kindNumeric, members: set.Transitions()}, nil
	case []any:
		members := make([]phys.Transition, 0, len(ts))
		for _, raw := range ts {
			id, err := AsTransition(raw)
			if err != nil {
				return TransitionSetID{}, err
			}
			if id.kind != kindNumeric {
				return TransitionSetID{}, errors.Unresolvedf("transition set", raw)
			}
			members = append(members, id.transition())
		}
		set, err := phys.NewTransitionSet(members)
		if err != nil {
			return TransitionSetID{}, err
		}
		return TransitionSetID{kind: kindNumeric, members: set.Transitions()}, nil
	case string:
		return TransitionSetID{kind: kindText, text: ts}, nil
	default:
		return TransitionSetID{}, errors.Unresolvedf("transition set", v)
	}
}

// NotationID is a normalized naming-system identifier.
type NotationID struct {
	name string
}

// AsNotation normalizes a notation identifier: phys.Notation or its name.
func AsNotation(v any) (NotationID, error) {
	switch n := v.(type) {
	case phys.Notation:
		return NotationID{name: n.Name()}, nil
	case string:
		return NotationID{name: n}, nil
	default:
		return NotationID{}, errors.Unresolvedf("notation", v)
	}
}

// LanguageID is a normalized language identifier.
type LanguageID struct {
	code string
}

// AsLanguage normalizes a language identifier: phys.Language or its code.
func AsLanguage(v any) (LanguageID, error) {
	switch l := v.(type) {
	case phys.Language:
		return LanguageID{code: l.Code()}, nil
	case string:
		return LanguageID{code: l}, nil
	default:
		return LanguageID{}, errors.Unresolvedf("language", v)
	}
}

// ReferenceID is a normalized bibliographic-reference identifier. The
// zero key means "unspecified": instead of filtering, resolution orders
// by reference key so the caller can pick the first match
// deterministically.
type ReferenceID struct {
	key string
}

// AsReference normalizes a reference identifier: phys.Reference, its
// bibtex key, or nil for the unspecified mode.
func AsReference(v any) (ReferenceID, error) {
	switch r := v.(type) {
	case phys.Reference:
		return ReferenceID{key: r.Key()}, nil
	case string:
		return ReferenceID{key: r}, nil
	case nil:
		return ReferenceID{}, nil
	default:
		return ReferenceID{}, errors.Unresolvedf("reference", v)
	}
}

// Unspecified reports whether the identifier carries no key.
func (r ReferenceID) Unspecified() bool { return r.key == "" }
