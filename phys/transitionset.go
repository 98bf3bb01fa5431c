package phys

import (
	"fmt"
	"sort"

	"github.com/xraykit/xraykit/errors"
)

// TransitionSet is a non-empty, deduplicated, unordered aggregate of
// transitions treated as one named spectral feature (a line family such
// as Ka). Members are held in canonical order so two sets built from the
// same transitions in any order compare equal.
type TransitionSet struct {
	members []Transition
}

// NewTransitionSet deduplicates the given transitions and returns the
// aggregate. At least one distinct member must remain.
func NewTransitionSet(transitions []Transition) (TransitionSet, error) {
	seen := make(map[Transition]struct{}, len(transitions))
	members := make([]Transition, 0, len(transitions))
	for _, t := range transitions {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		members = append(members, t)
	}

	if len(members) == 0 {
		return TransitionSet{}, errors.Validationf("transition set", "non-empty", len(transitions))
	}

	sort.Slice(members, func(i, j int) bool {
		return members[i].Compare(members[j]) < 0
	})
	return TransitionSet{members: members}, nil
}

// Len returns the number of distinct member transitions.
func (s TransitionSet) Len() int { return len(s.members) }

// Transitions returns the members in canonical order. The returned slice
// is a copy.
func (s TransitionSet) Transitions() []Transition {
	out := make([]Transition, len(s.members))
	copy(out, s.members)
	return out
}

// Contains reports whether t is a member of the set.
func (s TransitionSet) Contains(t Transition) bool {
	i := sort.Search(len(s.members), func(i int) bool {
		return s.members[i].Compare(t) >= 0
	})
	return i < len(s.members) && s.members[i] == t
}

// Equal reports set equality: same distinct members, order irrelevant.
func (s TransitionSet) Equal(other TransitionSet) bool {
	if len(s.members) != len(other.members) {
		return false
	}
	for i := range s.members {
		if s.members[i] != other.members[i] {
			return false
		}
	}
	return true
}

func (s TransitionSet) String() string {
	return fmt.Sprintf("TransitionSet(%d possible transitions)", len(s.members))
}
