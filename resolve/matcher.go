package resolve

import (
	"context"
	"database/sql"

	"github.com/xraykit/xraykit/errors"
	"github.com/xraykit/xraykit/logger"
	"github.com/xraykit/xraykit/phys"
	"github.com/xraykit/xraykit/query"
)

// Executor runs one parametrized query and returns its rows. *sql.DB and
// *sql.Tx both satisfy it.
type Executor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// MatchTransitionSet finds the surrogate key of the single stored
// transition set whose membership is exactly the given collection, after
// deduplication — neither a superset nor a subset.
//
// For each distinct transition a sub-query fetches the
// (transitionset_id, member count) pairs of every stored set containing
// it; the running candidate set is the intersection of those results and
// is abandoned the moment it empties. Candidates whose cached member
// count differs from the number of distinct requested transitions are
// then discarded, which rejects stored supersets. Exactly one survivor
// is the match; zero is NotFound; more than one is a data-integrity
// violation reported as AmbiguousMatch.
func MatchTransitionSet(ctx context.Context, exec Executor, transitions []phys.Transition) (int64, error) {
	set, err := phys.NewTransitionSet(transitions)
	if err != nil {
		return 0, err
	}
	members := set.Transitions()

	candidates := make(map[int64]int)
	for i, transition := range members {
		found, err := transitionSetsContaining(ctx, exec, transition)
		if err != nil {
			return 0, err
		}

		if i == 0 {
			candidates = found
		} else {
			for id := range candidates {
				if _, ok := found[id]; !ok {
					delete(candidates, id)
				}
			}
		}

		logger.Logger.Debugw("transition set candidates",
			"transition", transition.String(),
			"remaining", len(candidates),
			"round", i,
		)

		if len(candidates) == 0 {
			return 0, errors.NotFoundf("transition set", set)
		}
	}

	var match int64
	matched := 0
	for id, count := range candidates {
		if count == len(members) {
			match = id
			matched++
		}
	}

	switch matched {
	case 0:
		return 0, errors.NotFoundf("transition set", set)
	case 1:
		return match, nil
	default:
		return 0, errors.Ambiguousf("transition set", set, matched)
	}
}

// transitionSetsContaining fetches the (set id, member count) pairs of
// every stored set that has transition as a member.
func transitionSetsContaining(ctx context.Context, exec Executor, transition phys.Transition) (map[int64]int, error) {
	b := query.NewSelectBuilder()
	b.AddSelect(TableTransitionSetAssoc, "xray_transitionset_id")
	b.AddSelect(TableTransitionSet, "count")
	b.AddFrom(TableTransitionSetAssoc)
	if err := b.AddJoin(TableTransitionSet, "id", TableTransitionSetAssoc, "xray_transitionset_id"); err != nil {
		return nil, err
	}

	id, err := AsTransition(transition)
	if err != nil {
		return nil, err
	}
	if err := Transition(b, TableTransitionSetAssoc, "xray_transition_id", id); err != nil {
		return nil, err
	}

	stmt, args, err := b.Build()
	if err != nil {
		return nil, err
	}

	rows, err := exec.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, errors.Wrap(err, "transition set sub-query")
	}
	defer rows.Close()

	found := make(map[int64]int)
	for rows.Next() {
		var setID int64
		var count int
		if err := rows.Scan(&setID, &count); err != nil {
			return nil, errors.Wrap(err, "scan transition set row")
		}
		found[setID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate transition set rows")
	}
	return found, nil
}
