package resolve

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraykit/xraykit/errors"
	"github.com/xraykit/xraykit/phys"
	"github.com/xraykit/xraykit/query"
)

var subQueryPattern = regexp.QuoteMeta(
	"SELECT xray_transitionset_association.xray_transitionset_id, xray_transitionset.count" +
		" FROM xray_transitionset_association")

func newSetPropertyBuilder(t *testing.T) *query.SelectBuilder {
	t.Helper()
	b := query.NewSelectBuilder()
	b.AddSelect("xray_transitionset_energy", "value")
	b.AddFrom("xray_transitionset_energy")
	return b
}

func candidateRows(pairs ...[2]int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"xray_transitionset_id", "count"})
	for _, p := range pairs {
		rows.AddRow(p[0], p[1])
	}
	return rows
}

// Members are queried in canonical order: K-L2 (source L2) sorts before
// K-L3 (source L3).
var (
	kl2 = phys.NewTransition(phys.L2, phys.K)
	kl3 = phys.NewTransition(phys.L3, phys.K)
)

func TestMatchTransitionSetExactMatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Store contains set 10 = {K-L2, K-L3} (count 2) and set 11 = {K-L2}
	// (count 1).
	mock.ExpectQuery(subQueryPattern).
		WithArgs(2, 1, 1, 1, 0, 1).
		WillReturnRows(candidateRows([2]int64{10, 2}, [2]int64{11, 1}))
	mock.ExpectQuery(subQueryPattern).
		WithArgs(2, 1, 3, 1, 0, 1).
		WillReturnRows(candidateRows([2]int64{10, 2}))

	key, err := MatchTransitionSet(context.Background(), db, []phys.Transition{kl3, kl2})
	require.NoError(t, err)
	assert.Equal(t, int64(10), key)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchTransitionSetCardinalityRejectsSuperset(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// K-L2 alone is a member of both sets, but only set 11 has exactly
	// one member.
	mock.ExpectQuery(subQueryPattern).
		WithArgs(2, 1, 1, 1, 0, 1).
		WillReturnRows(candidateRows([2]int64{10, 2}, [2]int64{11, 1}))

	key, err := MatchTransitionSet(context.Background(), db, []phys.Transition{kl2})
	require.NoError(t, err)
	assert.Equal(t, int64(11), key)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchTransitionSetDeduplicatesInput(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Duplicate K-L2 collapses: one sub-query, cardinality 1.
	mock.ExpectQuery(subQueryPattern).
		WithArgs(2, 1, 1, 1, 0, 1).
		WillReturnRows(candidateRows([2]int64{11, 1}))

	key, err := MatchTransitionSet(context.Background(), db, []phys.Transition{kl2, kl2})
	require.NoError(t, err)
	assert.Equal(t, int64(11), key)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchTransitionSetShortCircuitsOnEmptyIntersection(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(subQueryPattern).
		WithArgs(2, 1, 1, 1, 0, 1).
		WillReturnRows(candidateRows([2]int64{11, 1}))
	mock.ExpectQuery(subQueryPattern).
		WithArgs(2, 1, 3, 1, 0, 1).
		WillReturnRows(candidateRows())

	// No third sub-query may run after the intersection empties.
	kl1 := phys.NewTransition(phys.L1, phys.K)
	_, err = MatchTransitionSet(context.Background(), db, []phys.Transition{kl2, kl3, kl1})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchTransitionSetAbsentTransition(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(subQueryPattern).
		WithArgs(2, 1, 1, 1, 0, 1).
		WillReturnRows(candidateRows())

	_, err = MatchTransitionSet(context.Background(), db, []phys.Transition{kl2})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestMatchTransitionSetEmptyInput(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = MatchTransitionSet(context.Background(), db, nil)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestMatchTransitionSetAmbiguousDuplicateAggregate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Two stored rows claim the same single-member set: data-integrity
	// violation, never silently picked.
	mock.ExpectQuery(subQueryPattern).
		WithArgs(2, 1, 1, 1, 0, 1).
		WillReturnRows(candidateRows([2]int64{11, 1}, [2]int64{12, 1}))

	_, err = MatchTransitionSet(context.Background(), db, []phys.Transition{kl2})
	require.Error(t, err)
	assert.True(t, errors.IsAmbiguous(err))

	var aerr *errors.AmbiguousMatchError
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, 2, aerr.Matches)
}

func TestMatchTransitionSetSupersetOnlyCandidates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// The only surviving candidate contains extra members: cardinality
	// filter leaves nothing.
	mock.ExpectQuery(subQueryPattern).
		WithArgs(2, 1, 1, 1, 0, 1).
		WillReturnRows(candidateRows([2]int64{10, 2}))

	_, err = MatchTransitionSet(context.Background(), db, []phys.Transition{kl2})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestMatchTransitionSetPropagatesBackendError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(subQueryPattern).
		WithArgs(2, 1, 1, 1, 0, 1).
		WillReturnError(assert.AnError)

	_, err = MatchTransitionSet(context.Background(), db, []phys.Transition{kl2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, assert.AnError))
}

func TestResolveTransitionSetByNotation(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	b := newSetPropertyBuilder(t)
	require.NoError(t, ResolveTransitionSet(context.Background(), db, "Ka", b, "xray_transitionset_energy", "xray_transitionset_id"))

	sql, args, err := b.Build()
	require.NoError(t, err)
	assert.Contains(t, sql, "JOIN xray_transitionset_notation ON xray_transitionset_notation.xray_transitionset_id = xray_transitionset_energy.xray_transitionset_id")
	assert.Equal(t, []any{"Ka", "Ka"}, args)
}

func TestResolveTransitionSetByCollection(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(subQueryPattern).
		WithArgs(2, 1, 1, 1, 0, 1).
		WillReturnRows(candidateRows([2]int64{10, 2}, [2]int64{11, 1}))
	mock.ExpectQuery(subQueryPattern).
		WithArgs(2, 1, 3, 1, 0, 1).
		WillReturnRows(candidateRows([2]int64{10, 2}))

	b := newSetPropertyBuilder(t)
	require.NoError(t, ResolveTransitionSet(context.Background(), db,
		[]phys.Transition{kl2, kl3}, b, "xray_transitionset_energy", "xray_transitionset_id"))

	sql, args, err := b.Build()
	require.NoError(t, err)
	assert.Contains(t, sql, "JOIN xray_transitionset ON xray_transitionset.id = xray_transitionset_energy.xray_transitionset_id")
	assert.Contains(t, sql, "xray_transitionset.id = ?")
	assert.Equal(t, []any{int64(10)}, args)
}
