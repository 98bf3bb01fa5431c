// Package ingest inserts validated value objects into the xraykit
// database. It implements the producer contract the resolution layer
// reads through: one row per distinct descriptor, association rows with a
// cached member count for aggregates, and notation/property rows keyed by
// reference.
package ingest

import (
	"context"
	"database/sql"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/xraykit/xraykit/errors"
	"github.com/xraykit/xraykit/phys"
	"github.com/xraykit/xraykit/resolve"
)

// Renderings holds the per-naming-system renderings of one label.
type Renderings struct {
	ASCII string
	UTF16 string
	HTML  string
	LaTeX string
}

// Plain builds renderings whose ASCII and wide forms are the same string.
func Plain(s string) Renderings {
	return Renderings{ASCII: s, UTF16: s, HTML: s, LaTeX: s}
}

// Writer performs get-or-create inserts against an open database.
type Writer struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewWriter creates a writer over an already-migrated database. A nil
// logger disables logging.
func NewWriter(db *sql.DB, logger *zap.SugaredLogger) *Writer {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Writer{db: db, logger: logger}
}

// getOrCreate runs selectStmt expecting a single id column; on no rows it
// runs insertStmt and returns the new row id.
func (w *Writer) getOrCreate(selectStmt string, selectArgs []any, insertStmt string, insertArgs []any) (int64, error) {
	var id int64
	err := w.db.QueryRow(selectStmt, selectArgs...).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, errors.WithStack(err)
	}

	res, err := w.db.Exec(insertStmt, insertArgs...)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return id, nil
}

// AddReference inserts a bibliographic reference, or returns the existing
// row for its key.
func (w *Writer) AddReference(ref phys.Reference) (int64, error) {
	return w.getOrCreate(
		"SELECT id FROM ref WHERE bibtexkey = ?", []any{ref.Key()},
		`INSERT INTO ref (bibtexkey, author, year, title, type, booktitle, editor, pages,
			edition, journal, school, address, url, note, number, series, volume,
			publisher, organization, chapter, howpublished, doi)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		[]any{ref.Key(), ref.Author, ref.Year, ref.Title, ref.Type, ref.Booktitle,
			ref.Editor, ref.Pages, ref.Edition, ref.Journal, ref.School, ref.Address,
			ref.URL, ref.Note, ref.Number, ref.Series, ref.Volume, ref.Publisher,
			ref.Organization, ref.Chapter, ref.Howpublished, ref.DOI},
	)
}

// AddLanguage inserts a language row. The code is canonicalized through
// the BCP 47 registry before storage, so "eng" and "en" collapse to one
// row.
func (w *Writer) AddLanguage(lang phys.Language) (int64, error) {
	code := lang.Code()
	if tag, err := language.Parse(code); err == nil {
		base, confidence := tag.Base()
		if confidence != language.No {
			code = base.String()
		}
	}
	canonical, err := phys.NewLanguage(code)
	if err != nil {
		return 0, err
	}
	return w.getOrCreate(
		"SELECT id FROM language WHERE code = ?", []any{canonical.Code()},
		"INSERT INTO language (code) VALUES (?)", []any{canonical.Code()},
	)
}

// AddNotation inserts a naming-system row.
func (w *Writer) AddNotation(notation phys.Notation) (int64, error) {
	return w.getOrCreate(
		"SELECT id FROM notation WHERE name = ?", []any{notation.Name()},
		"INSERT INTO notation (name) VALUES (?)", []any{notation.Name()},
	)
}

// AddElement inserts an element row.
func (w *Writer) AddElement(element phys.Element) (int64, error) {
	return w.getOrCreate(
		"SELECT id FROM element WHERE atomic_number = ?", []any{element.AtomicNumber()},
		"INSERT INTO element (atomic_number) VALUES (?)", []any{element.AtomicNumber()},
	)
}

// AddAtomicShell inserts a shell row.
func (w *Writer) AddAtomicShell(shell phys.AtomicShell) (int64, error) {
	return w.getOrCreate(
		"SELECT id FROM atomic_shell WHERE principal_quantum_number = ?", []any{shell.N()},
		"INSERT INTO atomic_shell (principal_quantum_number) VALUES (?)", []any{shell.N()},
	)
}

// AddAtomicSubshell inserts a subshell row under its owning shell.
func (w *Writer) AddAtomicSubshell(subshell phys.AtomicSubshell) (int64, error) {
	shellID, err := w.AddAtomicShell(subshell.Shell())
	if err != nil {
		return 0, err
	}
	return w.getOrCreate(
		`SELECT id FROM atomic_subshell
		 WHERE atomic_shell_id = ? AND azimuthal_quantum_number = ? AND total_angular_momentum_nominator = ?`,
		[]any{shellID, subshell.L(), subshell.JNumerator()},
		`INSERT INTO atomic_subshell (atomic_shell_id, azimuthal_quantum_number, total_angular_momentum_nominator)
		 VALUES (?, ?, ?)`,
		[]any{shellID, subshell.L(), subshell.JNumerator()},
	)
}

// AddTransition inserts a transition row between its two subshells.
func (w *Writer) AddTransition(transition phys.Transition) (int64, error) {
	sourceID, err := w.AddAtomicSubshell(transition.Source())
	if err != nil {
		return 0, err
	}
	destinationID, err := w.AddAtomicSubshell(transition.Destination())
	if err != nil {
		return 0, err
	}
	return w.getOrCreate(
		"SELECT id FROM xray_transition WHERE source_subshell_id = ? AND destination_subshell_id = ?",
		[]any{sourceID, destinationID},
		"INSERT INTO xray_transition (source_subshell_id, destination_subshell_id) VALUES (?, ?)",
		[]any{sourceID, destinationID},
	)
}

// AddTransitionSet inserts an aggregate row with its cached member count
// and association rows. An existing set with exactly the same membership
// is reused.
func (w *Writer) AddTransitionSet(set phys.TransitionSet) (int64, error) {
	members := set.Transitions()

	existing, err := resolve.MatchTransitionSet(context.Background(), w.db, members)
	if err == nil {
		return existing, nil
	}
	if !errors.IsNotFound(err) {
		return 0, err
	}

	memberIDs := make([]int64, 0, len(members))
	for _, transition := range members {
		id, err := w.AddTransition(transition)
		if err != nil {
			return 0, err
		}
		memberIDs = append(memberIDs, id)
	}

	res, err := w.db.Exec("INSERT INTO xray_transitionset (count) VALUES (?)", len(memberIDs))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	setID, err := res.LastInsertId()
	if err != nil {
		return 0, errors.WithStack(err)
	}

	for _, transitionID := range memberIDs {
		_, err := w.db.Exec(
			"INSERT INTO xray_transitionset_association (xray_transitionset_id, xray_transition_id) VALUES (?, ?)",
			setID, transitionID)
		if err != nil {
			return 0, errors.WithStack(err)
		}
	}

	if w.logger != nil {
		w.logger.Debugw("Created transition set", "id", setID, "members", len(memberIDs))
	}
	return setID, nil
}
