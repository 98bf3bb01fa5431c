// Package store is the high-level lookup API over a migrated xraykit
// database. A Database answers questions like "what is the Ka1 energy of
// iron" by compiling flexible identifiers into one SELECT through the
// query and resolve packages, scoped to an explicit or per-property
// default bibliographic reference.
package store

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/xraykit/xraykit/errors"
	"github.com/xraykit/xraykit/phys"
	"github.com/xraykit/xraykit/resolve"
)

// Property keys accepted by SetDefaultReference. Each names the table the
// corresponding lookup reads.
const (
	PropElementSymbol                   = "element_symbol"
	PropElementName                     = "element_name"
	PropElementAtomicWeight             = "element_atomic_weight"
	PropElementMassDensity              = "element_mass_density"
	PropAtomicShellNotation             = "atomic_shell_notation"
	PropAtomicSubshellNotation          = "atomic_subshell_notation"
	PropAtomicSubshellBindingEnergy     = "atomic_subshell_binding_energy"
	PropAtomicSubshellRadiativeWidth    = "atomic_subshell_radiative_width"
	PropAtomicSubshellNonradiativeWidth = "atomic_subshell_nonradiative_width"
	PropAtomicSubshellOccupancy         = "atomic_subshell_occupancy"
	PropTransitionNotation              = "xray_transition_notation"
	PropTransitionEnergy                = "xray_transition_energy"
	PropTransitionProbability           = "xray_transition_probability"
	PropTransitionRelativeWeight        = "xray_transition_relative_weight"
	PropTransitionSetNotation           = "xray_transitionset_notation"
	PropTransitionSetEnergy             = "xray_transitionset_energy"
	PropTransitionSetRelativeWeight     = "xray_transitionset_relative_weight"
)

var knownProperties = map[string]struct{}{
	PropElementSymbol:                   {},
	PropElementName:                     {},
	PropElementAtomicWeight:             {},
	PropElementMassDensity:              {},
	PropAtomicShellNotation:             {},
	PropAtomicSubshellNotation:          {},
	PropAtomicSubshellBindingEnergy:     {},
	PropAtomicSubshellRadiativeWidth:    {},
	PropAtomicSubshellNonradiativeWidth: {},
	PropAtomicSubshellOccupancy:         {},
	PropTransitionNotation:              {},
	PropTransitionEnergy:                {},
	PropTransitionProbability:           {},
	PropTransitionRelativeWeight:        {},
	PropTransitionSetNotation:           {},
	PropTransitionSetEnergy:             {},
	PropTransitionSetRelativeWeight:     {},
}

// Encoding selects which rendering of a notation a lookup returns.
type Encoding string

const (
	EncodingASCII Encoding = "ascii"
	EncodingUTF16 Encoding = "utf16"
	EncodingHTML  Encoding = "html"
	EncodingLaTeX Encoding = "latex"
)

func (e Encoding) validate() error {
	switch e {
	case EncodingASCII, EncodingUTF16, EncodingHTML, EncodingLaTeX:
		return nil
	}
	return errors.Validationf("encoding", "one of ascii, utf16, html, latex", string(e))
}

// Database answers lookups against an open, migrated database. Default
// references are per-Database state, never process-global.
type Database struct {
	db       *sql.DB
	logger   *zap.SugaredLogger
	defaults map[string]phys.Reference
}

// New wraps an open database. A nil logger disables logging.
func New(conn *sql.DB, logger *zap.SugaredLogger) *Database {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Database{
		db:       conn,
		logger:   logger,
		defaults: make(map[string]phys.Reference),
	}
}

// SetDefaultReference scopes future lookups of one property to the given
// reference unless a lookup names its own. The property must be one of
// the Prop* keys.
func (d *Database) SetDefaultReference(property string, ref phys.Reference) error {
	if _, ok := knownProperties[property]; !ok {
		return errors.Validationf("property", "a known property key", property)
	}
	d.defaults[property] = ref
	d.logger.Debugw("Default reference set", "property", property, "reference", ref.Key())
	return nil
}

// DefaultReference reports the default reference configured for a
// property, if any.
func (d *Database) DefaultReference(property string) (phys.Reference, bool) {
	ref, ok := d.defaults[property]
	return ref, ok
}

// MatchTransitionSet finds the stored aggregate whose membership equals
// the given transitions exactly.
func (d *Database) MatchTransitionSet(ctx context.Context, transitions []phys.Transition) (int64, error) {
	return resolve.MatchTransitionSet(ctx, d.db, transitions)
}

// reference normalizes a lookup's reference argument, falling back to the
// property's configured default when the argument is nil.
func (d *Database) reference(property string, raw any) (resolve.ReferenceID, error) {
	id, err := resolve.AsReference(raw)
	if err != nil {
		return id, err
	}
	if id.Unspecified() {
		if ref, ok := d.defaults[property]; ok {
			return resolve.AsReference(ref)
		}
	}
	return id, nil
}
