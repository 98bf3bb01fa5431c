package store

import (
	"context"
	"database/sql"

	"github.com/xraykit/xraykit/errors"
	"github.com/xraykit/xraykit/query"
	"github.com/xraykit/xraykit/resolve"
)

// scanOne builds the statement and scans the first row into dest. No rows
// maps to a NotFoundError naming the looked-up kind and identifier.
func (d *Database) scanOne(ctx context.Context, b *query.SelectBuilder, kind string, id any, dest ...any) error {
	stmt, args, err := b.Build()
	if err != nil {
		return err
	}
	d.logger.Debugw("Lookup", "kind", kind, "sql", stmt)
	err = d.db.QueryRowContext(ctx, stmt, args...).Scan(dest...)
	if err == sql.ErrNoRows {
		return errors.NotFoundf(kind, id)
	}
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// ElementAtomicNumber resolves any element identifier to its atomic
// number.
func (d *Database) ElementAtomicNumber(ctx context.Context, element any) (int, error) {
	id, err := resolve.AsElement(element)
	if err != nil {
		return 0, err
	}
	b := query.NewSelectBuilder()
	b.AddSelect(resolve.TableElement, "atomic_number")
	b.AddFrom(resolve.TableElement)
	if err := resolve.Element(b, resolve.TableElement, "id", id); err != nil {
		return 0, err
	}
	var z int
	if err := d.scanOne(ctx, b, "element", element, &z); err != nil {
		return 0, err
	}
	return z, nil
}

// ElementSymbol returns the chemical symbol of an element.
func (d *Database) ElementSymbol(ctx context.Context, element, reference any) (string, error) {
	id, err := resolve.AsElement(element)
	if err != nil {
		return "", err
	}
	b := query.NewSelectBuilder()
	b.AddSelect(resolve.TableElementSymbol, "symbol")
	b.AddFrom(resolve.TableElementSymbol)
	if err := resolve.Element(b, resolve.TableElementSymbol, "element_id", id); err != nil {
		return "", err
	}
	if err := d.addReference(b, PropElementSymbol, reference); err != nil {
		return "", err
	}
	var symbol string
	if err := d.scanOne(ctx, b, "element symbol", element, &symbol); err != nil {
		return "", err
	}
	return symbol, nil
}

// ElementName returns the name of an element in a language.
func (d *Database) ElementName(ctx context.Context, element, lang, reference any) (string, error) {
	id, err := resolve.AsElement(element)
	if err != nil {
		return "", err
	}
	languageID, err := resolve.AsLanguage(lang)
	if err != nil {
		return "", err
	}
	b := query.NewSelectBuilder()
	b.AddSelect(resolve.TableElementName, "name")
	b.AddFrom(resolve.TableElementName)
	if err := resolve.Element(b, resolve.TableElementName, "element_id", id); err != nil {
		return "", err
	}
	if err := resolve.Language(b, resolve.TableElementName, languageID); err != nil {
		return "", err
	}
	if err := d.addReference(b, PropElementName, reference); err != nil {
		return "", err
	}
	var name string
	if err := d.scanOne(ctx, b, "element name", element, &name); err != nil {
		return "", err
	}
	return name, nil
}

// ElementAtomicWeight returns the atomic weight of an element.
func (d *Database) ElementAtomicWeight(ctx context.Context, element, reference any) (float64, error) {
	return d.elementFloat(ctx, PropElementAtomicWeight, "value", "element atomic weight", element, reference)
}

// ElementMassDensityKgPerM3 returns the mass density of an element in
// kg/m^3.
func (d *Database) ElementMassDensityKgPerM3(ctx context.Context, element, reference any) (float64, error) {
	return d.elementFloat(ctx, PropElementMassDensity, "value_kg_per_m3", "element mass density", element, reference)
}

func (d *Database) elementFloat(ctx context.Context, property, valueColumn, kind string, element, reference any) (float64, error) {
	id, err := resolve.AsElement(element)
	if err != nil {
		return 0, err
	}
	b := query.NewSelectBuilder()
	b.AddSelect(property, valueColumn)
	b.AddFrom(property)
	if err := resolve.Element(b, property, "element_id", id); err != nil {
		return 0, err
	}
	if err := d.addReference(b, property, reference); err != nil {
		return 0, err
	}
	var value float64
	if err := d.scanOne(ctx, b, kind, element, &value); err != nil {
		return 0, err
	}
	return value, nil
}

// AtomicShellNotation returns a shell's label in the given naming system
// and encoding.
func (d *Database) AtomicShellNotation(ctx context.Context, shell, notation any, encoding Encoding, reference any) (string, error) {
	if err := encoding.validate(); err != nil {
		return "", err
	}
	id, err := resolve.AsAtomicShell(shell)
	if err != nil {
		return "", err
	}
	notationID, err := resolve.AsNotation(notation)
	if err != nil {
		return "", err
	}
	b := query.NewSelectBuilder()
	b.AddSelect(PropAtomicShellNotation, string(encoding))
	b.AddFrom(PropAtomicShellNotation)
	if err := resolve.AtomicShell(b, PropAtomicShellNotation, "atomic_shell_id", id); err != nil {
		return "", err
	}
	if err := resolve.Notation(b, PropAtomicShellNotation, notationID); err != nil {
		return "", err
	}
	if err := d.addReference(b, PropAtomicShellNotation, reference); err != nil {
		return "", err
	}
	var value string
	if err := d.scanOne(ctx, b, "atomic shell notation", shell, &value); err != nil {
		return "", err
	}
	return value, nil
}

// AtomicSubshellNotation returns a subshell's label in the given naming
// system and encoding.
func (d *Database) AtomicSubshellNotation(ctx context.Context, subshell, notation any, encoding Encoding, reference any) (string, error) {
	if err := encoding.validate(); err != nil {
		return "", err
	}
	id, err := resolve.AsAtomicSubshell(subshell)
	if err != nil {
		return "", err
	}
	notationID, err := resolve.AsNotation(notation)
	if err != nil {
		return "", err
	}
	b := query.NewSelectBuilder()
	b.AddSelect(PropAtomicSubshellNotation, string(encoding))
	b.AddFrom(PropAtomicSubshellNotation)
	if err := resolve.AtomicSubshell(b, PropAtomicSubshellNotation, "atomic_subshell_id", id); err != nil {
		return "", err
	}
	if err := resolve.Notation(b, PropAtomicSubshellNotation, notationID); err != nil {
		return "", err
	}
	if err := d.addReference(b, PropAtomicSubshellNotation, reference); err != nil {
		return "", err
	}
	var value string
	if err := d.scanOne(ctx, b, "atomic subshell notation", subshell, &value); err != nil {
		return "", err
	}
	return value, nil
}

// AtomicSubshellBindingEnergyEV returns a subshell binding energy in eV.
func (d *Database) AtomicSubshellBindingEnergyEV(ctx context.Context, element, subshell, reference any) (float64, error) {
	var value float64
	err := d.subshellProperty(ctx, PropAtomicSubshellBindingEnergy, "value_ev",
		"atomic subshell binding energy", element, subshell, reference, &value)
	return value, err
}

// AtomicSubshellRadiativeWidthEV returns a subshell radiative width in eV.
func (d *Database) AtomicSubshellRadiativeWidthEV(ctx context.Context, element, subshell, reference any) (float64, error) {
	var value float64
	err := d.subshellProperty(ctx, PropAtomicSubshellRadiativeWidth, "value_ev",
		"atomic subshell radiative width", element, subshell, reference, &value)
	return value, err
}

// AtomicSubshellNonradiativeWidthEV returns a subshell non-radiative
// width in eV.
func (d *Database) AtomicSubshellNonradiativeWidthEV(ctx context.Context, element, subshell, reference any) (float64, error) {
	var value float64
	err := d.subshellProperty(ctx, PropAtomicSubshellNonradiativeWidth, "value_ev",
		"atomic subshell nonradiative width", element, subshell, reference, &value)
	return value, err
}

// AtomicSubshellOccupancy returns a subshell electron occupancy.
func (d *Database) AtomicSubshellOccupancy(ctx context.Context, element, subshell, reference any) (int, error) {
	var value int
	err := d.subshellProperty(ctx, PropAtomicSubshellOccupancy, "value",
		"atomic subshell occupancy", element, subshell, reference, &value)
	return value, err
}

func (d *Database) subshellProperty(ctx context.Context, property, valueColumn, kind string, element, subshell, reference any, dest any) error {
	elementID, err := resolve.AsElement(element)
	if err != nil {
		return err
	}
	subshellID, err := resolve.AsAtomicSubshell(subshell)
	if err != nil {
		return err
	}
	b := query.NewSelectBuilder()
	b.AddSelect(property, valueColumn)
	b.AddFrom(property)
	if err := resolve.Element(b, property, "element_id", elementID); err != nil {
		return err
	}
	if err := resolve.AtomicSubshell(b, property, "atomic_subshell_id", subshellID); err != nil {
		return err
	}
	if err := d.addReference(b, property, reference); err != nil {
		return err
	}
	return d.scanOne(ctx, b, kind, subshell, dest)
}

// TransitionNotation returns a transition's label in the given naming
// system and encoding.
func (d *Database) TransitionNotation(ctx context.Context, transition, notation any, encoding Encoding, reference any) (string, error) {
	if err := encoding.validate(); err != nil {
		return "", err
	}
	id, err := resolve.AsTransition(transition)
	if err != nil {
		return "", err
	}
	notationID, err := resolve.AsNotation(notation)
	if err != nil {
		return "", err
	}
	b := query.NewSelectBuilder()
	b.AddSelect(PropTransitionNotation, string(encoding))
	b.AddFrom(PropTransitionNotation)
	if err := resolve.Transition(b, PropTransitionNotation, "xray_transition_id", id); err != nil {
		return "", err
	}
	if err := resolve.Notation(b, PropTransitionNotation, notationID); err != nil {
		return "", err
	}
	if err := d.addReference(b, PropTransitionNotation, reference); err != nil {
		return "", err
	}
	var value string
	if err := d.scanOne(ctx, b, "transition notation", transition, &value); err != nil {
		return "", err
	}
	return value, nil
}

// TransitionEnergyEV returns a transition energy in eV.
func (d *Database) TransitionEnergyEV(ctx context.Context, element, transition, reference any) (float64, error) {
	return d.transitionFloat(ctx, PropTransitionEnergy, "value_ev", "transition energy", element, transition, reference)
}

// TransitionProbability returns a transition probability.
func (d *Database) TransitionProbability(ctx context.Context, element, transition, reference any) (float64, error) {
	return d.transitionFloat(ctx, PropTransitionProbability, "value", "transition probability", element, transition, reference)
}

// TransitionRelativeWeight returns a transition's relative weight within
// its line family.
func (d *Database) TransitionRelativeWeight(ctx context.Context, element, transition, reference any) (float64, error) {
	return d.transitionFloat(ctx, PropTransitionRelativeWeight, "value", "transition relative weight", element, transition, reference)
}

func (d *Database) transitionFloat(ctx context.Context, property, valueColumn, kind string, element, transition, reference any) (float64, error) {
	elementID, err := resolve.AsElement(element)
	if err != nil {
		return 0, err
	}
	transitionID, err := resolve.AsTransition(transition)
	if err != nil {
		return 0, err
	}
	b := query.NewSelectBuilder()
	b.AddSelect(property, valueColumn)
	b.AddFrom(property)
	if err := resolve.Element(b, property, "element_id", elementID); err != nil {
		return 0, err
	}
	if err := resolve.Transition(b, property, "xray_transition_id", transitionID); err != nil {
		return 0, err
	}
	if err := d.addReference(b, property, reference); err != nil {
		return 0, err
	}
	var value float64
	if err := d.scanOne(ctx, b, kind, transition, &value); err != nil {
		return 0, err
	}
	return value, nil
}

// TransitionSetNotation returns an aggregate's label in the given naming
// system and encoding.
func (d *Database) TransitionSetNotation(ctx context.Context, set, notation any, encoding Encoding, reference any) (string, error) {
	if err := encoding.validate(); err != nil {
		return "", err
	}
	id, err := resolve.AsTransitionSet(set)
	if err != nil {
		return "", err
	}
	notationID, err := resolve.AsNotation(notation)
	if err != nil {
		return "", err
	}
	b := query.NewSelectBuilder()
	b.AddSelect(PropTransitionSetNotation, string(encoding))
	b.AddFrom(PropTransitionSetNotation)
	if err := resolve.TransitionSet(ctx, d.db, b, PropTransitionSetNotation, "xray_transitionset_id", id); err != nil {
		return "", err
	}
	if err := resolve.Notation(b, PropTransitionSetNotation, notationID); err != nil {
		return "", err
	}
	if err := d.addReference(b, PropTransitionSetNotation, reference); err != nil {
		return "", err
	}
	var value string
	if err := d.scanOne(ctx, b, "transition set notation", set, &value); err != nil {
		return "", err
	}
	return value, nil
}

// TransitionSetEnergyEV returns an aggregate's energy in eV.
func (d *Database) TransitionSetEnergyEV(ctx context.Context, element, set, reference any) (float64, error) {
	return d.transitionSetFloat(ctx, PropTransitionSetEnergy, "value_ev", "transition set energy", element, set, reference)
}

// TransitionSetRelativeWeight returns an aggregate's relative weight.
func (d *Database) TransitionSetRelativeWeight(ctx context.Context, element, set, reference any) (float64, error) {
	return d.transitionSetFloat(ctx, PropTransitionSetRelativeWeight, "value", "transition set relative weight", element, set, reference)
}

func (d *Database) transitionSetFloat(ctx context.Context, property, valueColumn, kind string, element, set, reference any) (float64, error) {
	elementID, err := resolve.AsElement(element)
	if err != nil {
		return 0, err
	}
	setID, err := resolve.AsTransitionSet(set)
	if err != nil {
		return 0, err
	}
	b := query.NewSelectBuilder()
	b.AddSelect(property, valueColumn)
	b.AddFrom(property)
	if err := resolve.Element(b, property, "element_id", elementID); err != nil {
		return 0, err
	}
	if err := resolve.TransitionSet(ctx, d.db, b, property, "xray_transitionset_id", setID); err != nil {
		return 0, err
	}
	if err := d.addReference(b, property, reference); err != nil {
		return 0, err
	}
	var value float64
	if err := d.scanOne(ctx, b, kind, set, &value); err != nil {
		return 0, err
	}
	return value, nil
}

// addReference applies the reference filter for one property lookup,
// falling back to the configured default.
func (d *Database) addReference(b *query.SelectBuilder, property string, reference any) error {
	id, err := d.reference(property, reference)
	if err != nil {
		return err
	}
	return resolve.Reference(b, property, id)
}
