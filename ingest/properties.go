package ingest

import (
	"github.com/xraykit/xraykit/errors"
	"github.com/xraykit/xraykit/phys"
)

func (w *Writer) insert(stmt string, args ...any) error {
	if _, err := w.db.Exec(stmt, args...); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// AddElementSymbol records an element's chemical symbol.
func (w *Writer) AddElementSymbol(ref phys.Reference, element phys.Element, symbol string) error {
	refID, err := w.AddReference(ref)
	if err != nil {
		return err
	}
	elementID, err := w.AddElement(element)
	if err != nil {
		return err
	}
	return w.insert(
		"INSERT INTO element_symbol (element_id, reference_id, symbol) VALUES (?, ?, ?)",
		elementID, refID, symbol)
}

// AddElementName records an element's name in one language.
func (w *Writer) AddElementName(ref phys.Reference, element phys.Element, lang phys.Language, name string) error {
	refID, err := w.AddReference(ref)
	if err != nil {
		return err
	}
	elementID, err := w.AddElement(element)
	if err != nil {
		return err
	}
	languageID, err := w.AddLanguage(lang)
	if err != nil {
		return err
	}
	return w.insert(
		"INSERT INTO element_name (element_id, language_id, reference_id, name) VALUES (?, ?, ?, ?)",
		elementID, languageID, refID, name)
}

// AddAtomicShellNotation records a shell's label in one naming system.
func (w *Writer) AddAtomicShellNotation(ref phys.Reference, shell phys.AtomicShell, notation phys.Notation, r Renderings) error {
	refID, err := w.AddReference(ref)
	if err != nil {
		return err
	}
	shellID, err := w.AddAtomicShell(shell)
	if err != nil {
		return err
	}
	notationID, err := w.AddNotation(notation)
	if err != nil {
		return err
	}
	return w.insert(
		`INSERT INTO atomic_shell_notation (atomic_shell_id, notation_id, reference_id, ascii, utf16, latex, html)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		shellID, notationID, refID, r.ASCII, r.UTF16, r.LaTeX, r.HTML)
}

// AddAtomicSubshellNotation records a subshell's label in one naming
// system.
func (w *Writer) AddAtomicSubshellNotation(ref phys.Reference, subshell phys.AtomicSubshell, notation phys.Notation, r Renderings) error {
	refID, err := w.AddReference(ref)
	if err != nil {
		return err
	}
	subshellID, err := w.AddAtomicSubshell(subshell)
	if err != nil {
		return err
	}
	notationID, err := w.AddNotation(notation)
	if err != nil {
		return err
	}
	return w.insert(
		`INSERT INTO atomic_subshell_notation (atomic_subshell_id, notation_id, reference_id, ascii, utf16, latex, html)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		subshellID, notationID, refID, r.ASCII, r.UTF16, r.LaTeX, r.HTML)
}

// AddTransitionNotation records a transition's label in one naming
// system.
func (w *Writer) AddTransitionNotation(ref phys.Reference, transition phys.Transition, notation phys.Notation, r Renderings) error {
	refID, err := w.AddReference(ref)
	if err != nil {
		return err
	}
	transitionID, err := w.AddTransition(transition)
	if err != nil {
		return err
	}
	notationID, err := w.AddNotation(notation)
	if err != nil {
		return err
	}
	return w.insert(
		`INSERT INTO xray_transition_notation (xray_transition_id, notation_id, reference_id, ascii, utf16, latex, html)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		transitionID, notationID, refID, r.ASCII, r.UTF16, r.LaTeX, r.HTML)
}

// AddTransitionSetNotation records an aggregate's label in one naming
// system.
func (w *Writer) AddTransitionSetNotation(ref phys.Reference, set phys.TransitionSet, notation phys.Notation, r Renderings) error {
	refID, err := w.AddReference(ref)
	if err != nil {
		return err
	}
	setID, err := w.AddTransitionSet(set)
	if err != nil {
		return err
	}
	notationID, err := w.AddNotation(notation)
	if err != nil {
		return err
	}
	return w.insert(
		`INSERT INTO xray_transitionset_notation (xray_transitionset_id, notation_id, reference_id, ascii, utf16, latex, html)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		setID, notationID, refID, r.ASCII, r.UTF16, r.LaTeX, r.HTML)
}

// AddElementAtomicWeight records an element's atomic weight.
func (w *Writer) AddElementAtomicWeight(ref phys.Reference, element phys.Element, value float64) error {
	refID, err := w.AddReference(ref)
	if err != nil {
		return err
	}
	elementID, err := w.AddElement(element)
	if err != nil {
		return err
	}
	return w.insert(
		"INSERT INTO element_atomic_weight (element_id, reference_id, value) VALUES (?, ?, ?)",
		elementID, refID, value)
}

// AddElementMassDensity records an element's mass density in kg/m^3.
func (w *Writer) AddElementMassDensity(ref phys.Reference, element phys.Element, valueKgPerM3 float64) error {
	refID, err := w.AddReference(ref)
	if err != nil {
		return err
	}
	elementID, err := w.AddElement(element)
	if err != nil {
		return err
	}
	return w.insert(
		"INSERT INTO element_mass_density (element_id, reference_id, value_kg_per_m3) VALUES (?, ?, ?)",
		elementID, refID, valueKgPerM3)
}

func (w *Writer) addSubshellProperty(table, column string, ref phys.Reference, element phys.Element, subshell phys.AtomicSubshell, value any) error {
	refID, err := w.AddReference(ref)
	if err != nil {
		return err
	}
	elementID, err := w.AddElement(element)
	if err != nil {
		return err
	}
	subshellID, err := w.AddAtomicSubshell(subshell)
	if err != nil {
		return err
	}
	return w.insert(
		"INSERT INTO "+table+" (element_id, atomic_subshell_id, reference_id, "+column+") VALUES (?, ?, ?, ?)",
		elementID, subshellID, refID, value)
}

// AddSubshellBindingEnergy records a subshell binding energy in eV.
func (w *Writer) AddSubshellBindingEnergy(ref phys.Reference, element phys.Element, subshell phys.AtomicSubshell, valueEV float64) error {
	return w.addSubshellProperty("atomic_subshell_binding_energy", "value_ev", ref, element, subshell, valueEV)
}

// AddSubshellRadiativeWidth records a subshell radiative width in eV.
func (w *Writer) AddSubshellRadiativeWidth(ref phys.Reference, element phys.Element, subshell phys.AtomicSubshell, valueEV float64) error {
	return w.addSubshellProperty("atomic_subshell_radiative_width", "value_ev", ref, element, subshell, valueEV)
}

// AddSubshellNonradiativeWidth records a subshell non-radiative width in
// eV.
func (w *Writer) AddSubshellNonradiativeWidth(ref phys.Reference, element phys.Element, subshell phys.AtomicSubshell, valueEV float64) error {
	return w.addSubshellProperty("atomic_subshell_nonradiative_width", "value_ev", ref, element, subshell, valueEV)
}

// AddSubshellOccupancy records a subshell electron occupancy.
func (w *Writer) AddSubshellOccupancy(ref phys.Reference, element phys.Element, subshell phys.AtomicSubshell, value int) error {
	return w.addSubshellProperty("atomic_subshell_occupancy", "value", ref, element, subshell, value)
}

func (w *Writer) addTransitionProperty(table, column string, ref phys.Reference, element phys.Element, transition phys.Transition, value float64) error {
	refID, err := w.AddReference(ref)
	if err != nil {
		return err
	}
	elementID, err := w.AddElement(element)
	if err != nil {
		return err
	}
	transitionID, err := w.AddTransition(transition)
	if err != nil {
		return err
	}
	return w.insert(
		"INSERT INTO "+table+" (element_id, xray_transition_id, reference_id, "+column+") VALUES (?, ?, ?, ?)",
		elementID, transitionID, refID, value)
}

// AddTransitionEnergy records a transition energy in eV.
func (w *Writer) AddTransitionEnergy(ref phys.Reference, element phys.Element, transition phys.Transition, valueEV float64) error {
	return w.addTransitionProperty("xray_transition_energy", "value_ev", ref, element, transition, valueEV)
}

// AddTransitionProbability records a transition probability.
func (w *Writer) AddTransitionProbability(ref phys.Reference, element phys.Element, transition phys.Transition, value float64) error {
	return w.addTransitionProperty("xray_transition_probability", "value", ref, element, transition, value)
}

// AddTransitionRelativeWeight records a transition's relative weight
// within its line family.
func (w *Writer) AddTransitionRelativeWeight(ref phys.Reference, element phys.Element, transition phys.Transition, value float64) error {
	return w.addTransitionProperty("xray_transition_relative_weight", "value", ref, element, transition, value)
}

func (w *Writer) addTransitionSetProperty(table, column string, ref phys.Reference, element phys.Element, set phys.TransitionSet, value float64) error {
	refID, err := w.AddReference(ref)
	if err != nil {
		return err
	}
	elementID, err := w.AddElement(element)
	if err != nil {
		return err
	}
	setID, err := w.AddTransitionSet(set)
	if err != nil {
		return err
	}
	return w.insert(
		"INSERT INTO "+table+" (element_id, xray_transitionset_id, reference_id, "+column+") VALUES (?, ?, ?, ?)",
		elementID, setID, refID, value)
}

// AddTransitionSetEnergy records an aggregate's energy in eV.
func (w *Writer) AddTransitionSetEnergy(ref phys.Reference, element phys.Element, set phys.TransitionSet, valueEV float64) error {
	return w.addTransitionSetProperty("xray_transitionset_energy", "value_ev", ref, element, set, valueEV)
}

// AddTransitionSetRelativeWeight records an aggregate's relative weight.
func (w *Writer) AddTransitionSetRelativeWeight(ref phys.Reference, element phys.Element, set phys.TransitionSet, value float64) error {
	return w.addTransitionSetProperty("xray_transitionset_relative_weight", "value", ref, element, set, value)
}
