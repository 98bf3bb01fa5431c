package ingest

import (
	"fmt"

	"github.com/xraykit/xraykit/errors"
	"github.com/xraykit/xraykit/phys"
)

// maxPrincipal bounds the built-in enumeration of shells, subshells and
// transitions. Shells above Q carry no tabulated data.
const maxPrincipal = 7

// BuiltinReferenceKey identifies rows seeded by WriteBuiltin.
const BuiltinReferenceKey = "unattributed"

// BuiltinLanguage is the language of the seeded element names.
const BuiltinLanguage = "en"

var (
	shellLetters   = []string{"K", "L", "M", "N", "O", "P", "Q"}
	romanNumerals  = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII", "XIII"}
	orbitalLetters = []string{"s", "p", "d", "f", "g", "h", "i"}
)

var elementSymbols = [phys.MaxAtomicNumber]string{
	"H", "He", "Li", "Be", "B", "C", "N", "O",
	"F", "Ne", "Na", "Mg", "Al", "Si", "P", "S",
	"Cl", "Ar", "K", "Ca", "Sc", "Ti", "V", "Cr",
	"Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge",
	"As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe", "Cs", "Ba",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd",
	"Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu", "Hf",
	"Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm",
	"Bk", "Cf", "Es", "Fm", "Md", "No", "Lr", "Rf",
	"Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn",
	"Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

var elementNames = [phys.MaxAtomicNumber]string{
	"Hydrogen", "Helium", "Lithium", "Beryllium", "Boron", "Carbon", "Nitrogen", "Oxygen",
	"Fluorine", "Neon", "Sodium", "Magnesium", "Aluminium", "Silicon", "Phosphorus", "Sulfur",
	"Chlorine", "Argon", "Potassium", "Calcium", "Scandium", "Titanium", "Vanadium", "Chromium",
	"Manganese", "Iron", "Cobalt", "Nickel", "Copper", "Zinc", "Gallium", "Germanium",
	"Arsenic", "Selenium", "Bromine", "Krypton", "Rubidium", "Strontium", "Yttrium", "Zirconium",
	"Niobium", "Molybdenum", "Technetium", "Ruthenium", "Rhodium", "Palladium", "Silver", "Cadmium",
	"Indium", "Tin", "Antimony", "Tellurium", "Iodine", "Xenon", "Caesium", "Barium",
	"Lanthanum", "Cerium", "Praseodymium", "Neodymium", "Promethium", "Samarium", "Europium", "Gadolinium",
	"Terbium", "Dysprosium", "Holmium", "Erbium", "Thulium", "Ytterbium", "Lutetium", "Hafnium",
	"Tantalum", "Tungsten", "Rhenium", "Osmium", "Iridium", "Platinum", "Gold", "Mercury",
	"Thallium", "Lead", "Bismuth", "Polonium", "Astatine", "Radon", "Francium", "Radium",
	"Actinium", "Thorium", "Protactinium", "Uranium", "Neptunium", "Plutonium", "Americium", "Curium",
	"Berkelium", "Californium", "Einsteinium", "Fermium", "Mendelevium", "Nobelium", "Lawrencium", "Rutherfordium",
	"Dubnium", "Seaborgium", "Bohrium", "Hassium", "Meitnerium", "Darmstadtium", "Roentgenium", "Copernicium",
	"Nihonium", "Flerovium", "Moscovium", "Livermorium", "Tennessine", "Oganesson",
}

// subshellIndex pairs a subshell with its 1-based position inside its
// shell, counting in order of increasing l then increasing j.
type subshellIndex struct {
	subshell phys.AtomicSubshell
	i        int
}

func enumerateSubshells(maxN int) []subshellIndex {
	var out []subshellIndex
	for n := 1; n <= maxN; n++ {
		i := 1
		for l := 0; l < n; l++ {
			jns := []int{2*l - 1, 2*l + 1}
			if l == 0 {
				jns = []int{1}
			}
			for _, jn := range jns {
				sub, err := phys.NewAtomicSubshell(n, l, jn)
				if err != nil {
					panic(err)
				}
				out = append(out, subshellIndex{subshell: sub, i: i})
				i++
			}
		}
	}
	return out
}

type transitionIndex struct {
	transition phys.Transition
	src        subshellIndex
	dst        subshellIndex
}

// enumerateTransitions yields every directional subshell pair where the
// electron falls inward: source shell above destination shell, or the
// same shell with a higher subshell position.
func enumerateTransitions(maxN int) []transitionIndex {
	subshells := enumerateSubshells(maxN)
	var out []transitionIndex
	for _, src := range subshells {
		for _, dst := range subshells {
			if src.subshell.Compare(dst.subshell) == 0 {
				continue
			}
			if src.subshell.N() < dst.subshell.N() {
				continue
			}
			if src.subshell.N() == dst.subshell.N() && src.i <= dst.i {
				continue
			}
			out = append(out, transitionIndex{
				transition: phys.NewTransition(src.subshell, dst.subshell),
				src:        src,
				dst:        dst,
			})
		}
	}
	return out
}

func shellSiegbahn(n int) Renderings {
	return Plain(shellLetters[n-1])
}

func shellIUPAC(n int) Renderings {
	return Plain(shellLetters[n-1])
}

func shellOrbital(n int) Renderings {
	return Plain(fmt.Sprintf("%d", n))
}

func subshellSiegbahn(e subshellIndex) Renderings {
	s := shellLetters[e.subshell.N()-1]
	if e.subshell.N() != 1 { // no "KI"
		s += romanNumerals[e.i-1]
	}
	return Plain(s)
}

func subshellIUPAC(e subshellIndex) Renderings {
	shell := shellLetters[e.subshell.N()-1]
	if e.subshell.N() == 1 { // no "K1"
		return Plain(shell)
	}
	return Renderings{
		ASCII: fmt.Sprintf("%s%d", shell, e.i),
		UTF16: fmt.Sprintf("%s%d", shell, e.i),
		HTML:  fmt.Sprintf("%s<sub>%d</sub>", shell, e.i),
		LaTeX: fmt.Sprintf("%s$_{%d}$", shell, e.i),
	}
}

func subshellOrbital(e subshellIndex) Renderings {
	n := e.subshell.N()
	l := orbitalLetters[e.subshell.L()]
	jn := e.subshell.JNumerator()
	return Renderings{
		ASCII: fmt.Sprintf("%d%s%d/2", n, l, jn),
		UTF16: fmt.Sprintf("%d%s%d/2", n, l, jn),
		HTML:  fmt.Sprintf("%d%s<sub>%d/2</sub>", n, l, jn),
		LaTeX: fmt.Sprintf("%d%s$_{%d/2}$", n, l, jn),
	}
}

// transitionIUPAC names a transition destination-first, joined by a
// hyphen in the ASCII form and an en dash in the wide forms.
func transitionIUPAC(t transitionIndex) Renderings {
	src := subshellIUPAC(t.src)
	dst := subshellIUPAC(t.dst)
	return Renderings{
		ASCII: fmt.Sprintf("%s-%s", dst.ASCII, src.ASCII),
		UTF16: fmt.Sprintf("%s–%s", dst.UTF16, src.UTF16),
		HTML:  fmt.Sprintf("%s&ndash;%s", dst.HTML, src.HTML),
		LaTeX: fmt.Sprintf("%s--%s", dst.LaTeX, src.LaTeX),
	}
}

// WriteBuiltin seeds the reference data every database starts from:
// element symbols and English names, the shell and subshell catalogue
// with Siegbahn, IUPAC and orbital notations, every transition with its
// IUPAC notation, and the series and family transition sets.
func WriteBuiltin(w *Writer) error {
	ref, err := phys.NewReference(BuiltinReferenceKey)
	if err != nil {
		return err
	}
	lang, err := phys.NewLanguage(BuiltinLanguage)
	if err != nil {
		return err
	}

	w.logger.Infow("seeding builtin dataset", "reference", BuiltinReferenceKey)

	for z := 1; z <= phys.MaxAtomicNumber; z++ {
		element, err := phys.NewElement(z)
		if err != nil {
			return err
		}
		if err := w.AddElementSymbol(ref, element, elementSymbols[z-1]); err != nil {
			return errors.Wrapf(err, "symbol for element %d", z)
		}
		if err := w.AddElementName(ref, element, lang, elementNames[z-1]); err != nil {
			return errors.Wrapf(err, "name for element %d", z)
		}
	}

	for n := 1; n <= maxPrincipal; n++ {
		shell, err := phys.NewAtomicShell(n)
		if err != nil {
			return err
		}
		for _, entry := range []struct {
			notation phys.Notation
			r        Renderings
		}{
			{phys.NotationSiegbahn, shellSiegbahn(n)},
			{phys.NotationIUPAC, shellIUPAC(n)},
			{phys.NotationOrbital, shellOrbital(n)},
		} {
			if err := w.AddAtomicShellNotation(ref, shell, entry.notation, entry.r); err != nil {
				return errors.Wrapf(err, "%s notation for shell %d", entry.notation, n)
			}
		}
	}

	subshells := enumerateSubshells(maxPrincipal)
	for _, e := range subshells {
		for _, entry := range []struct {
			notation phys.Notation
			r        Renderings
		}{
			{phys.NotationSiegbahn, subshellSiegbahn(e)},
			{phys.NotationIUPAC, subshellIUPAC(e)},
			{phys.NotationOrbital, subshellOrbital(e)},
		} {
			if err := w.AddAtomicSubshellNotation(ref, e.subshell, entry.notation, entry.r); err != nil {
				return errors.Wrapf(err, "%s notation for subshell %s", entry.notation, e.subshell)
			}
		}
	}

	transitions := enumerateTransitions(maxPrincipal)
	for _, t := range transitions {
		if err := w.AddTransitionNotation(ref, t.transition, phys.NotationIUPAC, transitionIUPAC(t)); err != nil {
			return errors.Wrapf(err, "notation for transition %s", t.transition)
		}
	}
	w.logger.Infow("seeded transitions", "count", len(transitions))

	return writeBuiltinSets(w, ref, transitions)
}

// writeBuiltinSets groups transitions into the conventional aggregates:
// one series per destination shell and one family per destination
// subshell. The K family is omitted, it would duplicate the K series.
func writeBuiltinSets(w *Writer, ref phys.Reference, transitions []transitionIndex) error {
	series := make(map[int][]phys.Transition)
	families := make(map[subshellIndex][]phys.Transition)
	for _, t := range transitions {
		n := t.dst.subshell.N()
		series[n] = append(series[n], t.transition)
		families[t.dst] = append(families[t.dst], t.transition)
	}

	for n := 1; n <= maxPrincipal; n++ {
		members, ok := series[n]
		if !ok {
			continue
		}
		set, err := phys.NewTransitionSet(members)
		if err != nil {
			return err
		}
		if err := w.AddTransitionSetNotation(ref, set, phys.NotationSiegbahn, shellSiegbahn(n)); err != nil {
			return errors.Wrapf(err, "siegbahn notation for series %d", n)
		}
		if err := w.AddTransitionSetNotation(ref, set, phys.NotationIUPAC, shellIUPAC(n)); err != nil {
			return errors.Wrapf(err, "iupac notation for series %d", n)
		}
	}

	for _, e := range enumerateSubshells(maxPrincipal) {
		if e.subshell.N() == 1 {
			continue
		}
		members, ok := families[e]
		if !ok {
			continue
		}
		set, err := phys.NewTransitionSet(members)
		if err != nil {
			return err
		}
		if err := w.AddTransitionSetNotation(ref, set, phys.NotationSiegbahn, subshellSiegbahn(e)); err != nil {
			return errors.Wrapf(err, "siegbahn notation for family %s", e.subshell)
		}
		if err := w.AddTransitionSetNotation(ref, set, phys.NotationIUPAC, subshellIUPAC(e)); err != nil {
			return errors.Wrapf(err, "iupac notation for family %s", e.subshell)
		}
	}
	return nil
}
