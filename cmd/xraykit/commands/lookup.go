package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xraykit/xraykit/errors"
	"github.com/xraykit/xraykit/logger"
	"github.com/xraykit/xraykit/store"
)

// LookupCmd represents the lookup command
var LookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look up reference data",
	Long: `lookup — Query elements, subshells, transitions, and transition sets

Identifiers are flexible: atomic numbers, symbols, names, notation labels,
or comma-separated quantum numbers.

Examples:
  xraykit lookup element Fe
  xraykit lookup element 26
  xraykit lookup subshell L3
  xraykit lookup subshell 2,1,3
  xraykit lookup transition K-L3 --element Fe
  xraykit lookup set Ka --element Fe`,
}

var (
	lookupElementFlag   string
	lookupReferenceFlag string
	lookupNotationFlag  string
)

var lookupElementCmd = &cobra.Command{
	Use:   "element <identifier>",
	Short: "Look up an element by number, symbol, or name",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookupElement,
}

var lookupSubshellCmd = &cobra.Command{
	Use:   "subshell <identifier>",
	Short: "Look up an atomic subshell by label or n,l,j quantum numbers",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookupSubshell,
}

var lookupTransitionCmd = &cobra.Command{
	Use:   "transition <identifier>",
	Short: "Look up a transition by notation label",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookupTransition,
}

var lookupSetCmd = &cobra.Command{
	Use:   "set <identifier>",
	Short: "Look up a transition set by notation label",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookupSet,
}

func init() {
	LookupCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "Database path (defaults to configuration)")
	LookupCmd.PersistentFlags().StringVar(&lookupElementFlag, "element", "", "Element scope for property lookups")
	LookupCmd.PersistentFlags().StringVar(&lookupReferenceFlag, "reference", "", "Bibliographic reference key")
	LookupCmd.PersistentFlags().StringVar(&lookupNotationFlag, "notation", "iupac", "Naming system: iupac, siegbahn, orbital")

	LookupCmd.AddCommand(lookupElementCmd)
	LookupCmd.AddCommand(lookupSubshellCmd)
	LookupCmd.AddCommand(lookupTransitionCmd)
	LookupCmd.AddCommand(lookupSetCmd)
}

// identifier widens a CLI argument: a decimal string becomes an int, a
// comma-separated triple becomes [3]int, anything else stays a string.
func identifier(arg string) any {
	if z, err := strconv.Atoi(arg); err == nil {
		return z
	}
	parts := strings.Split(arg, ",")
	if len(parts) == 3 {
		var triple [3]int
		ok := true
		for i, part := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				ok = false
				break
			}
			triple[i] = n
		}
		if ok {
			return triple
		}
	}
	return arg
}

// reference returns the lookup reference argument: nil when the flag is
// unset, so per-property defaults apply.
func reference() any {
	if lookupReferenceFlag == "" {
		return nil
	}
	return lookupReferenceFlag
}

func openStore() (*store.Database, func(), error) {
	database, err := openDatabase(dbPathFlag)
	if err != nil {
		return nil, nil, err
	}
	return store.New(database, logger.Logger), func() { database.Close() }, nil
}

func runLookupElement(cmd *cobra.Command, args []string) error {
	d, closeDB, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB()

	ctx := cmd.Context()
	id := identifier(args[0])

	z, err := d.ElementAtomicNumber(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("Atomic number: %d\n", z)

	if symbol, err := d.ElementSymbol(ctx, id, reference()); err == nil {
		fmt.Printf("Symbol:        %s\n", symbol)
	}
	if name, err := d.ElementName(ctx, id, "en", reference()); err == nil {
		fmt.Printf("Name:          %s\n", name)
	}
	if weight, err := d.ElementAtomicWeight(ctx, id, reference()); err == nil {
		fmt.Printf("Atomic weight: %g\n", weight)
	}
	if density, err := d.ElementMassDensityKgPerM3(ctx, id, reference()); err == nil {
		fmt.Printf("Mass density:  %g kg/m3\n", density)
	}
	return nil
}

func runLookupSubshell(cmd *cobra.Command, args []string) error {
	d, closeDB, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB()

	ctx := cmd.Context()
	id := identifier(args[0])

	for _, notation := range []string{"iupac", "siegbahn", "orbital"} {
		label, err := d.AtomicSubshellNotation(ctx, id, notation, store.EncodingASCII, reference())
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return err
		}
		fmt.Printf("%-9s %s\n", notation+":", label)
	}

	if lookupElementFlag == "" {
		return nil
	}
	element := identifier(lookupElementFlag)
	if energy, err := d.AtomicSubshellBindingEnergyEV(ctx, element, id, reference()); err == nil {
		fmt.Printf("Binding energy: %g eV\n", energy)
	}
	if occupancy, err := d.AtomicSubshellOccupancy(ctx, element, id, reference()); err == nil {
		fmt.Printf("Occupancy:      %d\n", occupancy)
	}
	return nil
}

func runLookupTransition(cmd *cobra.Command, args []string) error {
	d, closeDB, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB()

	ctx := cmd.Context()
	id := args[0]

	label, err := d.TransitionNotation(ctx, id, lookupNotationFlag, store.EncodingUTF16, reference())
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", lookupNotationFlag, label)

	if lookupElementFlag == "" {
		return nil
	}
	element := identifier(lookupElementFlag)
	if energy, err := d.TransitionEnergyEV(ctx, element, id, reference()); err == nil {
		fmt.Printf("Energy:      %g eV\n", energy)
	}
	if probability, err := d.TransitionProbability(ctx, element, id, reference()); err == nil {
		fmt.Printf("Probability: %g\n", probability)
	}
	return nil
}

func runLookupSet(cmd *cobra.Command, args []string) error {
	d, closeDB, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB()

	ctx := cmd.Context()
	id := args[0]

	label, err := d.TransitionSetNotation(ctx, id, lookupNotationFlag, store.EncodingUTF16, reference())
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", lookupNotationFlag, label)

	if lookupElementFlag == "" {
		return nil
	}
	element := identifier(lookupElementFlag)
	if energy, err := d.TransitionSetEnergyEV(ctx, element, id, reference()); err == nil {
		fmt.Printf("Energy: %g eV\n", energy)
	}
	return nil
}
