//gonci is a command line tool to analyze 3D molecular structures: it
//detects covalent bonds, partitions the structure into fragments and,
//when several files are given, searches each one for non-covalent
//interactions.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gonci"
	"gonci/nci"
	"gonci/nciplot"
)

var (
	flagDebug     bool
	flagClashes   bool
	flagTolerance float64
	flagPlot      string
)

func main() {
	root := &cobra.Command{
		Use:   "gonci file.xyz [file2.xyz ...]",
		Short: "Detect bonds, fragments and non-covalent interactions in molecular structures",
		Long: `gonci reads XYZ structure files (optionally gzip/zstd compressed),
derives the covalent bond graph from covalent radii, partitions each
structure into fragments, and prints a structural summary. When more
than one file is given, each structure is additionally searched for
non-covalent interactions (hydrogen bonds, halogen and chalcogen
bonds, and, with --clashes, steric clashes).`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
	root.Flags().BoolVar(&flagDebug, "debug", false, "trace every bond and interaction decision")
	root.Flags().BoolVar(&flagClashes, "clashes", false, "also report steric clashes")
	root.Flags().Float64Var(&flagTolerance, "tolerance", gonci.DefaultBondTolerance, "bond detection tolerance in Angstroms")
	root.Flags().StringVar(&flagPlot, "plot", "", "write a distance/angle scatter plot of the interactions to this file")
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	var logger *zap.Logger
	var err error
	if flagDebug {
		logger, err = zap.NewDevelopment()
	} else {
		logger = zap.NewNop()
	}
	if err != nil {
		return err
	}
	defer logger.Sync()

	table := gonci.DefaultPeriodicTable()
	withNCIs := len(args) > 1
	for _, file := range args {
		fmt.Printf("\n=== Processing %s ===\n", file)
		if err := process(file, table, logger, withNCIs); err != nil {
			return err
		}
	}
	return nil
}

func process(file string, table *gonci.PeriodicTable, logger *zap.Logger, withNCIs bool) error {
	mol, err := gonci.XYZRead(file)
	if err != nil {
		return err
	}
	if err := mol.DetectBonds(table, flagTolerance); err != nil {
		return err
	}
	if err := mol.FindFragments(); err != nil {
		return err
	}
	summary(mol)
	if !withNCIs {
		return nil
	}
	engine := nci.NewEngine(mol, table, nci.WithLogger(logger))
	if err := engine.DetectAll(flagClashes, flagDebug); err != nil {
		return err
	}
	recs := engine.List(nci.Filter{})
	if len(recs) == 0 {
		fmt.Println("\nNo non-covalent interactions found.")
		return nil
	}
	fmt.Println("\n--- Non-Covalent Interactions Detected ---")
	printTable(mol, recs)
	if flagPlot != "" {
		if err := nciplot.Scatter(recs, mol.Title, flagPlot); err != nil {
			return err
		}
		fmt.Printf("\nPlot written to %s\n", flagPlot)
	}
	return nil
}

func summary(mol *gonci.Molecule) {
	fmt.Println("\n--- Molecule Summary ---")
	fmt.Printf("Title: %s\n", mol.Title)
	fmt.Printf("Number of atoms: %d\n", mol.Len())
	if nbonds, err := mol.BondCount(); err == nil {
		fmt.Printf("Number of bonds: %d\n", nbonds)
	}
	frags, err := mol.Fragments()
	if err != nil {
		fmt.Println("Fragments not yet determined.")
		return
	}
	fmt.Printf("Number of fragments: %d\n", len(frags))
}

//atomLabel names an atom the way chemists read structures: element
//symbol plus 1-based index.
func atomLabel(mol *gonci.Molecule, i int) string {
	return fmt.Sprintf("%s%d", mol.Atom(i).Symbol, i+1)
}

func printTable(mol *gonci.Molecule, recs []*nci.Record) {
	fmt.Printf("%-14s %-10s %8s %9s %-15s %-12s %6s\n",
		"Type", "Pair", "Dist(A)", "Angle", "AngleAtoms", "Fragments", "Scope")
	fmt.Println(strings.Repeat("-", 80))
	for _, r := range recs {
		pair := atomLabel(mol, r.I) + "-" + atomLabel(mol, r.J)
		angle := "N/A"
		angleAtoms := "N/A"
		if r.HasAngle {
			angle = fmt.Sprintf("%.1f", r.Angle)
			angleAtoms = fmt.Sprintf("%s-%s-%s",
				atomLabel(mol, r.AngleAtoms[0]),
				atomLabel(mol, r.AngleAtoms[1]),
				atomLabel(mol, r.AngleAtoms[2]))
		}
		fmt.Printf("%-14s %-10s %8.2f %9s %-15s %-12s %6s\n",
			string(r.Kind), pair, r.Distance, angle, angleAtoms,
			fragmentsLabel(r), r.Scope.String())
	}
}

//fragmentsLabel renders the fragment provenance of a record: "Frag1"
//for intra-fragment records, "Frag1->Frag2" from donor to acceptor for
//inter-fragment ones.
func fragmentsLabel(r *nci.Record) string {
	if r.Scope == nci.ScopeIntra {
		return fmt.Sprintf("Frag%d", r.FragI)
	}
	donor, acceptor := r.FragI, r.FragJ
	if r.HasAngle {
		//the middle angle atom sits on the donor side for sigma-hole
		//bonds, the first one for hydrogen bonds; either way the last
		//angle atom is the acceptor
		if r.AngleAtoms[2] == r.I {
			donor, acceptor = r.FragJ, r.FragI
		}
	}
	return fmt.Sprintf("Frag%d->Frag%d", donor, acceptor)
}
