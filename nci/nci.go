/*Package nci searches a molecule for non-covalent interactions. The
search is organized as a set of detectors, each specialized in one
interaction type (hydrogen bonds, sigma-hole bonds, steric clashes),
run in priority order by an Engine over a molecule whose covalent bonds
and fragments have already been computed. Found interactions are
accumulated in a Store, keyed by the pair of atoms involved, and can be
queried by interaction kind, scope (within one fragment or between
fragments) and fragment membership.*/
package nci

import "fmt"

//Kind labels the type of a non-covalent interaction.
type Kind string

const (
	HydrogenBond  Kind = "hydrogen_bond"
	HalogenBond   Kind = "halogen_bond"
	ChalcogenBond Kind = "chalcogen_bond"
	StericClash   Kind = "steric_clash"
	//Custom marks records emitted by user-supplied detectors that do
	//not fit the built-in kinds.
	Custom Kind = "custom"
)

//Scope tells whether an interaction joins atoms of the same fragment
//or of different ones.
type Scope int

const (
	//ScopeAny matches every scope when used in a Filter.
	ScopeAny Scope = iota
	ScopeIntra
	ScopeInter
)

func (s Scope) String() string {
	switch s {
	case ScopeIntra:
		return "intra"
	case ScopeInter:
		return "inter"
	}
	return "any"
}

//Record is one found non-covalent interaction between atoms I and J.
//I is always the lower atom index. FragI and FragJ are the fragments
//containing I and J respectively. Records emitted by detectors carry
//only the fields the detector measured; Emit fills in the provenance
//(Detector, Scope, FragI, FragJ) and canonicalizes the pair.
type Record struct {
	I, J     int
	Kind     Kind
	Detector string
	Scope    Scope
	FragI    int
	FragJ    int
	//Distance between I and J, in Angstroms.
	Distance float64
	//Angle is the directional angle of the interaction, in degrees,
	//meaningful only when HasAngle is set. AngleAtoms holds the three
	//atoms defining it, in order.
	Angle      float64
	AngleAtoms [3]int
	HasAngle   bool
	//Custom carries detector-specific numeric results, for detectors
	//whose geometry does not fit the fixed fields. Nil for the
	//built-in detectors.
	Custom map[string]float64
}

func (r *Record) String() string {
	s := fmt.Sprintf("%s %d-%d d=%.3f", r.Kind, r.I, r.J, r.Distance)
	if r.HasAngle {
		s += fmt.Sprintf(" ang=%.1f", r.Angle)
	}
	return s + " " + r.Scope.String()
}
