package nci

//Criteria for sigma-hole interactions R-X···Y, where X is a halogen or
//chalcogen donor and Y an electron-rich acceptor. The contact must be
//shorter than a fraction of the summed van der Waals radii, and some
//covalent neighbor R of X must put Y roughly opposite the R-X bond,
//where the sigma hole sits. Chalcogen holes are shallower, hence the
//stricter angle.
const (
	DefaultSigmaHoleVdwScale = 0.9
	DefaultHalogenMinAngle   = 120.0 //degrees
	DefaultChalcogenMinAngle = 130.0 //degrees
)

//SigmaHoleDetector finds halogen and chalcogen bonds in a single scan.
type SigmaHoleDetector struct {
	//HalogenDonors and ChalcogenDonors are the element symbols treated
	//as sigma-hole donors of each family.
	HalogenDonors   []string
	ChalcogenDonors []string
	//Acceptors are the element symbols allowed at the Y end.
	Acceptors []string
	//VdwScale is the fraction of the summed van der Waals radii the
	//X···Y distance must stay under.
	VdwScale float64
	//HalogenMinAngle and ChalcogenMinAngle are the R-X···Y thresholds,
	//in degrees.
	HalogenMinAngle   float64
	ChalcogenMinAngle float64
}

//NewSigmaHoleDetector returns a sigma-hole detector with the
//conventional donor and acceptor sets and default criteria.
func NewSigmaHoleDetector() *SigmaHoleDetector {
	return &SigmaHoleDetector{
		HalogenDonors:     []string{"Cl", "Br", "I"},
		ChalcogenDonors:   []string{"S", "Se", "Te"},
		Acceptors:         []string{"N", "O", "F", "S", "Cl", "Br", "I"},
		VdwScale:          DefaultSigmaHoleVdwScale,
		HalogenMinAngle:   DefaultHalogenMinAngle,
		ChalcogenMinAngle: DefaultChalcogenMinAngle,
	}
}

func (D *SigmaHoleDetector) Name() string { return "sigma-hole-bonds" }

func (D *SigmaHoleDetector) Steric() bool { return false }

//Detect runs the halogen search and then the chalcogen one. For each
//donor-acceptor contact inside the distance cutoff, the covalent
//neighbors of the donor are tried in index order and the first one
//forming a large enough R-X···Y angle defines the interaction.
func (D *SigmaHoleDetector) Detect(ctx *Context) error {
	if err := D.scan(ctx, D.HalogenDonors, D.HalogenMinAngle, HalogenBond); err != nil {
		return err
	}
	return D.scan(ctx, D.ChalcogenDonors, D.ChalcogenMinAngle, ChalcogenBond)
}

func (D *SigmaHoleDetector) scan(ctx *Context, donors []string, minAngle float64, kind Kind) error {
	mol := ctx.Mol
	n := mol.Len()
	for x := 0; x < n; x++ {
		if !inSet(donors, mol.Atom(x).Symbol) {
			continue
		}
		vdwX, err := ctx.Table.VdwRadius(mol.Atom(x).Symbol)
		if err != nil {
			return err
		}
		nbr, err := mol.Neighbors(x)
		if err != nil {
			return err
		}
		for y := 0; y < n; y++ {
			if y == x || !inSet(D.Acceptors, mol.Atom(y).Symbol) {
				continue
			}
			bonded, err := mol.Bonded(x, y)
			if err != nil {
				return err
			}
			if bonded {
				continue
			}
			vdwY, err := ctx.Table.VdwRadius(mol.Atom(y).Symbol)
			if err != nil {
				return err
			}
			dist, err := mol.Distance(x, y)
			if err != nil {
				ctx.Tracef("%d···%d: skipped, %v", x, y, err)
				continue
			}
			if dist >= D.VdwScale*(vdwX+vdwY) {
				continue
			}
			for _, r := range nbr {
				if r == y {
					continue
				}
				ang, err := mol.Angle(r, x, y)
				if err != nil {
					ctx.Tracef("%d-%d···%d: skipped, %v", r, x, y, err)
					continue
				}
				if ang <= minAngle {
					ctx.Tracef("%d-%d···%d: angle %.1f below %.1f", r, x, y, ang, minAngle)
					continue
				}
				err = ctx.Emit(Record{
					I:          x,
					J:          y,
					Kind:       kind,
					Distance:   dist,
					Angle:      ang,
					AngleAtoms: [3]int{r, x, y},
					HasAngle:   true,
				})
				if err != nil {
					return err
				}
				break
			}
		}
	}
	return nil
}
