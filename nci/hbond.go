package nci

//Geometric criteria for a hydrogen bond D-H···A: the hydrogen must be
//covalently bonded to a donor element, the acceptor must not be bonded
//to the hydrogen, the H···A distance must be short enough and the
//D-H···A angle close enough to linear.
const (
	DefaultHBondMaxDistance = 2.5   //H···acceptor, Angstroms
	DefaultHBondMinAngle    = 160.0 //donor-H···acceptor, degrees
)

//HBondDetector finds hydrogen bonds. The zero value is not usable, get
//one from NewHBondDetector and adjust the fields before the first run
//if non-default criteria are wanted.
type HBondDetector struct {
	//MaxDistance is the H···acceptor cutoff, in Angstroms.
	MaxDistance float64
	//MinAngle is the donor-H···acceptor threshold, in degrees.
	MinAngle float64
	//Donors and Acceptors are the element symbols allowed at each end.
	Donors    []string
	Acceptors []string
}

//NewHBondDetector returns a hydrogen bond detector with the
//conventional N/O/F donor and acceptor sets and default geometric
//criteria.
func NewHBondDetector() *HBondDetector {
	return &HBondDetector{
		MaxDistance: DefaultHBondMaxDistance,
		MinAngle:    DefaultHBondMinAngle,
		Donors:      []string{"N", "O", "F"},
		Acceptors:   []string{"N", "O", "F"},
	}
}

func (D *HBondDetector) Name() string { return "hydrogen-bonds" }

func (D *HBondDetector) Steric() bool { return false }

//Detect scans every hydrogen bonded to a donor element and looks for
//acceptors within the distance and angle criteria. One hydrogen can
//donate to several acceptors.
func (D *HBondDetector) Detect(ctx *Context) error {
	mol := ctx.Mol
	n := mol.Len()
	for h := 0; h < n; h++ {
		if mol.Atom(h).Symbol != "H" {
			continue
		}
		nbr, err := mol.Neighbors(h)
		if err != nil {
			return err
		}
		donor := -1
		for _, d := range nbr {
			if inSet(D.Donors, mol.Atom(d).Symbol) {
				donor = d
				break
			}
		}
		if donor < 0 {
			continue
		}
		for a := 0; a < n; a++ {
			if a == h || a == donor || !inSet(D.Acceptors, mol.Atom(a).Symbol) {
				continue
			}
			bonded, err := mol.Bonded(h, a)
			if err != nil {
				return err
			}
			if bonded {
				continue
			}
			dist, err := mol.Distance(h, a)
			if err != nil {
				ctx.Tracef("H%d···%d: skipped, %v", h, a, err)
				continue
			}
			if dist > D.MaxDistance {
				continue
			}
			ang, err := mol.Angle(donor, h, a)
			if err != nil {
				ctx.Tracef("%d-H%d···%d: skipped, %v", donor, h, a, err)
				continue
			}
			if ang < D.MinAngle {
				ctx.Tracef("%d-H%d···%d: angle %.1f below %.1f", donor, h, a, ang, D.MinAngle)
				continue
			}
			err = ctx.Emit(Record{
				I:          h,
				J:          a,
				Kind:       HydrogenBond,
				Distance:   dist,
				Angle:      ang,
				AngleAtoms: [3]int{donor, h, a},
				HasAngle:   true,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func inSet(set []string, symbol string) bool {
	for _, s := range set {
		if s == symbol {
			return true
		}
	}
	return false
}
