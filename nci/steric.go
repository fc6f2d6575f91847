package nci

//DefaultStericTolerance is how far, in Angstroms, two atoms may sink
//into each other's van der Waals radii before being reported as a
//clash.
const DefaultStericTolerance = 0.4

//StericDetector reports pairs of non-bonded atoms closer than the sum
//of their van der Waals radii minus a tolerance. Pairs sharing a
//covalently bonded neighbor are skipped: their proximity is forced by
//the covalent geometry, not a contact worth reporting. Pairs already
//explained by an attractive interaction found earlier in the run are
//skipped too.
type StericDetector struct {
	//Tolerance in Angstroms.
	Tolerance float64
	//OnlyHydrogens restricts the scan to H-H contacts, much cheaper
	//and usually what close-contact analysis is after.
	OnlyHydrogens bool
}

//NewStericDetector returns a steric clash detector with the default
//tolerance, restricted to hydrogen pairs.
func NewStericDetector() *StericDetector {
	return &StericDetector{
		Tolerance:     DefaultStericTolerance,
		OnlyHydrogens: true,
	}
}

func (D *StericDetector) Name() string { return "steric-clashes" }

func (D *StericDetector) Steric() bool { return true }

func (D *StericDetector) Detect(ctx *Context) error {
	mol := ctx.Mol
	n := mol.Len()
	for i := 0; i < n; i++ {
		if D.OnlyHydrogens && mol.Atom(i).Symbol != "H" {
			continue
		}
		vdwI, err := ctx.Table.VdwRadius(mol.Atom(i).Symbol)
		if err != nil {
			return err
		}
		nbrI, err := mol.Neighbors(i)
		if err != nil {
			return err
		}
		for j := i + 1; j < n; j++ {
			if D.OnlyHydrogens && mol.Atom(j).Symbol != "H" {
				continue
			}
			bonded, err := mol.Bonded(i, j)
			if err != nil {
				return err
			}
			if bonded {
				continue
			}
			shared, err := shareNeighbor(ctx, nbrI, j)
			if err != nil {
				return err
			}
			if shared {
				continue
			}
			vdwJ, err := ctx.Table.VdwRadius(mol.Atom(j).Symbol)
			if err != nil {
				return err
			}
			dist, err := mol.Distance(i, j)
			if err != nil {
				ctx.Tracef("%d···%d: skipped, %v", i, j, err)
				continue
			}
			if dist >= vdwI+vdwJ-D.Tolerance {
				continue
			}
			if attractive(ctx.Existing(i, j)) {
				ctx.Tracef("%d···%d: already explained by an attractive interaction", i, j)
				continue
			}
			if err := ctx.Emit(Record{I: i, J: j, Kind: StericClash, Distance: dist}); err != nil {
				return err
			}
		}
	}
	return nil
}

//shareNeighbor reports whether atom j is bonded to any atom in nbrI.
func shareNeighbor(ctx *Context, nbrI []int, j int) (bool, error) {
	for _, k := range nbrI {
		bonded, err := ctx.Mol.Bonded(k, j)
		if err != nil {
			return false, err
		}
		if bonded {
			return true, nil
		}
	}
	return false, nil
}

//attractive reports whether any of the records marks an attractive
//interaction (hydrogen, halogen or chalcogen bond).
func attractive(recs []*Record) bool {
	for _, r := range recs {
		switch r.Kind {
		case HydrogenBond, HalogenBond, ChalcogenBond:
			return true
		}
	}
	return false
}
