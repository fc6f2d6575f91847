package nci

import "sort"

//Detector is one non-covalent interaction search. Implementations scan
//the molecule through the Context and call Emit for every interaction
//found. A detector returns an error only for conditions that make the
//whole search meaningless (an element missing from the periodic table,
//for instance); geometrically degenerate atom pairs are skipped, not
//failed on.
type Detector interface {
	//Name identifies the detector in record provenance and trace
	//output.
	Name() string
	//Steric marks detectors that report steric clashes. They only run
	//when the caller asks for clashes explicitly.
	Steric() bool
	Detect(ctx *Context) error
}

type entry struct {
	priority int
	seq      int
	det      Detector
}

//Registry holds the detectors to run, each with a priority. Lower
//priority runs first. Detectors with equal priority run in registration
//order. A Registry is an explicit object, passed to the Engine, so two
//engines can run different detector sets in the same process.
type Registry struct {
	entries []entry
	nextSeq int
}

//NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

//Register adds a detector with the given priority.
func (R *Registry) Register(d Detector, priority int) {
	R.entries = append(R.entries, entry{priority: priority, seq: R.nextSeq, det: d})
	R.nextSeq++
}

//Len returns the number of registered detectors.
func (R *Registry) Len() int {
	return len(R.entries)
}

//ordered returns the entries sorted by ascending priority, ties broken
//by registration order.
func (R *Registry) ordered() []entry {
	out := make([]entry, len(R.entries))
	copy(out, R.entries)
	sort.SliceStable(out, func(a, b int) bool { return out[a].priority < out[b].priority })
	return out
}

//Default priorities of the built-in detectors. Hydrogen bonds run
//first so later detectors can avoid double-reporting pairs already
//explained by a stronger interaction.
const (
	PriorityHBond     = 0
	PrioritySigmaHole = 1
	PrioritySteric    = 999
)

//DefaultRegistry returns a registry with the built-in detectors at
//their default priorities: hydrogen bonds, then sigma-hole bonds, then
//steric clashes.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewHBondDetector(), PriorityHBond)
	r.Register(NewSigmaHoleDetector(), PrioritySigmaHole)
	r.Register(NewStericDetector(), PrioritySteric)
	return r
}
