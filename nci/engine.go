package nci

import (
	"go.uber.org/zap"

	"gonci"
)

//Context is the view of the analysis a detector works through. It
//wraps the molecule and periodic table, collects emitted records, and
//carries the trace logger.
type Context struct {
	Mol   *gonci.Molecule
	Table *gonci.PeriodicTable

	detector string
	store    *Store
	log      *zap.SugaredLogger
}

//Emit adds a record found by the current detector to the store. The
//atom pair is canonicalized so that I < J, and the record is stamped
//with the detector name, the fragments of both atoms, and the scope
//(intra- or inter-fragment). The angle atoms, if any, are kept in the
//order the detector measured them.
func (c *Context) Emit(r Record) error {
	if r.I > r.J {
		r.I, r.J = r.J, r.I
	}
	fi, err := c.Mol.FragmentOf(r.I)
	if err != nil {
		return err
	}
	fj, err := c.Mol.FragmentOf(r.J)
	if err != nil {
		return err
	}
	r.FragI = fi
	r.FragJ = fj
	if fi == fj {
		r.Scope = ScopeIntra
	} else {
		r.Scope = ScopeInter
	}
	r.Detector = c.detector
	c.store.add(&r)
	c.Tracef("%s: emitted %s", c.detector, r.String())
	return nil
}

//Existing returns the records already held for the pair (i,j), in
//insertion order. Detectors running later can use it to skip pairs
//already explained by a higher-priority interaction.
func (c *Context) Existing(i, j int) []*Record {
	return c.store.At(i, j)
}

//Tracef logs a debug-level trace message. It is a no-op unless the
//engine runs with debug on.
func (c *Context) Tracef(format string, args ...interface{}) {
	c.log.Debugf(format, args...)
}

//Engine runs a registry of detectors over one molecule and accumulates
//their findings. The engine watches the molecule's bond revision: when
//the bonds are re-detected after a run, the accumulated records are
//discarded on the next access, whether a query or a run, so stale
//results are never served and the store never mixes results derived
//from different bond graphs. Re-running on an unchanged molecule
//appends to the store.
type Engine struct {
	mol    *gonci.Molecule
	table  *gonci.PeriodicTable
	reg    *Registry
	logger *zap.Logger

	store *Store
	rev   int
}

//Option configures an Engine.
type Option func(*Engine)

//WithRegistry makes the engine run the given registry instead of
//DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) { e.reg = r }
}

//WithLogger sets the logger used for trace output when running with
//debug on.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

//NewEngine returns an engine over the given molecule and periodic
//table.
func NewEngine(mol *gonci.Molecule, table *gonci.PeriodicTable, opts ...Option) *Engine {
	e := &Engine{mol: mol, table: table}
	for _, o := range opts {
		o(e)
	}
	if e.reg == nil {
		e.reg = DefaultRegistry()
	}
	return e
}

//Store returns the engine's record store. If the molecule's bonds
//were re-detected since the records were accumulated, they describe a
//bond graph that no longer exists: the store is discarded and an empty
//one returned.
func (E *Engine) Store() *Store {
	if E.store == nil || E.rev != E.mol.BondRevision() {
		E.store = NewStore()
		E.rev = E.mol.BondRevision()
	}
	return E.store
}

//List returns the accumulated records matching the filter, dropping
//them first if the bonds were re-detected. See Store.List for the
//ordering.
func (E *Engine) List(f Filter) []*Record {
	return E.Store().List(f)
}

//DetectAll runs every registered detector, in priority order, over the
//molecule. Steric detectors run only when stericClashes is true. With
//debug on, detectors log their per-pair decisions through the engine's
//logger (a development logger is built if none was set).
//
//The molecule must have bonds and fragments computed; otherwise a
//StateError is returned. If the bonds were re-detected since the last
//run, previously accumulated records are discarded first.
func (E *Engine) DetectAll(stericClashes, debug bool) error {
	if !E.mol.HasBonds() {
		return gonci.NewStateError("DetectAll: bonds not yet detected")
	}
	if _, err := E.mol.Fragments(); err != nil {
		return err
	}
	store := E.Store()
	log := zap.NewNop()
	if debug {
		if E.logger == nil {
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			E.logger = l
		}
		log = E.logger
	}
	sugar := log.Sugar()
	for _, en := range E.reg.ordered() {
		if en.det.Steric() && !stericClashes {
			sugar.Debugf("skipping steric detector %q", en.det.Name())
			continue
		}
		sugar.Debugf("running detector %q (priority %d)", en.det.Name(), en.priority)
		ctx := &Context{
			Mol:      E.mol,
			Table:    E.table,
			detector: en.det.Name(),
			store:    store,
			log:      sugar,
		}
		if err := en.det.Detect(ctx); err != nil {
			return err
		}
	}
	return nil
}
