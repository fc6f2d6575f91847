package nci

import "sort"

//Pair identifies an unordered pair of atoms. I is always the lower
//index.
type Pair struct {
	I, J int
}

//MakePair returns the canonical Pair for atoms i and j.
func MakePair(i, j int) Pair {
	if i > j {
		i, j = j, i
	}
	return Pair{I: i, J: j}
}

//Store accumulates interaction records, keyed by the atom pair they
//involve. A pair can hold several records (say, a hydrogen bond found
//by the built-in detector plus a custom one). Records for a pair keep
//their insertion order.
type Store struct {
	recs map[Pair][]*Record
}

//NewStore returns an empty store.
func NewStore() *Store {
	return &Store{recs: make(map[Pair][]*Record)}
}

func (S *Store) add(r *Record) {
	p := Pair{I: r.I, J: r.J}
	S.recs[p] = append(S.recs[p], r)
}

//At returns the records held for the pair (i,j), in insertion order,
//or nil if there are none. The order of i and j does not matter. The
//returned slice is the store's own, callers must not modify it.
func (S *Store) At(i, j int) []*Record {
	return S.recs[MakePair(i, j)]
}

//Len returns the total number of records in the store.
func (S *Store) Len() int {
	n := 0
	for _, rs := range S.recs {
		n += len(rs)
	}
	return n
}

//Filter selects records out of a Store. The zero value matches
//everything: an empty Kind matches all kinds, ScopeAny all scopes, and
//a zero Fragment any fragment. A non-zero Fragment matches records
//with either endpoint in that fragment.
type Filter struct {
	Kind     Kind
	Scope    Scope
	Fragment int
}

func (f Filter) matches(r *Record) bool {
	if f.Kind != "" && r.Kind != f.Kind {
		return false
	}
	if f.Scope != ScopeAny && r.Scope != f.Scope {
		return false
	}
	if f.Fragment != 0 && r.FragI != f.Fragment && r.FragJ != f.Fragment {
		return false
	}
	return true
}

//List returns the records matching the filter, ordered by ascending
//(I,J) pair and, within a pair, by insertion order. The result is
//deterministic for a given store content.
func (S *Store) List(f Filter) []*Record {
	pairs := make([]Pair, 0, len(S.recs))
	for p := range S.recs {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].I != pairs[b].I {
			return pairs[a].I < pairs[b].I
		}
		return pairs[a].J < pairs[b].J
	})
	var out []*Record
	for _, p := range pairs {
		for _, r := range S.recs[p] {
			if f.matches(r) {
				out = append(out, r)
			}
		}
	}
	return out
}
