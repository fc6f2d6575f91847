package nci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakePair(t *testing.T) {
	assert.Equal(t, Pair{I: 2, J: 7}, MakePair(7, 2))
	assert.Equal(t, Pair{I: 2, J: 7}, MakePair(2, 7))
}

func storeWith(recs ...*Record) *Store {
	s := NewStore()
	for _, r := range recs {
		s.add(r)
	}
	return s
}

func TestStoreAtAndLen(t *testing.T) {
	a := &Record{I: 0, J: 3, Kind: HydrogenBond}
	b := &Record{I: 0, J: 3, Kind: Custom}
	c := &Record{I: 1, J: 2, Kind: StericClash}
	s := storeWith(a, b, c)

	assert.Equal(t, 3, s.Len())
	got := s.At(3, 0)
	require.Len(t, got, 2)
	//insertion order within a pair
	assert.Same(t, a, got[0])
	assert.Same(t, b, got[1])
	assert.Nil(t, s.At(0, 1))
}

func TestStoreListOrderingAndFilters(t *testing.T) {
	recs := []*Record{
		{I: 4, J: 9, Kind: StericClash, Scope: ScopeIntra, FragI: 2, FragJ: 2},
		{I: 0, J: 7, Kind: HydrogenBond, Scope: ScopeInter, FragI: 1, FragJ: 2},
		{I: 0, J: 3, Kind: HalogenBond, Scope: ScopeInter, FragI: 1, FragJ: 3},
		{I: 0, J: 7, Kind: Custom, Scope: ScopeInter, FragI: 1, FragJ: 2},
	}
	s := storeWith(recs...)

	all := s.List(Filter{})
	require.Len(t, all, 4)
	//ascending (I,J), then insertion order within the pair
	assert.Same(t, recs[2], all[0])
	assert.Same(t, recs[1], all[1])
	assert.Same(t, recs[3], all[2])
	assert.Same(t, recs[0], all[3])

	byKind := s.List(Filter{Kind: HydrogenBond})
	require.Len(t, byKind, 1)
	assert.Same(t, recs[1], byKind[0])

	byScope := s.List(Filter{Scope: ScopeIntra})
	require.Len(t, byScope, 1)
	assert.Same(t, recs[0], byScope[0])

	//fragment filter matches either endpoint
	byFrag := s.List(Filter{Fragment: 3})
	require.Len(t, byFrag, 1)
	assert.Same(t, recs[2], byFrag[0])
	assert.Len(t, s.List(Filter{Fragment: 1}), 3)

	combined := s.List(Filter{Kind: Custom, Scope: ScopeInter, Fragment: 2})
	require.Len(t, combined, 1)
	assert.Same(t, recs[3], combined[0])

	assert.Empty(t, s.List(Filter{Kind: ChalcogenBond}))
}
