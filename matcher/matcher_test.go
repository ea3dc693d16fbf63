package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gokekule/dearom/aromgroups"
	"github.com/gokekule/dearom/dearomatizer"
	"github.com/gokekule/dearom/dearomstorage"
	"github.com/gokekule/dearom/matcher"
	"github.com/gokekule/dearom/molecule"
)

func benzene(t *testing.T) (*molecule.Molecule, []int) {
	t.Helper()
	m := molecule.NewMolecule()
	ids := make([]int, 6)
	for i := range ids {
		ids[i] = m.AddAtom(molecule.Atom{Element: molecule.C, Aromaticity: molecule.AromAromatic})
	}
	bondIDs := make([]int, 6)
	for i := 0; i < 6; i++ {
		id, err := m.AddBond(ids[i], ids[(i+1)%6], molecule.BondAromatic)
		require.NoError(t, err)
		bondIDs[i] = id
	}
	return m, bondIDs
}

func TestFixThenUnfixPreservesValidMatching(t *testing.T) {
	mol, bonds := benzene(t)
	groups, err := aromgroups.Detect(mol, nil)
	require.NoError(t, err)

	storage := dearomstorage.NewStorage(dearomstorage.SaveOne)
	d := dearomatizer.New(mol, groups, dearomatizer.WithMode(dearomstorage.SaveOne))
	require.NoError(t, d.EnumerateAll(storage))

	mt, err := matcher.New(mol, groups, storage)
	require.NoError(t, err)

	state, err := mt.ActiveState(0)
	require.NoError(t, err)
	wasDouble := false
	for i := 0; i < 8; i++ {
		if state[0]&(1<<uint(i)) != 0 {
			wasDouble = true
		}
	}
	_ = wasDouble

	// Find the first bond that can be made double, and force it double.
	var target int
	found := false
	for _, b := range bonds {
		ok, err := mt.IsAbleToFix(b, true)
		require.NoError(t, err)
		if ok {
			target = b
			found = true
			break
		}
	}
	require.True(t, found)

	require.NoError(t, mt.Fix(target, true))
	newState, err := mt.ActiveState(0)
	require.NoError(t, err)

	localIdx := -1
	for i, b := range bonds {
		if b == target {
			localIdx = i
		}
	}
	require.GreaterOrEqual(t, localIdx, 0)
	require.True(t, newState[localIdx/8]&(1<<uint(localIdx%8)) != 0)

	require.NoError(t, mt.Unfix(target))

	// Unfix leaves the active assignment a valid Kekulé structure: three
	// double bonds over the six ring bonds.
	finalState, err := mt.ActiveState(0)
	require.NoError(t, err)
	doubleCount := 0
	for i := 0; i < 6; i++ {
		if finalState[i/8]&(1<<uint(i%8)) != 0 {
			doubleCount++
		}
	}
	require.Equal(t, 3, doubleCount)
}

// TestFixAdjacentBondRejectedThenUnfixAllows: fixing one benzene bond
// double must block an adjacent bond from also being fixed double (it
// would give their shared atom two double bonds), and releasing the first
// fix must restore the adjacent bond's freedom.
func TestFixAdjacentBondRejectedThenUnfixAllows(t *testing.T) {
	mol, bonds := benzene(t)
	groups, err := aromgroups.Detect(mol, nil)
	require.NoError(t, err)

	storage := dearomstorage.NewStorage(dearomstorage.SaveOne)
	d := dearomatizer.New(mol, groups, dearomatizer.WithMode(dearomstorage.SaveOne))
	require.NoError(t, d.EnumerateAll(storage))

	mt, err := matcher.New(mol, groups, storage)
	require.NoError(t, err)

	e0, e1 := bonds[0], bonds[1] // adjacent: share an atom in the ring

	ok, err := mt.IsAbleToFix(e0, true)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, mt.Fix(e0, true))

	ok, err = mt.IsAbleToFix(e1, true)
	require.NoError(t, err)
	require.False(t, ok, "adjacent bond must not be fixable double while e0 is pinned double")

	require.NoError(t, mt.Unfix(e0))

	ok, err = mt.IsAbleToFix(e1, true)
	require.NoError(t, err)
	require.True(t, ok, "unfixing e0 must restore e1's freedom")
}

func pyridine(t *testing.T) (*molecule.Molecule, []int) {
	t.Helper()
	m := molecule.NewMolecule()
	ids := make([]int, 6)
	ids[0] = m.AddAtom(molecule.Atom{Element: molecule.N, Aromaticity: molecule.AromAromatic})
	for i := 1; i < 6; i++ {
		ids[i] = m.AddAtom(molecule.Atom{Element: molecule.C, Aromaticity: molecule.AromAromatic})
	}
	bondIDs := make([]int, 6)
	for i := 0; i < 6; i++ {
		id, err := m.AddBond(ids[i], ids[(i+1)%6], molecule.BondAromatic)
		require.NoError(t, err)
		bondIDs[i] = id
	}
	return m, bondIDs
}

// TestPrepareGroupExpandsHeteroAtomStatesPyridine: in SaveJustHeteroatoms
// mode the Dearomatizer records only bitmasks over the ring's heteroatoms,
// and the Matcher must lazily turn the first recorded state into a
// concrete, structurally valid bond assignment the first time it is asked
// about any bond in the group, without the caller ever computing a
// matching itself.
func TestPrepareGroupExpandsHeteroAtomStatesPyridine(t *testing.T) {
	mol, bonds := pyridine(t)
	groups, err := aromgroups.Detect(mol, nil)
	require.NoError(t, err)

	storage := dearomstorage.NewStorage(dearomstorage.SaveJustHeteroatoms)
	d := dearomatizer.New(mol, groups, dearomatizer.WithMode(dearomstorage.SaveJustHeteroatoms))
	require.NoError(t, d.EnumerateAll(storage))
	require.Equal(t, 1, storage.HeteroAtomsStatesCount(0))
	require.Equal(t, 0, storage.DearomatizationsCount(0), "SaveJustHeteroatoms must not itself record bond assignments")

	mt, err := matcher.New(mol, groups, storage)
	require.NoError(t, err)

	// Asking about any bond in the group forces prepareGroup to expand the
	// recorded heteroatom states into at least one concrete assignment.
	ok, err := mt.IsAbleToFix(bonds[0], true)
	require.NoError(t, err)
	_ = ok
	require.Greater(t, storage.DearomatizationsCount(0), 0, "expansion must append at least one bond assignment")

	state, err := mt.ActiveState(0)
	require.NoError(t, err)
	doubleCount := 0
	for i := 0; i < 6; i++ {
		if state[i/8]&(1<<uint(i%8)) != 0 {
			doubleCount++
		}
	}
	require.Equal(t, 3, doubleCount, "a valid Kekule assignment over a 6-membered ring pins exactly 3 double bonds")
}

// TestIsAbleToFixAgreesWithStoredAssignmentsUnderSaveAll: under SaveAll,
// IsAbleToFix(e, t) must return true iff some stored assignment already
// has bit(e) == t.
func TestIsAbleToFixAgreesWithStoredAssignmentsUnderSaveAll(t *testing.T) {
	mol, bonds := benzene(t)
	groups, err := aromgroups.Detect(mol, nil)
	require.NoError(t, err)

	storage := dearomstorage.NewStorage(dearomstorage.SaveAll)
	d := dearomatizer.New(mol, groups, dearomatizer.WithMode(dearomstorage.SaveAll))
	require.NoError(t, d.EnumerateAll(storage))
	n := storage.DearomatizationsCount(0)
	require.Equal(t, 2, n) // benzene has exactly two Kekule structures

	localIdx := make(map[int]int, len(bonds))
	for i, b := range bonds {
		localIdx[b] = i
	}

	for _, b := range bonds {
		for _, want := range []bool{true, false} {
			expected := false
			for i := 0; i < n; i++ {
				bits := storage.GetDearomatization(0, i)
				li := localIdx[b]
				set := bits[li/8]&(1<<uint(li%8)) != 0
				if set == want {
					expected = true
					break
				}
			}

			mt, err := matcher.New(mol, groups, storage)
			require.NoError(t, err)
			got, err := mt.IsAbleToFix(b, want)
			require.NoError(t, err)
			require.Equal(t, expected, got)
		}
	}
}

func TestFixRejectsUnknownBond(t *testing.T) {
	mol, _ := benzene(t)
	groups, err := aromgroups.Detect(mol, nil)
	require.NoError(t, err)
	storage := dearomstorage.NewStorage(dearomstorage.SaveOne)
	mt, err := matcher.New(mol, groups, storage)
	require.NoError(t, err)

	_, err = mt.IsAbleToFix(99999, true)
	require.ErrorIs(t, err, matcher.ErrBondNotInAnyGroup)
}
