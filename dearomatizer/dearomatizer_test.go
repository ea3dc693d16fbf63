package dearomatizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gokekule/dearom/aromgroups"
	"github.com/gokekule/dearom/dearomatizer"
	"github.com/gokekule/dearom/dearomstorage"
	"github.com/gokekule/dearom/molecule"
)

func benzene(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.NewMolecule()
	ids := make([]int, 6)
	for i := range ids {
		ids[i] = m.AddAtom(molecule.Atom{Element: molecule.C, Aromaticity: molecule.AromAromatic})
	}
	for i := 0; i < 6; i++ {
		_, err := m.AddBond(ids[i], ids[(i+1)%6], molecule.BondAromatic)
		require.NoError(t, err)
	}
	return m
}

func pyridine(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.NewMolecule()
	ids := make([]int, 6)
	ids[0] = m.AddAtom(molecule.Atom{Element: molecule.N, Aromaticity: molecule.AromAromatic})
	for i := 1; i < 6; i++ {
		ids[i] = m.AddAtom(molecule.Atom{Element: molecule.C, Aromaticity: molecule.AromAromatic})
	}
	for i := 0; i < 6; i++ {
		_, err := m.AddBond(ids[i], ids[(i+1)%6], molecule.BondAromatic)
		require.NoError(t, err)
	}
	return m
}

func furan(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.NewMolecule()
	ids := make([]int, 5)
	ids[0] = m.AddAtom(molecule.Atom{Element: molecule.O, Aromaticity: molecule.AromAromatic})
	for i := 1; i < 5; i++ {
		ids[i] = m.AddAtom(molecule.Atom{Element: molecule.C, Aromaticity: molecule.AromAromatic})
	}
	for i := 0; i < 5; i++ {
		_, err := m.AddBond(ids[i], ids[(i+1)%5], molecule.BondAromatic)
		require.NoError(t, err)
	}
	return m
}

func TestEnumerateGroupSaveOneBenzene(t *testing.T) {
	m := benzene(t)
	groups, err := aromgroups.Detect(m, nil)
	require.NoError(t, err)

	storage := dearomstorage.NewStorage(dearomstorage.SaveOne)
	d := dearomatizer.New(m, groups, dearomatizer.WithMode(dearomstorage.SaveOne))
	require.NoError(t, d.EnumerateAll(storage))

	require.Equal(t, 1, storage.DearomatizationsCount(0))
	bits := storage.GetDearomatization(0, 0)
	set := 0
	for _, b := range bits {
		for i := 0; i < 8; i++ {
			if b&(1<<uint(i)) != 0 {
				set++
			}
		}
	}
	require.Equal(t, 3, set)
}

func TestEnumerateGroupSaveOneFuranExcludesOxygen(t *testing.T) {
	m := furan(t)
	groups, err := aromgroups.Detect(m, nil)
	require.NoError(t, err)

	storage := dearomstorage.NewStorage(dearomstorage.SaveOne)
	d := dearomatizer.New(m, groups, dearomatizer.WithMode(dearomstorage.SaveOne))
	require.NoError(t, d.EnumerateAll(storage))

	require.Equal(t, 1, storage.DearomatizationsCount(0))
	bits := storage.GetDearomatization(0, 0)
	set := 0
	for _, b := range bits {
		for i := 0; i < 8; i++ {
			if b&(1<<uint(i)) != 0 {
				set++
			}
		}
	}
	require.Equal(t, 2, set) // 5 aromatic bonds, O excluded: 2 double bonds among the 4 carbons
}

func TestEnumerateGroupSaveAllBenzeneFindsTwoKekuleStructures(t *testing.T) {
	m := benzene(t)
	groups, err := aromgroups.Detect(m, nil)
	require.NoError(t, err)

	storage := dearomstorage.NewStorage(dearomstorage.SaveAll)
	d := dearomatizer.New(m, groups, dearomatizer.WithMode(dearomstorage.SaveAll))
	require.NoError(t, d.EnumerateAll(storage))

	require.Equal(t, 2, storage.DearomatizationsCount(0))
}

// naphthalene: two fused 6-rings sharing one bond, 10 atoms and 11
// aromatic bonds, all carbon.
func naphthalene(t *testing.T) *molecule.Molecule {
	t.Helper()
	m := molecule.NewMolecule()
	ids := make([]int, 10)
	for i := range ids {
		ids[i] = m.AddAtom(molecule.Atom{Element: molecule.C, Aromaticity: molecule.AromAromatic})
	}
	// Ring A: 0-1-2-3-4-5-0, ring B: 4-6-7-8-9-5-4, sharing the 4-5 bond.
	ringBonds := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0},
		{4, 6}, {6, 7}, {7, 8}, {8, 9}, {9, 5},
	}
	for _, pair := range ringBonds {
		_, err := m.AddBond(ids[pair[0]], ids[pair[1]], molecule.BondAromatic)
		require.NoError(t, err)
	}
	return m
}

func TestEnumerateGroupSaveAllNaphthaleneFindsThreeKekuleStructures(t *testing.T) {
	m := naphthalene(t)
	groups, err := aromgroups.Detect(m, nil)
	require.NoError(t, err)
	require.Equal(t, 1, groups.Count())

	storage := dearomstorage.NewStorage(dearomstorage.SaveAll)
	d := dearomatizer.New(m, groups, dearomatizer.WithMode(dearomstorage.SaveAll))
	require.NoError(t, d.EnumerateAll(storage))

	require.Equal(t, 11, len(storage.GroupBonds(0)))
	require.Equal(t, 3, storage.DearomatizationsCount(0))
}

func TestEnumerateGroupSaveJustHeteroatomsPyridine(t *testing.T) {
	m := pyridine(t)
	groups, err := aromgroups.Detect(m, nil)
	require.NoError(t, err)

	storage := dearomstorage.NewStorage(dearomstorage.SaveJustHeteroatoms)
	d := dearomatizer.New(m, groups, dearomatizer.WithMode(dearomstorage.SaveJustHeteroatoms))
	require.NoError(t, d.EnumerateAll(storage))

	require.Equal(t, 1, storage.HeteroAtomsStatesCount(0))
}
