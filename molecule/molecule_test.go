package molecule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gokekule/dearom/molecule"
)

func benzene(t *testing.T) (*molecule.Molecule, []int) {
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

	return m, ids
}

func TestMoleculeBasics(t *testing.T) {
	m, ids := benzene(t)
	require.Len(t, m.Atoms(), 6)
	require.Len(t, m.Bonds(), 6)

	eid, ok := m.FindBondIndex(ids[0], ids[1])
	require.True(t, ok)
	b, ok := m.GetBond(eid)
	require.True(t, ok)
	require.Equal(t, molecule.BondAromatic, b.Order)

	require.NoError(t, m.SetBondOrder(eid, molecule.BondDouble))
	b, _ = m.GetBond(eid)
	require.Equal(t, molecule.BondDouble, b.Order)
}

func TestAddBondSelfLoop(t *testing.T) {
	m := molecule.NewMolecule()
	a := m.AddAtom(molecule.Atom{Element: molecule.C})
	_, err := m.AddBond(a, a, molecule.BondSingle)
	require.ErrorIs(t, err, molecule.ErrSelfLoop)
}

func TestInducedSubmolecule(t *testing.T) {
	m, ids := benzene(t)
	// Add a pendant aliphatic substituent to ids[0].
	sub := m.AddAtom(molecule.Atom{Element: molecule.C, Aromaticity: molecule.AromAliphatic})
	_, err := m.AddBond(ids[0], sub, molecule.BondSingle)
	require.NoError(t, err)

	keep := make(map[int]bool)
	for _, id := range ids {
		keep[id] = true
	}
	induced, toOriginal, bondToNew := m.InducedSubmolecule(keep, func(b molecule.Bond) bool {
		return b.Order == molecule.BondAromatic
	})
	require.Len(t, induced.Atoms(), 6)
	require.Len(t, induced.Bonds(), 6)
	require.Len(t, bondToNew, 6)
	for newID, origID := range toOriginal {
		_ = newID
		require.Contains(t, ids, origID)
	}
	for origID, newID := range bondToNew {
		_, ok := induced.GetBond(newID)
		require.True(t, ok, "orig bond %d maps to missing new bond %d", origID, newID)
	}
}

func TestMaximumConnectivityAndHeteroatomClassification(t *testing.T) {
	connC, err := molecule.MaximumConnectivity(molecule.C, 0, 0, true)
	require.NoError(t, err)
	require.Equal(t, 4, connC)

	connO, err := molecule.MaximumConnectivity(molecule.O, 0, 0, true)
	require.NoError(t, err)
	require.Equal(t, 3, connO) // 2 (normal) + 1 (aromatic lone-pair bump)

	vac, lp := molecule.VacantPiOrbitals(molecule.Group(molecule.O), 0, 0, connO)
	require.Equal(t, 0, vac)
	require.Equal(t, 2, lp)
}

func TestAromatizeRejectsAdjacentDoubleBonds(t *testing.T) {
	m := molecule.NewMolecule()
	a := m.AddAtom(molecule.Atom{Element: molecule.C})
	b := m.AddAtom(molecule.Atom{Element: molecule.C})
	c := m.AddAtom(molecule.Atom{Element: molecule.C})
	e1, _ := m.AddBond(a, b, molecule.BondDouble)
	e2, _ := m.AddBond(b, c, molecule.BondDouble)
	_ = e1
	_ = e2
	require.False(t, molecule.Aromatize(m))
}
