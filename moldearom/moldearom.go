package moldearom

import (
	"github.com/gokekule/dearom/aromgroups"
	"github.com/gokekule/dearom/dearomatizer"
	"github.com/gokekule/dearom/dearomstorage"
	"github.com/gokekule/dearom/molecule"
)

// MoleculeDearomatizer realizes a chosen Kekulé assignment onto the host
// molecule's bonds.
type MoleculeDearomatizer struct {
	mol    *molecule.Molecule
	groups *aromgroups.Groups
}

// New returns a MoleculeDearomatizer for mol's already-detected aromatic
// groups.
func New(mol *molecule.Molecule, groups *aromgroups.Groups) *MoleculeDearomatizer {
	return &MoleculeDearomatizer{mol: mol, groups: groups}
}

// DearomatizeGroup writes BondDouble/BondSingle onto each molecule bond in
// group's aromatic bond list, per bit i of the index-th assignment stored
// for group.
func (md *MoleculeDearomatizer) DearomatizeGroup(storage *dearomstorage.Storage, group, index int) error {
	if group < 0 || group >= md.groups.Count() {
		return ErrGroupNotFound
	}
	if index < 0 || index >= storage.DearomatizationsCount(group) {
		return ErrAssignmentNotFound
	}

	data, err := md.groups.GroupData(group, false)
	if err != nil {
		return err
	}
	bits := storage.GetDearomatization(group, index)

	for i, eid := range data.Bonds {
		order := molecule.BondSingle
		if bits[i/8]&(1<<uint(i%8)) != 0 {
			order = molecule.BondDouble
		}
		if err := md.mol.SetBondOrder(eid, order); err != nil {
			return err
		}
	}
	return nil
}

// GroupResult reports whether a single group was successfully
// dearomatized by DearomatizeMolecule.
type GroupResult struct {
	Group        int
	Dearomatized bool
}

// DearomatizeMolecule runs the enumerator in SaveOne mode, then applies
// assignment 0 to every group that produced at least one. It returns true
// iff every group did, alongside the per-group detail a single aggregate
// boolean would otherwise discard.
func (md *MoleculeDearomatizer) DearomatizeMolecule(opts ...dearomatizer.Option) (all bool, results []GroupResult, err error) {
	storage := dearomstorage.NewStorage(dearomstorage.SaveOne)
	full := append([]dearomatizer.Option{dearomatizer.WithMode(dearomstorage.SaveOne)}, opts...)
	d := dearomatizer.New(md.mol, md.groups, full...)
	if err := d.EnumerateAll(storage); err != nil {
		return false, nil, err
	}

	results = make([]GroupResult, md.groups.Count())
	all = true
	for g := 0; g < md.groups.Count(); g++ {
		if storage.DearomatizationsCount(g) == 0 {
			results[g] = GroupResult{Group: g, Dearomatized: false}
			all = false
			continue
		}
		if err := md.DearomatizeGroup(storage, g, 0); err != nil {
			return false, nil, err
		}
		results[g] = GroupResult{Group: g, Dearomatized: true}
	}
	return all, results, nil
}
