// File: groups.go
// Role: AromaticGroups — detect maximal connected aromatic subgraphs,
// compute per-atom acceptsDouble, and extract per-group vertex/bond/
// heteroatom data. Detection and extraction use an explicit work stack
// instead of recursion.
package aromgroups

import (
	"github.com/pkg/errors"

	"github.com/gokekule/dearom/molecule"
)

// GroupData is the per-group extract consumed by the Dearomatizer and by
// DearomatizationsStorage.SetGroup.
type GroupData struct {
	// Vertices is the group's atom IDs in ascending atom-ID order.
	Vertices []int
	// Bonds is the group's aromatic bond IDs, in the fixed order that
	// defines each bond's local index within the group.
	Bonds []int
	// BondIndex maps a molecule bond ID to its local index in Bonds.
	// Bonds absent from the map are not part of this group.
	BondIndex map[int]int
	// HeteroAtoms is the ordered subset of Vertices that both accept a
	// double bond and have lone-pair/vacant-π capacity.
	HeteroAtoms []int
	// VerticesFilter is a per-atom membership map. GroupData does not
	// populate it and has no option to request it, so it is always nil.
	VerticesFilter map[int]bool
}

// Groups holds the aromatic-group partition of a molecule, computed once by
// Detect and reused by every downstream component.
type Groups struct {
	mol           *molecule.Molecule
	group         map[int]int // atom id -> group id
	acceptsDouble map[int]bool
	count         int
}

// Detect partitions mol's aromatic atoms into maximal connected aromatic
// groups and returns the number of groups found. atomExternalConn, if
// non-nil, supplies an extra non-aromatic connectivity contribution per
// atom ID — used when the molecule is itself a fragment of a larger
// structure.
//
// Complexity: O(V + E).
func Detect(mol *molecule.Molecule, atomExternalConn map[int]int) (*Groups, error) {
	g := &Groups{
		mol:           mol,
		group:         make(map[int]int),
		acceptsDouble: make(map[int]bool),
	}

	for _, v := range mol.Atoms() {
		if _, seen := g.group[v]; seen {
			continue
		}
		a, _ := mol.Atom(v)
		if a.Aromaticity == molecule.AromAliphatic || a.Pseudo {
			continue
		}
		if a.Element == -1 {
			continue
		}
		if a.HasQueryCharge && a.Charge == molecule.ChargeUnknown {
			continue
		}
		if a.HasQueryRadical && a.Radical == molecule.RadicalUnknown {
			continue
		}

		current := g.count
		g.count++
		if err := g.floodFill(v, current, atomExternalConn); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// floodFill assigns group id `current` to v and every atom reachable from
// it via aromatic bonds, using an explicit stack rather than recursion.
// For each visited atom it also computes acceptsDouble from that atom's
// own incident bonds only — independent of neighbors' acceptsDouble, so a
// single pass over the stack suffices.
func (g *Groups) floodFill(start, current int, atomExternalConn map[int]int) error {
	g.group[start] = current
	stack := []int{start}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nonAromaticConn := 0
		if atomExternalConn != nil {
			nonAromaticConn = atomExternalConn[v]
		}

		for _, eid := range g.mol.IncidentBonds(v) {
			b, _ := g.mol.GetBond(eid)
			switch {
			case b.Order == molecule.BondZero:
				continue
			case b.Order != molecule.BondAromatic:
				nonAromaticConn += int(b.Order)
				continue
			}
			nonAromaticConn++

			nb := b.Beg
			if nb == v {
				nb = b.End
			}
			if _, seen := g.group[nb]; seen {
				continue
			}
			g.group[nb] = current
			stack = append(stack, nb)
		}

		a, _ := g.mol.Atom(v)
		charge, radical := a.Charge, a.Radical
		if charge == molecule.ChargeUnknown {
			charge = 0
		}
		if radical == molecule.RadicalUnknown {
			radical = 0
		}
		maxConn, err := molecule.MaximumConnectivity(a.Element, charge, radical, true)
		if err != nil {
			return errors.Wrapf(ErrInternal, "atom %d: %v", v, err)
		}

		budget := maxConn - nonAromaticConn
		if budget < 0 {
			return errors.Wrapf(ErrInternal, "atom %d: negative aromatic connectivity budget", v)
		}
		g.acceptsDouble[v] = budget > 0
	}

	return nil
}

// Count returns the number of aromatic groups detected.
func (g *Groups) Count() int { return g.count }

// AcceptsDouble reports whether atom v may carry an incident double bond.
func (g *Groups) AcceptsDouble(v int) bool { return g.acceptsDouble[v] }

// GroupOf returns the group ID atom v belongs to, or (-1, false) if v
// belongs to no group.
func (g *Groups) GroupOf(v int) (int, bool) {
	id, ok := g.group[v]
	return id, ok
}

// GroupData extracts group's vertex set, bond list, bond-to-local-index
// mapping and (when needHeteroatoms) heteroatom subset.
//
// Complexity: O(V + E).
func (g *Groups) GroupData(group int, needHeteroatoms bool) (*GroupData, error) {
	data := &GroupData{
		BondIndex: make(map[int]int),
	}

	for _, v := range g.mol.Atoms() {
		gid, ok := g.group[v]
		if !ok || gid != group {
			continue
		}
		data.Vertices = append(data.Vertices, v)

		if needHeteroatoms && g.acceptsDouble[v] {
			a, _ := g.mol.Atom(v)
			charge, radical := a.Charge, a.Radical
			if charge == molecule.ChargeUnknown {
				charge = 0
			}
			if radical == molecule.RadicalUnknown {
				radical = 0
			}
			if a.Element == -1 {
				return nil, errors.Wrap(ErrInternal, "heteroatom scan: missing atom label")
			}
			maxConn, err := molecule.MaximumConnectivity(a.Element, charge, radical, false)
			if err != nil {
				return nil, errors.Wrap(ErrInternal, err.Error())
			}
			grp := molecule.Group(a.Element)
			vac, lonePairs := molecule.VacantPiOrbitals(grp, charge, radical, maxConn)
			if vac > 0 || lonePairs > 0 {
				data.HeteroAtoms = append(data.HeteroAtoms, v)
			}
		}
	}

	for _, e := range g.mol.Bonds() {
		b, _ := g.mol.GetBond(e)
		if b.Order != molecule.BondAromatic {
			continue
		}
		gid, ok := g.group[b.Beg]
		if !ok || gid != group {
			continue
		}
		data.Bonds = append(data.Bonds, e)
		data.BondIndex[e] = len(data.Bonds) - 1
	}

	return data, nil
}

// GroupStorage is the subset of dearomstorage.Storage's write API needed by
// ConstructGroups — kept as a narrow interface here so aromgroups does not
// import dearomstorage (avoiding an import cycle, since dearomstorage has no
// reason to know about molecules or groups).
type GroupStorage interface {
	GroupsCount() int
	SetGroupsCount(n int)
	ClearIndices()
	SetGroup(group int, bonds []int, heteroAtoms []int) error
}

// ConstructGroups writes each group's bond list (and, if needHeteroatoms,
// heteroatom list) into storage, in ascending group order.
func (g *Groups) ConstructGroups(storage GroupStorage, needHeteroatoms bool) error {
	if storage.GroupsCount() == 0 && g.count != 0 {
		storage.SetGroupsCount(g.count)
	}
	storage.ClearIndices()

	for group := 0; group < g.count; group++ {
		data, err := g.GroupData(group, needHeteroatoms)
		if err != nil {
			return err
		}
		if err := storage.SetGroup(group, data.Bonds, data.HeteroAtoms); err != nil {
			return err
		}
	}

	return nil
}
