package dearomatizer

import (
	"github.com/gokekule/dearom/aromgroups"
	"github.com/gokekule/dearom/dearomstorage"
	"github.com/gokekule/dearom/matching"
	"github.com/gokekule/dearom/molecule"
)

// Dearomatizer enumerates Kekulé assignments for every aromatic group of a
// molecule and records them into a dearomstorage.Storage.
type Dearomatizer struct {
	mol    *molecule.Molecule
	groups *aromgroups.Groups

	mode           dearomstorage.Mode
	maxHeteroBits  int
	maxEquivalents int
}

// New returns a Dearomatizer for mol's already-detected aromatic groups.
// Default mode is dearomstorage.SaveOne.
func New(mol *molecule.Molecule, groups *aromgroups.Groups, opts ...Option) *Dearomatizer {
	d := &Dearomatizer{
		mol:            mol,
		groups:         groups,
		mode:           dearomstorage.SaveOne,
		maxHeteroBits:  20,
		maxEquivalents: 64,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Mode returns the configured recording mode.
func (d *Dearomatizer) Mode() dearomstorage.Mode { return d.mode }

// EnumerateAll runs EnumerateGroup for every detected group, sizing storage
// first via groups.ConstructGroups.
func (d *Dearomatizer) EnumerateAll(storage *dearomstorage.Storage) error {
	if err := d.groups.ConstructGroups(storage, true); err != nil {
		return err
	}
	for g := 0; g < d.groups.Count(); g++ {
		if err := d.EnumerateGroup(storage, g); err != nil {
			return err
		}
	}
	return nil
}

// EnumerateGroup walks group's Gray-code heteroatom-state sequence,
// recording a matching result into storage for each admissible state
// according to the configured Mode:
//
//   - SaveOne stops at the first admissible state, storing one bond-state
//     assignment.
//   - SaveAll keeps walking every state, and for each one expands every
//     equivalent matching reachable from the one found.
//   - SaveJustHeteroatoms keeps walking every state, storing only the
//     heteroatom fixation bits (the bond states are left for the matcher
//     package to expand lazily on demand).
func (d *Dearomatizer) EnumerateGroup(storage *dearomstorage.Storage, group int) error {
	if group < 0 || group >= d.groups.Count() {
		return ErrGroupNotFound
	}

	data, err := d.groups.GroupData(group, true)
	if err != nil {
		return err
	}
	if len(data.Bonds) == 0 {
		return nil
	}

	k := len(data.HeteroAtoms)
	if k > d.maxHeteroBits {
		return ErrTooManyHeteroatoms
	}

	// Build the per-group submolecule: exactly the group's vertices and
	// its aromatic edges. Used only to re-verify
	// aromaticity of a candidate matching before it is accepted; the
	// matching search itself runs over a matching.Graph built from the same
	// vertex/edge set, keyed by the host molecule's own IDs.
	keep := make(map[int]bool, len(data.Vertices))
	for _, v := range data.Vertices {
		keep[v] = true
	}
	sub, _, bondToNew := d.mol.InducedSubmolecule(keep, func(b molecule.Bond) bool {
		return b.Order == molecule.BondAromatic
	})

	g := matching.NewGraph()
	for _, v := range data.Vertices {
		g.AddVertex(v)
	}
	for _, eid := range data.Bonds {
		b, _ := d.mol.GetBond(eid)
		g.AddEdge(eid, b.Beg, b.End)
	}

	heteroBit := make(map[int]int, k)
	for i, v := range data.HeteroAtoms {
		heteroBit[v] = i
	}

	states := 1
	if k > 0 {
		states = 1 << uint(k)
	}

	for i := 0; i < states; i++ {
		grayVal := i ^ (i >> 1)
		vertexUsable := func(v int) bool {
			idx, isHetero := heteroBit[v]
			if !isHetero {
				return d.groups.AcceptsDouble(v)
			}
			return grayVal&(1<<uint(idx)) != 0
		}

		m := matching.NewMatching(g, matching.WithVertexUsable(vertexUsable))
		if !m.FindMatching() {
			continue
		}

		if d.mode != dearomstorage.SaveJustHeteroatoms && !d.verifyAromatic(sub, bondToNew, data.Bonds, m) {
			continue
		}

		switch d.mode {
		case dearomstorage.SaveJustHeteroatoms:
			if err := storage.AddGroupHeteroAtomsState(group, packBits(grayVal, k)); err != nil {
				return err
			}
		case dearomstorage.SaveAll:
			seen := make(map[string]bool)
			budget := d.maxEquivalents
			var recordErr error
			record := func() {
				if recordErr != nil {
					return
				}
				recordErr = storage.AddGroupDearomatization(group, alignBits(m, data.Bonds))
			}
			enumerateEquivalent(m, &budget, seen, record)
			if recordErr != nil {
				return recordErr
			}
		default: // SaveOne (and the degenerate NoDearomatizations case)
			if err := storage.AddGroupDearomatization(group, alignBits(m, data.Bonds)); err != nil {
				return err
			}
			return nil
		}
	}

	return nil
}

// verifyAromatic writes m's matched state onto sub (double for matched
// aromatic bonds, single otherwise) and runs molecule.Aromatize against
// the working copy. sub is reused across states; every call overwrites
// every bond's order, so no stale state from a rejected earlier state
// leaks into the next check.
func (d *Dearomatizer) verifyAromatic(sub *molecule.Molecule, bondToNew map[int]int, bondOrder []int, m *matching.Matching) bool {
	for _, eid := range bondOrder {
		newID, ok := bondToNew[eid]
		if !ok {
			continue
		}
		order := molecule.BondSingle
		if m.IsEdgeMatching(eid) {
			order = molecule.BondDouble
		}
		_ = sub.SetBondOrder(newID, order)
	}
	return molecule.Aromatize(sub)
}

// packBits packs the low n bits of v into a little-endian bitset.
func packBits(v, n int) []byte {
	out := make([]byte, (n+7)/8)
	for i := 0; i < n; i++ {
		if v&(1<<uint(i)) != 0 {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

// alignBits packs m's matched state for bondOrder, one bit per entry in
// bondOrder's own order — the order dearomstorage.Storage indexes a
// group's assignments against.
func alignBits(m *matching.Matching, bondOrder []int) []byte {
	out := make([]byte, (len(bondOrder)+7)/8)
	for i, eid := range bondOrder {
		if m.IsEdgeMatching(eid) {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}
