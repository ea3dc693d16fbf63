// File: view.go
// Role: Non-mutating submolecule extraction, adapted from core/view.go's
// InducedSubgraph (lvlath): build a fresh Molecule containing only a chosen
// atom subset and, optionally, only bonds passing a filter.
package molecule

// InducedSubmolecule returns a new Molecule containing only the atoms for
// which keep[id] is true, and only bonds whose endpoints are both kept and
// which pass edgeFilter (if non-nil). It returns the new molecule, a
// mapping from the new atom IDs back to the original IDs — the inverse of
// lvlath's InducedSubgraph, which preserved IDs; here IDs are renumbered
// because the submolecule is a fresh Molecule that assigns its own IDs
// starting from 0 — and a mapping from
// original bond IDs to the new molecule's bond IDs, so a caller holding a
// bit-packed assignment indexed by original bond ID can still set orders on
// the submolecule directly.
//
// Complexity: O(V + E).
func (m *Molecule) InducedSubmolecule(keep map[int]bool, edgeFilter func(Bond) bool) (sub *Molecule, toOriginal map[int]int, bondToNew map[int]int) {
	sub = NewMolecule()
	toOriginal = make(map[int]int)
	bondToNew = make(map[int]int)
	fromOriginal := make(map[int]int, len(keep))

	for _, id := range m.Atoms() {
		if !keep[id] {
			continue
		}
		a, _ := m.Atom(id)
		newID := sub.AddAtom(a)
		toOriginal[newID] = id
		fromOriginal[id] = newID
	}

	for _, id := range m.Bonds() {
		b, _ := m.GetBond(id)
		if !keep[b.Beg] || !keep[b.End] {
			continue
		}
		if edgeFilter != nil && !edgeFilter(b) {
			continue
		}
		newID, _ := sub.AddBond(fromOriginal[b.Beg], fromOriginal[b.End], b.Order)
		bondToNew[id] = newID
	}

	return sub, toOriginal, bondToNew
}
