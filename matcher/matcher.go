package matcher

import (
	"github.com/gokekule/dearom/aromgroups"
	"github.com/gokekule/dearom/dearomstorage"
	"github.com/gokekule/dearom/matching"
	"github.com/gokekule/dearom/molecule"
)

// groupState is the lazily-expanded working matching for one aromatic
// group, plus enough bookkeeping to translate between molecule bond IDs
// and the group's local bond ordering (the order dearomstorage.Storage
// indexes assignments against).
//
// fixed/fixedDouble track the online bond-fixing state directly: fixed[i]
// marks local bond i as pinned by a caller's Fix, fixedDouble[i] its
// pinned order. vertexFixCount lets UnfixByAtom find which of an atom's
// bonds are currently pinned without scanning every group bond.
type groupState struct {
	graph       *matching.Graph
	active      *matching.Matching
	bonds       []int
	localIndex  map[int]int
	prepared    bool
	activeIndex int // index into storage's stored assignments, or -1

	fixed          map[int]bool
	fixedDouble    map[int]bool
	vertexFixCount map[int]int
}

// fixRequest remembers the last successful IsAbleToFix call, so a
// following Fix call for the identical (bond, order) pair does not have to
// repeat the search.
type fixRequest struct {
	bondID     int
	makeDouble bool
	ok         bool
}

// Matcher answers and applies bond-state fix requests against a
// Dearomatizer's recorded assignments.
type Matcher struct {
	mol     *molecule.Molecule
	groups  *aromgroups.Groups
	storage *dearomstorage.Storage

	bondGroup map[int]int
	state     []*groupState
	last      fixRequest
}

// New returns a Matcher over storage's recorded assignments for groups.
func New(mol *molecule.Molecule, groups *aromgroups.Groups, storage *dearomstorage.Storage) (*Matcher, error) {
	mt := &Matcher{
		mol:       mol,
		groups:    groups,
		storage:   storage,
		bondGroup: make(map[int]int),
		state:     make([]*groupState, groups.Count()),
	}
	for g := 0; g < groups.Count(); g++ {
		data, err := groups.GroupData(g, false)
		if err != nil {
			return nil, err
		}
		for _, b := range data.Bonds {
			mt.bondGroup[b] = g
		}
	}
	return mt, nil
}

func bitAt(bits []byte, idx int) bool {
	if idx/8 >= len(bits) {
		return false
	}
	return bits[idx/8]&(1<<uint(idx%8)) != 0
}

// prepareGroup expands group's active matching on first use.
//
// If the group already has at least one stored bond-state assignment, the
// first one becomes active. Otherwise, if the group's storage is in
// JUST_HETEROATOMS mode and holds at least one heteroatom-fixation state,
// each state is expanded into an explicit bond assignment and appended to
// storage via a perfect-matching search restricted to the heteroatom
// states recorded, before the first one becomes active. Failing both, a
// fresh matching is computed on the spot using each atom's acceptsDouble
// as the fallback usability predicate, so a group never needs its own
// Dearomatizer pass before it can answer fix/unfix queries.
func (mt *Matcher) prepareGroup(group int) (*groupState, error) {
	if st := mt.state[group]; st != nil && st.prepared {
		return st, nil
	}

	data, err := mt.groups.GroupData(group, true)
	if err != nil {
		return nil, err
	}

	g := matching.NewGraph()
	for _, v := range data.Vertices {
		g.AddVertex(v)
	}
	localIndex := make(map[int]int, len(data.Bonds))
	for i, b := range data.Bonds {
		localIndex[b] = i
		bond, _ := mt.mol.GetBond(b)
		g.AddEdge(b, bond.Beg, bond.End)
	}

	st := &groupState{
		graph:          g,
		bonds:          data.Bonds,
		localIndex:     localIndex,
		prepared:       true,
		fixed:          make(map[int]bool),
		fixedDouble:    make(map[int]bool),
		vertexFixCount: make(map[int]int),
	}

	if mt.storage.DearomatizationsCount(group) == 0 && mt.storage.HeteroAtomsStatesCount(group) > 0 {
		if err := mt.expandPendingLowerGroups(group); err != nil {
			return nil, err
		}
		if err := mt.expandHeteroAtomStates(group, data); err != nil {
			return nil, err
		}
	}

	if mt.storage.DearomatizationsCount(group) > 0 {
		bits := mt.storage.GetDearomatization(group, 0)
		m := matching.NewMatching(g)
		for i, b := range data.Bonds {
			if bitAt(bits, i) {
				_ = m.SetEdgeMatching(b, true)
			}
		}
		st.active = m
		st.activeIndex = 0
	} else {
		m := matching.NewMatching(g, matching.WithVertexUsable(func(v int) bool {
			return mt.groups.AcceptsDouble(v)
		}))
		m.FindMatching()
		st.active = m
		st.activeIndex = -1
	}

	mt.state[group] = st
	return st, nil
}

// expandPendingLowerGroups expands every group below upto whose recorded
// heteroatom-fixation states have not yet been turned into bond
// assignments. dearomstorage.Storage.AddGroupDearomatization only accepts
// appends in non-decreasing group order, so if a caller's first touch
// lands on a higher-numbered group, any lower-numbered group still sitting
// on unexpanded heteroatom states must be expanded first or its own later
// expansion would be rejected with ErrOutOfOrder.
func (mt *Matcher) expandPendingLowerGroups(upto int) error {
	for g := 0; g < upto; g++ {
		if mt.storage.DearomatizationsCount(g) != 0 || mt.storage.HeteroAtomsStatesCount(g) == 0 {
			continue
		}
		data, err := mt.groups.GroupData(g, true)
		if err != nil {
			return err
		}
		if err := mt.expandHeteroAtomStates(g, data); err != nil {
			return err
		}
	}
	return nil
}

// expandHeteroAtomStates converts every heteroatom-fixation state recorded
// for group into an explicit bond-state assignment appended to storage.
// A vertex's usability is the recorded fixation bit if it's one of the
// group's heteroatoms, and its acceptsDouble otherwise. A state that
// admits no perfect matching under this predicate is skipped.
func (mt *Matcher) expandHeteroAtomStates(group int, data *aromgroups.GroupData) error {
	heteroLocal := make(map[int]int, len(data.HeteroAtoms))
	for i, v := range data.HeteroAtoms {
		heteroLocal[v] = i
	}

	g := matching.NewGraph()
	for _, v := range data.Vertices {
		g.AddVertex(v)
	}
	for _, b := range data.Bonds {
		bond, _ := mt.mol.GetBond(b)
		g.AddEdge(b, bond.Beg, bond.End)
	}

	n := mt.storage.HeteroAtomsStatesCount(group)
	for i := 0; i < n; i++ {
		state := mt.storage.GetHeteroAtomsState(group, i)
		checkVertex := func(v int) bool {
			if idx, ok := heteroLocal[v]; ok {
				return bitAt(state, idx)
			}
			return mt.groups.AcceptsDouble(v)
		}
		m := matching.NewMatching(g, matching.WithVertexUsable(checkVertex))
		if !m.FindMatching() {
			continue
		}
		bits := make([]byte, (len(data.Bonds)+7)/8)
		for j, b := range data.Bonds {
			if m.IsEdgeMatching(b) {
				bits[j/8] |= 1 << uint(j%8)
			}
		}
		if err := mt.storage.AddGroupDearomatization(group, bits); err != nil {
			return err
		}
	}
	return nil
}

// restricted returns a fresh Matching over st.graph, seeded with st.active's
// current matched state, whose edges are all usable except those currently
// pinned by Fix — other than allow itself, which stays usable regardless
// of its own fixed status.
func (st *groupState) restricted(allow int) *matching.Matching {
	edgeUsable := func(e matching.Edge) bool {
		if e.ID == allow {
			return true
		}
		return !st.fixed[st.localIndex[e.ID]]
	}
	m := matching.NewMatching(st.graph, matching.WithEdgeUsable(edgeUsable))
	for _, b := range st.bonds {
		if st.active.IsEdgeMatching(b) {
			_ = m.SetEdgeMatching(b, true)
		}
	}
	return m
}

// assignmentAgrees reports whether bits (a stored assignment, bit-packed
// against st.bonds) agrees with every bond currently fixed in st, plus the
// candidate (extraLocal, extraDouble) request.
func (st *groupState) assignmentAgrees(bits []byte, extraLocal int, extraDouble bool) bool {
	if bitAt(bits, extraLocal) != extraDouble {
		return false
	}
	for local, want := range st.fixedDouble {
		if bitAt(bits, local) != want {
			return false
		}
	}
	return true
}

// IsAbleToFix reports whether bondID can be made to carry a double bond
// (makeDouble=true) or a single bond (makeDouble=false) without disturbing
// any bond already pinned by a prior Fix. Returns false silently (no
// error) when storage carries no dearomatizations at all.
func (mt *Matcher) IsAbleToFix(bondID int, makeDouble bool) (bool, error) {
	if mt.storage.Mode() == dearomstorage.NoDearomatizations {
		return false, nil
	}
	group, ok := mt.bondGroup[bondID]
	if !ok {
		return false, ErrBondNotInAnyGroup
	}
	st, err := mt.prepareGroup(group)
	if err != nil {
		return false, err
	}
	local := st.localIndex[bondID]

	// (i) the active assignment already agrees.
	if st.active.IsEdgeMatching(bondID) == makeDouble {
		mt.last = fixRequest{bondID, makeDouble, true}
		return true, nil
	}

	if mt.storage.Mode() == dearomstorage.SaveAll {
		ok := mt.tryStoredAssignment(st, group, local, makeDouble)
		mt.last = fixRequest{bondID, makeDouble, ok}
		return ok, nil
	}

	// (ii) attempt an augmenting-path swap on the active assignment,
	// forbidden from touching any other currently-fixed bond.
	e, _ := st.graph.EdgeByID(bondID)
	tmp := st.restricted(bondID)
	currentlyMatched := tmp.IsEdgeMatching(bondID)
	if path, found := tmp.FindAlternatingPath(e.U, e.V, !currentlyMatched, !currentlyMatched); found {
		tmp.ProcessPath(path)
		_ = tmp.SetEdgeMatching(bondID, makeDouble)
		for _, b := range st.bonds {
			_ = st.active.SetEdgeMatching(b, tmp.IsEdgeMatching(b))
		}
		mt.last = fixRequest{bondID, makeDouble, true}
		return true, nil
	}

	// (iii) fall back to any other stored assignment consistent with every
	// bond already fixed plus the new request.
	ok = mt.tryStoredAssignment(st, group, local, makeDouble)
	mt.last = fixRequest{bondID, makeDouble, ok}
	return ok, nil
}

// tryStoredAssignment scans storage's recorded assignments for group,
// starting at st.activeIndex and wrapping around, for one that agrees with
// every currently-fixed bond plus (local, makeDouble). On a match it
// switches st.active/st.activeIndex to it and returns true.
func (mt *Matcher) tryStoredAssignment(st *groupState, group, local int, makeDouble bool) bool {
	n := mt.storage.DearomatizationsCount(group)
	if n == 0 {
		return false
	}
	start := st.activeIndex
	if start < 0 {
		start = 0
	}
	for k := 0; k < n; k++ {
		i := (start + k) % n
		bits := mt.storage.GetDearomatization(group, i)
		if !st.assignmentAgrees(bits, local, makeDouble) {
			continue
		}
		m := matching.NewMatching(st.graph)
		for j, b := range st.bonds {
			if bitAt(bits, j) {
				_ = m.SetEdgeMatching(b, true)
			}
		}
		st.active = m
		st.activeIndex = i
		return true
	}
	return false
}

// Fix forces bondID's bond order to double (makeDouble=true) or single
// (makeDouble=false) and pins it there: subsequent IsAbleToFix/Fix calls
// for other bonds may no longer alter bondID's state. Returns
// ErrCannotFix if no consistent assignment is reachable.
func (mt *Matcher) Fix(bondID int, makeDouble bool) error {
	group, ok := mt.bondGroup[bondID]
	if !ok {
		return ErrBondNotInAnyGroup
	}

	if mt.last.bondID != bondID || mt.last.makeDouble != makeDouble || !mt.last.ok {
		accepted, err := mt.IsAbleToFix(bondID, makeDouble)
		if err != nil {
			return err
		}
		if !accepted {
			return ErrCannotFix
		}
	}

	st := mt.state[group]
	if st.active.IsEdgeMatching(bondID) != makeDouble {
		return ErrCannotFix
	}

	local := st.localIndex[bondID]
	if !st.fixed[local] {
		e, _ := st.graph.EdgeByID(bondID)
		st.vertexFixCount[e.U]++
		st.vertexFixCount[e.V]++
	}
	st.fixed[local] = true
	st.fixedDouble[local] = makeDouble
	mt.last = fixRequest{}
	return nil
}

// Unfix releases bondID's pin, if any, so future Fix calls elsewhere in
// the group may alter its state again. The active assignment's current
// bond orders are left untouched.
func (mt *Matcher) Unfix(bondID int) error {
	group, ok := mt.bondGroup[bondID]
	if !ok {
		return ErrBondNotInAnyGroup
	}
	st := mt.state[group]
	if st == nil || !st.prepared {
		return nil
	}
	local := st.localIndex[bondID]
	if !st.fixed[local] {
		return nil
	}
	delete(st.fixed, local)
	delete(st.fixedDouble, local)
	e, _ := st.graph.EdgeByID(bondID)
	st.vertexFixCount[e.U]--
	st.vertexFixCount[e.V]--
	return nil
}

// UnfixByAtom releases the pin on every fixed bond incident to atomID.
func (mt *Matcher) UnfixByAtom(atomID int) error {
	group, ok := mt.groups.GroupOf(atomID)
	if !ok {
		return nil
	}
	st, err := mt.prepareGroup(group)
	if err != nil {
		return err
	}
	if st.vertexFixCount[atomID] <= 0 {
		return nil
	}
	for _, b := range mt.mol.IncidentBonds(atomID) {
		if _, in := st.localIndex[b]; !in {
			continue
		}
		if err := mt.Unfix(b); err != nil {
			return err
		}
	}
	return nil
}

// ActiveState returns the current bond-order assignment for group as a
// bit-packed state aligned to its bond order (the same layout
// dearomstorage.Storage uses), or an empty slice if group has no bonds.
func (mt *Matcher) ActiveState(group int) ([]byte, error) {
	st, err := mt.prepareGroup(group)
	if err != nil {
		return nil, err
	}
	out := make([]byte, (len(st.bonds)+7)/8)
	for i, b := range st.bonds {
		if st.active.IsEdgeMatching(b) {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out, nil
}
