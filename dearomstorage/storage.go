package dearomstorage

// Storage is the flat, append-only store of per-group aromatic bond
// indices, heteroatom indices, and dearomatization/heteroatom-state
// assignments produced by the Dearomatizer and consumed by
// DearomatizationMatcher.
//
// Bond and heteroatom index lists are kept as one slice per group. The two
// assignment families (bond-state and heteroatom-state rows) are each one
// append-only list of rows partitioned by a parallel offset+count pair per
// group, mirroring DearomatizationsStorage's arrays in the source toolkit. Assignments are
// append-only: once sealed, an earlier group cannot receive more entries
// (ErrOutOfOrder), matching the source's offset-consistency checks in
// addGroupDearomatization/addGroupHeteroAtomsState.
type Storage struct {
	mode Mode

	groupBonds  [][]int
	groupHetero [][]int

	assignOffset   []int
	assignCount    []int
	assignments    [][]byte
	openAssignGrp  int

	heteroStOffset []int
	heteroStCount  []int
	heteroStates   [][]byte
	openHeteroGrp  int
}

// NewStorage returns an empty storage using the given recording Mode.
func NewStorage(mode Mode) *Storage {
	return &Storage{
		mode:          mode,
		openAssignGrp: -1,
		openHeteroGrp: -1,
	}
}

// Mode returns the storage's recording mode: the one it was constructed
// with, or the one read by the last successful LoadBinary.
func (s *Storage) Mode() Mode { return s.mode }

// GroupsCount returns the number of groups the storage is sized for.
func (s *Storage) GroupsCount() int { return len(s.groupBonds) }

// SetGroupsCount (re)sizes the storage to hold n groups, discarding any
// existing per-group index and assignment data.
func (s *Storage) SetGroupsCount(n int) {
	s.groupBonds = make([][]int, n)
	s.groupHetero = make([][]int, n)
	s.Clear()
}

// ClearIndices discards the per-group bond/heteroatom index lists while
// keeping GroupsCount unchanged, and also clears assignment state since it
// is indexed against those lists.
func (s *Storage) ClearIndices() {
	for i := range s.groupBonds {
		s.groupBonds[i] = nil
		s.groupHetero[i] = nil
	}
	s.Clear()
}

// Clear discards all dearomatization and heteroatom-state assignments,
// keeping the per-group bond/heteroatom index lists intact.
func (s *Storage) Clear() {
	s.ClearBondsState()
	s.ClearHeteroAtomsState()
}

// ClearBondsState discards only the dearomatization bond-state assignments.
func (s *Storage) ClearBondsState() {
	n := len(s.groupBonds)
	s.assignOffset = make([]int, n)
	s.assignCount = make([]int, n)
	s.assignments = nil
	s.openAssignGrp = -1
}

// ClearHeteroAtomsState discards only the heteroatom-state assignments.
func (s *Storage) ClearHeteroAtomsState() {
	n := len(s.groupBonds)
	s.heteroStOffset = make([]int, n)
	s.heteroStCount = make([]int, n)
	s.heteroStates = nil
	s.openHeteroGrp = -1
}

// SetGroup records group's aromatic bond index list and (optionally)
// heteroatom index list. Bonds/heteroAtoms are copied defensively.
func (s *Storage) SetGroup(group int, bonds []int, heteroAtoms []int) error {
	if group < 0 || group >= len(s.groupBonds) {
		return ErrGroupOutOfRange
	}
	s.groupBonds[group] = append([]int(nil), bonds...)
	s.groupHetero[group] = append([]int(nil), heteroAtoms...)
	return nil
}

// GroupBonds returns the aromatic bond index list recorded for group.
func (s *Storage) GroupBonds(group int) []int {
	if group < 0 || group >= len(s.groupBonds) {
		return nil
	}
	return s.groupBonds[group]
}

// GroupHeteroAtoms returns the heteroatom index list recorded for group.
func (s *Storage) GroupHeteroAtoms(group int) []int {
	if group < 0 || group >= len(s.groupHetero) {
		return nil
	}
	return s.groupHetero[group]
}

// AddGroupDearomatization appends one bit-packed bond-state assignment
// (one bit per entry of GroupBonds(group), 1 meaning a double bond) to
// group's assignment list. Groups must be appended in non-decreasing
// order; attempting to append to a group lower than the currently open one
// returns ErrOutOfOrder.
func (s *Storage) AddGroupDearomatization(group int, bits []byte) error {
	if group < 0 || group >= len(s.groupBonds) {
		return ErrGroupOutOfRange
	}
	if group < s.openAssignGrp {
		return ErrOutOfOrder
	}
	if group != s.openAssignGrp {
		s.assignOffset[group] = len(s.assignments)
		s.openAssignGrp = group
	}
	s.assignments = append(s.assignments, append([]byte(nil), bits...))
	s.assignCount[group]++
	return nil
}

// AddGroupHeteroAtomsState appends one bit-packed heteroatom fixation state
// (one bit per entry of GroupHeteroAtoms(group)) to group's state list.
// Same append-only ordering discipline as AddGroupDearomatization.
func (s *Storage) AddGroupHeteroAtomsState(group int, bits []byte) error {
	if group < 0 || group >= len(s.groupBonds) {
		return ErrGroupOutOfRange
	}
	if group < s.openHeteroGrp {
		return ErrOutOfOrder
	}
	if group != s.openHeteroGrp {
		s.heteroStOffset[group] = len(s.heteroStates)
		s.openHeteroGrp = group
	}
	s.heteroStates = append(s.heteroStates, append([]byte(nil), bits...))
	s.heteroStCount[group]++
	return nil
}

// DearomatizationsCount returns the number of bond-state assignments
// stored for group.
func (s *Storage) DearomatizationsCount(group int) int {
	if group < 0 || group >= len(s.assignCount) {
		return 0
	}
	return s.assignCount[group]
}

// HeteroAtomsStatesCount returns the number of heteroatom-state
// assignments stored for group.
func (s *Storage) HeteroAtomsStatesCount(group int) int {
	if group < 0 || group >= len(s.heteroStCount) {
		return 0
	}
	return s.heteroStCount[group]
}

// GetDearomatization returns the index-th bond-state assignment stored for
// group, or nil if out of range.
func (s *Storage) GetDearomatization(group, index int) []byte {
	if group < 0 || group >= len(s.assignCount) || index < 0 || index >= s.assignCount[group] {
		return nil
	}
	return s.assignments[s.assignOffset[group]+index]
}

// GetHeteroAtomsState returns the index-th heteroatom-state assignment
// stored for group, or nil if out of range.
func (s *Storage) GetHeteroAtomsState(group, index int) []byte {
	if group < 0 || group >= len(s.heteroStCount) || index < 0 || index >= s.heteroStCount[group] {
		return nil
	}
	return s.heteroStates[s.heteroStOffset[group]+index]
}
