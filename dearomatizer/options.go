package dearomatizer

import "github.com/gokekule/dearom/dearomstorage"

// Option configures a Dearomatizer at construction time. This replaces the
// source toolkit's process-wide dearomatizationParams default with an
// explicit, per-call functional option, in the style of this module's
// teacher package (bfs.Option/dfs.Option in
// github.com/katalvlaran/lvlath).
type Option func(*Dearomatizer)

// WithMode selects what gets recorded per group. Default
// dearomstorage.SaveOne.
func WithMode(mode dearomstorage.Mode) Option {
	return func(d *Dearomatizer) { d.mode = mode }
}

// WithMaxHeteroatomBits caps the number of independent heteroatoms a group
// may have before EnumerateGroup refuses with ErrTooManyHeteroatoms
// (2^n Gray-code states would otherwise be attempted). Default 20.
func WithMaxHeteroatomBits(n int) Option {
	return func(d *Dearomatizer) { d.maxHeteroBits = n }
}

// WithMaxEquivalentAssignments caps how many alternating-cycle swaps the
// SaveAll equivalent-matching walk performs for each heteroatom state
// before it stops branching further. The number of recorded assignments
// is not itself capped at n. Default 64.
func WithMaxEquivalentAssignments(n int) Option {
	return func(d *Dearomatizer) { d.maxEquivalents = n }
}
