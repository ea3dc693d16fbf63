package dearomatizer

import "errors"

var (
	// ErrTooManyHeteroatoms is returned when a group's heteroatom count
	// would require an infeasibly large Gray-code walk (2^n states).
	ErrTooManyHeteroatoms = errors.New("dearomatizer: group has too many independent heteroatoms to enumerate")
	// ErrGroupNotFound is returned for an operation referencing a group
	// index outside the detected groups.
	ErrGroupNotFound = errors.New("dearomatizer: group index out of range")
)
