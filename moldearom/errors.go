package moldearom

import "errors"

var (
	// ErrGroupNotFound is returned for a group index outside the detected
	// aromatic groups.
	ErrGroupNotFound = errors.New("moldearom: group index out of range")
	// ErrAssignmentNotFound is returned for an assignment index outside
	// the stored dearomatizations recorded for a group.
	ErrAssignmentNotFound = errors.New("moldearom: assignment index out of range")
)
