package matcher

import "errors"

var (
	// ErrBondNotInAnyGroup is returned for a bond ID outside every detected
	// aromatic group.
	ErrBondNotInAnyGroup = errors.New("matcher: bond is not part of any aromatic group")
	// ErrCannotFix is returned by Fix when no recorded assignment and no
	// alternating-path swap can give the requested bond the requested
	// state without breaking some other bond's fixed state.
	ErrCannotFix = errors.New("matcher: bond cannot be fixed to the requested state")
)
