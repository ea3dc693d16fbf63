package aromgroups

import "errors"

// ErrInternal wraps an invariant violation detected while partitioning
// aromatic groups: a negative connectivity budget, or an aromatic atom
// with no resolvable element label.
var ErrInternal = errors.New("aromgroups: internal error")
