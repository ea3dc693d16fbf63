// Package matcher answers "can this bond be forced to single/double"
// queries and applies the fix, against a Dearomatizer's recorded
// assignments.
//
// Each group's active assignment is expanded lazily on first use: if the
// group has at least one stored bond-state assignment, the first one
// becomes active; if instead the group's storage only carries
// heteroatom-fixation states (dearomstorage.SaveJustHeteroatoms), each
// state is expanded into an explicit bond assignment and appended to
// storage on first touch; otherwise a fresh matching is computed on the
// spot using each atom's acceptsDouble as the fallback usability
// predicate, so a group never needs its own Dearomatizer pass before it
// can answer fix/unfix queries.
//
// Fix pins a bond to a chosen order; IsAbleToFix and later Fix calls on
// other bonds of the same group are forbidden from disturbing a pinned
// bond's order until Unfix releases it — this is what makes fixing two
// bonds incident to the same atom to double correctly fail.
//
// The online fix API only distinguishes single and double orders: fixing
// a bond to a triple order has no representation in this API's boolean
// makeDouble parameter, rejected by construction rather than by a runtime
// check.
package matcher
