// Package molecule is the minimal host-graph abstraction the dearomatization
// engine runs against: atoms, bonds, a handful of periodic-table queries, and
// a structural aromaticity verifier.
//
// It exposes the semantic interfaces consumed from the host molecule —
// vertex/edge iteration, per-atom/per-bond accessors, element utilities,
// and a re-aromatization check — without pulling in a full cheminformatics
// toolkit. Everything outside that surface (SMILES parsing, ring
// perception beyond Kekulé validity, 3D coordinates, ...) is out of scope.
//
// Molecule is adapted from lvlath's core.Graph: same RWMutex-guarded
// map-of-structs storage and functional-option construction, with
// vertices/edges renamed to atoms/bonds and chemistry attributes (element,
// charge, radical, aromaticity, bond order) in place of generic weights.
package molecule
