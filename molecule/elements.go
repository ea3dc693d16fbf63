// File: elements.go
// Role: Periodic-table queries consumed by AromaticGroups and the
// Dearomatizer: maximum connectivity, periodic group, and vacant
// π-orbitals/lone-pairs. No element-table library fits this need, so this
// is a small, self-contained table covering the elements exercised by
// this module's test molecules (H, C, N, O, F, P, S, Cl, Br, I).
package molecule

import "errors"

// ErrUnknownElement is returned for an atomic number this table does not
// cover.
var ErrUnknownElement = errors.New("molecule: unknown element")

// Atomic numbers for the elements this table covers.
const (
	H  = 1
	C  = 6
	N  = 7
	O  = 8
	F  = 9
	P  = 15
	S  = 16
	Cl = 17
	Br = 35
	I  = 53
)

var normalValence = map[int]int{
	H: 1, C: 4, N: 3, O: 2, F: 1, P: 3, S: 2, Cl: 1, Br: 1, I: 1,
}

// aromaticBump adds headroom to MaximumConnectivity for elements that carry
// more than one lone pair and can therefore donate one into a ring π bond
// (e.g. furan/thiophene O/S) without the usual bonding valence changing.
var aromaticBump = map[int]int{
	O: 1, S: 1,
}

var elementGroup = map[int]int{
	H: 1, C: 14, N: 15, O: 16, F: 17, P: 15, S: 16, Cl: 17, Br: 17, I: 17,
}

// baseLonePairsByGroup is the periodic-group baseline for a neutral,
// non-radical atom's non-bonding lone pairs.
var baseLonePairsByGroup = map[int]int{
	14: 0, 15: 1, 16: 2, 17: 3,
}

// MaximumConnectivity returns the maximum number of bonds (by order-sum)
// an atom of the given element, charge and radical state may carry. When
// withAromaticEdges is true, elements with spare lone pairs get extra
// headroom to admit a ring double bond donated from a lone pair (see
// aromaticBump).
func MaximumConnectivity(element, charge, radical int, withAromaticEdges bool) (int, error) {
	base, ok := normalValence[element]
	if !ok {
		return 0, ErrUnknownElement
	}

	conn := base + charge - radical
	if withAromaticEdges {
		conn += aromaticBump[element]
	}
	if conn < 0 {
		conn = 0
	}

	return conn, nil
}

// Group returns the periodic-table group number for an element, or 0 if
// unknown.
func Group(element int) int {
	return elementGroup[element]
}

// VacantPiOrbitals returns the number of vacant π orbitals and, via the
// second return value, the number of lone pairs available to an atom of the
// given periodic group, charge and radical state. maxConn is accepted for
// API parity with the source toolkit's signature but does not otherwise
// refine this simplified table.
func VacantPiOrbitals(group, charge, radical, maxConn int) (vacant, lonePairs int) {
	lonePairs = baseLonePairsByGroup[group] - charge - radical
	if lonePairs < 0 {
		lonePairs = 0
	}
	if charge > 0 {
		vacant = charge
	}

	return vacant, lonePairs
}
