// Package moldearom applies a stored Kekulé assignment back onto the host
// molecule.
//
// DearomatizeGroup writes a single stored assignment's bond orders onto
// one group. DearomatizeMolecule is the convenience entry point: run the
// enumerator in SaveOne mode and apply assignment 0 to every group that
// produced one, reporting per-group detail alongside a single aggregate
// "all groups dearomatized" boolean.
package moldearom
