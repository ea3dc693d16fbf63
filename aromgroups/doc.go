// Package aromgroups partitions a molecule's aromatic atoms into maximal
// connected aromatic subgraphs ("groups") and decides, per atom, whether it
// may carry an incident double bond.
//
// Detection is an iterative (explicit work-stack) flood fill over aromatic
// bonds, avoiding recursion so traversal depth is bounded by available
// memory rather than Go's call stack on large fused ring systems; this
// package follows lvlath's dfs.DFS traversal shape
// (github.com/katalvlaran/lvlath dfs/dfs.go) but with its own stack instead
// of Go call recursion.
package aromgroups
