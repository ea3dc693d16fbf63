// Package matching finds and incrementally repairs maximum matchings on
// small general graphs — the combinatorial core shared by every
// dearomatization: a Kekulé assignment is exactly a perfect matching over a
// group's aromatic bonds where each matched bond becomes a double bond.
//
// FindMatching seeds a matching greedily (the same nearest-available-
// partner heuristic as tsp.greedyMatch in
// github.com/katalvlaran/lvlath tsp/matching.go) and completes it with
// Edmonds' blossom-contraction augmenting-path search, so odd aromatic
// rings match correctly and not just bipartite ones. FindAlternatingPath
// reuses the BFS parent-map shape of flow.bfsAugmentingPath
// (github.com/katalvlaran/lvlath flow/edmonds_karp.go) adapted to alternate
// strictly between matched and unmatched edges instead of following
// residual capacity.
//
// Per the redesigned concurrency model, AugmentingPath is an explicit value
// type returned by FindAlternatingPath and consumed by ProcessPath, rather
// than hidden mutable state on the Matching receiver — callers (the
// matcher package) own the decision of when to apply a path.
package matching
