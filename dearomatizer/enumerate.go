package dearomatizer

import "github.com/gokekule/dearom/matching"

// enumerateEquivalent records m's current assignment and every equivalent
// assignment reachable by swapping a matched, not-yet-fixed edge along an
// alternating cycle it closes — Dearomatizer::_enumerateMatching in the
// source toolkit. Swapping an edge e=(u,v) means flipping e itself plus the
// alternating path FindAlternatingPath(u, v, false, false) returns: that
// path never passes through e (e is matched, so it can never satisfy the
// path's "start unmatched" requirement), and e closes it into a cycle, so
// flipping the whole cycle produces another valid perfect matching. e is
// held fixed for the recursive step so the same swap is not attempted
// twice.
//
// The walk is iterative: an explicit stack of enter/keep/flip actions
// stands in for the source's recursive push-state/recurse/pop-state
// discipline, so traversal depth is bounded by available memory rather
// than Go's call stack.
func enumerateEquivalent(m *matching.Matching, budget *int, seen map[string]bool, record func()) {
	type pendingSwap struct {
		edgeID int
		path   matching.AugmentingPath
	}

	type action struct {
		enter    bool
		resolve  *pendingSwap
		leaveTwo bool
	}

	fixed := make(map[int]bool)
	stack := []action{{enter: true}}

	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case a.enter:
			// Branch A re-enters with an unchanged (already seen) state, so
			// only the recording is deduplicated; the search for further
			// swaps still runs with the newly fixed edge.
			key := string(m.GetEdgesState())
			if !seen[key] {
				seen[key] = true
				record()
			}
			if *budget <= 0 {
				continue
			}

			swap, ok := findSwappableEdge(m, fixed)
			if !ok {
				continue
			}
			*budget--
			fixed[swap.edgeID] = true

			// Branch A: leave e matched, recurse now; branch B (flip the
			// whole e+path cycle, recurse, then undo) is queued to run
			// afterward.
			stack = append(stack, action{resolve: &pendingSwap{edgeID: swap.edgeID, path: swap.path}})
			stack = append(stack, action{enter: true})

		case a.resolve != nil && !a.leaveTwo:
			// First resume: branch A's subtree is done. Flip the cycle into
			// branch B.
			_ = m.SetEdgeMatching(a.resolve.edgeID, !m.IsEdgeMatching(a.resolve.edgeID))
			m.ProcessPath(a.resolve.path)
			stack = append(stack, action{resolve: a.resolve, leaveTwo: true})
			stack = append(stack, action{enter: true})

		case a.resolve != nil && a.leaveTwo:
			// Second resume: branch B's subtree is done. Flipping the same
			// cycle again restores the pre-branch-B state exactly.
			_ = m.SetEdgeMatching(a.resolve.edgeID, !m.IsEdgeMatching(a.resolve.edgeID))
			m.ProcessPath(a.resolve.path)
			delete(fixed, a.resolve.edgeID)
		}
	}
}

type swapCandidate struct {
	edgeID int
	path   matching.AugmentingPath
}

// findSwappableEdge scans m's matched, not-fixed edges in ascending edge-ID
// order and returns the first one with an alternating path between its
// endpoints that does not traverse it — i.e. the first edge with an
// equivalent (swapped) matching available.
func findSwappableEdge(m *matching.Matching, fixed map[int]bool) (swapCandidate, bool) {
	for _, e := range m.EdgeOrder() {
		if fixed[e.ID] || !m.IsEdgeMatching(e.ID) {
			continue
		}
		path, ok := m.FindAlternatingPath(e.U, e.V, false, false)
		if ok && path.Len() > 0 {
			return swapCandidate{edgeID: e.ID, path: path}, true
		}
	}
	return swapCandidate{}, false
}
