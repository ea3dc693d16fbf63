package matching

// AugmentingPath is an ordered list of edge IDs forming an alternating
// path, returned by FindAlternatingPath and consumed by ProcessPath. It is
// an explicit value rather than state hidden on Matching so a caller can
// inspect, discard, or defer applying a path — the matcher package relies
// on this to try several candidate paths before committing to one.
type AugmentingPath struct {
	edges []int
}

// GetPath returns the path's edge IDs in traversal order.
func (p AugmentingPath) GetPath() []int {
	return append([]int(nil), p.edges...)
}

// SetPath replaces the path's edges.
func (p *AugmentingPath) SetPath(edges []int) {
	p.edges = append([]int(nil), edges...)
}

// Len reports the number of edges on the path.
func (p AugmentingPath) Len() int { return len(p.edges) }

type pathState struct {
	v    int
	need bool
}

// FindAlternatingPath searches for a shortest path from u to v whose edges
// strictly alternate matched/unmatched, where the edge leaving u must have
// matched-state uParity and the edge arriving at v must have matched-state
// vParity. This is the primitive the matcher package uses to force a
// specific bond into (or out of) the matching without discarding the rest
// of the assignment: flipping every edge ProcessPath(path) walks turns the
// edge touching u from uParity to !uParity and the edge touching v from
// vParity to !vParity, while every interior vertex keeps exactly one
// matched incident edge.
//
// Adapted from flow.bfsAugmentingPath's BFS parent-map shape
// (github.com/katalvlaran/lvlath flow/edmonds_karp.go), alternating on
// matched state instead of following residual capacity.
func (m *Matching) FindAlternatingPath(u, v int, uParity, vParity bool) (AugmentingPath, bool) {
	if u == v {
		if uParity == vParity {
			return AugmentingPath{}, true
		}
		return AugmentingPath{}, false
	}

	start := pathState{v: u, need: uParity}
	visited := map[pathState]bool{start: true}
	parentState := map[pathState]pathState{}
	parentEdge := map[pathState]int{}

	queue := []pathState{start}
	var goal pathState
	found := false

	for qi := 0; qi < len(queue) && !found; qi++ {
		cur := queue[qi]
		for _, e := range m.g.Neighbors(cur.v) {
			if !m.edgeOK(e) {
				continue
			}
			if m.matched[e.ID] != cur.need {
				continue
			}
			nb := e.Other(cur.v)
			if nb == v && cur.need == vParity {
				goal = pathState{v: nb, need: !cur.need}
				parentState[goal] = cur
				parentEdge[goal] = e.ID
				found = true
				break
			}
			next := pathState{v: nb, need: !cur.need}
			if visited[next] {
				continue
			}
			visited[next] = true
			parentState[next] = cur
			parentEdge[next] = e.ID
			queue = append(queue, next)
		}
	}

	if !found {
		return AugmentingPath{}, false
	}

	var edges []int
	for s := goal; ; {
		e, ok := parentEdge[s]
		if !ok {
			break
		}
		edges = append([]int{e}, edges...)
		s = parentState[s]
	}

	return AugmentingPath{edges: edges}, true
}

// ProcessPath toggles the matched state of every edge on path, turning
// matched edges unmatched and vice versa. Interior vertices keep exactly
// one matched incident edge before and after, so this never produces an
// invalid partial matching as long as path came from FindAlternatingPath.
func (m *Matching) ProcessPath(path AugmentingPath) {
	for _, eid := range path.edges {
		_ = m.SetEdgeMatching(eid, !m.matched[eid])
	}
}
