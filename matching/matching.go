package matching

import "sort"

// Matching tracks which edges of a Graph are currently "matched" (i.e.
// assigned a double bond) subject to an optional vertex/edge usability
// filter.
type Matching struct {
	g *Graph

	vertexUsable VertexPredicate
	edgeUsable   EdgePredicate

	matched map[int]bool // edge id -> matched
	partner map[int]int  // vertex id -> matching edge id
}

// NewMatching returns a Matching with every edge initially unmatched.
func NewMatching(g *Graph, opts ...Option) *Matching {
	m := &Matching{
		g:       g,
		matched: make(map[int]bool),
		partner: make(map[int]int),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Matching) vertexOK(v int) bool {
	return m.vertexUsable == nil || m.vertexUsable(v)
}

func (m *Matching) edgeOK(e Edge) bool {
	if !m.vertexOK(e.U) || !m.vertexOK(e.V) {
		return false
	}
	return m.edgeUsable == nil || m.edgeUsable(e)
}

// IsEdgeMatching reports whether edgeID currently carries a double bond.
func (m *Matching) IsEdgeMatching(edgeID int) bool {
	return m.matched[edgeID]
}

// IsVertexInMatching reports whether v is currently covered by a matched
// edge.
func (m *Matching) IsVertexInMatching(v int) bool {
	_, ok := m.partner[v]
	return ok
}

// GetMatchedEdge returns the edge currently matching v, if any.
func (m *Matching) GetMatchedEdge(v int) (int, bool) {
	id, ok := m.partner[v]
	return id, ok
}

// SetEdgeMatching forces edgeID's matched state, updating both endpoints'
// partner bookkeeping. It is the primitive RemoveVertexFromMatching and
// ProcessPath build on; callers are responsible for keeping the matching a
// valid one (each vertex touches at most one matched edge).
func (m *Matching) SetEdgeMatching(edgeID int, state bool) error {
	e, ok := m.g.EdgeByID(edgeID)
	if !ok {
		return ErrEdgeNotFound
	}
	if m.matched[edgeID] == state {
		return nil
	}
	m.matched[edgeID] = state
	if state {
		m.partner[e.U] = edgeID
		m.partner[e.V] = edgeID
	} else {
		if m.partner[e.U] == edgeID {
			delete(m.partner, e.U)
		}
		if m.partner[e.V] == edgeID {
			delete(m.partner, e.V)
		}
	}
	return nil
}

// RemoveVertexFromMatching unmatches v's current edge, leaving both its
// endpoints free.
func (m *Matching) RemoveVertexFromMatching(v int) {
	id, ok := m.partner[v]
	if !ok {
		return
	}
	_ = m.SetEdgeMatching(id, false)
}

// GetEdgesState returns a bit-packed snapshot of every edge's matched
// state, one bit per edge in ascending edge-ID order (bit i belongs to the
// i-th smallest edge ID), suitable for storage alongside
// dearomstorage.Storage assignments.
func (m *Matching) GetEdgesState() []byte {
	edges := m.g.Edges()
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })

	state := make([]byte, (len(edges)+7)/8)
	for i, e := range edges {
		if m.matched[e.ID] {
			state[i/8] |= 1 << uint(i%8)
		}
	}
	return state
}

// EdgeOrder returns the graph's edges in the same ascending-ID order
// GetEdgesState packs bits against, so callers can align a returned bitset
// back to specific edge IDs.
func (m *Matching) EdgeOrder() []Edge {
	edges := m.g.Edges()
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })
	return edges
}

// FindMatching recomputes a maximum matching over the usable subgraph from
// scratch, discarding any previously matched edges among usable vertices.
// It returns true if the resulting matching is perfect (every usable
// vertex is covered).
//
// The search seeds greedily — each free usable vertex claims its first
// available usable neighbor, the same nearest-available-partner shape as
// tsp.greedyMatch — then completes any vertices the greedy pass missed
// with Edmonds' blossom-contraction augmenting-path search (blossom.go),
// so odd-length aromatic rings are handled as well as even ones.
func (m *Matching) FindMatching() bool {
	usable := make([]int, 0, len(m.g.Vertices()))
	for _, v := range m.g.Vertices() {
		if m.vertexOK(v) {
			usable = append(usable, v)
		}
	}
	if len(usable) == 0 {
		return true
	}

	idx := make(map[int]int, len(usable))
	for i, v := range usable {
		idx[v] = i
	}
	n := len(usable)
	adj := make([][]int, n)
	edgeOf := make(map[[2]int]int, n)
	for _, v := range usable {
		for _, e := range m.g.Neighbors(v) {
			if !m.edgeOK(e) {
				continue
			}
			nb := e.Other(v)
			j, ok := idx[nb]
			if !ok {
				continue
			}
			adj[idx[v]] = append(adj[idx[v]], j)
			edgeOf[[2]int{idx[v], j}] = e.ID
			edgeOf[[2]int{j, idx[v]}] = e.ID
		}
	}

	for _, v := range usable {
		if _, ok := m.partner[v]; ok {
			m.RemoveVertexFromMatching(v)
		}
	}

	match := make([]int, n)
	for i := range match {
		match[i] = -1
	}

	greedySeed(adj, match)
	b := newBlossomSolver(n, adj)
	for i := 0; i < n; i++ {
		if match[i] != -1 {
			continue
		}
		b.augment(i, match)
	}

	perfect := true
	for i := 0; i < n; i++ {
		if match[i] == -1 {
			perfect = false
			continue
		}
		if match[i] < i {
			continue
		}
		eid := edgeOf[[2]int{i, match[i]}]
		_ = m.SetEdgeMatching(eid, true)
	}

	return perfect
}

// greedySeed performs one pass, matching each still-free vertex to its
// first still-free neighbor.
func greedySeed(adj [][]int, match []int) {
	for v := range adj {
		if match[v] != -1 {
			continue
		}
		for _, nb := range adj[v] {
			if match[nb] == -1 {
				match[v] = nb
				match[nb] = v
				break
			}
		}
	}
}
