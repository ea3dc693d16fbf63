package matching

// blossomSolver implements Edmonds' O(V^3) general-graph maximum matching
// augmentation: a BFS from a free vertex that contracts odd cycles
// ("blossoms") into a single super-vertex via a shared base[] array so the
// search can keep treating the graph as if it had no odd cycles at all.
// index space here is 0..n-1, distinct from caller-assigned vertex IDs —
// matching.go owns that translation.
type blossomSolver struct {
	n   int
	adj [][]int
}

func newBlossomSolver(n int, adj [][]int) *blossomSolver {
	return &blossomSolver{n: n, adj: adj}
}

// augment tries to grow an augmenting path from the free vertex root and,
// if one exists, flips match[] along it in place.
func (b *blossomSolver) augment(root int, match []int) {
	n := b.n
	used := make([]bool, n)
	parent := make([]int, n)
	base := make([]int, n)
	for i := 0; i < n; i++ {
		base[i] = i
		parent[i] = -1
	}
	used[root] = true
	queue := []int{root}

	found := -1
	for qi := 0; qi < len(queue) && found == -1; qi++ {
		v := queue[qi]
		for _, to := range b.adj[v] {
			if base[v] == base[to] || match[v] == to {
				continue
			}
			if to == root || (match[to] != -1 && parent[match[to]] != -1) {
				curBase := b.lca(v, to, base, match, parent)
				blossom := make([]bool, n)
				markBlossomPath(v, curBase, to, blossom, base, match, parent)
				markBlossomPath(to, curBase, v, blossom, base, match, parent)
				for i := 0; i < n; i++ {
					if blossom[base[i]] {
						base[i] = curBase
						if !used[i] {
							used[i] = true
							queue = append(queue, i)
						}
					}
				}
			} else if parent[to] == -1 {
				parent[to] = v
				if match[to] == -1 {
					found = to
					break
				}
				used[match[to]] = true
				queue = append(queue, match[to])
			}
		}
	}

	if found == -1 {
		return
	}

	u := found
	for u != -1 {
		pv := parent[u]
		ppv := match[pv]
		match[u] = pv
		match[pv] = u
		u = ppv
	}
}

// lca finds the base of the blossom formed by the edge (v, to): the first
// vertex common to both v's and to's alternating paths back to the BFS
// root, walking through base[] so already-contracted blossoms count as one
// vertex.
func (b *blossomSolver) lca(v, to int, base, match, parent []int) int {
	visited := make([]bool, b.n)

	x := v
	for {
		x = base[x]
		visited[x] = true
		if match[x] == -1 {
			break
		}
		x = parent[match[x]]
	}

	y := to
	for {
		y = base[y]
		if visited[y] {
			return y
		}
		y = parent[match[y]]
	}
}

// markBlossomPath walks the alternating path from v back up to the
// blossom base, marking every super-vertex it passes through and rewiring
// parent pointers so the contracted vertices remain reachable from child
// once the blossom is shrunk.
func markBlossomPath(v, base0, child int, blossom []bool, base, match, parent []int) {
	for base[v] != base0 {
		blossom[base[v]] = true
		blossom[base[match[v]]] = true
		parent[v] = child
		child = match[v]
		v = parent[match[v]]
	}
}
