// File: methods_edges.go
// Role: Co-occurrence (edge) accumulation and pair-level queries.
//
// Determinism:
//   - Neighbors(id) returns neighbor IDs in first-insertion order.
// Invariant:
//   - adj is symmetric: adj[u][v] == adj[v][u] for every stored pair.
package core

// AddCoOccurrence records that u and v appeared together in one group,
// incrementing the pair's edge weight by 1 (creating the edge with weight 1
// on first co-occurrence). Both nodes must already exist.
//
// Errors:
//   - ErrEmptyNodeID: if either id == "".
//   - ErrSelfPair: if u == v.
//   - ErrNodeNotFound: if either node does not exist.
//
// Complexity: O(1) amortized.
func (g *Graph) AddCoOccurrence(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	if u == v {
		return ErrSelfPair
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[u]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes[v]; !ok {
		return ErrNodeNotFound
	}

	if _, ok := g.adj[u][v]; ok {
		g.adj[u][v]++
		g.adj[v][u]++
		return nil
	}

	// First co-occurrence of this pair: create both symmetric entries and
	// register each endpoint in the other's ordered neighbor list.
	if g.adj[u] == nil {
		g.adj[u] = make(map[string]int64)
	}
	if g.adj[v] == nil {
		g.adj[v] = make(map[string]int64)
	}
	g.adj[u][v] = 1
	g.adj[v][u] = 1
	g.nbrs[u] = append(g.nbrs[u], v)
	g.nbrs[v] = append(g.nbrs[v], u)
	g.edges++

	return nil
}

// EdgeWeight returns the co-occurrence weight of the unordered pair {u, v}
// and whether such an edge exists. Missing nodes or absent pairs report
// (0, false); absence is a valid answer, not an error.
// Complexity: O(1).
func (g *Graph) EdgeWeight(u, v string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adj[u][v]

	return w, ok
}

// Neighbors returns the IDs adjacent to the given node in first-insertion
// order. The returned slice is a copy.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity: O(d) where d is the node's degree.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	out := make([]string, len(g.nbrs[id]))
	copy(out, g.nbrs[id])

	return out, nil
}

// EdgeCount returns the number of distinct unordered pairs with an edge.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
