// File: methods_nodes.go
// Role: Node lifecycle and node-level queries.
//
// Determinism:
//   - Nodes() returns IDs in first-insertion order, not sorted and not map order.
package core

// AddAppearance records one group appearance for the node with the given id,
// creating the node with Weight 1 if it does not exist yet.
//
// This is the only way nodes enter the Graph: a node's Weight therefore always
// equals the number of AddAppearance calls made for it, which the builder
// issues exactly once per (group, member) pair.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddAppearance(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if n, ok := g.nodes[id]; ok {
		n.Weight++
		return nil
	}

	g.nodes[id] = &Node{ID: id, Weight: 1}
	g.order = append(g.order, id)

	return nil
}

// HasNode reports whether a node with the given id exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// NodeWeight returns the appearance count of the node with the given id.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity: O(1).
func (g *Graph) NodeWeight(id string) (int64, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return n.Weight, nil
}

// Nodes returns all node IDs in first-insertion order.
// The returned slice is a copy; callers may mutate it freely.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes in the graph.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}
