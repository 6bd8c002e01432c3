// Package core defines the weighted co-occurrence Graph shared by every
// other champnet package.
//
// A Graph is built from grouped membership observations: each node carries a
// Weight equal to the number of groups it appeared in, and each unordered
// pair of nodes carries a single edge whose weight counts how many groups
// contained both endpoints. Self-loops and parallel edges do not exist;
// repeated co-occurrences accumulate into the one edge's weight.
//
// Key guarantees:
//   - At most one edge per unordered pair; edge weight >= 1 whenever present.
//   - O(1) average neighbor and pair-weight lookup.
//   - Nodes() and Neighbors(id) enumerate in first-insertion order, so two
//     runs over identical input observe identical iteration order. Every
//     downstream traversal inherits its determinism from this contract.
//
// Concurrency: mutation is guarded by an internal RWMutex, but the intended
// life cycle is build-once, then share read-only. Nothing in champnet mutates
// a Graph after construction completes.
//
// Errors:
//
//	ErrEmptyNodeID  - node ID is the empty string.
//	ErrNodeNotFound - requested node does not exist.
//	ErrSelfPair     - co-occurrence of a node with itself.
package core
