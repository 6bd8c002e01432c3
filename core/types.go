// File: types.go
// Role: Node and Graph declarations, sentinel errors, constructor.
//
// Determinism:
//   - order and nbrs record first-insertion sequence; all public enumeration
//     methods replay these slices, never map iteration order.
// Concurrency:
//   - A single RWMutex guards all state. Lock granularity is deliberately
//     coarse: the Graph is write-hot only during construction.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates an operation received an empty node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfPair indicates a co-occurrence was recorded between a node and itself.
	ErrSelfPair = errors.New("core: self co-occurrence not allowed")
)

// Node is a graph entity together with its aggregate appearance count.
//
// ID uniquely identifies the node within its Graph. Weight is the number of
// groups the node appeared in; it is derived during construction and never
// mutated afterwards.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Weight counts the distinct groups containing this node.
	Weight int64
}

// Graph is the in-memory weighted co-occurrence graph.
//
// It is undirected, loop-free, and multi-edge-free: an unordered pair of
// nodes maps to at most one weight, stored symmetrically in adj for O(1)
// lookup from either endpoint.
type Graph struct {
	mu sync.RWMutex

	nodes map[string]*Node            // node ID → node
	order []string                    // node IDs in first-insertion order
	adj   map[string]map[string]int64 // u → v → co-occurrence weight (symmetric)
	nbrs  map[string][]string         // u → neighbor IDs in first-insertion order
	edges int                         // number of distinct unordered pairs
}

// NewGraph creates an empty co-occurrence Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		adj:   make(map[string]map[string]int64),
		nbrs:  make(map[string][]string),
	}
}
