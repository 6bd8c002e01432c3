// Package pathenum exhaustively enumerates the distinct k-node groups of a
// core.Graph that are reachable as a simple path of exactly k nodes.
//
// The walk is depth-first with backtracking: from every node of the graph
// (in core's deterministic first-insertion order) it extends a current path
// through unvisited neighbors; whenever the path reaches length k, the
// member set's canonical (sorted) form is checked against a dedup set and
// the path is recorded once per distinct set, in first-discovery order.
//
// Key features:
//   - Enumerate(g, k, opts...): full enumeration into a Library
//   - WithContext(ctx): cooperative cancellation mid-walk
//   - WithWorkers(n): per-start-node parallel walks, merged back into the
//     exact serial order (output is bit-identical to the serial run)
//   - WithOnGroup(fn): hook invoked once per recorded group, in library order
//
// Complexity: worst case exponential in k and the branching factor — this is
// an exhaustive simple-path search, not a polynomial algorithm. The dedup set
// bounds duplicate recording but not traversal work, so the package is meant
// for small k (the domain default is 5) over co-occurrence graphs of the
// expected density. Callers needing larger k must thin the graph first.
//
// Errors:
//
//	ErrGraphNil     - g is nil.
//	ErrNonPositiveK - k <= 0.
//	context.Canceled / context.DeadlineExceeded - ctx fired mid-walk.
package pathenum
