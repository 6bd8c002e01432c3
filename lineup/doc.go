// Package lineup scores k-node groups against a co-occurrence graph and
// selects the maximum-scoring one.
//
// A group's score is the sum of its members' node weights plus the sum of
// edge weights over every member pair that has an edge; pairs without an
// edge contribute nothing (unrewarded, never penalized).
//
// Selection is stable: strictly higher scores win, and on ties the group
// encountered first in the candidate sequence is kept. Reproducibility of
// the tie-break therefore follows from the enumeration order being
// deterministic, which pathenum guarantees. An empty candidate sequence is
// a valid terminal state and selects nothing — it is not an error.
//
// Analyzer composes enumeration, filtering, and selection into the two
// queries callers actually ask: best group overall, and best group
// containing a designated member.
//
// Errors:
//
//	ErrGraphNil    - graph argument is nil.
//	ErrUnknownNode - scoring a group containing a node absent from the graph
//	                 (caller misuse: groups must come from the same graph).
package lineup
