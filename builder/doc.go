// Package builder turns grouped membership records into a core.Graph.
//
// Input is a flat sequence of (GroupID, Member) records, already cleaned by
// whatever collaborator produced them (retrieval, parsing, and season/year
// normalization happen upstream). Build partitions the records by GroupID,
// dedupes members within each group, and accumulates:
//
//   - node weight: the number of distinct groups containing the member;
//   - edge weight: for every unordered member pair inside a group, +1.
//
// A group with a single member contributes no edges; that is a valid input,
// not an error. The only malformed input is an empty member name.
//
// Determinism: nodes enter the graph in first-appearance order over the
// record stream, and neighbor lists follow the within-group appearance order,
// so identical input order yields an identical graph, byte for byte.
//
// Errors:
//
//	ErrEmptyMemberName - a record carries an empty member name.
package builder
