// Package champnet turns championship roster history into a weighted
// co-occurrence graph and answers one combinatorial question over it: among
// all connected lineups of a fixed size, which scores highest — overall, or
// among lineups containing a required player?
//
// The pipeline, leaves first:
//
//	rosterdb  — SQLite-backed roster rows and CSV ingest, replayed as records
//	builder   — grouped (roster, player) records → weighted core.Graph
//	core      — the co-occurrence Graph: node weight = titles, edge weight =
//	            titles won together, deterministic insertion-order iteration
//	pathenum  — exhaustive DFS over simple paths of exactly k nodes, with
//	            canonical-set deduplication (the path library)
//	lineup    — group scoring, stable best-of selection, and the Analyzer
//	            facade (BestTeam / BestTeamWith)
//
// cmd/champnet wires the pipeline into a CLI: import rosters, inspect the
// graph, and query best lineups.
//
// Scoring a lineup sums its members' node weights and every present pair's
// edge weight; enumeration is exhaustive and exponential in k, so the engine
// targets small k (the domain default is 5) over roster-shaped graphs.
package champnet
