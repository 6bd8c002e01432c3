package lineup

import (
	"github.com/champlab/champnet/core"
	"github.com/champlab/champnet/pathenum"
)

// Result pairs a selected lineup with its score.
type Result struct {
	// Lineup holds the winning group, in its recorded discovery order.
	Lineup pathenum.Group

	// Score is the lineup's node+edge score against the graph it was
	// selected from.
	Score int64
}

// FilterByMember returns, preserving input order, exactly the groups that
// contain the given member. A member absent from every group (including one
// absent from the graph entirely) yields an empty result, not an error.
// Complexity: O(n·k) over n candidate groups.
func FilterByMember(groups []pathenum.Group, member string) []pathenum.Group {
	var out []pathenum.Group
	for _, gr := range groups {
		if gr.Contains(member) {
			out = append(out, gr)
		}
	}

	return out
}

// SelectBest scores every candidate and returns the group with the strictly
// highest score. Ties keep the earliest candidate in input order, so a
// deterministic input sequence makes selection fully reproducible.
//
// An empty candidate sequence returns (nil, nil): a valid "no candidates"
// terminal state, not an error.
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - ErrUnknownNode: propagated from Score on caller-supplied groups.
//
// Complexity: O(n·k²) over n candidate groups.
func SelectBest(g *core.Graph, groups []pathenum.Group) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var best *Result
	for _, gr := range groups {
		s, err := Score(g, gr)
		if err != nil {
			return nil, err
		}
		if best == nil || s > best.Score {
			best = &Result{Lineup: gr, Score: s}
		}
	}

	return best, nil
}
