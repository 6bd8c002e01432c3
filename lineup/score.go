package lineup

import (
	"errors"
	"fmt"

	"github.com/champlab/champnet/core"
	"github.com/champlab/champnet/pathenum"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("lineup: graph is nil")

	// ErrUnknownNode indicates a group member that does not exist in the
	// graph. Groups produced by pathenum over the same graph can never
	// trigger this; it signals caller misuse with hand-made groups.
	ErrUnknownNode = errors.New("lineup: node not in graph")
)

// Score computes the total score of group against g:
// the sum of member node weights plus the sum of edge weights over every
// unordered member pair for which an edge exists.
//
// Deterministic, no side effects.
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - ErrUnknownNode: a member is absent from g (wrapped with the member ID).
//
// Complexity: O(k²) for a k-member group.
func Score(g *core.Graph, group pathenum.Group) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	var total int64

	// Node score: every member must resolve.
	for _, id := range group {
		w, err := g.NodeWeight(id)
		if err != nil {
			return 0, fmt.Errorf("lineup: member %q: %w", id, ErrUnknownNode)
		}
		total += w
	}

	// Edge score: absent pairs contribute 0.
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			if w, ok := g.EdgeWeight(group[i], group[j]); ok {
				total += w
			}
		}
	}

	return total, nil
}
