package builder

import (
	"fmt"

	"github.com/champlab/champnet/core"
)

// Record is one membership observation: Member belonged to the group
// identified by GroupID. GroupID is an opaque comparable key; Build uses it
// only to partition records and attaches no further meaning to it.
type Record struct {
	// GroupID identifies the group (e.g., one championship roster).
	GroupID string

	// Member is the entity name; must be non-empty.
	Member string
}

// Build constructs a weighted co-occurrence graph from the given records.
//
// Stages:
//  1. Scan records in order, validating member names and deduping members
//     within each group; register one appearance per distinct (group, member).
//  2. For each group in first-seen order, add one co-occurrence per unordered
//     pair of its deduped members.
//
// A member appearing twice in one group's raw records counts once: it neither
// self-pairs nor double-counts the node weight.
//
// Errors:
//   - ErrEmptyMemberName: wrapped with the offending record index.
//
// Complexity: O(R + Σ m_g²) for R records and per-group member counts m_g.
func Build(records []Record) (*core.Graph, error) {
	g := core.NewGraph()

	var groupOrder []string                       // group IDs in first-seen order
	members := make(map[string][]string)          // group ID → deduped members, in order
	seen := make(map[string]map[string]struct{})  // group ID → member set

	for i, r := range records {
		if r.Member == "" {
			return nil, fmt.Errorf("builder: record %d: %w", i, ErrEmptyMemberName)
		}

		if _, ok := seen[r.GroupID]; !ok {
			seen[r.GroupID] = make(map[string]struct{})
			groupOrder = append(groupOrder, r.GroupID)
		}
		if _, dup := seen[r.GroupID][r.Member]; dup {
			continue
		}
		seen[r.GroupID][r.Member] = struct{}{}
		members[r.GroupID] = append(members[r.GroupID], r.Member)

		if err := g.AddAppearance(r.Member); err != nil {
			return nil, fmt.Errorf("builder: record %d: %w", i, err)
		}
	}

	for _, gid := range groupOrder {
		ms := members[gid]
		for i := 0; i < len(ms); i++ {
			for j := i + 1; j < len(ms); j++ {
				if err := g.AddCoOccurrence(ms[i], ms[j]); err != nil {
					return nil, fmt.Errorf("builder: group %q: %w", gid, err)
				}
			}
		}
	}

	return g, nil
}
