package lineup

import (
	"github.com/champlab/champnet/core"
	"github.com/champlab/champnet/pathenum"
)

// Analyzer is the query facade over one graph and one precomputed path
// library. It exposes exactly the two questions external callers ask and
// nothing else; scoring and selection always run against the same graph the
// library was enumerated from.
type Analyzer struct {
	graph *core.Graph
	lib   *pathenum.Library
}

// NewAnalyzer enumerates all distinct k-node groups of g once and wraps the
// result for repeated queries. Enumeration options (context, workers) pass
// straight through to pathenum.Enumerate.
//
// Errors: those of pathenum.Enumerate (nil graph, non-positive k,
// cancellation).
func NewAnalyzer(g *core.Graph, k int, opts ...pathenum.Option) (*Analyzer, error) {
	lib, err := pathenum.Enumerate(g, k, opts...)
	if err != nil {
		return nil, err
	}

	return &Analyzer{graph: g, lib: lib}, nil
}

// BestTeam returns the maximum-scoring group over the whole library, or
// (nil, nil) when the library is empty.
func (a *Analyzer) BestTeam() (*Result, error) {
	return SelectBest(a.graph, a.lib.Groups())
}

// BestTeamWith returns the maximum-scoring group among those containing the
// given member, or (nil, nil) when no group contains it.
func (a *Analyzer) BestTeamWith(member string) (*Result, error) {
	return SelectBest(a.graph, FilterByMember(a.lib.Groups(), member))
}

// Library exposes the precomputed path library for callers that want the
// raw enumeration (diagnostics, exports).
func (a *Analyzer) Library() *pathenum.Library { return a.lib }
