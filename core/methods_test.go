package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champlab/champnet/core"
)

func TestAddAppearance_EmptyID(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddAppearance(""), core.ErrEmptyNodeID)
}

func TestAddAppearance_CreatesThenAccumulates(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddAppearance("A"))
	require.NoError(t, g.AddAppearance("A"))
	require.NoError(t, g.AddAppearance("A"))

	w, err := g.NodeWeight("A")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), w)
	assert.Equal(t, 1, g.NodeCount())
}

func TestNodeWeight_Missing(t *testing.T) {
	g := core.NewGraph()
	_, err := g.NodeWeight("ghost")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = g.NodeWeight("")
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
}

func TestNodes_FirstInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B", "A", "C"} {
		require.NoError(t, g.AddAppearance(id))
	}
	// Re-appearances must not reshuffle the enumeration order.
	assert.Equal(t, []string{"C", "A", "B"}, g.Nodes())
}

func TestAddCoOccurrence_Validation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddAppearance("A"))

	assert.ErrorIs(t, g.AddCoOccurrence("", "A"), core.ErrEmptyNodeID)
	assert.ErrorIs(t, g.AddCoOccurrence("A", "A"), core.ErrSelfPair)
	assert.ErrorIs(t, g.AddCoOccurrence("A", "B"), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddCoOccurrence("B", "A"), core.ErrNodeNotFound)
}

func TestAddCoOccurrence_SymmetricAccumulation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddAppearance("A"))
	require.NoError(t, g.AddAppearance("B"))

	require.NoError(t, g.AddCoOccurrence("A", "B"))
	require.NoError(t, g.AddCoOccurrence("B", "A"))

	// One unordered pair, weight 2, visible from both endpoints.
	assert.Equal(t, 1, g.EdgeCount())
	w, ok := g.EdgeWeight("A", "B")
	assert.True(t, ok)
	assert.Equal(t, int64(2), w)
	w, ok = g.EdgeWeight("B", "A")
	assert.True(t, ok)
	assert.Equal(t, int64(2), w)
}

func TestEdgeWeight_AbsentPair(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddAppearance("A"))
	require.NoError(t, g.AddAppearance("B"))

	w, ok := g.EdgeWeight("A", "B")
	assert.False(t, ok)
	assert.Zero(t, w)

	// Unknown endpoints are an absent pair, not an error.
	_, ok = g.EdgeWeight("A", "ghost")
	assert.False(t, ok)
}

func TestNeighbors_FirstInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddAppearance(id))
	}
	require.NoError(t, g.AddCoOccurrence("A", "C"))
	require.NoError(t, g.AddCoOccurrence("A", "B"))
	require.NoError(t, g.AddCoOccurrence("D", "A"))
	// Repeat co-occurrence must not duplicate the neighbor entry.
	require.NoError(t, g.AddCoOccurrence("A", "C"))

	nbs, err := g.Neighbors("A")
	assert.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "D"}, nbs)
}

func TestNeighbors_Errors(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
	_, err = g.Neighbors("ghost")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestNeighbors_IsolatedNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddAppearance("A"))

	nbs, err := g.Neighbors("A")
	assert.NoError(t, err)
	assert.Empty(t, nbs)
}
