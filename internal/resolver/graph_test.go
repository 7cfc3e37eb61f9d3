package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraph_AddEdge(t *testing.T) {
	g := newGraph()
	g.addNode("A")
	g.addNode("B")
	g.addNode("A")

	g.addEdge("B", "A")
	g.addEdge("B", "A")
	g.addEdge("A", "A")

	assert.Equal(t, []string{"A", "B"}, g.order)
	assert.Equal(t, []string{"A"}, g.deps["B"])
	assert.Equal(t, []string{}, g.deps["A"])
	assert.Equal(t, []string{"B"}, g.dependents["A"])
}

func TestGraph_SortFIFO(t *testing.T) {
	g := newGraph()
	for _, id := range []string{"D", "C", "B", "A"} {
		g.addNode(id)
	}
	g.addEdge("D", "A")
	g.addEdge("C", "A")
	g.addEdge("B", "C")

	ordered, cyclic := g.sort()
	assert.Equal(t, []string{"A", "D", "C", "B"}, ordered)
	assert.Empty(t, cyclic)
}

func TestGraph_SortCycle(t *testing.T) {
	g := newGraph()
	for _, id := range []string{"X", "Y", "Z"} {
		g.addNode(id)
	}
	g.addEdge("X", "Y")
	g.addEdge("Y", "X")

	ordered, cyclic := g.sort()
	assert.Equal(t, []string{"Z", "X", "Y"}, ordered)
	assert.Equal(t, []string{"X", "Y"}, cyclic)
}
