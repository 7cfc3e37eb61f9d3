// Package graph projects a dependency graph onto a set of schemas and
// renders the projection as Graphviz DOT, Mermaid or JSON.
//
// A projection keeps the objects whose raw schema field is one of the
// selected schemas, and only the edges whose two ends both survive. Edges
// point from the dependent object to its dependency.
//
// Node IDs are deterministic UUIDs derived from the canonical FQN, so
// repeated renders of the same input are byte-identical.
package graph
