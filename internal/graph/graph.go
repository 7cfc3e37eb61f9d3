package graph

import (
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/vvka-141/ddlx/internal/ident"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

// DefaultColor is used for object types without a palette entry.
const DefaultColor = "#90A4AE"

var palette = map[ddlx.ObjectType]string{
	ddlx.TypeDatabase:         "#2196F3",
	ddlx.TypeSchema:           "#009688",
	ddlx.TypeSequence:         "#FFC107",
	ddlx.TypeTable:            "#3F51B5",
	ddlx.TypeDynamicTable:     "#03A9F4",
	ddlx.TypeView:             "#673AB7",
	ddlx.TypeStage:            "#00BCD4",
	ddlx.TypeExternalTable:    "#607D8B",
	ddlx.TypeFileFormat:       "#FF9800",
	ddlx.TypeProcedure:        "#C2185B",
	ddlx.TypeFunction:         "#4CAF50",
	ddlx.TypePipe:             "#4682B4",
	ddlx.TypeMaterializedView: "#9C27B0",
	ddlx.TypeStream:           "#8BC34A",
	ddlx.TypeTask:             "#78909C",
	ddlx.TypeMaskingPolicy:    "#9E9E9E",
	ddlx.TypeTag:              "#E91E63",
}

// Color returns the display color of an object type.
func Color(t ddlx.ObjectType) string {
	if c, ok := palette[t]; ok {
		return c
	}
	return DefaultColor
}

// Node is one object in a projection.
type Node struct {
	ID    uuid.UUID       `json:"id"`
	FQN   string          `json:"fqn"`
	Label string          `json:"label"`
	Type  ddlx.ObjectType `json:"type"`
	Title string          `json:"title"`
	Color string          `json:"color"`
}

// Edge points from a dependent object to one of its dependencies.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Projection is the schema-filtered view of a dependency graph.
type Projection struct {
	Schemas []string `json:"schemas"`
	Nodes   []Node   `json:"nodes"`
	Edges   []Edge   `json:"edges"`
}

// Project keeps the objects whose schema is one of schemas, in the order
// given, and the edges of g between them. Objects without a canonical FQN
// are never projected.
func Project(objects []ddlx.ObjectMetadata, g ddlx.DependencyGraph, schemas []string) Projection {
	p := Projection{
		Schemas: schemas,
		Nodes:   make([]Node, 0),
		Edges:   make([]Edge, 0),
	}

	selected := lo.Filter(objects, func(o ddlx.ObjectMetadata, _ int) bool {
		return lo.Contains(schemas, o.Schema) && fqnOf(o) != ""
	})
	selected = lo.UniqBy(selected, fqnOf)
	keep := lo.Associate(selected, func(o ddlx.ObjectMetadata) (string, bool) {
		return fqnOf(o), true
	})

	for _, o := range selected {
		fqn := fqnOf(o)
		p.Nodes = append(p.Nodes, Node{
			ID:    ident.ObjectID(fqn),
			FQN:   fqn,
			Label: o.ObjectName,
			Type:  o.ObjectType,
			Title: string(o.ObjectType) + "\n" + fqn,
			Color: Color(o.ObjectType),
		})
	}

	for _, n := range p.Nodes {
		for _, dep := range g[n.FQN] {
			if keep[dep] {
				p.Edges = append(p.Edges, Edge{From: n.FQN, To: dep})
			}
		}
	}
	return p
}

// Node returns the projected node with the given FQN.
func (p Projection) Node(fqn string) (Node, bool) {
	return lo.Find(p.Nodes, func(n Node) bool { return n.FQN == fqn })
}

func fqnOf(o ddlx.ObjectMetadata) string {
	return ident.CanonicalFQN(o.Database, o.Schema, o.ObjectName)
}
