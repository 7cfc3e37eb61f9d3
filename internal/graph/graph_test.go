package graph

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/ddlx/internal/ident"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

func fixture() ([]ddlx.ObjectMetadata, ddlx.DependencyGraph) {
	objects := []ddlx.ObjectMetadata{
		{ObjectType: ddlx.TypeTable, Database: "DB", Schema: "RAW", ObjectName: "ORDERS"},
		{ObjectType: ddlx.TypeTable, Database: "DB", Schema: "RAW", ObjectName: "FX"},
		{ObjectType: ddlx.TypeView, Database: "DB", Schema: "MART", ObjectName: "REVENUE"},
		{ObjectType: ddlx.TypeStream, Database: "DB", Schema: "RAW", ObjectName: "ORDERS_S"},
	}
	g := ddlx.DependencyGraph{
		"DB.RAW.ORDERS":   {},
		"DB.RAW.FX":       {},
		"DB.MART.REVENUE": {"DB.RAW.ORDERS", "DB.RAW.FX"},
		"DB.RAW.ORDERS_S": {"DB.RAW.ORDERS"},
	}
	return objects, g
}

func nodeFQNs(p Projection) []string {
	var out []string
	for _, n := range p.Nodes {
		out = append(out, n.FQN)
	}
	return out
}

func TestProject_FiltersNodesAndEdges(t *testing.T) {
	objects, g := fixture()

	p := Project(objects, g, []string{"RAW"})

	assert.Equal(t, []string{"DB.RAW.ORDERS", "DB.RAW.FX", "DB.RAW.ORDERS_S"}, nodeFQNs(p))
	assert.Equal(t, []Edge{{From: "DB.RAW.ORDERS_S", To: "DB.RAW.ORDERS"}}, p.Edges)
}

func TestProject_AllSchemas(t *testing.T) {
	objects, g := fixture()

	p := Project(objects, g, []string{"RAW", "MART"})

	assert.Len(t, p.Nodes, 4)
	assert.Equal(t, []Edge{
		{From: "DB.MART.REVENUE", To: "DB.RAW.ORDERS"},
		{From: "DB.MART.REVENUE", To: "DB.RAW.FX"},
		{From: "DB.RAW.ORDERS_S", To: "DB.RAW.ORDERS"},
	}, p.Edges)
}

func TestProject_SchemaMatchIsExact(t *testing.T) {
	objects, g := fixture()

	p := Project(objects, g, []string{"raw"})

	assert.Empty(t, p.Nodes)
	assert.Empty(t, p.Edges)
}

func TestProject_NoSchemas(t *testing.T) {
	objects, g := fixture()

	p := Project(objects, g, nil)

	assert.NotNil(t, p.Nodes)
	assert.Empty(t, p.Nodes)
}

func TestProject_NodeAttributes(t *testing.T) {
	objects, g := fixture()

	p := Project(objects, g, []string{"MART"})

	n, ok := p.Node("DB.MART.REVENUE")
	require.True(t, ok)
	assert.Equal(t, ident.ObjectID("DB.MART.REVENUE"), n.ID)
	assert.Equal(t, "REVENUE", n.Label)
	assert.Equal(t, "VIEW\nDB.MART.REVENUE", n.Title)
	assert.Equal(t, "#673AB7", n.Color)

	_, ok = p.Node("DB.RAW.ORDERS")
	assert.False(t, ok)
}

func TestColor(t *testing.T) {
	tests := []struct {
		typ  ddlx.ObjectType
		want string
	}{
		{ddlx.TypeTable, "#3F51B5"},
		{ddlx.TypePipe, "#4682B4"},
		{ddlx.TypeTag, "#E91E63"},
		{ddlx.TypeRowAccessPolicy, DefaultColor},
		{ddlx.TypeUnknown, DefaultColor},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := Color(tt.typ); got != tt.want {
				t.Errorf("Color(%q) = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestRenderDOT(t *testing.T) {
	objects, g := fixture()
	p := Project(objects, g, []string{"RAW"})

	var buf bytes.Buffer
	require.NoError(t, RenderDOT(&buf, p))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "digraph dependencies {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `label="ORDERS", tooltip="TABLE\nDB.RAW.ORDERS", fillcolor="#3F51B5"`)

	streamID := ident.ObjectID("DB.RAW.ORDERS_S").String()
	ordersID := ident.ObjectID("DB.RAW.ORDERS").String()
	assert.Contains(t, out, `"`+streamID+`" -> "`+ordersID+`";`)
}

func TestRenderDOT_EscapesLabels(t *testing.T) {
	p := Project([]ddlx.ObjectMetadata{
		{ObjectType: ddlx.TypeTable, Schema: "S", ObjectName: `"odd""name"`},
	}, ddlx.DependencyGraph{}, []string{"S"})

	var buf bytes.Buffer
	require.NoError(t, RenderDOT(&buf, p))

	assert.Contains(t, buf.String(), `label="\"odd\"\"name\""`)
}

func TestRenderMermaid(t *testing.T) {
	objects, g := fixture()
	p := Project(objects, g, []string{"RAW", "MART"})

	var buf bytes.Buffer
	require.NoError(t, RenderMermaid(&buf, p))
	out := buf.String()

	revenue := ident.ObjectID("DB.MART.REVENUE")
	fx := ident.ObjectID("DB.RAW.FX")
	revenueID := "n" + strings.ReplaceAll(revenue.String(), "-", "")
	fxID := "n" + strings.ReplaceAll(fx.String(), "-", "")

	assert.True(t, strings.HasPrefix(out, "flowchart LR\n"))
	assert.Contains(t, out, revenueID+`["REVENUE"]`)
	assert.Contains(t, out, revenueID+" --> "+fxID)
	assert.Contains(t, out, "style "+fxID+" fill:#3F51B5,color:#fff")
}

func TestRenderJSON(t *testing.T) {
	objects, g := fixture()
	p := Project(objects, g, []string{"MART"})

	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, p))

	var decoded struct {
		Schemas []string         `json:"schemas"`
		Nodes   []map[string]any `json:"nodes"`
		Edges   []Edge           `json:"edges"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []string{"MART"}, decoded.Schemas)
	require.Len(t, decoded.Nodes, 1)
	assert.Equal(t, "DB.MART.REVENUE", decoded.Nodes[0]["fqn"])
	assert.Equal(t, ident.ObjectID("DB.MART.REVENUE").String(), decoded.Nodes[0]["id"])
	assert.Empty(t, decoded.Edges)
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, Projection{}, Format("svg"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown graph format")
}

func TestRender_Deterministic(t *testing.T) {
	objects, g := fixture()

	for _, f := range Formats {
		var a, b bytes.Buffer
		require.NoError(t, Render(&a, Project(objects, g, []string{"RAW", "MART"}), f))
		require.NoError(t, Render(&b, Project(objects, g, []string{"RAW", "MART"}), f))
		assert.Equal(t, a.String(), b.String(), "format %s", f)
	}
}
