package graph

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format names a rendering of a projection.
type Format string

const (
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
	FormatJSON    Format = "json"
)

// Formats lists the supported formats.
var Formats = []Format{FormatDOT, FormatMermaid, FormatJSON}

// Render writes p to w in the given format.
func Render(w io.Writer, p Projection, format Format) error {
	switch format {
	case FormatDOT:
		return RenderDOT(w, p)
	case FormatMermaid:
		return RenderMermaid(w, p)
	case FormatJSON:
		return RenderJSON(w, p)
	default:
		return fmt.Errorf("unknown graph format %q (supported: dot, mermaid, json)", format)
	}
}

// RenderDOT writes p as a Graphviz digraph.
func RenderDOT(w io.Writer, p Projection) error {
	var b strings.Builder
	b.WriteString("digraph dependencies {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  bgcolor=\"#222222\";\n")
	b.WriteString("  node [shape=box, style=\"rounded,filled\", fontcolor=white];\n")
	b.WriteString("  edge [color=\"#BBBBBB\"];\n")

	for _, n := range p.Nodes {
		fmt.Fprintf(&b, "  %s [label=%s, tooltip=%s, fillcolor=%s];\n",
			dotQuote(n.ID.String()), dotQuote(n.Label), dotQuote(n.Title), dotQuote(n.Color))
	}

	ids := nodeIDs(p)
	for _, e := range p.Edges {
		fmt.Fprintf(&b, "  %s -> %s;\n", dotQuote(ids[e.From]), dotQuote(ids[e.To]))
	}

	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderMermaid writes p as a Mermaid flowchart.
func RenderMermaid(w io.Writer, p Projection) error {
	var b strings.Builder
	b.WriteString("flowchart LR\n")

	ids := make(map[string]string, len(p.Nodes))
	for _, n := range p.Nodes {
		id := "n" + hex.EncodeToString(n.ID[:])
		ids[n.FQN] = id
		fmt.Fprintf(&b, "  %s[\"%s\"]\n", id, mermaidEscape(n.Label))
	}
	for _, e := range p.Edges {
		fmt.Fprintf(&b, "  %s --> %s\n", ids[e.From], ids[e.To])
	}
	for _, n := range p.Nodes {
		fmt.Fprintf(&b, "  style %s fill:%s,color:#fff\n", ids[n.FQN], n.Color)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderJSON writes p as indented JSON.
func RenderJSON(w io.Writer, p Projection) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func nodeIDs(p Projection) map[string]string {
	ids := make(map[string]string, len(p.Nodes))
	for _, n := range p.Nodes {
		ids[n.FQN] = n.ID.String()
	}
	return ids
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

var mermaidEscaper = strings.NewReplacer(`"`, "#quot;", "\n", "<br/>")

func mermaidEscape(s string) string {
	return mermaidEscaper.Replace(s)
}
