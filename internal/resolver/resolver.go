package resolver

import (
	"strings"

	"github.com/vvka-141/ddlx/internal/ident"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

// Resolution is the result of Resolve.
type Resolution struct {
	// Objects in dependency order, re-indexed by position.
	Objects []ddlx.ObjectMetadata

	// Graph maps every canonical FQN to its dependencies.
	Graph ddlx.DependencyGraph

	// Cyclic lists FQNs placed by the cycle fallback, in input order.
	Cyclic []string

	// Unresolved holds input objects without an object name.
	Unresolved []ddlx.ObjectMetadata
}

// entry is an input object with its normalized identifiers.
type entry struct {
	md  ddlx.ObjectMetadata
	fqn string
	db  string
	sc  string
	obj string
}

type schemaObjectKey struct {
	schema string
	object string
}

type containerKey struct {
	database string
	name     string
}

// index holds the lookups built from the input.
type index struct {
	byFQN       map[string]*entry
	bySchemaObj map[schemaObjectKey][]*entry
	schemas     map[containerKey]string
	databases   map[string]string
}

// Resolve computes the dependency graph of objects and orders them.
// The input slice is not modified.
func Resolve(objects []ddlx.ObjectMetadata) Resolution {
	var res Resolution
	entries := make([]*entry, 0, len(objects))
	for _, md := range objects {
		e := &entry{
			md:  md,
			fqn: ident.CanonicalFQN(md.Database, md.Schema, md.ObjectName),
			db:  ident.Normalize(md.Database),
			sc:  ident.Normalize(md.Schema),
			obj: ident.Normalize(md.ObjectName),
		}
		if e.fqn == "" {
			res.Unresolved = append(res.Unresolved, md)
			continue
		}
		entries = append(entries, e)
	}

	idx := buildIndex(entries)
	g := newGraph()
	for _, e := range entries {
		g.addNode(e.fqn)
	}

	for _, e := range entries {
		for _, ref := range scanReferences(strings.ToUpper(e.md.DDL)) {
			if target := idx.resolve(ref, e); target != "" {
				g.addEdge(e.fqn, target)
			}
		}
		for _, target := range idx.containers(e) {
			g.addEdge(e.fqn, target)
		}
	}

	ordered, cyclic := g.sort()

	res.Objects = make([]ddlx.ObjectMetadata, len(ordered))
	for i, fqn := range ordered {
		md := idx.byFQN[fqn].md
		md.Index = i
		res.Objects[i] = md
	}
	res.Cyclic = cyclic

	res.Graph = make(ddlx.DependencyGraph, len(g.order))
	for _, id := range g.order {
		res.Graph[id] = append([]string{}, g.deps[id]...)
	}
	return res
}

func buildIndex(entries []*entry) *index {
	idx := &index{
		byFQN:       make(map[string]*entry),
		bySchemaObj: make(map[schemaObjectKey][]*entry),
		schemas:     make(map[containerKey]string),
		databases:   make(map[string]string),
	}

	for _, e := range entries {
		if _, seen := idx.byFQN[e.fqn]; !seen && e.sc != "" && e.obj != "" {
			key := schemaObjectKey{schema: e.sc, object: e.obj}
			idx.bySchemaObj[key] = append(idx.bySchemaObj[key], e)
		}
		idx.byFQN[e.fqn] = e
	}

	// Candidate lists point at the surviving definition of each FQN.
	for key, cands := range idx.bySchemaObj {
		for i, c := range cands {
			cands[i] = idx.byFQN[c.fqn]
		}
		idx.bySchemaObj[key] = cands
	}

	for _, e := range entries {
		if idx.byFQN[e.fqn] != e {
			continue
		}
		switch e.md.ObjectType {
		case ddlx.TypeSchema:
			idx.schemas[containerKey{database: e.db, name: e.obj}] = e.fqn
		case ddlx.TypeDatabase:
			idx.databases[e.obj] = e.fqn
		}
	}
	return idx
}

// resolve returns the FQN a reference points to, or "" when it does not
// resolve to exactly one other object.
func (idx *index) resolve(ref reference, from *entry) string {
	var target string
	switch len(ref.parts) {
	case 3:
		fqn := ident.CanonicalFQN(ref.parts[0], ref.parts[1], ref.parts[2])
		if _, ok := idx.byFQN[fqn]; ok {
			target = fqn
		}
	case 2:
		key := schemaObjectKey{schema: ident.Normalize(ref.parts[0]), object: ident.Normalize(ref.parts[1])}
		cands := idx.bySchemaObj[key]
		switch {
		case len(cands) == 1:
			target = cands[0].fqn
		case len(cands) > 1 && from.db != "":
			var same []*entry
			for _, c := range cands {
				if c.db == from.db {
					same = append(same, c)
				}
			}
			if len(same) == 1 {
				target = same[0].fqn
			}
		}
	}

	if target == from.fqn {
		return ""
	}
	return target
}

// containers returns the FQNs of the SCHEMA and DATABASE objects that
// contain e, when they are part of the input.
func (idx *index) containers(e *entry) []string {
	var out []string
	if !e.md.ObjectType.IsContainer() && e.sc != "" {
		fqn, ok := idx.schemas[containerKey{database: e.db, name: e.sc}]
		if !ok && e.db != "" {
			fqn, ok = idx.schemas[containerKey{name: e.sc}]
		}
		if ok {
			out = append(out, fqn)
		}
	}
	if e.md.ObjectType != ddlx.TypeDatabase && e.db != "" {
		if fqn, ok := idx.databases[e.db]; ok {
			out = append(out, fqn)
		}
	}
	return out
}
