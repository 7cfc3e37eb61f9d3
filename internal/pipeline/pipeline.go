package pipeline

import (
	"strings"

	"github.com/vvka-141/ddlx/internal/checksum"
	"github.com/vvka-141/ddlx/internal/extractor"
	"github.com/vvka-141/ddlx/internal/ident"
	"github.com/vvka-141/ddlx/internal/resolver"
	"github.com/vvka-141/ddlx/internal/splitter"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

// Options tune how statements are read.
type Options struct {
	// TaggedDollarQuotes treats $tag$...$tag$ as an opaque body while splitting.
	TaggedDollarQuotes bool

	// TrimLeadingComments drops comments in front of a statement's CREATE
	// header before extraction. The stored DDL starts at the header.
	TrimLeadingComments bool
}

// Process runs the full pipeline over text for the given database.
func Process(text, database string, opts Options) *ddlx.Result {
	var splitOpts []splitter.Option
	if opts.TaggedDollarQuotes {
		splitOpts = append(splitOpts, splitter.WithTaggedDollarQuotes())
	}

	res := &ddlx.Result{Database: database}
	calc := checksum.New()
	fingerprints := make(map[string]string)
	conflicted := make(map[string]bool)

	var objects []ddlx.ObjectMetadata
	for _, stmt := range splitter.New(splitOpts...).Statements(text) {
		cleaned := extractor.StripSelfDatabaseReferences(stmt.Text, database)
		if opts.TrimLeadingComments {
			cleaned = extractor.TrimLeadingComments(cleaned)
		}

		md, err := extractor.Extract(cleaned)
		if err != nil {
			res.Skipped = append(res.Skipped, stmt)
			continue
		}

		if md.Database == "" {
			md.Database = database
		}
		md.DDL = strings.TrimSpace(cleaned)
		md.Index = stmt.Index
		md.Checksum = calc.Normalized(md.DDL)

		fqn := ident.CanonicalFQN(md.Database, md.Schema, md.ObjectName)
		if prev, seen := fingerprints[fqn]; seen && prev != md.Checksum && !conflicted[fqn] {
			conflicted[fqn] = true
			res.Conflicts = append(res.Conflicts, fqn)
		}
		fingerprints[fqn] = md.Checksum

		objects = append(objects, *md)
	}

	resolved := resolver.Resolve(objects)
	res.Objects = resolved.Objects
	res.Graph = resolved.Graph
	res.Cyclic = resolved.Cyclic
	res.Unresolved = resolved.Unresolved
	return res
}

// Input returns the text to process for an extract: its DDL followed by
// a synthesized CREATE STAGE statement for every listed stage.
func Input(ex *ddlx.Extract) string {
	return ex.DDL + SynthesizeStages(ex.Stages)
}

// SynthesizeStages renders stages as CREATE STAGE statements, each on its
// own line with fully quoted names.
func SynthesizeStages(stages []ddlx.StageRef) string {
	var b strings.Builder
	for _, s := range stages {
		b.WriteString("\nCREATE STAGE ")
		b.WriteString(ident.Quote(s.Database))
		b.WriteByte('.')
		b.WriteString(ident.Quote(s.Schema))
		b.WriteByte('.')
		b.WriteString(ident.Quote(s.Name))
		b.WriteByte(';')
	}
	return b.String()
}
