package script

import (
	"strings"
	"time"

	"github.com/vvka-141/ddlx/internal/ident"
	"github.com/vvka-141/ddlx/internal/sourcemap"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

// Script is an assembled DDL script.
type Script struct {
	// Text is every object's DDL joined by ";\n\n" and terminated by ";".
	// Empty when there are no objects.
	Text string

	// Objects are the objects in script order.
	Objects []ddlx.ObjectMetadata

	// Map records the script lines of each object, in script order.
	// The terminating semicolon belongs to its object's last line.
	Map *sourcemap.SourceMap
}

// Assemble joins the DDL of objects, in the order given.
func Assemble(objects []ddlx.ObjectMetadata) *Script {
	s := &Script{
		Objects: objects,
		Map:     sourcemap.New(),
	}
	if len(objects) == 0 {
		return s
	}

	var b strings.Builder
	line := 1
	for i, o := range objects {
		if i > 0 {
			b.WriteString(ddlx.ScriptSeparator)
			line += strings.Count(ddlx.ScriptSeparator, "\n")
		}
		b.WriteString(o.DDL)

		end := line + strings.Count(o.DDL, "\n")
		s.Map.Add(line, end, fqnOf(o), string(o.ObjectType))
		line = end
	}
	b.WriteString(ddlx.ScriptTerminator)

	s.Text = b.String()
	return s
}

// Lines returns the script split into lines.
func (s *Script) Lines() []string {
	if s.Text == "" {
		return nil
	}
	return strings.Split(s.Text, "\n")
}

// Object returns the object that owns a script line.
func (s *Script) Object(line int) (ddlx.ObjectMetadata, sourcemap.Entry, bool) {
	e, ok := s.Map.Resolve(line)
	if !ok {
		return ddlx.ObjectMetadata{}, sourcemap.Entry{}, false
	}
	return s.Objects[e.Ordinal], e, true
}

// FileName returns the export file name for a database at time t.
func FileName(database string, t time.Time) string {
	return database + "_DDL_Export_" + t.Format(ddlx.ExportFileTimeLayout) + ddlx.DumpFileExtension
}

func fqnOf(o ddlx.ObjectMetadata) string {
	if fqn := ident.CanonicalFQN(o.Database, o.Schema, o.ObjectName); fqn != "" {
		return fqn
	}
	return o.FullyQualifiedName
}
