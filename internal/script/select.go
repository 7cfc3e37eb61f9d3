package script

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/vvka-141/ddlx/pkg/ddlx"
)

// NoSchema labels objects that have no schema part.
const NoSchema = "N/A"

// Filter narrows a selection. Zero value selects every non-container object.
type Filter struct {
	// Schemas keeps objects whose schema is listed. Empty keeps all.
	Schemas []string

	// Types keeps objects of the listed types. Empty keeps all.
	Types []ddlx.ObjectType

	// Search keeps objects whose name contains it, case-insensitively.
	Search string

	// IncludeContainers keeps DATABASE and SCHEMA objects.
	IncludeContainers bool
}

// Select returns the objects matching f, preserving their order.
func Select(objects []ddlx.ObjectMetadata, f Filter) []ddlx.ObjectMetadata {
	search := strings.ToLower(f.Search)
	return lo.Filter(objects, func(o ddlx.ObjectMetadata, _ int) bool {
		if o.ObjectType.IsContainer() && !f.IncludeContainers {
			return false
		}
		if len(f.Schemas) > 0 && !lo.Contains(f.Schemas, SchemaLabel(o.Schema)) {
			return false
		}
		if len(f.Types) > 0 && !lo.Contains(f.Types, o.ObjectType) {
			return false
		}
		return strings.Contains(strings.ToLower(o.ObjectName), search)
	})
}

// Schemas returns the sorted, distinct schema labels of objects.
func Schemas(objects []ddlx.ObjectMetadata) []string {
	labels := lo.Uniq(lo.Map(objects, func(o ddlx.ObjectMetadata, _ int) string {
		return SchemaLabel(o.Schema)
	}))
	sort.Strings(labels)
	return labels
}

// SchemaLabel returns the display name of a schema.
func SchemaLabel(schema string) string {
	if schema == "" {
		return NoSchema
	}
	return schema
}

// TypeGroup holds the objects of one type within a schema.
type TypeGroup struct {
	Type    ddlx.ObjectType
	Objects []ddlx.ObjectMetadata
}

// SchemaGroup holds the objects of one schema, grouped by type.
type SchemaGroup struct {
	Schema string
	Types  []TypeGroup
}

// Count returns the number of objects in the group.
func (g SchemaGroup) Count() int {
	return lo.SumBy(g.Types, func(t TypeGroup) int { return len(t.Objects) })
}

var (
	leadingTypes  = []ddlx.ObjectType{ddlx.TypeSequence, ddlx.TypeTable, ddlx.TypeDynamicTable, ddlx.TypeView}
	trailingTypes = []ddlx.ObjectType{ddlx.TypeFileFormat, ddlx.TypeStage, ddlx.TypeExternalTable, ddlx.TypePipe}
)

// TypeLess orders object types for display: sequences, tables, dynamic
// tables and views first, file formats, stages, external tables and pipes
// last, everything else alphabetically in between.
func TypeLess(a, b ddlx.ObjectType) bool {
	ra, ia := typeRank(a)
	rb, ib := typeRank(b)
	if ra != rb {
		return ra < rb
	}
	if ra == 1 {
		return a < b
	}
	return ia < ib
}

func typeRank(t ddlx.ObjectType) (int, int) {
	if i := lo.IndexOf(leadingTypes, t); i >= 0 {
		return 0, i
	}
	if i := lo.IndexOf(trailingTypes, t); i >= 0 {
		return 2, i
	}
	return 1, 0
}

// Group arranges objects by schema label (sorted) and type (display order).
// Objects keep their relative order inside a type group.
func Group(objects []ddlx.ObjectMetadata) []SchemaGroup {
	bySchema := lo.GroupBy(objects, func(o ddlx.ObjectMetadata) string {
		return SchemaLabel(o.Schema)
	})

	groups := make([]SchemaGroup, 0, len(bySchema))
	for _, schema := range Schemas(objects) {
		byType := lo.GroupBy(bySchema[schema], func(o ddlx.ObjectMetadata) ddlx.ObjectType {
			return o.ObjectType
		})
		types := lo.Keys(byType)
		sort.Slice(types, func(i, j int) bool { return TypeLess(types[i], types[j]) })

		g := SchemaGroup{Schema: schema}
		for _, t := range types {
			g.Types = append(g.Types, TypeGroup{Type: t, Objects: byType[t]})
		}
		groups = append(groups, g)
	}
	return groups
}
